// SPDX-License-Identifier: EPL-2.0

package riff

import "io"

// Kind distinguishes container chunks from leaf chunks.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindContainer
)

func (k Kind) String() string {
	if k == KindContainer {
		return "container"
	}
	return "leaf"
}

// Span locates a leaf payload in the original source.
type Span struct {
	Offset int64
	Length int64
}

// End returns the offset one past the last payload byte.
func (s Span) End() int64 { return s.Offset + s.Length }

// Node is one chunk of a parsed tree.
//
// Leaf spans point into the source the tree was built from. The tree does
// not copy payload bytes, so that source must stay valid and unmodified for
// as long as the spans are used.
type Node struct {
	Header Header
	// Offset is the absolute offset of the header's first byte.
	Offset int64
	Kind   Kind

	// FormType and Children are set for containers only.
	FormType FourCC
	Children []*Node

	// Span is set for leaves only.
	Span Span
}

// IsContainer reports whether n holds child chunks.
func (n *Node) IsContainer() bool { return n.Kind == KindContainer }

// TotalSize returns the on-disk size of the chunk: header plus padded
// payload.
func (n *Node) TotalSize() int64 {
	return HeaderSize + n.Header.PaddedLength()
}

// Payload returns a reader over the leaf payload in src. For containers it
// covers the children, starting right after the form type.
func (n *Node) Payload(src io.ReaderAt) *io.SectionReader {
	if n.Kind == KindContainer {
		start := n.Offset + HeaderSize + 4
		return io.NewSectionReader(src, start, int64(n.Header.Length)-4)
	}
	return io.NewSectionReader(src, n.Span.Offset, n.Span.Length)
}

// Walk calls fn for n and its descendants in depth-first order, passing the
// nesting depth (0 for n). Returning false from fn skips that node's
// children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Find follows path through nested chunks. Each element matches either a
// chunk ID or, for containers, the form type, so a LIST of type INFO can be
// reached with "INFO". The first match at each level wins.
func (n *Node) Find(path ...FourCC) *Node {
	cur := n
	for _, id := range path {
		cur = findChild(cur.Children, id)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// FindIn searches a top-level chunk sequence, as returned by the builder.
func FindIn(nodes []*Node, path ...FourCC) *Node {
	if len(path) == 0 {
		return nil
	}
	first := findChild(nodes, path[0])
	if first == nil {
		return nil
	}
	return first.Find(path[1:]...)
}

func findChild(nodes []*Node, id FourCC) *Node {
	for _, c := range nodes {
		if c.Header.ID == id || (c.Kind == KindContainer && c.FormType == id) {
			return c
		}
	}
	return nil
}
