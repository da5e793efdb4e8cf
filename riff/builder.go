// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"fmt"
	"io"
)

// DefaultMaxDepth bounds container nesting unless WithMaxDepth says
// otherwise.
const DefaultMaxDepth = 64

// Option configures a Builder.
type Option func(*Builder)

// WithMaxDepth sets how many containers may be nested inside each other.
// Values below 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.maxDepth = n
		}
	}
}

// Builder turns a chunk stream into a tree of Nodes.
//
// A Builder holds no per-parse state and may be shared between goroutines,
// as long as each parse uses its own reader.
type Builder struct {
	maxDepth int
}

// NewBuilder returns a Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// MaxDepth returns the configured nesting bound.
func (b *Builder) MaxDepth() int { return b.maxDepth }

// Parse builds the chunk sequence of a whole stream of size bytes, starting
// at offset 0.
func Parse(r io.Reader, size int64, opts ...Option) ([]*Node, error) {
	return NewBuilder(opts...).BuildTree(r, size, 0, FourCC{})
}

// BuildTree reads chunks from r until exactly regionSize bytes have been
// accounted for.
//
// baseOffset is the absolute stream offset of r's current position and is
// used for node offsets, leaf spans and error reports. parent names the
// enclosing container for error reports only.
//
// Leaf payloads are skipped, never buffered: by seeking when r is an
// io.Seeker, by discarding otherwise. Any failure is returned as a
// *ParseError and no partial tree is produced.
func (b *Builder) BuildTree(r io.Reader, regionSize, baseOffset int64, parent FourCC) ([]*Node, error) {
	if regionSize < 0 {
		return nil, fmt.Errorf("riff: negative region size %d", regionSize)
	}
	return b.build(newCursor(r), regionSize, baseOffset, parent, 0)
}

func (b *Builder) build(c *cursor, regionSize, base int64, parent FourCC, depth int) ([]*Node, error) {
	var (
		nodes    []*Node
		consumed int64
	)

	for consumed < regionSize {
		offset := base + consumed

		h, err := decodeHeader(c.r)
		if err != nil {
			return nil, &ParseError{Offset: offset, Parent: parent, Kind: readFailure(err), Err: err}
		}

		// Everything below depends on this check: Length is untrusted until
		// it fits the region.
		end := consumed + HeaderSize + int64(h.Length)
		if end > regionSize {
			return nil, &ParseError{
				Offset: offset,
				Parent: parent,
				ID:     h.ID,
				Kind:   ErrChunkOverflow,
				Err:    fmt.Errorf("needs %d bytes, region has %d left", HeaderSize+int64(h.Length), regionSize-consumed),
			}
		}

		n := &Node{Header: h, Offset: offset}
		if h.IsContainer() {
			if err := b.container(c, n, parent, depth); err != nil {
				return nil, err
			}
		} else {
			n.Kind = KindLeaf
			n.Span = Span{Offset: offset + HeaderSize, Length: int64(h.Length)}
			if err := c.skip(int64(h.Length)); err != nil {
				return nil, &ParseError{Offset: offset, Parent: parent, ID: h.ID, Kind: readFailure(err), Err: err}
			}
		}
		nodes = append(nodes, n)
		consumed = end

		// A pad byte past the region end belongs to nobody: the stream
		// stopped at the unpadded boundary.
		if h.Length&1 == 1 && consumed < regionSize {
			if err := c.skip(1); err != nil {
				return nil, &ParseError{
					Offset: base + consumed,
					Parent: parent,
					ID:     h.ID,
					Kind:   readFailure(err),
					Err:    fmt.Errorf("pad byte: %w", err),
				}
			}
			consumed++
		}
	}

	return nodes, nil
}

func (b *Builder) container(c *cursor, n *Node, parent FourCC, depth int) error {
	n.Kind = KindContainer

	if n.Header.Length < 4 {
		return &ParseError{
			Offset: n.Offset,
			Parent: parent,
			ID:     n.Header.ID,
			Kind:   ErrChunkOverflow,
			Err:    fmt.Errorf("declared length %d cannot hold a form type", n.Header.Length),
		}
	}
	if depth >= b.maxDepth {
		return &ParseError{
			Offset: n.Offset,
			Parent: parent,
			ID:     n.Header.ID,
			Kind:   ErrRecursionLimitExceeded,
			Err:    fmt.Errorf("limit is %d", b.maxDepth),
		}
	}

	if _, err := io.ReadFull(c.r, n.FormType[:]); err != nil {
		return &ParseError{
			Offset: n.Offset,
			Parent: parent,
			ID:     n.Header.ID,
			Kind:   readFailure(err),
			Err:    fmt.Errorf("form type: %w", err),
		}
	}

	children, err := b.build(c, int64(n.Header.Length)-4, n.Offset+HeaderSize+4, n.Header.ID, depth+1)
	if err != nil {
		return err
	}
	n.Children = children
	return nil
}
