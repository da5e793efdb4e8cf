// SPDX-License-Identifier: EPL-2.0

package rifftree

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/rifftree/riff"
)

// Tree is a parsed RIFF stream together with the source its spans point
// into. Payloads are read from that source on demand.
type Tree struct {
	// Chunks holds the top-level chunks, normally a single RIFF container.
	Chunks []*riff.Node

	src    io.ReaderAt
	size   int64
	closer io.Closer
}

// Parse builds the chunk tree of the first size bytes of src.
//
// The tree keeps a reference to src; it must stay valid and unmodified for as
// long as payloads are read through the tree.
func Parse(src io.ReaderAt, size int64, opts ...riff.Option) (*Tree, error) {
	nodes, err := riff.Parse(io.NewSectionReader(src, 0, size), size, opts...)
	if err != nil {
		return nil, err
	}
	return &Tree{Chunks: nodes, src: src, size: size}, nil
}

// Open parses the file at path. The file stays open until Close.
func Open(path string, opts ...riff.Option) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	t, err := Parse(f, st.Size(), opts...)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	t.closer = f
	return t, nil
}

// Close releases the file opened by Open. It is a no-op for trees built by
// Parse.
func (t *Tree) Close() error {
	if t.closer == nil {
		return nil
	}
	err := t.closer.Close()
	t.closer = nil
	return err
}

// Size returns the number of source bytes the tree covers.
func (t *Tree) Size() int64 { return t.size }

// Source returns the reader payloads are read from.
func (t *Tree) Source() io.ReaderAt { return t.src }

// Root returns the first chunk when it is a RIFF container, nil otherwise.
func (t *Tree) Root() *riff.Node {
	if len(t.Chunks) == 0 || t.Chunks[0].Header.ID != riff.RIFFID {
		return nil
	}
	return t.Chunks[0]
}

// FormType returns the form type of the root container, such as WAVE or
// AVI, or the zero FourCC when there is no root.
func (t *Tree) FormType() riff.FourCC {
	if root := t.Root(); root != nil {
		return root.FormType
	}
	return riff.FourCC{}
}

// Find resolves a path of 4-character tags starting at the top level, for
// example Find("RIFF", "INFO", "INAM"). Malformed tags never match.
func (t *Tree) Find(path ...string) *riff.Node {
	ids := make([]riff.FourCC, len(path))
	for i, p := range path {
		id, err := riff.ParseFourCC(p)
		if err != nil {
			return nil
		}
		ids[i] = id
	}
	return riff.FindIn(t.Chunks, ids...)
}

// Walk visits every chunk depth first. See riff.Node.Walk.
func (t *Tree) Walk(fn func(node *riff.Node, depth int) bool) {
	for _, n := range t.Chunks {
		n.Walk(fn)
	}
}

// Payload returns a reader over n's payload in the tree's source.
func (t *Tree) Payload(n *riff.Node) *io.SectionReader {
	return n.Payload(t.src)
}

// ReadPayload reads n's whole payload into memory.
func (t *Tree) ReadPayload(n *riff.Node) ([]byte, error) {
	sr := t.Payload(n)
	buf := make([]byte, sr.Size())
	if _, err := io.ReadFull(sr, buf); err != nil {
		return nil, fmt.Errorf("reading %s payload at %d: %w", n.Header.ID, n.Offset, err)
	}
	return buf, nil
}
