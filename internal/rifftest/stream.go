// SPDX-License-Identifier: EPL-2.0

// Package rifftest builds synthetic RIFF streams for tests.
package rifftest

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Chunk describes one chunk to encode. Containers have a FormType and
// Children, leaves have Data.
type Chunk struct {
	ID       string
	FormType string
	Data     []byte
	Children []Chunk

	declared *uint32
	noPad    bool
}

// Leaf returns a leaf chunk carrying data.
func Leaf(id string, data []byte) Chunk {
	return Chunk{ID: id, Data: data}
}

// List returns a LIST container of the given list type.
func List(listType string, children ...Chunk) Chunk {
	return Chunk{ID: "LIST", FormType: listType, Children: children}
}

// RIFF returns a RIFF container of the given form type.
func RIFF(formType string, children ...Chunk) Chunk {
	return Chunk{ID: "RIFF", FormType: formType, Children: children}
}

// Declaring overrides the length written in the header, for building
// streams that lie about their size.
func (c Chunk) Declaring(n uint32) Chunk {
	c.declared = &n
	return c
}

// NoPad drops the pad byte after an odd payload.
func (c Chunk) NoPad() Chunk {
	c.noPad = true
	return c
}

func (c Chunk) isContainer() bool {
	return c.ID == "RIFF" || c.ID == "LIST"
}

func (c Chunk) payload() []byte {
	if !c.isContainer() {
		return c.Data
	}
	buf := new(bytes.Buffer)
	buf.WriteString(fourCC(c.FormType))
	for _, child := range c.Children {
		child.writeTo(buf)
	}
	return buf.Bytes()
}

func (c Chunk) writeTo(buf *bytes.Buffer) {
	payload := c.payload()
	length := uint32(len(payload))
	if c.declared != nil {
		length = *c.declared
	}

	var hdr [8]byte
	copy(hdr[:4], fourCC(c.ID))
	binary.LittleEndian.PutUint32(hdr[4:], length)
	buf.Write(hdr[:])
	buf.Write(payload)
	if len(payload)%2 == 1 && !c.noPad {
		buf.WriteByte(0)
	}
}

// Bytes encodes the chunk with its header and pad byte.
func (c Chunk) Bytes() []byte {
	buf := new(bytes.Buffer)
	c.writeTo(buf)
	return buf.Bytes()
}

// Encode concatenates the encodings of chunks.
func Encode(chunks ...Chunk) []byte {
	buf := new(bytes.Buffer)
	for _, c := range chunks {
		c.writeTo(buf)
	}
	return buf.Bytes()
}

// Nested returns depth LIST containers inside each other, the innermost one
// holding a single 2-byte leaf.
func Nested(depth int) Chunk {
	c := Leaf("leaf", []byte{1, 2})
	for range depth {
		c = List("nest", c)
	}
	return c
}

func fourCC(s string) string {
	for len(s) < 4 {
		s += " "
	}
	return s[:4]
}

// FailingReader returns the first n bytes of data and then err.
func FailingReader(data []byte, n int, err error) io.Reader {
	return io.MultiReader(bytes.NewReader(data[:n]), &errReader{err: err})
}

type errReader struct{ err error }

func (r *errReader) Read([]byte) (int, error) { return 0, r.err }
