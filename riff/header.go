// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// HeaderSize is the on-disk size of a chunk header: 4 tag bytes and a
// little-endian uint32 length.
const HeaderSize = 8

// FourCC is a 4-byte chunk tag. The bytes are not guaranteed to be text.
type FourCC [4]byte

var (
	// RIFFID tags the outermost container of a RIFF stream.
	RIFFID = FourCC{'R', 'I', 'F', 'F'}
	// LISTID tags a nested container.
	LISTID = FourCC{'L', 'I', 'S', 'T'}
)

// ParseFourCC converts a 4-byte string into a FourCC.
func ParseFourCC(s string) (FourCC, error) {
	var f FourCC
	if len(s) != len(f) {
		return f, fmt.Errorf("fourcc %q: want 4 bytes, got %d", s, len(s))
	}
	copy(f[:], s)
	return f, nil
}

// String returns the tag as text when it is printable, and a quoted
// escaped form otherwise.
func (f FourCC) String() string {
	for _, b := range f {
		if b < 0x20 || b > 0x7e {
			return strconv.QuoteToASCII(string(f[:]))
		}
	}
	return string(f[:])
}

// Header is the fixed prefix of every chunk.
type Header struct {
	ID FourCC
	// Length is the payload size as written in the stream. It excludes the
	// header itself and any trailing pad byte, and is only trusted after the
	// builder has bounds-checked it.
	Length uint32
}

// ReadHeader decodes a chunk header from r, consuming exactly HeaderSize
// bytes on success.
//
// A stream holding fewer than HeaderSize bytes yields ErrTruncatedInput; any
// other read error is wrapped with ErrIOFailure.
func ReadHeader(r io.Reader) (Header, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return Header{}, fmt.Errorf("%w: chunk header: %w", readFailure(err), err)
	}
	return h, nil
}

func decodeHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, err
	}

	var h Header
	copy(h.ID[:], buf[:4])
	h.Length = binary.LittleEndian.Uint32(buf[4:])
	return h, nil
}

// readFailure maps a source error to ErrTruncatedInput when the stream
// simply ran out, and to ErrIOFailure otherwise.
func readFailure(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedInput
	}
	return ErrIOFailure
}

// IsContainer reports whether the payload is a nested chunk sequence.
// Only RIFF and LIST qualify; derived formats with other container tags
// must dispatch on their own.
func (h Header) IsContainer() bool {
	return h.ID == RIFFID || h.ID == LISTID
}

// Name returns the tag as a string, or false when the tag bytes are not
// valid UTF-8.
func (h Header) Name() (string, bool) {
	if !utf8.Valid(h.ID[:]) {
		return "", false
	}
	return string(h.ID[:]), true
}

// Size returns the header's own on-disk size, not the payload length.
func (h Header) Size() int { return HeaderSize }

// PaddedLength returns the payload length rounded up to an even count.
func (h Header) PaddedLength() int64 {
	return int64(h.Length) + int64(h.Length&1)
}

func (h Header) String() string {
	name, ok := h.Name()
	if !ok {
		name = "Unknown"
	}
	return fmt.Sprintf("%s(%d)", name, h.Length)
}
