// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput indicates the stream ended before a header or a
	// declared region was complete.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrChunkOverflow indicates a chunk claims more bytes than its enclosing
	// region provides.
	ErrChunkOverflow = errors.New("chunk overflows enclosing region")

	// ErrRecursionLimitExceeded indicates containers nested deeper than the
	// builder's configured bound.
	ErrRecursionLimitExceeded = errors.New("container nesting exceeds limit")

	// ErrIOFailure wraps errors returned by the underlying source.
	ErrIOFailure = errors.New("source read failed")
)

// ParseError reports the first structural violation found while building a
// chunk tree.
type ParseError struct {
	// Offset is the absolute stream offset of the chunk being processed.
	Offset int64
	// Parent is the tag of the enclosing container, zero at the root.
	Parent FourCC
	// ID is the tag of the offending chunk when its header was decoded.
	ID FourCC
	// Kind is one of the package sentinels.
	Kind error
	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("riff: %v at offset %d", e.Kind, e.Offset)
	if e.ID != (FourCC{}) {
		msg += fmt.Sprintf(" (chunk %s", e.ID)
		if e.Parent != (FourCC{}) {
			msg += fmt.Sprintf(" in %s", e.Parent)
		}
		msg += ")"
	} else if e.Parent != (FourCC{}) {
		msg += fmt.Sprintf(" (in %s)", e.Parent)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
