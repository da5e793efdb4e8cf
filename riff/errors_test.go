// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"errors"
	"io"
	"testing"
)

func TestSentinelMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrTruncatedInput, "truncated input"},
		{ErrChunkOverflow, "chunk overflows enclosing region"},
		{ErrRecursionLimitExceeded, "container nesting exceeds limit"},
		{ErrIOFailure, "source read failed"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestSentinels_Wrapping(t *testing.T) {
	t.Parallel()

	// Test that wrapped error can be unwrapped
	wrappedErr := errors.Join(ErrChunkOverflow, errors.New("additional context"))
	if !errors.Is(wrappedErr, ErrChunkOverflow) {
		t.Error("errors.Is() failed for wrapped ErrChunkOverflow")
	}
	if errors.Is(wrappedErr, ErrTruncatedInput) {
		t.Error("errors.Is() should return false for a different sentinel")
	}
}

func TestParseError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "chunk in container",
			err: &ParseError{
				Offset: 12,
				Parent: RIFFID,
				ID:     FourCC{'d', 'a', 't', 'a'},
				Kind:   ErrChunkOverflow,
				Err:    errors.New("needs 16 bytes, region has 12 left"),
			},
			want: "riff: chunk overflows enclosing region at offset 12 (chunk data in RIFF): needs 16 bytes, region has 12 left",
		},
		{
			name: "top level header",
			err:  &ParseError{Offset: 0, Kind: ErrTruncatedInput, Err: io.EOF},
			want: "riff: truncated input at offset 0: EOF",
		},
		{
			name: "header inside list",
			err:  &ParseError{Offset: 40, Parent: LISTID, Kind: ErrTruncatedInput, Err: io.ErrUnexpectedEOF},
			want: "riff: truncated input at offset 40 (in LIST): unexpected EOF",
		},
		{
			name: "no cause",
			err:  &ParseError{Offset: 7, ID: LISTID, Kind: ErrRecursionLimitExceeded},
			want: "riff: container nesting exceeds limit at offset 7 (chunk LIST)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	t.Parallel()

	var err error = &ParseError{Offset: 3, Kind: ErrIOFailure, Err: io.ErrClosedPipe}

	if !errors.Is(err, ErrIOFailure) {
		t.Error("errors.Is(err, ErrIOFailure) = false")
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Error("errors.Is(err, io.ErrClosedPipe) = false")
	}

	var pe *ParseError
	if !errors.As(err, &pe) || pe.Offset != 3 {
		t.Errorf("errors.As() = %v, want offset 3", pe)
	}

	bare := &ParseError{Kind: ErrChunkOverflow}
	if !errors.Is(bare, ErrChunkOverflow) {
		t.Error("errors.Is() failed without an underlying cause")
	}
}
