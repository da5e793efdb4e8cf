// SPDX-License-Identifier: EPL-2.0

package riff

import "io"

// cursor is the builder's view of the source: a forward-only reader that
// can skip payloads cheaply when the source supports seeking.
type cursor struct {
	r io.Reader
	// seeker is cleared after the first failed seek, e.g. on a pipe.
	seeker io.Seeker
}

func newCursor(r io.Reader) *cursor {
	c := &cursor{r: r}
	if s, ok := r.(io.Seeker); ok {
		c.seeker = s
	}
	return c
}

// skip advances n bytes. Running past the end of the source is reported as
// io.ErrUnexpectedEOF whether the source was sought or read.
func (c *cursor) skip(n int64) error {
	if n == 0 {
		return nil
	}

	if c.seeker != nil {
		cur, err := c.seeker.Seek(0, io.SeekCurrent)
		if err == nil {
			return c.seekForward(cur, n)
		}
		c.seeker = nil
	}

	copied, err := io.CopyN(io.Discard, c.r, n)
	if err == io.EOF && copied < n {
		return io.ErrUnexpectedEOF
	}
	return err
}

// seekForward lands on the last skipped byte and reads it, so a payload
// that runs past the real end of the source is caught even when the seeker
// does not know its own size.
func (c *cursor) seekForward(cur, n int64) error {
	if _, err := c.seeker.Seek(cur+n-1, io.SeekStart); err != nil {
		return err
	}
	var last [1]byte
	if _, err := io.ReadFull(c.r, last[:]); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}
