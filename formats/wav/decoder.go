// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/rifftree"
	"github.com/ik5/rifftree/audio"
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	// PCM 16-bit only
	buf []byte
	eof bool
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) BufSize() int    { return cap(s.buf) / 2 }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	// Read frames of int16 interleaved, convert to float32
	if cap(s.buf) < len(dst)*2 {
		s.buf = make([]byte, len(dst)*2)
	}
	s.buf = s.buf[:len(dst)*2]

	n, err := io.ReadFull(s.r, s.buf)
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		s.eof = true
	default:
		return 0, fmt.Errorf("reading data chunk: %w", err)
	}

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		dst[i] = float32(v) / 32768.0
	}

	if s.eof {
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder decodes WAVE trees. The zero value is ready to use.
type Decoder struct{}

// Decode reads the fmt chunk of t and returns a Source over its data chunk.
// Samples are read lazily from t's source, which must stay open.
func (Decoder) Decode(t *rifftree.Tree) (audio.Source, error) {
	f, err := ReadFormat(t)
	if err != nil {
		return nil, err
	}

	data := t.Root().Find(dataID)
	if data == nil || data.IsContainer() {
		return nil, ErrMissingDataChunk
	}
	payload := t.Payload(data)

	switch f.Tag {
	case FormatPCM:
		if f.BitsPerSample != 16 {
			return nil, ErrOnlyPCM16bitSupported
		}
		return &wavSource{
			r:          payload,
			sampleRate: f.SampleRate,
			channels:   f.Channels,
			buf:        make([]byte, 0, 8192),
		}, nil
	case FormatMPEGLayer3:
		return newMPEGSource(payload)
	default:
		return nil, fmt.Errorf("%w: 0x%04x", ErrUnsupportedWavFormat, f.Tag)
	}
}

// DecodeReader parses r as a WAVE stream and decodes it. Readers that
// cannot seek are read into memory first.
func (d Decoder) DecodeReader(r io.Reader) (audio.Source, error) {
	src, size, err := readerAt(r)
	if err != nil {
		return nil, err
	}

	t, err := rifftree.Parse(src, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	return d.Decode(t)
}

func readerAt(r io.Reader) (io.ReaderAt, int64, error) {
	if ra, ok := r.(interface {
		io.ReaderAt
		io.Seeker
	}); ok {
		size, err := ra.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, 0, fmt.Errorf("sizing wav data: %w", err)
		}
		return ra, size, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("reading wav data: %w", err)
	}
	return bytes.NewReader(data), int64(len(data)), nil
}
