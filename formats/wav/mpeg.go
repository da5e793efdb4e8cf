// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/rifftree/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// mpegSource decodes a data chunk holding MPEG layer III frames
// (WAVE_FORMAT_MPEGLAYER3).
type mpegSource struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func newMPEGSource(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mpeg data chunk: %w", err)
	}
	return &mpegSource{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}

func (s *mpegSource) SampleRate() int { return s.sampleRate }

// Channels is always 2: go-mp3 emits interleaved stereo.
func (s *mpegSource) Channels() int { return 2 }
func (s *mpegSource) Close() error  { return nil }
func (s *mpegSource) BufSize() int  { return cap(s.buf) / 2 }

func (s *mpegSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	samples := n / 2
	for i := range samples {
		val := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float32(val) / 32768.0
	}
	return samples, err
}
