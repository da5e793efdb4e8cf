// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	goriff "github.com/go-audio/riff"

	"github.com/ik5/rifftree"
	"github.com/ik5/rifftree/riff"
)

// FormType is the RIFF form type of WAVE files.
var FormType = riff.FourCC(goriff.WavFormatID)

var (
	fmtID  = riff.FourCC(goriff.FmtID)
	dataID = riff.FourCC(goriff.DataFormatID)
)

// Format tags found in the fmt chunk.
const (
	FormatPCM        uint16 = 0x0001
	FormatMPEGLayer3 uint16 = 0x0055
	FormatExtensible uint16 = 0xFFFE
)

const (
	fmtMinSize        = 16
	fmtExtensibleSize = 40
)

// Format is the content of a WAVE fmt chunk.
type Format struct {
	// Tag is the format tag. For WAVE_FORMAT_EXTENSIBLE files it holds the
	// tag taken from the sub-format GUID.
	Tag           uint16
	Channels      int
	SampleRate    int
	ByteRate      int
	BlockAlign    int
	BitsPerSample int
}

// Audio converts f to the go-audio format description.
func (f Format) Audio() *goaudio.Format {
	return &goaudio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate}
}

// ReadFormat locates and decodes the fmt chunk of a WAVE tree. Only the
// first 40 bytes of the chunk are read, whatever its declared length.
func ReadFormat(t *rifftree.Tree) (Format, error) {
	root := t.Root()
	if root == nil || root.FormType != FormType {
		return Format{}, ErrNotWavFile
	}

	chunk := root.Find(fmtID)
	if chunk == nil || chunk.IsContainer() {
		return Format{}, ErrMissingFmtChunk
	}
	if chunk.Span.Length < fmtMinSize {
		return Format{}, fmt.Errorf("%w: fmt chunk is %d bytes", ErrUnsupportedWavLayout, chunk.Span.Length)
	}

	raw := make([]byte, min(chunk.Span.Length, fmtExtensibleSize))
	if _, err := io.ReadFull(t.Payload(chunk), raw); err != nil {
		return Format{}, fmt.Errorf("reading fmt chunk: %w", err)
	}

	f := Format{
		Tag:           binary.LittleEndian.Uint16(raw[0:2]),
		Channels:      int(binary.LittleEndian.Uint16(raw[2:4])),
		SampleRate:    int(binary.LittleEndian.Uint32(raw[4:8])),
		ByteRate:      int(binary.LittleEndian.Uint32(raw[8:12])),
		BlockAlign:    int(binary.LittleEndian.Uint16(raw[12:14])),
		BitsPerSample: int(binary.LittleEndian.Uint16(raw[14:16])),
	}
	if f.Tag == FormatExtensible && len(raw) == fmtExtensibleSize {
		// The sub-format GUID starts with the plain format tag.
		f.Tag = binary.LittleEndian.Uint16(raw[24:26])
	}
	if f.Channels == 0 {
		return Format{}, fmt.Errorf("%w: zero channels", ErrUnsupportedWavLayout)
	}
	return f, nil
}
