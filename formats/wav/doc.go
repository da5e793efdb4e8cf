// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAVE audio from a parsed RIFF chunk tree.
//
// Unlike a fixed 44-byte header reader, the decoder locates the fmt and data
// chunks through the tree, so files with LIST/INFO, fact, JUNK or other
// chunks in any order decode the same way. Chunk IDs come from
// github.com/go-audio/riff.
//
// # Supported Formats
//
//   - PCM 16-bit, any channel count and sample rate
//   - MPEG layer III payloads (format tag 0x0055) via github.com/hajimehoshi/go-mp3
//   - WAVE_FORMAT_EXTENSIBLE wrapping either of the above
//
// # Decoding
//
//	tree, err := rifftree.Open("audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer tree.Close()
//
//	source, err := wav.Decoder{}.Decode(tree)
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// DecodeReader accepts any io.Reader and parses it first.
//
// # Error Handling
//
//   - ErrNotWavFile: the stream is not a RIFF/WAVE form
//   - ErrMissingFmtChunk, ErrMissingDataChunk: a required chunk is absent
//   - ErrUnsupportedWavLayout: the fmt chunk is too short or has no channels
//   - ErrOnlyPCM16bitSupported: PCM with a bit depth other than 16
//   - ErrUnsupportedWavFormat: any other format tag
//
// Structural errors from the chunk tree (riff.ErrChunkOverflow, ...) are
// wrapped and can be tested with errors.Is.
package wav
