// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")

	// ErrMissingFmtChunk indicates the WAVE form has no fmt chunk.
	ErrMissingFmtChunk = errors.New("missing fmt chunk")

	// ErrMissingDataChunk indicates the WAVE form has no data chunk.
	ErrMissingDataChunk = errors.New("missing data chunk")

	// ErrUnsupportedWavFormat indicates a format tag other than PCM or MPEG
	// layer III.
	ErrUnsupportedWavFormat = errors.New("unsupported WAV format tag")
)
