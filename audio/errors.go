// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnsupportedForm indicates no decoder is registered for a form type.
	ErrUnsupportedForm = errors.New("no decoder for RIFF form type")
)
