// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sync"

	"github.com/ik5/rifftree"
	"github.com/ik5/rifftree/riff"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	BufSize() int
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from a parsed RIFF tree. Implementations read
// payloads through the tree and must not outlive its source.
type Decoder interface {
	Decode(t *rifftree.Tree) (Source, error)
}

// Registry for decoders by RIFF form type (e.g., WAVE).
type Registry struct {
	codecs map[riff.FourCC]Decoder
	mtx    *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[riff.FourCC]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(form riff.FourCC, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.codecs[form] = d
}

func (r *Registry) Get(form riff.FourCC) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	d, ok := r.codecs[form]
	return d, ok
}

// Decode picks the decoder registered for the tree's form type.
func (r *Registry) Decode(t *rifftree.Tree) (Source, error) {
	form := t.FormType()
	d, ok := r.Get(form)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForm, form)
	}
	return d.Decode(t)
}
