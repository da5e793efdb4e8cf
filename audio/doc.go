// SPDX-License-Identifier: EPL-2.0

// Package audio defines how audio consumers plug into a parsed RIFF tree.
//
// A Decoder turns a *rifftree.Tree into a Source of float32 samples. Decoders
// are registered by the RIFF form type they understand:
//
//	reg := audio.NewRegistry()
//	reg.Register(wav.FormType, wav.Decoder{})
//
//	tree, _ := rifftree.Open("clip.wav")
//	defer tree.Close()
//
//	src, err := reg.Decode(tree)
//	if errors.Is(err, audio.ErrUnsupportedForm) {
//	    // not an audio form
//	}
//
// Sources read payload bytes lazily from the tree's source, so the tree must
// stay open while samples are read.
package audio
