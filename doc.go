// SPDX-License-Identifier: EPL-2.0

// Package rifftree parses RIFF container files (WAV, AVI, WebP, ...) into a
// navigable chunk tree.
//
// The structural work lives in the riff subpackage; this package ties a
// parsed tree to its source so chunk payloads can be read lazily.
//
// # Quick Start
//
//	tree, err := rifftree.Open("clip.wav")
//	if err != nil {
//	    // errors.Is(err, riff.ErrChunkOverflow), riff.ErrTruncatedInput, ...
//	}
//	defer tree.Close()
//
//	fmt.Println(tree.FormType()) // WAVE
//
//	fmtChunk := tree.Find("RIFF", "fmt ")
//	raw, err := tree.ReadPayload(fmtChunk)
//
// # In-Memory Data
//
// Any io.ReaderAt works:
//
//	tree, err := rifftree.Parse(bytes.NewReader(data), int64(len(data)))
//
// # Options
//
// Builder options from the riff package are passed through:
//
//	tree, err := rifftree.Open(path, riff.WithMaxDepth(8))
//
// # Consumers
//
// Payload formats are decoded by consumer packages that receive a *Tree. The
// audio package defines the consumer contract and formats/wav implements it
// for WAVE files:
//
//	reg := audio.NewRegistry()
//	reg.Register(wav.FormType, wav.Decoder{})
//	dec, ok := reg.Get(tree.FormType())
//
// See the individual subpackages for more detailed documentation.
package rifftree
