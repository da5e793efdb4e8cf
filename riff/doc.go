// SPDX-License-Identifier: EPL-2.0

// Package riff decodes the chunk structure of RIFF streams into a tree.
//
// A RIFF stream is a sequence of chunks. Each chunk starts with an 8-byte
// header: a 4-byte tag followed by a little-endian uint32 payload length.
// Chunks tagged RIFF or LIST are containers: their payload begins with a
// 4-byte form type (WAVE, AVI , INFO, ...) followed by nested chunks. Every
// other chunk is a leaf whose payload this package never interprets.
//
// # Building a Tree
//
// Parse walks a whole stream:
//
//	f, _ := os.Open("clip.avi")
//	st, _ := f.Stat()
//	nodes, err := riff.Parse(f, st.Size())
//	if err != nil {
//	    // Handle error
//	}
//
// For a region inside a larger stream, use a Builder directly and pass the
// region size, its absolute offset and the enclosing container tag:
//
//	b := riff.NewBuilder(riff.WithMaxDepth(16))
//	nodes, err := b.BuildTree(r, regionSize, baseOffset, riff.LISTID)
//
// # Payloads
//
// Leaves record a Span into the source instead of copying their payload,
// which keeps memory flat for large media files. Read a payload on demand
// with Node.Payload and the same source the tree was built from:
//
//	data := riff.FindIn(nodes, riff.RIFFID, dataID)
//	pcm := data.Payload(f) // *io.SectionReader
//
// The source must stay open and unmodified while spans are in use.
//
// # Padding
//
// Payloads are padded to an even length with one byte that is not counted
// in the header. The pad is skipped between chunks. A stream whose final
// chunk ends exactly at the unpadded boundary of its region is accepted.
//
// # Error Handling
//
// Every failure is a *ParseError carrying the byte offset of the offending
// chunk and one of these sentinels:
//   - ErrTruncatedInput: the stream ended early
//   - ErrChunkOverflow: a chunk is larger than its enclosing region
//   - ErrRecursionLimitExceeded: containers are nested too deeply
//   - ErrIOFailure: the source returned an error
//
// Example:
//
//	_, err := riff.Parse(r, size)
//	if errors.Is(err, riff.ErrChunkOverflow) {
//	    var pe *riff.ParseError
//	    errors.As(err, &pe)
//	    fmt.Println("bad chunk at", pe.Offset)
//	}
//
// A tag that is not valid UTF-8 is not an error; Header.Name reports it with
// a false second result.
package riff
