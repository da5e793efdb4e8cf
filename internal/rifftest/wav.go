// SPDX-License-Identifier: EPL-2.0

package rifftest

import "encoding/binary"

// Format tags used in WAVE fmt chunks.
const (
	FormatPCM  = 0x0001
	FormatMPEG = 0x0055
)

// FmtChunk encodes a 16-byte WAVE fmt chunk.
func FmtChunk(formatTag, channels, sampleRate, bitsPerSample int) Chunk {
	blockAlign := channels * bitsPerSample / 8
	data := make([]byte, 16)
	binary.LittleEndian.PutUint16(data[0:2], uint16(formatTag))
	binary.LittleEndian.PutUint16(data[2:4], uint16(channels))
	binary.LittleEndian.PutUint32(data[4:8], uint32(sampleRate))
	binary.LittleEndian.PutUint32(data[8:12], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(data[12:14], uint16(blockAlign))
	binary.LittleEndian.PutUint16(data[14:16], uint16(bitsPerSample))
	return Leaf("fmt ", data)
}

// PCM16 encodes samples as a little-endian data chunk.
func PCM16(samples []int16) Chunk {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return Leaf("data", data)
}

// WAV16 returns a complete 16-bit PCM WAVE stream. Extra chunks are placed
// between the fmt and data chunks.
func WAV16(sampleRate, channels int, samples []int16, extra ...Chunk) []byte {
	children := []Chunk{FmtChunk(FormatPCM, channels, sampleRate, 16)}
	children = append(children, extra...)
	children = append(children, PCM16(samples))
	return RIFF("WAVE", children...).Bytes()
}
