// SPDX-License-Identifier: EPL-2.0

package rifftree_test

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ik5/rifftree"
	"github.com/ik5/rifftree/internal/rifftest"
	"github.com/ik5/rifftree/riff"
)

// Example_basicUsage parses an in-memory WAVE stream and reads its format
// chunk.
func Example_basicUsage() {
	data := rifftest.WAV16(22050, 2, []int16{1, -1, 2, -2})

	tree, err := rifftree.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		return
	}

	fmt.Printf("form type: %s\n", tree.FormType())

	raw, err := tree.ReadPayload(tree.Find("RIFF", "fmt "))
	if err != nil {
		fmt.Printf("read error: %v\n", err)
		return
	}
	fmt.Printf("channels: %d\n", binary.LittleEndian.Uint16(raw[2:4]))
	fmt.Printf("sample rate: %d\n", binary.LittleEndian.Uint32(raw[4:8]))
	// Output:
	// form type: WAVE
	// channels: 2
	// sample rate: 22050
}

// Example_walk lists every chunk of an AVI-like stream.
func Example_walk() {
	data := rifftest.RIFF("AVI ",
		rifftest.List("hdrl", rifftest.Leaf("avih", make([]byte, 56))),
		rifftest.List("movi", rifftest.Leaf("00dc", []byte{1, 2, 3})),
	).Bytes()

	tree, err := rifftree.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		return
	}

	count := 0
	tree.Walk(func(_ *riff.Node, _ int) bool {
		count++
		return true
	})
	fmt.Printf("%d chunks\n", count)
	// Output: 5 chunks
}
