// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/ik5/rifftree"
	"github.com/ik5/rifftree/audio"
	"github.com/ik5/rifftree/riff"
	"github.com/ik5/rifftree/utils"
)

type fileReport struct {
	Path   string         `yaml:"path"`
	Size   int64          `yaml:"size"`
	Chunks []*chunkReport `yaml:"chunks"`
	Audio  *audioReport   `yaml:"audio,omitempty"`
}

type chunkReport struct {
	ID       string         `yaml:"id"`
	FormType string         `yaml:"form_type,omitempty"`
	Offset   int64          `yaml:"offset"`
	Length   uint32         `yaml:"length"`
	Digest   string         `yaml:"blake3,omitempty"`
	Children []*chunkReport `yaml:"children,omitempty"`
}

type audioReport struct {
	SampleRate int   `yaml:"sample_rate"`
	Channels   int   `yaml:"channels"`
	Frames     int64 `yaml:"frames"`
	Peak       int16 `yaml:"peak"`
}

func buildReport(tree *rifftree.Tree, path string, digest bool) (*fileReport, error) {
	report := &fileReport{Path: path, Size: tree.Size()}
	for _, n := range tree.Chunks {
		c, err := chunkOf(tree, n, digest)
		if err != nil {
			return nil, err
		}
		report.Chunks = append(report.Chunks, c)
	}
	return report, nil
}

func chunkOf(tree *rifftree.Tree, n *riff.Node, digest bool) (*chunkReport, error) {
	c := &chunkReport{
		ID:     n.Header.ID.String(),
		Offset: n.Offset,
		Length: n.Header.Length,
	}

	if !n.IsContainer() {
		if digest {
			sum, err := payloadDigest(tree, n)
			if err != nil {
				return nil, err
			}
			c.Digest = sum
		}
		return c, nil
	}

	c.FormType = n.FormType.String()
	for _, child := range n.Children {
		cc, err := chunkOf(tree, child, digest)
		if err != nil {
			return nil, err
		}
		c.Children = append(c.Children, cc)
	}
	return c, nil
}

func payloadDigest(tree *rifftree.Tree, n *riff.Node) (string, error) {
	h := blake3.New()
	if _, err := io.Copy(h, tree.Payload(n)); err != nil {
		return "", fmt.Errorf("hashing %s at offset %d: %w", n.Header.ID, n.Offset, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func decodeAudio(reg *audio.Registry, tree *rifftree.Tree) (*audioReport, error) {
	src, err := reg.Decode(tree)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	report := &audioReport{SampleRate: src.SampleRate(), Channels: src.Channels()}

	buf := make([]float32, 4096*src.Channels())
	var samples int64
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples += int64(n)
			report.Peak = max(report.Peak, utils.PeakInt16(buf[:n]))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	report.Frames = samples / int64(src.Channels())
	return report, nil
}

var writers = map[string]func(io.Writer, []*fileReport) error{
	"text": writeText,
	"yaml": writeYAML,
}

func writeText(w io.Writer, reports []*fileReport) error {
	var b strings.Builder
	for _, r := range reports {
		fmt.Fprintf(&b, "%s (%d bytes)\n", r.Path, r.Size)
		for _, c := range r.Chunks {
			writeChunk(&b, c, 1)
		}
		if a := r.Audio; a != nil {
			fmt.Fprintf(&b, "  audio: %d Hz, %d ch, %d frames, peak %d\n",
				a.SampleRate, a.Channels, a.Frames, a.Peak)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeChunk(b *strings.Builder, c *chunkReport, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if c.FormType != "" {
		fmt.Fprintf(b, "%s %q @%d len=%d\n", c.ID, c.FormType, c.Offset, c.Length)
	} else {
		fmt.Fprintf(b, "%s @%d len=%d", c.ID, c.Offset, c.Length)
		if c.Digest != "" {
			fmt.Fprintf(b, " blake3=%s", c.Digest)
		}
		b.WriteByte('\n')
	}
	for _, child := range c.Children {
		writeChunk(b, child, depth+1)
	}
}

func writeYAML(w io.Writer, reports []*fileReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}
