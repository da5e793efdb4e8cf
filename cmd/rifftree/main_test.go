// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/ik5/rifftree/internal/rifftest"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func sampleWAV() []byte {
	return rifftest.WAV16(8000, 1, []int16{1000, -16384, 200, 300})
}

func TestRun_Text(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "clip.wav", sampleWAV())

	stdout, _, err := runCmd(t, path)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := path + " (52 bytes)\n" +
		"  RIFF \"WAVE\" @0 len=44\n" +
		"    fmt  @12 len=16\n" +
		"    data @36 len=8\n"
	if stdout != want {
		t.Errorf("output =\n%s\nwant\n%s", stdout, want)
	}
}

func TestRun_Decode(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "clip.wav", sampleWAV())

	stdout, _, err := runCmd(t, "--decode", path)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasSuffix(stdout, "  audio: 8000 Hz, 1 ch, 4 frames, peak 16383\n") {
		t.Errorf("output = %q, want audio summary", stdout)
	}
}

func TestRun_DecodeSkipsOtherForms(t *testing.T) {
	t.Parallel()

	data := rifftest.RIFF("AVI ", rifftest.List("hdrl", rifftest.Leaf("avih", make([]byte, 8)))).Bytes()
	path := writeFile(t, "clip.avi", data)

	stdout, _, err := runCmd(t, "--decode", "--log-level", "debug", path)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.Contains(stdout, "audio:") {
		t.Errorf("output = %q, want no audio summary for AVI", stdout)
	}
	if !strings.Contains(stdout, `LIST "hdrl" @12 len=20`) {
		t.Errorf("output = %q, want hdrl list", stdout)
	}
}

func TestRun_YAMLDigest(t *testing.T) {
	t.Parallel()

	data := sampleWAV()
	path := writeFile(t, "clip.wav", data)

	stdout, _, err := runCmd(t, "--format", "yaml", "--digest", path)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var reports []fileReport
	if err := yaml.Unmarshal([]byte(stdout), &reports); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v\n%s", err, stdout)
	}
	if len(reports) != 1 || len(reports[0].Chunks) != 1 {
		t.Fatalf("reports = %+v, want one file with one chunk", reports)
	}

	root := reports[0].Chunks[0]
	if root.ID != "RIFF" || root.FormType != "WAVE" || root.Digest != "" {
		t.Errorf("root = %+v, want RIFF WAVE without digest", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}

	sum := blake3.Sum256(data[44:52])
	if got, want := root.Children[1].Digest, hex.EncodeToString(sum[:]); got != want {
		t.Errorf("data digest = %s, want %s", got, want)
	}
}

func TestRun_ParseFailure(t *testing.T) {
	t.Parallel()

	good := writeFile(t, "good.wav", sampleWAV())
	bad := writeFile(t, "bad.wav", sampleWAV()[:40])

	stdout, stderr, err := runCmd(t, bad, good)
	if !errors.Is(err, errParseFailed) {
		t.Fatalf("run() error = %v, want errParseFailed", err)
	}
	if !strings.Contains(stderr, "offset=0") || !strings.Contains(stderr, "chunk overflows enclosing region") {
		t.Errorf("stderr = %q, want offset and overflow", stderr)
	}
	if strings.Contains(stdout, bad) {
		t.Errorf("stdout = %q, want no tree for the bad file", stdout)
	}
	if !strings.Contains(stdout, good) {
		t.Errorf("stdout = %q, want tree for the good file", stdout)
	}
}

func TestRun_MaxDepth(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "deep.riff", rifftest.Nested(3).Bytes())

	if _, _, err := runCmd(t, "--max-depth", "3", path); err != nil {
		t.Errorf("run() with depth 3 error = %v, want nil", err)
	}

	_, stderr, err := runCmd(t, "--max-depth", "2", path)
	if !errors.Is(err, errParseFailed) {
		t.Fatalf("run() error = %v, want errParseFailed", err)
	}
	if !strings.Contains(stderr, "container nesting exceeds limit") {
		t.Errorf("stderr = %q, want recursion limit", stderr)
	}
}

func TestRun_InvalidInvocation(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "clip.wav", sampleWAV())

	tests := []struct {
		name string
		args []string
	}{
		{name: "no files", args: nil},
		{name: "bad format", args: []string{"--format", "json", path}},
		{name: "bad depth", args: []string{"--max-depth", "0", path}},
		{name: "bad log level", args: []string{"--log-level", "loud", path}},
		{name: "unknown flag", args: []string{"--frobnicate", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := runCmd(t, tt.args...); err == nil {
				t.Error("run() error = nil, want error")
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	_, stderr, err := runCmd(t, "--help")
	if err != nil {
		t.Fatalf("run() error = %v, want nil", err)
	}
	if !strings.Contains(stderr, "Usage: rifftree") {
		t.Errorf("stderr = %q, want usage", stderr)
	}
}
