package barsink

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSink_RendersProgressAndStatus(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)

	s.OnStatus("Opening video: clip.mp4")
	s.OnProgress(50)

	out := buf.String()
	if !strings.Contains(out, "50%") {
		t.Errorf("output %q does not show 50%%", out)
	}
	if !strings.Contains(out, "Opening video: clip.mp4") {
		t.Errorf("output %q does not show the status", out)
	}

	s.OnProgress(100)
	s.Finish()
	if !strings.Contains(buf.String(), "100%") {
		t.Errorf("output %q does not show 100%%", buf.String())
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
