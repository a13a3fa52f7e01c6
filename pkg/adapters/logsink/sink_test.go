package logsink

import (
	"fmt"
	"testing"

	"github.com/user/framecut/pkg/ports"
)

type recordingLogger struct {
	lines *[]string
}

func (l recordingLogger) Debug(msg string, args ...interface{}) {}
func (l recordingLogger) Info(msg string, args ...interface{}) {
	*l.lines = append(*l.lines, fmt.Sprintf(msg, args...))
}
func (l recordingLogger) Warn(msg string, args ...interface{})  {}
func (l recordingLogger) Error(msg string, args ...interface{}) {}
func (l recordingLogger) WithComponent(string) ports.Logger     { return l }

func TestSink_ProgressSteps(t *testing.T) {
	var lines []string
	s := New(recordingLogger{lines: &lines}, 25)

	for p := 0; p <= 100; p++ {
		s.OnProgress(p)
	}

	want := []string{"Progress: 0%", "Progress: 25%", "Progress: 50%", "Progress: 75%", "Progress: 100%"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSink_FinalProgressAlwaysLogged(t *testing.T) {
	var lines []string
	s := New(recordingLogger{lines: &lines}, 0)

	s.OnProgress(95)
	s.OnProgress(100)
	s.OnProgress(100)

	if len(lines) != 2 || lines[1] != "Progress: 100%" {
		t.Errorf("lines = %q", lines)
	}
}

func TestSink_Status(t *testing.T) {
	var lines []string
	s := New(recordingLogger{lines: &lines}, 10)

	s.OnStatus("Processing... Frame 50/120")
	if len(lines) != 1 || lines[0] != "Processing... Frame 50/120" {
		t.Errorf("lines = %q", lines)
	}
}
