package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/framecut/pkg/ports"
)

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		level   ports.LogLevel
		wantOut int
		wantErr int
	}{
		{ports.LevelDebug, 2, 2},
		{ports.LevelInfo, 1, 2},
		{ports.LevelWarn, 0, 2},
		{ports.LevelError, 0, 1},
		{ports.LevelQuiet, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var out, errOut bytes.Buffer
			l := NewWriter(tt.level, &out, &errOut)

			l.Debug("debug line")
			l.Info("info line")
			l.Warn("warn line")
			l.Error("error line")

			if got := lines(out.String()); got != tt.wantOut {
				t.Errorf("stdout lines = %d, want %d: %q", got, tt.wantOut, out.String())
			}
			if got := lines(errOut.String()); got != tt.wantErr {
				t.Errorf("stderr lines = %d, want %d: %q", got, tt.wantErr, errOut.String())
			}
		})
	}
}

func TestConsoleLogger_Component(t *testing.T) {
	var out bytes.Buffer
	l := NewWriter(ports.LevelInfo, &out, &out)

	l.WithComponent("engine").Info("Saved %d frames to %s", 3, "/tmp/x")
	l.Info("plain")

	got := out.String()
	if !strings.HasPrefix(got, "[engine] ") {
		t.Errorf("component prefix missing: %q", got)
	}
	if !strings.Contains(got, "3") || !strings.Contains(got, "/tmp/x") {
		t.Errorf("arguments not formatted: %q", got)
	}
	if !strings.Contains(got, "\nplain\n") {
		t.Errorf("parent logger should not carry the component: %q", got)
	}
}

func TestConsoleLogger_NoColorForWriters(t *testing.T) {
	var out bytes.Buffer
	NewWriter(ports.LevelDebug, &out, &out).Warn("careful")

	if strings.Contains(out.String(), "\033[") {
		t.Errorf("unexpected escape codes: %q", out.String())
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoop()
	l.Info("nothing %d", 1)
	if l.WithComponent("x") != ports.Logger(l) {
		t.Error("WithComponent should return the same logger")
	}
}

func lines(s string) int {
	return strings.Count(s, "\n")
}
