package main

import (
	"bytes"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/user/framecut/pkg/adapters/smartprobe"
	"github.com/user/framecut/pkg/config"
	"github.com/user/framecut/pkg/engine"
	"github.com/user/framecut/pkg/ports"
	"github.com/user/framecut/pkg/strategy"
)

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	props := ports.StreamProperties{
		Width:       1920,
		Height:      1080,
		FPS:         25,
		TotalFrames: 1500,
		Codec:       "h264",
	}
	printInfo(&buf, "/videos/trip.mp4", props, 3*1024*1024, smartprobe.BackendContainer)

	out := buf.String()
	for _, want := range []string{"trip.mp4", "1920 × 1080 px", "00:01:00", "25.00 fps", "1500", "h264", "3 MB", "container"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintInfo_ImplausibleFPS(t *testing.T) {
	var buf bytes.Buffer
	printInfo(&buf, "odd.mkv", ports.StreamProperties{Width: 64, Height: 48, FPS: 90000}, 0, smartprobe.BackendGeneric)

	if !strings.Contains(buf.String(), "30.00 fps") {
		t.Errorf("expected fallback frame rate:\n%s", buf.String())
	}
}

func TestCompletionMessage(t *testing.T) {
	r := engine.Result{Outcome: engine.OutcomeCompleted, Saved: 12, OutputDir: "/out"}
	if got := completionMessage(r); !strings.Contains(got, "12") || !strings.Contains(got, "/out") {
		t.Errorf("completionMessage() = %q", got)
	}
}

func TestApplyExtractFlags(t *testing.T) {
	app := newApp()
	set := flag.NewFlagSet("extract", flag.ContinueOnError)
	for _, f := range extractCommand().Flags {
		if err := f.Apply(set); err != nil {
			t.Fatalf("Apply() error: %v", err)
		}
	}
	if err := set.Parse([]string{"--mode", "scene", "--threshold", "0.4", "--quality", "70", "clip.mp4"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	c := cli.NewContext(app, set, nil)

	cfg := config.Defaults()
	cfg.OutputDir = "/from/config"
	applyExtractFlags(c, &cfg)

	if cfg.Mode != strategy.ModeScene || cfg.Threshold != 0.4 || cfg.JPEGQuality != 70 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.OutputDir != "/from/config" {
		t.Errorf("OutputDir = %q, unset flag should keep the config value", cfg.OutputDir)
	}
	if c.Args().First() != "clip.mp4" {
		t.Errorf("video argument = %q", c.Args().First())
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	if err := app.Run([]string{"framecut", "version"}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(buf.String(), version) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestExtractCommand_MissingVideo(t *testing.T) {
	app := newApp()
	err := app.Run([]string{"framecut", "extract"})

	coder, ok := err.(cli.ExitCoder)
	if !ok || coder.ExitCode() != 2 {
		t.Fatalf("err = %v, want exit code 2", err)
	}
}

func TestExtractCommand_InvalidOptionsBeforeToolLookup(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ffmpeg")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown mode", []string{"--mode", "bogus"}, `unknown mode "bogus"`},
		{"malformed start", []string{"--mode", "range", "--start", "90"}, "90"},
		{"threshold out of range", []string{"--mode", "scene", "--threshold", "3"}, "threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"framecut", "extract", "--ffmpeg", missing}, tt.args...)
			err := newApp().Run(append(args, "clip.mp4"))

			coder, ok := err.(cli.ExitCoder)
			if !ok || coder.ExitCode() != 2 {
				t.Fatalf("err = %v, want exit code 2", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want it to mention %q", err, tt.want)
			}
			if strings.Contains(strings.ToLower(err.Error()), "ffmpeg") {
				t.Errorf("err = %q, options must be rejected before looking for ffmpeg", err)
			}
		})
	}
}
