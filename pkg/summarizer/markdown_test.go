package summarizer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/framecut/pkg/mocks"
)

func testSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC),
		Video: VideoInfo{
			Path:        "/videos/holiday.mp4",
			Width:       1280,
			Height:      720,
			FPS:         29.97,
			TotalFrames: 3596,
			DurationSec: 120,
			FileSize:    15 * 1024 * 1024,
			Codec:       "h264",
		},
		Strategy: StrategyInfo{
			Mode: "range",
			Name: "Time Range",
			Params: map[string]string{
				"start_time": "00:00:10",
				"end_time":   "00:00:20",
			},
		},
		Settings: Settings{OutputDir: "/home/user/Desktop/holiday_frames", JPEGQuality: 95},
		Result: ResultInfo{
			Outcome:   "completed",
			Processed: 300,
			Saved:     300,
			Elapsed:   1500 * time.Millisecond,
		},
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	result := NewMarkdownFormatter().Format(testSummary())

	checks := []string{
		"# Extraction Summary",
		"holiday.mp4",
		"1280 × 720 px",
		"00:02:00",
		"29.97 fps",
		"3596",
		"h264",
		"15 MB",
		"Time Range",
		"| `end_time` | 00:00:20 |",
		"| `start_time` | 00:00:10 |",
		"/home/user/Desktop/holiday_frames",
		"| JPEG Quality | 95 |",
		"| Outcome | completed |",
		"| Frames Saved | 300 |",
		"1.5s",
		"2026-03-02T09:15:00Z",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}

	// Params are listed in key order.
	if strings.Index(result, "end_time") > strings.Index(result, "start_time") {
		t.Error("parameters should be sorted by key")
	}
	if strings.Contains(result, "Frames Dropped") {
		t.Error("dropped row should be omitted when nothing was dropped")
	}
}

func TestMarkdownFormatter_UnknownLength(t *testing.T) {
	s := testSummary()
	s.Video.TotalFrames = 0
	s.Result.Dropped = 2
	s.Result.Outcome = "cancelled"

	result := NewMarkdownFormatter().Format(s)

	if !strings.Contains(result, "| Frames | Unknown |") {
		t.Error("expected unknown frame count")
	}
	if !strings.Contains(result, "| Frames Dropped | 2 |") {
		t.Error("expected dropped frame count")
	}
	if !strings.Contains(result, "| Outcome | cancelled |") {
		t.Error("expected cancelled outcome")
	}
}

func TestMarkdownFormatter_EscapesPipes(t *testing.T) {
	s := testSummary()
	s.Result.Error = "open a|b: no such file"

	result := NewMarkdownFormatter().Format(s)

	if !strings.Contains(result, `open a\|b`) {
		t.Errorf("expected escaped pipe in %q", result)
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Extraction Summary": "抽出サマリー",
			"completed":          "完了",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	result := NewMarkdownFormatter(WithTranslator(translator)).Format(testSummary())

	if !strings.Contains(result, "抽出サマリー") {
		t.Error("expected translated title")
	}
	if !strings.Contains(result, "完了") {
		t.Error("expected translated outcome")
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	result := NewMarkdownFormatter(WithVersion("v1.2.0")).Format(testSummary())

	if !strings.Contains(result, "v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestWriter_Write(t *testing.T) {
	tests := []struct {
		name      string
		dirExists bool
		wantMkdir []string
	}{
		{"creates missing directory", false, []string{"/reports"}},
		{"reuses existing directory", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewFileSystem()
			fs.ExistsFunc = func(path string) (bool, error) { return tt.dirExists, nil }

			w := NewWriter(FormatFunc(func(s *Summary) string { return "saved " + s.Result.Outcome }), fs)
			if err := w.Write("/reports/summary.md", testSummary()); err != nil {
				t.Fatalf("Write() error: %v", err)
			}

			data, ok := fs.GetFile("/reports/summary.md")
			if !ok {
				t.Fatal("summary not written")
			}
			if string(data) != "saved completed" {
				t.Errorf("content = %q", data)
			}
			if len(fs.MkdirAllCalls) != len(tt.wantMkdir) {
				t.Fatalf("MkdirAll calls = %v, want %v", fs.MkdirAllCalls, tt.wantMkdir)
			}
			for i := range tt.wantMkdir {
				if fs.MkdirAllCalls[i] != tt.wantMkdir[i] {
					t.Errorf("MkdirAll[%d] = %q, want %q", i, fs.MkdirAllCalls[i], tt.wantMkdir[i])
				}
			}
		})
	}
}

func TestWriter_WriteInWorkingDir(t *testing.T) {
	fs := mocks.NewFileSystem()

	if err := NewWriter(NewMarkdownFormatter(), fs).Write("summary.md", testSummary()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if len(fs.MkdirAllCalls) != 0 {
		t.Errorf("MkdirAll calls = %v, want none", fs.MkdirAllCalls)
	}
	if _, ok := fs.GetFile("summary.md"); !ok {
		t.Error("summary not written")
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error { return errors.New("disk full") }

	err := NewWriter(NewMarkdownFormatter(), fs).Write("/reports/summary.md", testSummary())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Write() error = %v, want disk full", err)
	}
}
