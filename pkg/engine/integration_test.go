package engine_test

import (
	"context"
	"errors"
	"image/jpeg"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/user/framecut/pkg/adapters/ffmpegsource"
	"github.com/user/framecut/pkg/adapters/imagecodec"
	"github.com/user/framecut/pkg/adapters/mp4probe"
	"github.com/user/framecut/pkg/adapters/osfilesystem"
	"github.com/user/framecut/pkg/adapters/smartprobe"
	"github.com/user/framecut/pkg/engine"
	"github.com/user/framecut/pkg/mocks"
	"github.com/user/framecut/pkg/strategy"
)

// makeVideo renders 2 seconds of testsrc followed by 1 second of solid red,
// at 10 fps, so there is exactly one hard cut at frame 20.
func makeVideo(t *testing.T) string {
	t.Helper()
	if !ffmpegsource.IsAvailable() {
		t.Skip("ffmpeg/ffprobe not available")
	}
	ffmpeg, _ := ffmpegsource.FindFFmpeg("")

	out := filepath.Join(t.TempDir(), "clip.mp4")
	cmd := exec.Command(ffmpeg,
		"-hide_banner", "-loglevel", "error", "-y",
		"-f", "lavfi", "-i", "testsrc=size=64x48:rate=10:duration=2",
		"-f", "lavfi", "-i", "color=c=red:size=64x48:rate=10:duration=1",
		"-filter_complex", "[0:v][1:v]concat=n=2:v=1[v]",
		"-map", "[v]",
		"-c:v", "mpeg4", "-q:v", "2", "-pix_fmt", "yuv420p",
		out,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("could not create test video: %v\n%s", err, output)
	}
	return out
}

func newEngine(t *testing.T, video, mode string, options strategy.Params) (*engine.Engine, string, *mocks.ProgressSink) {
	t.Helper()
	ffmpeg, _ := ffmpegsource.FindFFmpeg("")
	ffprobe, _ := ffmpegsource.FindFFprobe("", ffmpeg)

	prober := smartprobe.New(mp4probe.New(), ffmpegsource.NewProber(ffprobe, nil), nil)
	out := filepath.Join(t.TempDir(), "frames")
	sink := &mocks.ProgressSink{}

	e, err := engine.New(engine.Params{
		VideoPath: video,
		OutputDir: out,
		Mode:      mode,
		Options:   options,
	}, engine.Deps{
		Source:  ffmpegsource.New(ffmpegsource.Config{FFmpegPath: ffmpeg, Prober: prober}, nil),
		Encoder: imagecodec.New(),
		FS:      osfilesystem.New(),
		Sink:    sink,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return e, out, sink
}

func frameFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "frame_*.jpg"))
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	return matches
}

func TestIntegration_AllFrames(t *testing.T) {
	video := makeVideo(t)
	e, out, sink := newEngine(t, video, strategy.ModeAll, nil)

	result, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Outcome != engine.OutcomeCompleted || result.Saved != 30 {
		t.Fatalf("Outcome=%v Saved=%d, want completed 30", result.Outcome, result.Saved)
	}

	files := frameFiles(t, out)
	if len(files) != 30 {
		t.Fatalf("found %d files, want 30", len(files))
	}

	f, err := os.Open(filepath.Join(out, engine.FrameFileName(1)))
	if err != nil {
		t.Fatalf("failed to open first frame: %v", err)
	}
	defer f.Close()
	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("first frame is not a JPEG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("frame size = %dx%d, want 64x48", b.Dx(), b.Dy())
	}

	progress := sink.Progress()
	if len(progress) == 0 || progress[len(progress)-1] != 100 {
		t.Errorf("progress = %v, want it to end at 100", progress)
	}
}

func TestIntegration_TimeRange(t *testing.T) {
	video := makeVideo(t)
	e, out, _ := newEngine(t, video, strategy.ModeRange, strategy.Params{
		strategy.ParamStartTime: "00:00:01",
		strategy.ParamEndTime:   "00:00:02",
	})

	result, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Saved != 10 || len(frameFiles(t, out)) != 10 {
		t.Errorf("Saved=%d files=%d, want 10", result.Saved, len(frameFiles(t, out)))
	}
}

func TestIntegration_SceneChange(t *testing.T) {
	video := makeVideo(t)
	e, out, _ := newEngine(t, video, strategy.ModeScene, strategy.Params{
		strategy.ParamThreshold: "0.5",
	})

	result, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	// The first frame and the cut to red. testsrc has a moving element, so a
	// few extra frames are tolerated, but far fewer than the full 30.
	if result.Saved < 2 || result.Saved > 10 {
		t.Errorf("Saved = %d, want the cut detected without keeping every frame", result.Saved)
	}
	if len(frameFiles(t, out)) != result.Written() {
		t.Errorf("files = %d, want %d", len(frameFiles(t, out)), result.Written())
	}
}

func TestIntegration_NotAVideo(t *testing.T) {
	if !ffmpegsource.IsAvailable() {
		t.Skip("ffmpeg/ffprobe not available")
	}
	path := filepath.Join(t.TempDir(), "notes.mp4")
	if err := os.WriteFile(path, []byte("plain text, not a video"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	e, _, _ := newEngine(t, path, strategy.ModeAll, nil)
	result, err := e.Run(context.Background())
	var openErr *engine.OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("Run() error = %v, want *OpenError", err)
	}
	if result.Outcome != engine.OutcomeFailed {
		t.Errorf("Outcome = %v, want failed", result.Outcome)
	}
}
