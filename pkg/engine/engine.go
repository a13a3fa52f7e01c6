// Package engine runs a frame extraction: it opens a video, asks a strategy
// about every decoded frame and writes the kept ones as numbered JPEG files.
package engine

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/user/framecut/pkg/outdir"
	"github.com/user/framecut/pkg/ports"
	"github.com/user/framecut/pkg/strategy"
)

const (
	// DefaultJPEGQuality is the quality used for saved frames.
	DefaultJPEGQuality = 95

	// FallbackFPS replaces reported frame rates outside (0, MaxFPS].
	FallbackFPS = 30.0

	// MaxFPS is the largest reported frame rate taken at face value.
	MaxFPS = 1000.0

	// StatusInterval is the number of processed frames between status lines.
	StatusInterval = 50
)

// Params describes one extraction run.
type Params struct {
	VideoPath string
	// OutputDir receives the frames. When empty it is derived from the video name.
	OutputDir string
	Mode      string
	Options   strategy.Params
	// JPEGQuality overrides DefaultJPEGQuality when in 1..100.
	JPEGQuality int
}

// Deps holds the collaborators of an Engine. Sink and Logger may be nil.
type Deps struct {
	Source  ports.VideoSource
	Encoder ports.ImageEncoder
	FS      ports.FileSystem
	Sink    ports.ProgressSink
	Logger  ports.Logger

	// OutputRoot returns the parent of derived output directories.
	// Defaults to outdir.DefaultRoot.
	OutputRoot func() (string, error)
}

// Outcome tells how a run ended.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeCompleted
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "failed"
	}
}

// Result summarizes a run.
type Result struct {
	OutputDir string
	// Saved is the number of frames accepted by the strategy. Frame file
	// numbers run from 1 to Saved, with gaps where a frame was dropped.
	Saved int
	// Dropped counts accepted frames that could not be encoded or written.
	Dropped   int
	Processed int
	Strategy  string
	Outcome   Outcome
}

// Written returns the number of frame files actually on disk.
func (r Result) Written() int { return r.Saved - r.Dropped }

// Message returns the completion message shown to the user.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeCompleted:
		return fmt.Sprintf("Extraction complete! %d frames saved to '%s'.", r.Saved, r.OutputDir)
	case OutcomeCancelled:
		return "Extraction cancelled by user."
	default:
		return "Extraction failed."
	}
}

// Quality returns JPEGQuality when it is in 1..100, DefaultJPEGQuality otherwise.
func (p Params) Quality() int {
	if p.JPEGQuality >= 1 && p.JPEGQuality <= 100 {
		return p.JPEGQuality
	}
	return DefaultJPEGQuality
}

// EffectiveFPS returns reported when it is a plausible frame rate, FallbackFPS otherwise.
func EffectiveFPS(reported float64) float64 {
	if reported > 0 && reported <= MaxFPS {
		return reported
	}
	return FallbackFPS
}

// FrameFileName returns the file name of the n-th saved frame, counting from 1.
func FrameFileName(n int) string {
	return fmt.Sprintf("frame_%06d.jpg", n)
}

// Engine performs a single extraction run.
type Engine struct {
	params  Params
	source  ports.VideoSource
	encoder ports.ImageEncoder
	fs      ports.FileSystem
	sink    ports.ProgressSink
	logger  ports.Logger
	root    func() (string, error)
	quality int
}

// Validate checks params without touching the video or the file system.
func Validate(params Params) error {
	if params.VideoPath == "" {
		return ErrNoVideo
	}
	return strategy.Validate(params.Mode, params.Options)
}

// New validates params and returns an Engine ready to Run. It touches neither
// the file system nor the video.
func New(params Params, deps Deps) (*Engine, error) {
	if err := Validate(params); err != nil {
		return nil, err
	}
	if deps.Source == nil || deps.Encoder == nil || deps.FS == nil {
		return nil, errors.New("engine: source, encoder and file system are required")
	}

	e := &Engine{
		params:  params,
		source:  deps.Source,
		encoder: deps.Encoder,
		fs:      deps.FS,
		sink:    deps.Sink,
		logger:  deps.Logger,
		root:    deps.OutputRoot,
		quality: params.Quality(),
	}
	if e.sink == nil {
		e.sink = ports.ProgressFuncs{}
	}
	if e.logger == nil {
		e.logger = nopLogger{}
	}
	e.logger = e.logger.WithComponent("engine")
	if e.root == nil {
		e.root = outdir.DefaultRoot
	}
	return e, nil
}

// Run performs the extraction. A cancelled ctx ends the run early with
// OutcomeCancelled and a nil error. Frames written before cancellation stay on disk.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	result := Result{Outcome: OutcomeFailed}

	dir, err := e.prepareOutput()
	result.OutputDir = dir
	if err != nil {
		return result, err
	}

	e.sink.OnStatus(fmt.Sprintf("Opening video: %s", filepath.Base(e.params.VideoPath)))
	stream, err := e.source.Open(ctx, e.params.VideoPath)
	if err != nil {
		if ctx.Err() != nil {
			result.Outcome = OutcomeCancelled
			return result, nil
		}
		return result, &OpenError{Path: e.params.VideoPath, Err: err}
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			e.logger.Debug("Failed to close stream: %s", cerr)
		}
	}()

	props := stream.Properties()
	fps := EffectiveFPS(props.FPS)
	if fps != props.FPS {
		e.logger.Debug("Reported frame rate %.3f replaced with %.1f", props.FPS, fps)
	}

	strat, err := strategy.New(e.params.Mode, fps, props.TotalFrames, e.params.Options)
	if err != nil {
		return result, err
	}
	strat.Reset()
	result.Strategy = strat.Name()
	e.sink.OnStatus(fmt.Sprintf("Strategy: %s", strat.Name()))
	e.logger.Info("Extracting frames from %s with %s", filepath.Base(e.params.VideoPath), strat.Name())

	start, end := 0, props.TotalFrames
	if end <= 0 {
		end = -1
	}
	if ranged, ok := strat.(strategy.Ranged); ok {
		rs, re := ranged.Bounds()
		if re >= 0 && rs >= re {
			start, end = rs, re
		} else if err := e.seek(stream, rs); err != nil {
			e.logger.Warn("Seek to frame %d failed, reading from the start: %s", rs, err)
		} else {
			start, end = rs, re
		}
	}

	loop := frameLoop{
		engine:   e,
		stream:   stream,
		strat:    strat,
		dir:      dir,
		index:    start,
		end:      end,
		reported: -1,
	}
	if end >= 0 {
		loop.total = end - start
		if loop.total < 0 {
			loop.total = 0
		}
	}

	if err := loop.run(ctx); err != nil {
		result.Saved, result.Dropped, result.Processed = loop.saved, loop.dropped, loop.processed
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			result.Outcome = OutcomeCancelled
			e.logger.Info("Extraction cancelled after %d frames", loop.processed)
			return result, nil
		}
		return result, err
	}

	result.Saved, result.Dropped, result.Processed = loop.saved, loop.dropped, loop.processed
	result.Outcome = OutcomeCompleted
	loop.progress(100)
	e.logger.Info("Saved %d frames to %s", result.Written(), dir)
	return result, nil
}

func (e *Engine) prepareOutput() (string, error) {
	dir := e.params.OutputDir
	if dir == "" {
		root, err := e.root()
		if err != nil {
			return "", &IOError{Path: "", Err: fmt.Errorf("resolve output root: %w", err)}
		}
		dir = outdir.Derive(root, e.params.VideoPath)
	}

	if err := e.fs.MkdirAll(dir); err != nil {
		return dir, &IOError{Path: dir, Err: err}
	}
	if err := e.fs.CheckWritable(dir); err != nil {
		return dir, &IOError{Path: dir, Err: err}
	}
	return dir, nil
}

func (e *Engine) seek(stream ports.VideoStream, index int) error {
	if index <= 0 {
		return nil
	}
	return stream.Seek(index)
}

// frameLoop holds the per-run counters of the decode loop.
type frameLoop struct {
	engine *Engine
	stream ports.VideoStream
	strat  strategy.Strategy
	dir    string

	index int // next frame index
	end   int // stop before this index; -1 for end of stream
	total int // frames to process; 0 when unknown

	saved     int
	dropped   int
	processed int
	reported  int // last emitted progress; -1 before the first
}

func (l *frameLoop) run(ctx context.Context) error {
	for l.end < 0 || l.index < l.end {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := l.stream.ReadFrame()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			return &DecodeError{Index: l.index, Err: err}
		}

		if l.strat.ShouldKeep(frame, l.index) {
			l.saved++
			l.save(frame, l.saved)
		}

		l.index++
		l.processed++

		if l.total > 0 {
			l.progress(l.processed * 100 / l.total)
		}
		if l.processed%StatusInterval == 0 {
			l.status()
		}
	}
	return nil
}

// save encodes and writes one frame. Failures are logged and counted, never returned.
func (l *frameLoop) save(frame image.Image, n int) {
	e := l.engine
	path := filepath.Join(l.dir, FrameFileName(n))

	data, err := e.encoder.EncodeImage(frame, ports.FormatJPEG, e.quality)
	if err != nil {
		l.dropped++
		e.logger.Warn("Failed to encode frame %d: %s", l.index, err)
		return
	}
	if err := e.fs.WriteFile(path, data); err != nil {
		l.dropped++
		e.logger.Warn("Failed to write %s: %s", path, err)
	}
}

// progress emits percent, clamped to 100, unless it would go backwards or repeat.
func (l *frameLoop) progress(percent int) {
	if percent > 100 {
		percent = 100
	}
	if percent <= l.reported {
		return
	}
	l.reported = percent
	l.engine.sink.OnProgress(percent)
}

func (l *frameLoop) status() {
	if l.total > 0 {
		l.engine.sink.OnStatus(fmt.Sprintf("Processing... Frame %d/%d", l.processed, l.total))
		return
	}
	l.engine.sink.OnStatus(fmt.Sprintf("Processing... Frame %d", l.processed))
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})         {}
func (nopLogger) Info(string, ...interface{})          {}
func (nopLogger) Warn(string, ...interface{})          {}
func (nopLogger) Error(string, ...interface{})         {}
func (n nopLogger) WithComponent(string) ports.Logger { return n }
