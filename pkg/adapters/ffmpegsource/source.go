// Package ffmpegsource decodes video through an ffmpeg child process that
// streams raw RGB frames over a pipe. Stream properties come from ffprobe
// unless another ports.Prober is supplied.
package ffmpegsource

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/user/framecut/pkg/adapters/logger"
	"github.com/user/framecut/pkg/ports"
)

// Config selects the executables and the property source.
type Config struct {
	// FFmpegPath and FFprobePath override executable discovery.
	FFmpegPath  string
	FFprobePath string

	// Prober replaces ffprobe for reading stream properties.
	Prober ports.Prober
}

// Source implements ports.VideoSource.
type Source struct {
	config Config
	logger ports.Logger
}

// New creates a Source. Executables are located on the first Open.
func New(config Config, log ports.Logger) *Source {
	if log == nil {
		log = logger.NewNoop()
	}
	return &Source{config: config, logger: log.WithComponent("ffmpeg")}
}

// Open probes path and starts decoding from the first frame.
func (s *Source) Open(ctx context.Context, path string) (ports.VideoStream, error) {
	ffmpegPath, err := FindFFmpeg(s.config.FFmpegPath)
	if err != nil {
		return nil, err
	}

	prober := s.config.Prober
	if prober == nil {
		ffprobePath, err := FindFFprobe(s.config.FFprobePath, ffmpegPath)
		if err != nil {
			return nil, err
		}
		prober = NewProber(ffprobePath, s.logger)
	}

	props, err := prober.Probe(ctx, path)
	if err != nil {
		return nil, err
	}
	if props.Width <= 0 || props.Height <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoVideoStream, path)
	}
	s.logger.Debug("Probed %s: %dx%d, %.3f fps, %d frames, codec %s",
		path, props.Width, props.Height, props.FPS, props.TotalFrames, props.Codec)

	st := &stream{
		ctx:        ctx,
		ffmpegPath: ffmpegPath,
		path:       path,
		props:      props,
		frameSize:  props.Width * props.Height * 3,
		logger:     s.logger,
	}
	if err := st.start(0); err != nil {
		return nil, err
	}
	return st, nil
}

// seekFPS is the rate used to turn frame indices into timestamps when the
// container reports an unusable one.
const seekFPS = 30.0

type stream struct {
	ctx        context.Context
	ffmpegPath string
	path       string
	props      ports.StreamProperties
	frameSize  int
	logger     ports.Logger

	mu     sync.Mutex
	cmd    *exec.Cmd
	stdout io.ReadCloser
	reader *bufio.Reader
	stderr bytes.Buffer
	buf    []byte
	closed bool

	// startErr holds the last failed restart; ReadFrame reports it instead
	// of io.EOF while no decoder is running.
	startErr error
}

func (s *stream) Properties() ports.StreamProperties {
	return s.props
}

// Seek restarts decoding at index using input seeking. When the restart
// fails, decoding resumes from the first frame and the seek error is still
// returned.
func (s *stream) Seek(index int) error {
	if index < 0 {
		return fmt.Errorf("ffmpegsource: invalid seek index %d", index)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.stopLocked()
	err := s.startLocked(index)
	if err == nil {
		return nil
	}
	if index > 0 {
		if restartErr := s.startLocked(0); restartErr != nil {
			s.logger.Warn("Restart from the first frame failed: %v", restartErr)
		}
	}
	return fmt.Errorf("seek to frame %d: %w", index, err)
}

func (s *stream) ReadFrame() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if s.cmd == nil {
		if s.startErr != nil {
			return nil, s.startErr
		}
		return nil, io.EOF
	}

	if s.buf == nil {
		s.buf = make([]byte, s.frameSize)
	}
	_, err := io.ReadFull(s.reader, s.buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, s.finishLocked()
	}
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}

	return rgbToImage(s.buf, s.props.Width, s.props.Height), nil
}

func (s *stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.stopLocked()
	return nil
}

func (s *stream) start(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked(index)
}

func (s *stream) startLocked(index int) error {
	args := []string{"-hide_banner", "-loglevel", "error", "-nostdin", "-noautorotate"}
	if index > 0 {
		args = append(args, "-ss", seekTimestamp(index, s.props.FPS))
	}
	args = append(args,
		"-i", s.path,
		"-map", "0:v:0",
		"-an", "-sn",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-vsync", "passthrough",
		"-s", fmt.Sprintf("%dx%d", s.props.Width, s.props.Height),
		"pipe:1",
	)
	s.logger.Debug("Starting %s %s", s.ffmpegPath, strings.Join(args, " "))

	s.stderr.Reset()
	cmd := exec.CommandContext(s.ctx, s.ffmpegPath, args...)
	cmd.Stderr = &s.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.startErr = fmt.Errorf("failed to get stdout pipe: %w", err)
		return s.startErr
	}
	if err := cmd.Start(); err != nil {
		s.startErr = fmt.Errorf("failed to start ffmpeg: %w", err)
		return s.startErr
	}

	s.startErr = nil
	s.cmd = cmd
	s.stdout = stdout
	s.reader = bufio.NewReaderSize(stdout, s.frameSize)
	return nil
}

// finishLocked waits for ffmpeg after its output ended and reports io.EOF on
// a clean exit.
func (s *stream) finishLocked() error {
	if s.cmd == nil {
		return io.EOF
	}
	err := s.cmd.Wait()
	s.cmd = nil
	if err == nil {
		return io.EOF
	}
	if ctxErr := s.ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("ffmpeg decoding failed: %w\nstderr: %s", err, strings.TrimSpace(s.stderr.String()))
	}
	return err
}

func (s *stream) stopLocked() {
	if s.cmd == nil {
		return
	}
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.stdout.Close()
	_ = s.cmd.Wait()
	s.cmd = nil
}

func seekTimestamp(index int, fps float64) string {
	if !(fps > 0 && fps <= 1000) {
		fps = seekFPS
	}
	return strconv.FormatFloat(float64(index)/fps, 'f', 6, 64)
}

// rgbToImage copies packed rgb24 pixels into a new RGBA image.
func rgbToImage(rgb []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	pix := img.Pix
	for i, j := 0, 0; i+2 < len(rgb) && j+3 < len(pix); i, j = i+3, j+4 {
		pix[j] = rgb[i]
		pix[j+1] = rgb[i+1]
		pix[j+2] = rgb[i+2]
		pix[j+3] = 0xff
	}
	return img
}

var _ ports.VideoSource = (*Source)(nil)
