package ffmpegsource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/user/framecut/pkg/adapters/logger"
	"github.com/user/framecut/pkg/ports"
)

// Prober reads stream properties with ffprobe.
type Prober struct {
	path   string
	logger ports.Logger
}

// NewProber creates a Prober running the ffprobe executable at path.
func NewProber(path string, log ports.Logger) *Prober {
	if log == nil {
		log = logger.NewNoop()
	}
	return &Prober{path: path, logger: log}
}

// Probe implements ports.Prober.
func (p *Prober) Probe(ctx context.Context, path string) (ports.StreamProperties, error) {
	args := []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=codec_name,width,height,avg_frame_rate,r_frame_rate,nb_frames,duration:format=duration",
		"-of", "json",
		path,
	}
	p.logger.Debug("Running %s %s", p.path, strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.path, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return ports.StreamProperties{}, fmt.Errorf("ffprobe: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return parseProbeOutput(out)
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

type probeStream struct {
	CodecName    string `json:"codec_name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AvgFrameRate string `json:"avg_frame_rate"`
	RFrameRate   string `json:"r_frame_rate"`
	NbFrames     string `json:"nb_frames"`
	Duration     string `json:"duration"`
}

func parseProbeOutput(data []byte) (ports.StreamProperties, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return ports.StreamProperties{}, fmt.Errorf("parse ffprobe output: %w", err)
	}
	if len(out.Streams) == 0 {
		return ports.StreamProperties{}, ErrNoVideoStream
	}

	s := out.Streams[0]
	if s.Width <= 0 || s.Height <= 0 {
		return ports.StreamProperties{}, fmt.Errorf("%w: invalid size %dx%d", ErrNoVideoStream, s.Width, s.Height)
	}

	props := ports.StreamProperties{
		Width:  s.Width,
		Height: s.Height,
		Codec:  s.CodecName,
	}

	props.FPS = parseFrameRate(s.AvgFrameRate)
	if props.FPS <= 0 {
		props.FPS = parseFrameRate(s.RFrameRate)
	}

	props.Duration = parseFloat(s.Duration)
	if props.Duration <= 0 {
		props.Duration = parseFloat(out.Format.Duration)
	}

	if n, err := strconv.Atoi(s.NbFrames); err == nil && n > 0 {
		props.TotalFrames = n
	} else if props.Duration > 0 && props.FPS > 0 {
		props.TotalFrames = int(math.Round(props.Duration * props.FPS))
	}

	return props, nil
}

// parseFrameRate parses ffprobe rates such as "30000/1001" or "25".
// Undefined rates like "0/0" yield 0.
func parseFrameRate(s string) float64 {
	num, den, found := strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if !found {
		return n
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

var _ ports.Prober = (*Prober)(nil)
