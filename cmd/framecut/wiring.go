package main

import (
	"github.com/urfave/cli/v2"

	"github.com/user/framecut/pkg/adapters/ffmpegsource"
	"github.com/user/framecut/pkg/adapters/logger"
	"github.com/user/framecut/pkg/adapters/mp4probe"
	"github.com/user/framecut/pkg/adapters/smartprobe"
	"github.com/user/framecut/pkg/config"
	"github.com/user/framecut/pkg/ports"
)

// loadConfig layers the config file, the environment and the tool flags.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("ffmpeg") {
		cfg.FFmpegPath = c.String("ffmpeg")
	}
	if c.IsSet("ffprobe") {
		cfg.FFprobePath = c.String("ffprobe")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	return cfg, nil
}

func newLogger(cfg config.Config) ports.Logger {
	return logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
}

// tools holds the discovered executables and the probe chain built on them.
type tools struct {
	ffmpeg string
	prober *smartprobe.Prober
}

// findTools locates ffmpeg and ffprobe and builds a prober that reads
// MP4-family containers directly and falls back to ffprobe.
func findTools(cfg config.Config, log ports.Logger) (*tools, error) {
	ffmpegPath, err := ffmpegsource.FindFFmpeg(cfg.FFmpegPath)
	if err != nil {
		return nil, err
	}
	ffprobePath, err := ffmpegsource.FindFFprobe(cfg.FFprobePath, ffmpegPath)
	if err != nil {
		return nil, err
	}

	generic := ffmpegsource.NewProber(ffprobePath, log.WithComponent("ffprobe"))
	return &tools{
		ffmpeg: ffmpegPath,
		prober: smartprobe.New(mp4probe.New(), generic, log),
	}, nil
}

func (t *tools) source(log ports.Logger) *ffmpegsource.Source {
	return ffmpegsource.New(ffmpegsource.Config{
		FFmpegPath: t.ffmpeg,
		Prober:     t.prober,
	}, log)
}
