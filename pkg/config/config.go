// Package config provides configuration loading and management.
//
// Values are layered: Defaults, then an optional YAML file, then FRAMECUT_*
// environment variables. Command-line flags are applied on top by the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/user/framecut/pkg/engine"
	"github.com/user/framecut/pkg/strategy"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to the env tag of every field.
const EnvPrefix = "FRAMECUT_"

// Config represents the full configuration for framecut.
type Config struct {
	// Tools
	FFmpegPath  string `yaml:"ffmpeg_path" env:"FFMPEG_PATH"`
	FFprobePath string `yaml:"ffprobe_path" env:"FFPROBE_PATH"`

	// Output
	OutputDir   string `yaml:"output_dir" env:"OUTPUT_DIR"`
	OutputRoot  string `yaml:"output_root" env:"OUTPUT_ROOT"`
	JPEGQuality int    `yaml:"jpeg_quality" env:"JPEG_QUALITY"`
	SummaryPath string `yaml:"summary" env:"SUMMARY"`

	// Strategy
	Mode          string  `yaml:"mode" env:"MODE"`
	StartTime     string  `yaml:"start_time" env:"START_TIME"`
	EndTime       string  `yaml:"end_time" env:"END_TIME"`
	Threshold     float64 `yaml:"threshold" env:"THRESHOLD"`
	AnalysisWidth int     `yaml:"analysis_width" env:"ANALYSIS_WIDTH"`

	// Logging
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		JPEGQuality: engine.DefaultJPEGQuality,
		Mode:        strategy.ModeAll,
		Threshold:   strategy.DefaultThreshold,
		LogLevel:    "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Load returns Defaults overlaid with the file at path, when path is not
// empty, and then with the environment.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields whose FRAMECUT_* variable is set.
// Unset variables leave the current value alone.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

// StrategyParams returns the parameters relevant to the configured mode.
func (c Config) StrategyParams() strategy.Params {
	params := strategy.Params{}
	switch c.Mode {
	case strategy.ModeRange:
		params[strategy.ParamStartTime] = c.StartTime
		params[strategy.ParamEndTime] = c.EndTime
	case strategy.ModeScene:
		params[strategy.ParamThreshold] = strconv.FormatFloat(c.Threshold, 'f', -1, 64)
		if c.AnalysisWidth != 0 {
			params[strategy.ParamAnalysisWidth] = strconv.Itoa(c.AnalysisWidth)
		}
	}
	return params
}

// ToParams converts Config to engine.Params for one video.
func (c Config) ToParams(video string) engine.Params {
	return engine.Params{
		VideoPath:   video,
		OutputDir:   c.OutputDir,
		Mode:        c.Mode,
		Options:     c.StrategyParams(),
		JPEGQuality: c.JPEGQuality,
	}
}

// OutputRootFunc returns a resolver for derived output directories, or nil
// to use the engine default.
func (c Config) OutputRootFunc() func() (string, error) {
	if c.OutputRoot == "" {
		return nil
	}
	root := c.OutputRoot
	return func() (string, error) { return root, nil }
}
