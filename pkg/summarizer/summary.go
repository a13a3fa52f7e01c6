// Package summarizer records what an extraction run did and renders it as a
// Markdown report.
package summarizer

import (
	"time"
)

// Summary contains all data collected during an extraction run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source video
	Video VideoInfo

	// Frame selection
	Strategy StrategyInfo

	// Output settings
	Settings Settings

	// Run results
	Result ResultInfo
}

// VideoInfo describes the source video as reported by the prober.
type VideoInfo struct {
	Path        string
	Width       int
	Height      int
	FPS         float64 // effective frame rate
	TotalFrames int     // 0 when unknown
	DurationSec float64
	FileSize    int64
	Codec       string
}

// StrategyInfo describes the selection policy of the run.
type StrategyInfo struct {
	Mode   string
	Name   string
	Params map[string]string
}

// Settings contains the output configuration.
type Settings struct {
	OutputDir   string
	JPEGQuality int
}

// ResultInfo contains the counters of a finished run.
type ResultInfo struct {
	Outcome   string
	Processed int
	Saved     int
	Dropped   int
	Elapsed   time.Duration
	Error     string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithVideo sets source video information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// WithStrategy sets the strategy mode, display name and parameters.
func (b *Builder) WithStrategy(mode, name string, params map[string]string) *Builder {
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	b.summary.Strategy = StrategyInfo{Mode: mode, Name: name, Params: copied}
	return b
}

// WithSettings sets output settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithResult sets run results.
func (b *Builder) WithResult(result ResultInfo) *Builder {
	b.summary.Result = result
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
