// Package barsink renders extraction progress as a terminal progress bar.
package barsink

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/user/framecut/pkg/ports"
)

// Sink implements ports.ProgressSink on top of a progressbar.
// The bar runs from 0 to 100; status messages become its description.
type Sink struct {
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

// New creates a Sink writing to w.
func New(w io.Writer) *Sink {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Starting"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "▐",
			BarEnd:        "▌",
		}),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &Sink{bar: bar}
}

// IsTerminal reports whether f is an interactive terminal, where a bar makes sense.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// OnProgress moves the bar to percent.
func (s *Sink) OnProgress(percent int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.bar.Set(percent)
}

// OnStatus replaces the bar description.
func (s *Sink) OnStatus(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bar.Describe(message)
}

// Finish completes the bar and moves to a new line.
func (s *Sink) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.bar.Finish()
}

var _ ports.ProgressSink = (*Sink)(nil)
