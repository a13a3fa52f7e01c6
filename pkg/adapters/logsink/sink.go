// Package logsink reports extraction progress through a ports.Logger,
// for non-interactive output such as CI logs.
package logsink

import (
	"github.com/user/framecut/pkg/ports"
)

// DefaultStep is the progress interval, in percent, between log lines.
const DefaultStep = 10

// Sink implements ports.ProgressSink by logging status lines at info level
// and progress at every step.
type Sink struct {
	logger ports.Logger
	step   int
	last   int
}

// New creates a Sink. A step below 1 uses DefaultStep.
func New(logger ports.Logger, step int) *Sink {
	if step < 1 {
		step = DefaultStep
	}
	return &Sink{logger: logger.WithComponent("progress"), step: step, last: -1}
}

// OnProgress logs when percent crosses the next step or reaches 100.
func (s *Sink) OnProgress(percent int) {
	if s.last >= 0 && percent < s.last+s.step && percent != 100 {
		return
	}
	if percent == s.last {
		return
	}
	s.last = percent
	s.logger.Info("Progress: %d%%", percent)
}

// OnStatus logs message.
func (s *Sink) OnStatus(message string) {
	s.logger.Info("%s", message)
}

var _ ports.ProgressSink = (*Sink)(nil)
