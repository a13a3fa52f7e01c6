// Package nullsink provides a progress sink that discards every event.
package nullsink

import "github.com/user/framecut/pkg/ports"

// Sink is a no-op implementation of ports.ProgressSink.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// OnProgress does nothing.
func (s *Sink) OnProgress(percent int) {}

// OnStatus does nothing.
func (s *Sink) OnStatus(message string) {}

var _ ports.ProgressSink = (*Sink)(nil)
