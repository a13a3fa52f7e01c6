package mocks

import (
	"sync"

	"github.com/user/framecut/pkg/ports"
)

// ProgressSink records every event it receives.
type ProgressSink struct {
	mu       sync.Mutex
	progress []int
	statuses []string

	// OnProgressFunc is called after the event is recorded.
	OnProgressFunc func(percent int)
}

func (m *ProgressSink) OnProgress(percent int) {
	m.mu.Lock()
	m.progress = append(m.progress, percent)
	m.mu.Unlock()
	if m.OnProgressFunc != nil {
		m.OnProgressFunc(percent)
	}
}

func (m *ProgressSink) OnStatus(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses = append(m.statuses, message)
}

// Progress returns a copy of the recorded progress values.
func (m *ProgressSink) Progress() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.progress...)
}

// Statuses returns a copy of the recorded status messages.
func (m *ProgressSink) Statuses() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.statuses...)
}

var _ ports.ProgressSink = (*ProgressSink)(nil)
