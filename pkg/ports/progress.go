package ports

// ProgressSink receives progress and status events from an extraction run.
// Events are delivered synchronously on the goroutine running the extraction,
// in the order they were issued.
type ProgressSink interface {
	// OnProgress reports completion as an integer percentage in [0, 100].
	// Values never decrease within one run.
	OnProgress(percent int)

	// OnStatus reports a human-readable status line.
	OnStatus(message string)
}

// ProgressFuncs adapts a pair of functions to ProgressSink. Nil fields are skipped.
type ProgressFuncs struct {
	Progress func(percent int)
	Status   func(message string)
}

// OnProgress implements ProgressSink.
func (f ProgressFuncs) OnProgress(percent int) {
	if f.Progress != nil {
		f.Progress(percent)
	}
}

// OnStatus implements ProgressSink.
func (f ProgressFuncs) OnStatus(message string) {
	if f.Status != nil {
		f.Status(message)
	}
}
