package engine

import (
	"context"
	"time"
)

// Job is an Engine run on its own goroutine.
type Job struct {
	cancel context.CancelFunc
	done   chan struct{}

	result Result
	err    error
}

// Start runs e in the background. The run stops when ctx is done or Cancel is called.
func Start(ctx context.Context, e *Engine) *Job {
	ctx, cancel := context.WithCancel(ctx)
	j := &Job{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(j.done)
		defer cancel()
		j.result, j.err = e.Run(ctx)
	}()

	return j
}

// Done is closed when the run has returned.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the run returns and reports its outcome.
func (j *Job) Wait() (Result, error) {
	<-j.done
	return j.result, j.err
}

// Cancel asks the run to stop and waits up to grace for it to return.
// If it does not, Cancel returns ErrAbandoned. The goroutine keeps running
// and may hold its video stream open until the decoder unblocks.
func (j *Job) Cancel(grace time.Duration) error {
	j.cancel()

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-j.done:
		return nil
	case <-timer.C:
		return ErrAbandoned
	}
}
