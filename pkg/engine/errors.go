package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen is returned when the video cannot be opened or has no readable stream.
	ErrOpen = errors.New("engine: cannot open video")

	// ErrIO is returned when the output directory cannot be created or written.
	ErrIO = errors.New("engine: output directory not usable")

	// ErrDecode is returned when the decoder fails in the middle of a stream.
	ErrDecode = errors.New("engine: decode failed")

	// ErrNoVideo is returned by New when no video path is given.
	ErrNoVideo = errors.New("engine: no video path")

	// ErrAbandoned is returned by Job.Cancel when the run did not stop within the grace period.
	ErrAbandoned = errors.New("engine: run did not stop in time and was abandoned")
)

// OpenError wraps a failure to open the input video.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("engine: cannot open video %s: %v", e.Path, e.Err)
}

// Is allows errors.Is(err, ErrOpen).
func (e *OpenError) Is(target error) bool { return target == ErrOpen }

func (e *OpenError) Unwrap() error { return e.Err }

// IOError wraps a failure to prepare the output directory.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("engine: output directory %s: %v", e.Path, e.Err)
}

// Is allows errors.Is(err, ErrIO).
func (e *IOError) Is(target error) bool { return target == ErrIO }

func (e *IOError) Unwrap() error { return e.Err }

// DecodeError reports a decoder failure at frame Index.
type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("engine: decode failed at frame %d: %v", e.Index, e.Err)
}

// Is allows errors.Is(err, ErrDecode).
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func (e *DecodeError) Unwrap() error { return e.Err }
