package strategy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMode is returned when no strategy is registered for a mode.
	ErrUnknownMode = errors.New("strategy: unknown mode")

	// ErrInvalidParam is returned when a mode parameter is out of range or malformed.
	ErrInvalidParam = errors.New("strategy: invalid parameter")
)

// UnknownModeError names the requested mode and the valid ones.
type UnknownModeError struct {
	Mode  string
	Valid []string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("strategy: unknown mode %q (valid modes: %s)", e.Mode, strings.Join(e.Valid, ", "))
}

// Unwrap allows errors.Is(err, ErrUnknownMode).
func (e *UnknownModeError) Unwrap() error {
	return ErrUnknownMode
}

// ParamError reports an invalid mode parameter.
type ParamError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("strategy: invalid %s %q: %s", e.Key, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidParam).
func (e *ParamError) Unwrap() error {
	return ErrInvalidParam
}
