// Package strategy implements the per-frame selection policies used by the
// extraction engine: every frame, a time range, or detected scene changes.
//
// A Strategy is stateful and owned by exactly one run. It is built through the
// registry from a mode name, the effective frame rate, the reported frame count
// and string parameters, and must be Reset before its first decision.
package strategy

import (
	"image"
	"sort"
)

// Strategy decides whether a decoded frame is kept.
type Strategy interface {
	// Name returns a human-readable name for status reporting.
	Name() string

	// Reset clears per-run state. It is called once before the first ShouldKeep.
	Reset()

	// ShouldKeep is called exactly once per decoded frame, in increasing index order.
	ShouldKeep(frame image.Image, index int) bool
}

// Ranged is implemented by strategies that only keep frames in a contiguous
// half-open interval [start, end) and ignore pixel content. The engine uses it
// to seek past frames that would be discarded.
type Ranged interface {
	Strategy
	// Bounds returns the interval of kept frame indices. end < 0 means unbounded.
	Bounds() (start, end int)
}

// Mode names accepted by the registry.
const (
	ModeAll   = "all"
	ModeRange = "range"
	ModeScene = "scene"
)

// Constructor builds a strategy for one run.
type Constructor func(fps float64, totalFrames int, params Params) (Strategy, error)

// Validator checks parameters that can be verified without opening a stream.
type Validator func(params Params) error

type entry struct {
	build    Constructor
	validate Validator
}

var registry = map[string]entry{
	ModeAll: {
		build: func(fps float64, totalFrames int, params Params) (Strategy, error) {
			return NewAllFrames(), nil
		},
	},
	ModeRange: {
		build: func(fps float64, totalFrames int, params Params) (Strategy, error) {
			return NewTimeRange(fps, totalFrames, params)
		},
		validate: validateTimeRange,
	},
	ModeScene: {
		build: func(fps float64, totalFrames int, params Params) (Strategy, error) {
			return NewSceneChange(params)
		},
		validate: validateSceneChange,
	},
}

// Modes returns the registered mode names, sorted.
func Modes() []string {
	modes := make([]string, 0, len(registry))
	for name := range registry {
		modes = append(modes, name)
	}
	sort.Strings(modes)
	return modes
}

// Lookup returns the constructor for mode, or an *UnknownModeError.
func Lookup(mode string) (Constructor, error) {
	e, ok := registry[mode]
	if !ok {
		return nil, &UnknownModeError{Mode: mode, Valid: Modes()}
	}
	return e.build, nil
}

// Validate checks that mode is registered and that params are well formed for it.
// It performs no I/O and needs no stream metadata.
func Validate(mode string, params Params) error {
	e, ok := registry[mode]
	if !ok {
		return &UnknownModeError{Mode: mode, Valid: Modes()}
	}
	if e.validate == nil {
		return nil
	}
	return e.validate(params)
}

// New builds the strategy registered for mode.
func New(mode string, fps float64, totalFrames int, params Params) (Strategy, error) {
	build, err := Lookup(mode)
	if err != nil {
		return nil, err
	}
	return build(fps, totalFrames, params)
}
