package strategy

import "image"

// AllFrames keeps every frame.
type AllFrames struct{}

// NewAllFrames creates an AllFrames strategy.
func NewAllFrames() *AllFrames {
	return &AllFrames{}
}

// Name implements Strategy.
func (s *AllFrames) Name() string { return "All Frames" }

// Reset implements Strategy.
func (s *AllFrames) Reset() {}

// ShouldKeep always returns true.
func (s *AllFrames) ShouldKeep(frame image.Image, index int) bool { return true }

var _ Strategy = (*AllFrames)(nil)
