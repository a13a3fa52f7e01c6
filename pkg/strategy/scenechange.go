package strategy

import (
	"fmt"
	"image"
	"strconv"
)

// DefaultThreshold is the correlation below which a frame counts as a cut.
const DefaultThreshold = 0.7

// SceneChange keeps the first frame and every frame whose grayscale histogram
// correlates with the immediately preceding frame below the threshold.
//
// Hard cuts are detected reliably. Slow fades are missed and fast pans may
// trigger false positives.
type SceneChange struct {
	threshold     float64
	analysisWidth int

	prev    Histogram
	hasPrev bool
}

// NewSceneChange reads threshold (default 0.7, range (0, 1]) and analysis_width
// (default 0, full resolution) from params.
func NewSceneChange(params Params) (*SceneChange, error) {
	threshold, analysisWidth, err := sceneParams(params)
	if err != nil {
		return nil, err
	}
	return &SceneChange{threshold: threshold, analysisWidth: analysisWidth}, nil
}

func sceneParams(params Params) (float64, int, error) {
	threshold, err := params.Float(ParamThreshold, DefaultThreshold)
	if err != nil {
		return 0, 0, err
	}
	if !(threshold > 0 && threshold <= 1) {
		return 0, 0, &ParamError{
			Key:    ParamThreshold,
			Value:  strconv.FormatFloat(threshold, 'g', -1, 64),
			Reason: "must be in (0, 1]",
		}
	}

	width, err := params.Int(ParamAnalysisWidth, 0)
	if err != nil {
		return 0, 0, err
	}
	if width < 0 {
		return 0, 0, &ParamError{Key: ParamAnalysisWidth, Value: fmt.Sprint(width), Reason: "must not be negative"}
	}

	return threshold, width, nil
}

func validateSceneChange(params Params) error {
	_, _, err := sceneParams(params)
	return err
}

// Name implements Strategy.
func (s *SceneChange) Name() string { return "Scene Change Detection" }

// Threshold returns the configured correlation threshold.
func (s *SceneChange) Threshold() float64 { return s.threshold }

// Reset forgets the previous frame's histogram.
func (s *SceneChange) Reset() {
	s.prev = Histogram{}
	s.hasPrev = false
}

// ShouldKeep compares frame with the previous frame. The stored histogram is
// replaced on every call, kept or not.
func (s *SceneChange) ShouldKeep(frame image.Image, index int) bool {
	current := GrayHistogram(downscale(frame, s.analysisWidth))
	current.Normalize()

	if !s.hasPrev {
		s.prev = current
		s.hasPrev = true
		return true
	}

	score := Correlation(&s.prev, &current)
	s.prev = current

	return score < s.threshold
}

var _ Strategy = (*SceneChange)(nil)
