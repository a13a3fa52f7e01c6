package strategy

import (
	"image"

	"github.com/user/framecut/pkg/timecode"
)

const defaultStartTime = "00:00:00"

// TimeRange keeps frames whose index falls in [start, end).
type TimeRange struct {
	start int
	end   int // -1 when the stream length is unknown and no end_time was given
}

// NewTimeRange computes the bounds from start_time and end_time at fps.
// A missing end_time means the end of the stream. When totalFrames is known
// the end is clamped to it.
func NewTimeRange(fps float64, totalFrames int, params Params) (*TimeRange, error) {
	start, err := timecode.TimeToFrame(params.String(ParamStartTime, defaultStartTime), fps)
	if err != nil {
		return nil, err
	}

	end := -1
	if params.Has(ParamEndTime) {
		end, err = timecode.TimeToFrame(params.String(ParamEndTime, ""), fps)
		if err != nil {
			return nil, err
		}
	}

	if totalFrames > 0 && (end < 0 || end > totalFrames) {
		end = totalFrames
	}

	return &TimeRange{start: start, end: end}, nil
}

func validateTimeRange(params Params) error {
	if _, err := timecode.ParseSeconds(params.String(ParamStartTime, defaultStartTime)); err != nil {
		return err
	}
	if params.Has(ParamEndTime) {
		if _, err := timecode.ParseSeconds(params.String(ParamEndTime, "")); err != nil {
			return err
		}
	}
	return nil
}

// Name implements Strategy.
func (s *TimeRange) Name() string { return "Time Range" }

// Reset implements Strategy.
func (s *TimeRange) Reset() {}

// Bounds implements Ranged.
func (s *TimeRange) Bounds() (start, end int) {
	return s.start, s.end
}

// ShouldKeep reports whether index is inside the range. Pixels are ignored.
func (s *TimeRange) ShouldKeep(frame image.Image, index int) bool {
	if index < s.start {
		return false
	}
	return s.end < 0 || index < s.end
}

var _ Ranged = (*TimeRange)(nil)
