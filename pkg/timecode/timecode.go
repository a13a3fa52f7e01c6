// Package timecode converts between HH:MM:SS timestamps, seconds and frame indices,
// and formats durations and byte sizes for display.
package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrFormat is returned when a timestamp is not in HH:MM:SS form.
var ErrFormat = errors.New("timecode: invalid time format")

// FormatError reports a malformed timestamp.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("timecode: invalid time format %q: %s (expected HH:MM:SS)", e.Input, e.Reason)
}

// Unwrap allows errors.Is(err, ErrFormat).
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// ParseSeconds converts an HH:MM:SS string to total seconds.
// Fields are not range-checked, so "00:90:00" is 5400 seconds. Totals that
// do not fit in an int saturate at math.MaxInt.
func ParseSeconds(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, &FormatError{Input: s, Reason: fmt.Sprintf("%d fields", len(parts))}
	}

	var fields [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, &FormatError{Input: s, Reason: fmt.Sprintf("field %d is not an integer", i+1)}
		}
		if v < 0 {
			return 0, &FormatError{Input: s, Reason: fmt.Sprintf("field %d is negative", i+1)}
		}
		fields[i] = v
	}

	total := 0
	for i, unit := range [3]int{3600, 60, 1} {
		if fields[i] > (math.MaxInt-total)/unit {
			return math.MaxInt, nil
		}
		total += fields[i] * unit
	}
	return total, nil
}

// TimeToFrame converts an HH:MM:SS string to a zero-based frame index at fps.
// The result is floor(seconds * fps), saturating at math.MaxInt, so it is
// never negative for a positive fps.
func TimeToFrame(s string, fps float64) (int, error) {
	seconds, err := ParseSeconds(s)
	if err != nil {
		return 0, err
	}
	frame := math.Floor(float64(seconds) * fps)
	if frame >= math.MaxInt {
		return math.MaxInt, nil
	}
	if !(frame > 0) {
		return 0, nil
	}
	return int(frame), nil
}

// FormatDuration formats seconds as HH:MM:SS. Negative values format as 00:00:00.
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		return "00:00:00"
	}

	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize formats a byte count with binary units, e.g. "1.5 GB".
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}

	i := 0
	for v := bytes; v >= 1024 && i < len(sizeUnits)-1; v /= 1024 {
		i++
	}

	size := float64(bytes) / math.Pow(1024, float64(i))
	size = math.Round(size*100) / 100

	return strconv.FormatFloat(size, 'f', -1, 64) + " " + sizeUnits[i]
}
