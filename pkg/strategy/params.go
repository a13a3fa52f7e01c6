package strategy

import (
	"strconv"
	"strings"
)

// Parameter keys recognized by the built-in strategies.
const (
	ParamStartTime     = "start_time"
	ParamEndTime       = "end_time"
	ParamThreshold     = "threshold"
	ParamAnalysisWidth = "analysis_width"
)

// Params holds mode parameters as strings, the way they arrive from flags and config files.
type Params map[string]string

// String returns the trimmed value for key, or def when missing or blank.
func (p Params) String(key, def string) string {
	v, ok := p[key]
	if !ok {
		return def
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

// Has reports whether key has a non-blank value.
func (p Params) Has(key string) bool {
	return p.String(key, "") != ""
}

// Float parses key as a float, returning def when missing.
func (p Params) Float(key string, def float64) (float64, error) {
	v := p.String(key, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &ParamError{Key: key, Value: v, Reason: "not a number"}
	}
	return f, nil
}

// Int parses key as an integer, returning def when missing.
func (p Params) Int(key string, def int) (int, error) {
	v := p.String(key, "")
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, &ParamError{Key: key, Value: v, Reason: "not an integer"}
	}
	return i, nil
}
