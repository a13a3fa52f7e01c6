package ffmpegsource

import (
	"errors"
	"math"
	"testing"
)

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"30000/1001", 30000.0 / 1001.0},
		{"25/1", 25},
		{"25", 25},
		{"0/0", 0},
		{"", 0},
		{"abc", 0},
		{"24/x", 0},
	}

	for _, tt := range tests {
		if got := parseFrameRate(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("parseFrameRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseProbeOutput(t *testing.T) {
	data := []byte(`{
		"streams": [{
			"codec_name": "h264",
			"width": 1920,
			"height": 1080,
			"avg_frame_rate": "30000/1001",
			"r_frame_rate": "30000/1001",
			"nb_frames": "1798",
			"duration": "59.993267"
		}],
		"format": {"duration": "60.010000"}
	}`)

	props, err := parseProbeOutput(data)
	if err != nil {
		t.Fatalf("parseProbeOutput() error: %v", err)
	}
	if props.Width != 1920 || props.Height != 1080 {
		t.Errorf("size = %dx%d", props.Width, props.Height)
	}
	if props.TotalFrames != 1798 {
		t.Errorf("TotalFrames = %d, want 1798", props.TotalFrames)
	}
	if math.Abs(props.FPS-29.97) > 0.001 {
		t.Errorf("FPS = %v", props.FPS)
	}
	if props.Codec != "h264" {
		t.Errorf("Codec = %q", props.Codec)
	}
	if math.Abs(props.Duration-59.993267) > 1e-6 {
		t.Errorf("Duration = %v", props.Duration)
	}
}

func TestParseProbeOutput_EstimatesFrameCount(t *testing.T) {
	// Matroska streams carry no nb_frames
	data := []byte(`{
		"streams": [{"codec_name": "vp9", "width": 640, "height": 360,
			"avg_frame_rate": "0/0", "r_frame_rate": "25/1"}],
		"format": {"duration": "10.000000"}
	}`)

	props, err := parseProbeOutput(data)
	if err != nil {
		t.Fatalf("parseProbeOutput() error: %v", err)
	}
	if props.FPS != 25 {
		t.Errorf("FPS = %v, want 25 from r_frame_rate", props.FPS)
	}
	if props.Duration != 10 {
		t.Errorf("Duration = %v, want 10 from format", props.Duration)
	}
	if props.TotalFrames != 250 {
		t.Errorf("TotalFrames = %d, want 250", props.TotalFrames)
	}
}

func TestParseProbeOutput_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"no streams", `{"streams": [], "format": {}}`, ErrNoVideoStream},
		{"zero size", `{"streams": [{"width": 0, "height": 0}]}`, ErrNoVideoStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseProbeOutput([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := parseProbeOutput([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSeekTimestamp(t *testing.T) {
	tests := []struct {
		index int
		fps   float64
		want  string
	}{
		{30, 30, "1.000000"},
		{45, 0, "1.500000"},
		{1, 2000, "0.033333"},
		{25, 25, "1.000000"},
	}

	for _, tt := range tests {
		if got := seekTimestamp(tt.index, tt.fps); got != tt.want {
			t.Errorf("seekTimestamp(%d, %v) = %q, want %q", tt.index, tt.fps, got, tt.want)
		}
	}
}

func TestRGBToImage(t *testing.T) {
	rgb := []byte{255, 0, 0, 0, 255, 0, 0, 0, 255, 10, 20, 30}
	img := rgbToImage(rgb, 2, 2)

	r, g, b, a := img.At(1, 0).RGBA()
	if r>>8 != 0 || g>>8 != 255 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("pixel (1,0) = %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
	c := img.RGBAAt(1, 1)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("pixel (1,1) = %+v", c)
	}
}
