package ports

import (
	"context"
	"image"
)

// StreamProperties describes a video stream as reported by its container or decoder.
// Values come straight from the source and are not sanitized.
type StreamProperties struct {
	TotalFrames int     // Number of frames; 0 when unknown
	FPS         float64 // Reported frame rate; may be 0, NaN or implausible
	Width       int
	Height      int
	Duration    float64 // Seconds; 0 when unknown
	Codec       string
}

// VideoSource opens video files for sequential frame access.
type VideoSource interface {
	// Open opens the video at path. The returned stream must be closed by the caller.
	Open(ctx context.Context, path string) (VideoStream, error)
}

// VideoStream is an opened, sequentially readable video.
type VideoStream interface {
	// Properties returns the stream metadata read at open time.
	Properties() StreamProperties

	// Seek positions the stream so that the next ReadFrame returns frame index.
	Seek(index int) error

	// ReadFrame decodes the next frame. It returns io.EOF after the last frame.
	ReadFrame() (image.Image, error)

	// Close releases the stream. Safe to call more than once.
	Close() error
}

// Prober reads stream properties without decoding any frame.
type Prober interface {
	Probe(ctx context.Context, path string) (StreamProperties, error)
}
