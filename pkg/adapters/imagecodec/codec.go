// Package imagecodec encodes still frames as JPEG.
package imagecodec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/user/framecut/pkg/ports"
)

// ErrEmptyImage is returned when asked to encode an image with no pixels.
var ErrEmptyImage = errors.New("imagecodec: empty image")

// Codec implements ports.ImageEncoder.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// EncodeImage encodes img. JPEG quality is clamped to 1..100.
func (c *Codec) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	var buf bytes.Buffer
	switch format {
	case ports.FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: clampQuality(quality)}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
	default:
		return nil, fmt.Errorf("imagecodec: unsupported format %d", format)
	}
	return buf.Bytes(), nil
}

func clampQuality(q int) int {
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

var _ ports.ImageEncoder = (*Codec)(nil)
