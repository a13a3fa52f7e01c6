package mocks

import (
	"fmt"
	"image"

	"github.com/user/framecut/pkg/ports"
)

// ImageEncoder is a mock implementation of ports.ImageEncoder.
// By default it returns a short marker naming the image size.
type ImageEncoder struct {
	EncodeImageFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)

	// Recorded calls for verification
	EncodeCalls []EncodeCall
}

// EncodeCall records a call to EncodeImage.
type EncodeCall struct {
	Format  ports.ImageFormat
	Quality int
}

func (m *ImageEncoder) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.EncodeCalls = append(m.EncodeCalls, EncodeCall{Format: format, Quality: quality})
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	b := img.Bounds()
	return []byte(fmt.Sprintf("jpeg %dx%d", b.Dx(), b.Dy())), nil
}

var _ ports.ImageEncoder = (*ImageEncoder)(nil)
