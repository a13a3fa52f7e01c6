package ports

import (
	"image"
)

// ImageFormat specifies image encoding format.
type ImageFormat int

// FormatJPEG is the only format frames are saved in.
const FormatJPEG ImageFormat = iota

// ImageEncoder abstracts still image encoding.
type ImageEncoder interface {
	// EncodeImage encodes img in the given format.
	// quality is on a 0-100 scale.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}
