package ffmpegsource

import "errors"

var (
	// ErrFFmpegNotFound is returned when no ffmpeg executable can be located.
	ErrFFmpegNotFound = errors.New("ffmpegsource: ffmpeg not found")

	// ErrFFprobeNotFound is returned when no ffprobe executable can be located.
	ErrFFprobeNotFound = errors.New("ffmpegsource: ffprobe not found")

	// ErrNoVideoStream is returned when the input has no decodable video stream.
	ErrNoVideoStream = errors.New("ffmpegsource: no video stream")

	// ErrClosed is returned by operations on a closed stream.
	ErrClosed = errors.New("ffmpegsource: stream closed")
)
