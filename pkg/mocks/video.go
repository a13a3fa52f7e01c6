package mocks

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/user/framecut/pkg/ports"
)

// VideoSource is a mock implementation of ports.VideoSource.
// Without OpenFunc it hands out Stream, or a fresh empty stream when Stream is nil.
type VideoSource struct {
	OpenFunc func(ctx context.Context, path string) (ports.VideoStream, error)
	Stream   *VideoStream

	// Recorded calls for verification
	OpenCalls []string
}

func (m *VideoSource) Open(ctx context.Context, path string) (ports.VideoStream, error) {
	m.OpenCalls = append(m.OpenCalls, path)
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, path)
	}
	if m.Stream == nil {
		m.Stream = NewVideoStream(ports.StreamProperties{}, 0)
	}
	return m.Stream, nil
}

var _ ports.VideoSource = (*VideoSource)(nil)

// VideoStream serves Count synthetic frames. Frame i is a small gray image
// whose value comes from FrameFunc, or i modulo 256 by default.
type VideoStream struct {
	mu    sync.Mutex
	props ports.StreamProperties
	count int
	next  int

	FrameFunc func(index int) image.Image
	ReadFunc  func(index int) (image.Image, error)
	SeekFunc  func(index int) error

	// Recorded calls for verification
	SeekCalls  []int
	ReadCalls  int
	CloseCalls int
}

// NewVideoStream creates a stream with the given properties serving count frames.
// count may differ from props.TotalFrames to model containers that misreport length.
func NewVideoStream(props ports.StreamProperties, count int) *VideoStream {
	return &VideoStream{props: props, count: count}
}

func (m *VideoStream) Properties() ports.StreamProperties {
	return m.props
}

func (m *VideoStream) Seek(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SeekCalls = append(m.SeekCalls, index)
	if m.SeekFunc != nil {
		if err := m.SeekFunc(index); err != nil {
			return err
		}
	}
	if index < 0 {
		return errors.New("mock: negative seek")
	}
	m.next = index
	return nil
}

func (m *VideoStream) ReadFrame() (image.Image, error) {
	m.mu.Lock()
	index := m.next
	m.ReadCalls++
	m.mu.Unlock()

	if m.ReadFunc != nil {
		img, err := m.ReadFunc(index)
		if err != nil {
			return nil, err
		}
		m.advance()
		return img, nil
	}
	if index >= m.count {
		return nil, io.EOF
	}
	m.advance()
	if m.FrameFunc != nil {
		return m.FrameFunc(index), nil
	}
	return GrayFrame(uint8(index % 256)), nil
}

func (m *VideoStream) advance() {
	m.mu.Lock()
	m.next++
	m.mu.Unlock()
}

func (m *VideoStream) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalls++
	return nil
}

var _ ports.VideoStream = (*VideoStream)(nil)

// GrayFrame returns an 8x8 frame filled with v.
func GrayFrame(v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}
