// Package smartprobe picks a property reader from the file's magic bytes.
//
// The selection flow:
//   - MP4/QuickTime/M4V: read the moov box, then fall back to the generic prober
//   - other video containers and unrecognized data: generic prober
//   - images, audio, archives and documents: rejected without spawning anything
package smartprobe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/user/framecut/pkg/adapters/logger"
	"github.com/user/framecut/pkg/ports"
)

// ErrNotVideo is returned for files recognized as something other than video.
var ErrNotVideo = errors.New("smartprobe: not a video file")

// headerSize is the number of bytes filetype needs to match every known type.
const headerSize = 262

// Backend names the prober that produced a result.
type Backend string

const (
	BackendContainer Backend = "container"
	BackendGeneric   Backend = "generic"
)

// Prober implements ports.Prober by dispatching on the sniffed file type.
type Prober struct {
	container ports.Prober
	generic   ports.Prober
	logger    ports.Logger
}

// New creates a Prober. container handles MP4 family files and may be nil.
// generic handles everything else and is the fallback when container fails.
func New(container, generic ports.Prober, log ports.Logger) *Prober {
	if log == nil {
		log = logger.NewNoop()
	}
	return &Prober{container: container, generic: generic, logger: log.WithComponent("probe")}
}

// Probe implements ports.Prober.
func (p *Prober) Probe(ctx context.Context, path string) (ports.StreamProperties, error) {
	props, _, err := p.ProbeWithBackend(ctx, path)
	return props, err
}

// ProbeWithBackend is Probe that also reports which prober answered.
func (p *Prober) ProbeWithBackend(ctx context.Context, path string) (ports.StreamProperties, Backend, error) {
	kind, err := Sniff(path)
	if err != nil {
		return ports.StreamProperties{}, "", err
	}

	if kind != filetype.Unknown {
		p.logger.Debug("Detected %s (%s)", kind.Extension, kind.MIME.Value)
	}

	if IsMP4Family(kind) && p.container != nil {
		props, err := p.container.Probe(ctx, path)
		if err == nil && props.Width > 0 && props.TotalFrames > 0 {
			return props, BackendContainer, nil
		}
		if err != nil {
			p.logger.Debug("Container probe failed, falling back: %s", err)
		}
	}

	if p.generic == nil {
		return ports.StreamProperties{}, "", fmt.Errorf("smartprobe: no prober for %s", path)
	}
	props, err := p.generic.Probe(ctx, path)
	return props, BackendGeneric, err
}

// Sniff reads the header of path and matches it against known file types.
// Files recognized as a non-video type yield an error wrapping ErrNotVideo.
func Sniff(path string) (types.Type, error) {
	f, err := os.Open(path)
	if err != nil {
		return filetype.Unknown, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return filetype.Unknown, fmt.Errorf("read header: %w", err)
	}
	head = head[:n]

	if n == 0 {
		return filetype.Unknown, fmt.Errorf("%w: %s is empty", ErrNotVideo, path)
	}
	return classify(head)
}

func classify(head []byte) (types.Type, error) {
	kind, err := filetype.Match(head)
	if err != nil {
		return filetype.Unknown, err
	}

	switch {
	case filetype.IsVideo(head), kind == filetype.Unknown:
		return kind, nil
	case filetype.IsImage(head), filetype.IsAudio(head), filetype.IsArchive(head), filetype.IsDocument(head), filetype.IsFont(head):
		return kind, fmt.Errorf("%w: detected %s", ErrNotVideo, kind.MIME.Value)
	default:
		return kind, nil
	}
}

// IsMP4Family reports whether kind is read from an ISO BMFF moov box.
func IsMP4Family(kind types.Type) bool {
	switch kind.Extension {
	case "mp4", "mov", "m4v", "3gp":
		return true
	}
	return false
}

var _ ports.Prober = (*Prober)(nil)
