// Package mp4probe reads video stream properties from the moov box of MP4 and
// QuickTime files without decoding any sample.
package mp4probe

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/user/framecut/pkg/ports"
)

// ErrNoVideoTrack is returned when the file has no video track.
var ErrNoVideoTrack = errors.New("mp4probe: no video track found")

// Prober implements ports.Prober for MP4 containers.
type Prober struct{}

// New creates a Prober.
func New() *Prober {
	return &Prober{}
}

// Probe implements ports.Prober. Media data is not loaded.
func (p *Prober) Probe(ctx context.Context, path string) (ports.StreamProperties, error) {
	if err := ctx.Err(); err != nil {
		return ports.StreamProperties{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return ports.StreamProperties{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	mp4File, err := mp4.DecodeFile(f, mp4.WithDecodeMode(mp4.DecModeLazyMdat))
	if err != nil {
		return ports.StreamProperties{}, fmt.Errorf("decode mp4: %w", err)
	}
	return propertiesFromFile(mp4File)
}

func propertiesFromFile(mp4File *mp4.File) (ports.StreamProperties, error) {
	if mp4File.IsFragmented() && mp4File.Init != nil && mp4File.Init.Moov != nil {
		moov := mp4File.Init.Moov
		trak := videoTrak(moov)
		if trak == nil {
			return ports.StreamProperties{}, ErrNoVideoTrack
		}
		return fragmentedProperties(mp4File, moov, trak), nil
	}

	if mp4File.Moov == nil {
		return ports.StreamProperties{}, ErrNoVideoTrack
	}
	trak := videoTrak(mp4File.Moov)
	if trak == nil {
		return ports.StreamProperties{}, ErrNoVideoTrack
	}
	return progressiveProperties(trak), nil
}

func videoTrak(moov *mp4.MoovBox) *mp4.TrakBox {
	for _, trak := range moov.Traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			return trak
		}
	}
	return nil
}

// progressiveProperties takes the frame count from stsz (or stts) and the
// duration from mdhd, the way OpenCV reports CAP_PROP_FRAME_COUNT.
func progressiveProperties(trak *mp4.TrakBox) ports.StreamProperties {
	props := sampleEntryProperties(trak)

	stbl := sampleTable(trak)
	if stbl != nil {
		if stbl.Stsz != nil {
			props.TotalFrames = int(stbl.Stsz.SampleNumber)
		} else if stbl.Stts != nil {
			for _, n := range stbl.Stts.SampleCount {
				props.TotalFrames += int(n)
			}
		}
	}

	if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 {
		props.Duration = float64(mdhd.Duration) / float64(mdhd.Timescale)
		if props.Duration > 0 && props.TotalFrames > 0 {
			props.FPS = float64(props.TotalFrames) / props.Duration
		} else if stbl != nil && stbl.Stts != nil && len(stbl.Stts.SampleTimeDelta) > 0 && stbl.Stts.SampleTimeDelta[0] > 0 {
			props.FPS = float64(mdhd.Timescale) / float64(stbl.Stts.SampleTimeDelta[0])
		}
	}

	return props
}

// fragmentedProperties counts samples in every moof of the video track and
// sums their durations, falling back to the tfhd and trex defaults.
func fragmentedProperties(mp4File *mp4.File, moov *mp4.MoovBox, trak *mp4.TrakBox) ports.StreamProperties {
	props := sampleEntryProperties(trak)
	trackID := trak.Tkhd.TrackID

	var trexDur uint32
	if moov.Mvex != nil {
		for _, trex := range moov.Mvex.Trexs {
			if trex.TrackID == trackID {
				trexDur = trex.DefaultSampleDuration
				break
			}
		}
	}

	var totalDur uint64
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd == nil || traf.Tfhd.TrackID != trackID {
					continue
				}
				defaultDur := trexDur
				if traf.Tfhd.DefaultSampleDuration > 0 {
					defaultDur = traf.Tfhd.DefaultSampleDuration
				}
				for _, trun := range traf.Truns {
					props.TotalFrames += int(trun.SampleCount())
					for _, sample := range trun.Samples {
						if sample.Dur > 0 {
							totalDur += uint64(sample.Dur)
						} else {
							totalDur += uint64(defaultDur)
						}
					}
				}
			}
		}
	}

	mdhd := trak.Mdia.Mdhd
	if mdhd == nil || mdhd.Timescale == 0 {
		return props
	}
	if totalDur > 0 && props.TotalFrames > 0 {
		props.Duration = float64(totalDur) / float64(mdhd.Timescale)
		props.FPS = float64(props.TotalFrames) / props.Duration
	} else if trexDur > 0 {
		props.FPS = float64(mdhd.Timescale) / float64(trexDur)
	}
	return props
}

func sampleTable(trak *mp4.TrakBox) *mp4.StblBox {
	if trak.Mdia == nil || trak.Mdia.Minf == nil {
		return nil
	}
	return trak.Mdia.Minf.Stbl
}

// sampleEntryProperties reads the coded size and codec from stsd.
func sampleEntryProperties(trak *mp4.TrakBox) ports.StreamProperties {
	var props ports.StreamProperties

	stbl := sampleTable(trak)
	if stbl == nil || stbl.Stsd == nil {
		return props
	}

	for _, child := range stbl.Stsd.Children {
		vse, ok := child.(*mp4.VisualSampleEntryBox)
		if !ok {
			continue
		}
		props.Width = int(vse.Width)
		props.Height = int(vse.Height)
		props.Codec = codecName(child.Type())
		break
	}
	return props
}

func codecName(sampleEntry string) string {
	switch sampleEntry {
	case "avc1", "avc3":
		return "h264"
	case "hvc1", "hev1":
		return "hevc"
	case "av01":
		return "av1"
	case "vp09":
		return "vp9"
	case "mp4v":
		return "mpeg4"
	default:
		return sampleEntry
	}
}

var _ ports.Prober = (*Prober)(nil)
