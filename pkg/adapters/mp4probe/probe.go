// Package mp4probe inspects MP4 containers using mp4ff.
// It is observational only: transcode success never depends on it.
package mp4probe

import (
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Report describes the first video track of an MP4 file.
type Report struct {
	// Codec is the sample entry type mapped to a codec name (e.g. "h264").
	Codec string

	// Width and Height are the coded dimensions from the sample entry.
	Width  int
	Height int

	// SampleCount is the number of video samples (frames).
	SampleCount int

	// DurationMs is the track duration in milliseconds.
	DurationMs int
}

// InspectFile parses the MP4 at path and reports on its video track.
func InspectFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Inspect(f)
}

// Inspect parses MP4 data from an io.ReadSeeker.
func Inspect(reader io.ReadSeeker) (Report, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return Report{}, fmt.Errorf("decode mp4: %w", err)
	}

	if mp4File.Moov == nil {
		return Report{}, fmt.Errorf("mp4probe: no moov box found")
	}

	for _, trak := range mp4File.Moov.Traks {
		report, ok := reportFromTrack(trak)
		if ok {
			return report, nil
		}
	}

	return Report{}, fmt.Errorf("mp4probe: no video track found")
}

func reportFromTrack(trak *mp4.TrakBox) (Report, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
		return Report{}, false
	}
	if trak.Mdia.Hdlr.HandlerType != "vide" {
		return Report{}, false
	}
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return Report{}, false
	}

	report := Report{}

	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		switch child.Type() {
		case "avc1", "avc3":
			report.Codec = "h264"
		case "hvc1", "hev1":
			report.Codec = "hevc"
		case "av01":
			report.Codec = "av1"
		case "mp4v":
			report.Codec = "mpeg4"
		default:
			continue
		}
		if visual, ok := child.(*mp4.VisualSampleEntryBox); ok {
			report.Width = int(visual.Width)
			report.Height = int(visual.Height)
		}
		break
	}

	if report.Codec == "" {
		return Report{}, false
	}

	if stsz := trak.Mdia.Minf.Stbl.Stsz; stsz != nil {
		report.SampleCount = int(stsz.SampleNumber)
	}
	if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 {
		report.DurationMs = int(mdhd.Duration * 1000 / uint64(mdhd.Timescale))
	}

	return report, true
}
