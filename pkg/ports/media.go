package ports

import (
	"context"
	"image"
)

// VideoMeta describes a video stream as reported by the probing layer.
// The values are taken at face value and not independently verified.
type VideoMeta struct {
	// Width and Height are the source frame dimensions in pixels.
	Width  int
	Height int

	// FPS is the nominal frame rate reported for the stream.
	// May be 0 when the container does not declare one.
	FPS float64

	// FrameCount is the reported number of frames, or 0 when unknown.
	// Only used to size progress indicators.
	FrameCount int

	// CodecName is the video codec name (e.g. "h264").
	CodecName string

	// DurationMs is the reported stream duration in milliseconds.
	DurationMs int
}

// VideoProber reads stream metadata from a video file without decoding it.
type VideoProber interface {
	// Probe returns metadata for the first video stream of the file.
	Probe(ctx context.Context, path string) (VideoMeta, error)
}

// FrameSource reads decoded frames sequentially from a video file.
// A source is opened once per file; Open resets any previous state.
type FrameSource interface {
	// Open prepares the source for sequential reading.
	Open(ctx context.Context, path string) error

	// Meta returns the metadata reported when the source was opened.
	Meta() VideoMeta

	// ReadFrame returns the next frame in decode order.
	// Returns io.EOF once the stream is exhausted.
	ReadFrame() (image.Image, error)

	// Close releases the source. Safe to call more than once.
	Close() error
}

// FrameSink writes frames sequentially into a new video file.
// Begin resets any previous state, so a sink can be reused across files.
type FrameSink interface {
	// Begin creates the destination file and initializes encoding at the
	// given dimensions and frame rate. Any existing file is overwritten.
	Begin(path string, width, height int, fps float64) error

	// WriteFrame appends a single frame in arrival order.
	WriteFrame(img image.Image) error

	// End finalizes the container and releases resources.
	// Must be called on every exit path after a successful Begin.
	End() error
}

// FrameScaler resizes frames to target dimensions.
type FrameScaler interface {
	// Scale resizes img to width x height without preserving aspect ratio.
	Scale(img image.Image, width, height int) image.Image
}
