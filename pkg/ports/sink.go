package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving per-file processing artifacts for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveSourceJSON saves the probed source metadata as JSON.
	SaveSourceJSON(name string, data []byte) error

	// SaveRetainedFrame saves a retained frame after resizing.
	SaveRetainedFrame(name string, index int, img image.Image) error

	// SaveContactSheet saves the contact sheet rendered for a video.
	SaveContactSheet(name string, img image.Image) error
}

// Thumbnail is a retained frame sampled for the contact sheet.
type Thumbnail struct {
	Image image.Image
	// Index is the zero-based output frame index.
	Index int
	// TimestampMs is the output timestamp at 30 fps.
	TimestampMs int
}

// SheetRenderer composes sampled frames into a labeled contact sheet.
type SheetRenderer interface {
	// Render lays out the thumbnails in a grid with caption text.
	Render(title string, thumbs []Thumbnail, columns int) (image.Image, error)
}
