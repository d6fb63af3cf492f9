package pipeline

import (
	"github.com/user/vidsquare/pkg/ports"
)

// =============================================================================
// Scan Stage Types
// =============================================================================

// ScanInput contains parameters for the directory scan.
type ScanInput struct {
	// Root is the input directory to scan recursively.
	Root string

	// Extensions is the case-insensitive allow-list of file extensions,
	// each including the leading dot.
	Extensions []string
}

// ScanResult contains the scan output.
type ScanResult struct {
	// Paths is the deduplicated, lexicographically sorted list of
	// video file paths found under Root. The ordering is a visible
	// contract: it determines processing order.
	Paths []string
}

// =============================================================================
// Plan Stage Types
// =============================================================================

// PlanInput contains parameters for output path mapping of one file.
type PlanInput struct {
	InputRoot  string
	OutputRoot string
	SourcePath string

	// Resolution is the square output resolution in pixels.
	Resolution int

	// TargetFPS is the nominal output frame rate.
	TargetFPS int
}

// PlanResult contains the computed output locations for one file.
type PlanResult struct {
	// RelativePath is the source path relative to the input root.
	RelativePath string

	// OutputDir mirrors the source's relative directory under the
	// output root.
	OutputDir string

	// OutputPath is OutputDir joined with the output file name
	// ({stem}_{resolution}_{fps}.mp4).
	OutputPath string
}

// =============================================================================
// Transcode Stage Types
// =============================================================================

// TranscodeInput contains parameters for transcoding one file.
type TranscodeInput struct {
	SourcePath string
	OutputPath string

	// Name is the display name used for progress and debug artifacts
	// (typically the relative source path).
	Name string

	// Resolution is the square output resolution in pixels.
	Resolution int

	// TargetFPS is the nominal output frame rate.
	TargetFPS float64

	// Sheet enables contact sheet generation for this file.
	Sheet bool
}

// TranscodeResult contains the outcome of a single transcode.
type TranscodeResult struct {
	// Meta is the source metadata as reported by the probing layer.
	Meta ports.VideoMeta

	// FrameSkip is the stride applied to the source frame index.
	// Constant for the whole stream and always >= 1.
	FrameSkip int

	// FramesRead is the number of frames consumed from the source,
	// including skipped frames.
	FramesRead int

	// FramesWritten is the number of frames appended to the output.
	FramesWritten int
}
