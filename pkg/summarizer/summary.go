// Package summarizer builds and formats summaries of batch transcode runs.
package summarizer

import "time"

// Summary contains all data collected during a batch run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Batch settings
	Settings Settings

	// Aggregate counts
	Totals Totals

	// Per-file outcomes in processing order
	Files []FileSummary
}

// Settings contains the batch configuration.
type Settings struct {
	InputDir   string
	OutputDir  string
	Resolution int
	TargetFPS  int

	// MaxFiles is the processing cap, 0 when uncapped.
	MaxFiles int
}

// Totals contains aggregate counts over the batch.
type Totals struct {
	Attempted     int
	Succeeded     int
	Failed        int
	FramesRead    int
	FramesWritten int
}

// FileSummary contains the outcome of one attempted file.
type FileSummary struct {
	RelativePath string
	OutputPath   string

	// Source stream as probed
	SourceWidth  int
	SourceHeight int
	SourceFPS    float64
	SourceFrames int

	FrameSkip     int
	FramesWritten int

	// Error is empty on success.
	Error string
}

// Succeeded reports whether the file was transcoded successfully.
func (f FileSummary) Succeeded() bool {
	return f.Error == ""
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSettings sets the batch settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// AddFile appends one file outcome and folds it into the totals.
func (b *Builder) AddFile(file FileSummary) *Builder {
	b.summary.Files = append(b.summary.Files, file)
	b.summary.Totals.Attempted++
	if file.Succeeded() {
		b.summary.Totals.Succeeded++
	} else {
		b.summary.Totals.Failed++
	}
	b.summary.Totals.FramesRead += file.SourceFrames
	b.summary.Totals.FramesWritten += file.FramesWritten
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
