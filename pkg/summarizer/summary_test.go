package summarizer

import (
	"testing"
)

func TestBuilder_FoldsTotals(t *testing.T) {
	summary := NewBuilder().
		WithSettings(Settings{
			InputDir:   "in",
			OutputDir:  "out",
			Resolution: 720,
			TargetFPS:  30,
		}).
		AddFile(FileSummary{
			RelativePath:  "a.mp4",
			SourceFrames:  120,
			FrameSkip:     2,
			FramesWritten: 60,
		}).
		AddFile(FileSummary{
			RelativePath: "b.mp4",
			Error:        "moov atom not found",
		}).
		Build()

	if summary.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
	if summary.Settings.Resolution != 720 {
		t.Errorf("Resolution = %d, want 720", summary.Settings.Resolution)
	}

	totals := summary.Totals
	if totals.Attempted != 2 {
		t.Errorf("Attempted = %d, want 2", totals.Attempted)
	}
	if totals.Succeeded != 1 {
		t.Errorf("Succeeded = %d, want 1", totals.Succeeded)
	}
	if totals.Failed != 1 {
		t.Errorf("Failed = %d, want 1", totals.Failed)
	}
	if totals.FramesRead != 120 {
		t.Errorf("FramesRead = %d, want 120", totals.FramesRead)
	}
	if totals.FramesWritten != 60 {
		t.Errorf("FramesWritten = %d, want 60", totals.FramesWritten)
	}
}

func TestFileSummary_Succeeded(t *testing.T) {
	if !(FileSummary{}).Succeeded() {
		t.Error("empty error must mean success")
	}
	if (FileSummary{Error: "broken"}).Succeeded() {
		t.Error("non-empty error must mean failure")
	}
}
