package transcode

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/user/vidsquare/pkg/adapters/logger"
	"github.com/user/vidsquare/pkg/mocks"
	"github.com/user/vidsquare/pkg/pipeline"
	"github.com/user/vidsquare/pkg/ports"
)

func TestFrameSkip(t *testing.T) {
	tests := []struct {
		name      string
		sourceFPS float64
		want      int
	}{
		{"60 to 30", 60, 2},
		{"30 to 30", 30, 1},
		{"24 clamps to 1", 24, 1},
		{"zero rate clamps to 1", 0, 1},
		{"ntsc 29.97", 29.97, 1},
		{"ntsc 59.94", 59.94, 2},
		{"45 rounds half away from zero", 45, 2},
		{"75 rounds half away from zero", 75, 3},
		{"120 to 30", 120, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameSkip(tt.sourceFPS, 30); got != tt.want {
				t.Errorf("FrameSkip(%v, 30) = %d, want %d", tt.sourceFPS, got, tt.want)
			}
		})
	}
}

func TestExpectedFrames(t *testing.T) {
	tests := []struct {
		frameCount int
		skip       int
		want       int
	}{
		{120, 2, 60},
		{121, 2, 61},
		{120, 1, 120},
		{7, 3, 3},
		{0, 2, 0},
	}

	for _, tt := range tests {
		if got := ExpectedFrames(tt.frameCount, tt.skip); got != tt.want {
			t.Errorf("ExpectedFrames(%d, %d) = %d, want %d", tt.frameCount, tt.skip, got, tt.want)
		}
	}
}

func newStage(source *mocks.FrameSource, sink *mocks.FrameSink) (*Stage, *mocks.FrameScaler, *mocks.Progress) {
	scaler := &mocks.FrameScaler{}
	progress := &mocks.Progress{}
	stage := New(
		source,
		sink,
		scaler,
		&mocks.SheetRenderer{},
		&mocks.DebugSink{},
		progress,
		logger.NewNoop(),
	)
	return stage, scaler, progress
}

func TestStage_Execute_DropsFramesToTargetRate(t *testing.T) {
	// 60 fps source with 120 frames: every other frame is retained.
	source := &mocks.FrameSource{
		MetaValue: ports.VideoMeta{Width: 2012, Height: 2012, FPS: 60, FrameCount: 120},
		Frames:    120,
	}
	sink := &mocks.FrameSink{}
	stage, scaler, progress := newStage(source, sink)

	result, err := stage.Execute(context.Background(), pipeline.TranscodeInput{
		SourcePath: "input/a.mp4",
		OutputPath: "output/a_720_30.mp4",
		Name:       "a.mp4",
		Resolution: 720,
		TargetFPS:  30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FrameSkip != 2 {
		t.Errorf("FrameSkip = %d, want 2", result.FrameSkip)
	}
	if result.FramesRead != 120 {
		t.Errorf("FramesRead = %d, want 120", result.FramesRead)
	}
	if result.FramesWritten != 60 {
		t.Errorf("FramesWritten = %d, want 60", result.FramesWritten)
	}
	if len(sink.Written) != 60 {
		t.Errorf("sink received %d frames, want 60", len(sink.Written))
	}

	for i, call := range scaler.ScaleCalls {
		if call.Width != 720 || call.Height != 720 {
			t.Fatalf("scale call %d was %dx%d, want 720x720", i, call.Width, call.Height)
		}
	}

	if len(sink.BeginCalls) != 1 {
		t.Fatalf("expected 1 Begin call, got %d", len(sink.BeginCalls))
	}
	begin := sink.BeginCalls[0]
	if begin.Path != "output/a_720_30.mp4" {
		t.Errorf("Begin path = %q", begin.Path)
	}
	if begin.Width != 720 || begin.Height != 720 || begin.FPS != 30 {
		t.Errorf("Begin(%d, %d, %v), want (720, 720, 30)", begin.Width, begin.Height, begin.FPS)
	}
	if !sink.EndCalled {
		t.Error("expected sink to be finalized")
	}
	if !source.CloseCalled {
		t.Error("expected source to be closed")
	}

	if progress.Advanced != 60 {
		t.Errorf("progress advanced %d frames, want 60", progress.Advanced)
	}
	if len(progress.StartedFiles) != 1 || progress.StartedFiles[0].TotalFrames != 60 {
		t.Errorf("expected StartFile with 60 expected frames, got %+v", progress.StartedFiles)
	}
	if progress.FilesFinished != 1 {
		t.Errorf("FilesFinished = %d, want 1", progress.FilesFinished)
	}
}

func TestStage_Execute_OddFrameCountRoundsUp(t *testing.T) {
	// ceil(121 / 2) = 61: indexes 0, 2, ..., 120.
	source := &mocks.FrameSource{
		MetaValue: ports.VideoMeta{Width: 64, Height: 64, FPS: 60, FrameCount: 121},
		Frames:    121,
	}
	sink := &mocks.FrameSink{}
	stage, _, _ := newStage(source, sink)

	result, err := stage.Execute(context.Background(), pipeline.TranscodeInput{
		SourcePath: "a.mp4", OutputPath: "out.mp4", Name: "a.mp4", Resolution: 360, TargetFPS: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FramesWritten != 61 {
		t.Errorf("FramesWritten = %d, want 61", result.FramesWritten)
	}
}

func TestStage_Execute_ZeroRateKeepsEveryFrame(t *testing.T) {
	source := &mocks.FrameSource{
		MetaValue: ports.VideoMeta{Width: 64, Height: 48, FPS: 0, FrameCount: 10},
		Frames:    10,
	}
	sink := &mocks.FrameSink{}
	stage, _, _ := newStage(source, sink)

	result, err := stage.Execute(context.Background(), pipeline.TranscodeInput{
		SourcePath: "a.mp4", OutputPath: "out.mp4", Name: "a.mp4", Resolution: 360, TargetFPS: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FrameSkip != 1 {
		t.Errorf("FrameSkip = %d, want 1", result.FrameSkip)
	}
	if result.FramesWritten != 10 {
		t.Errorf("FramesWritten = %d, want 10", result.FramesWritten)
	}
}

func TestStage_Execute_OpenSourceFails(t *testing.T) {
	source := &mocks.FrameSource{
		OpenFunc: func(ctx context.Context, path string) error {
			return errors.New("no such file")
		},
	}
	sink := &mocks.FrameSink{}
	stage, _, _ := newStage(source, sink)

	_, err := stage.Execute(context.Background(), pipeline.TranscodeInput{
		SourcePath: "input/missing.mp4", OutputPath: "out.mp4", Name: "missing.mp4",
		Resolution: 720, TargetFPS: 30,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "input/missing.mp4") {
		t.Errorf("error %q does not name the source path", err)
	}
	if len(sink.BeginCalls) != 0 {
		t.Error("destination must not be opened when the source fails")
	}
}

func TestStage_Execute_OpenDestinationFailsReleasesSource(t *testing.T) {
	source := &mocks.FrameSource{
		MetaValue: ports.VideoMeta{Width: 64, Height: 64, FPS: 30, FrameCount: 5},
		Frames:    5,
	}
	sink := &mocks.FrameSink{
		BeginFunc: func(path string, width, height int, fps float64) error {
			return errors.New("permission denied")
		},
	}
	stage, _, _ := newStage(source, sink)

	_, err := stage.Execute(context.Background(), pipeline.TranscodeInput{
		SourcePath: "a.mp4", OutputPath: "ro/out.mp4", Name: "a.mp4", Resolution: 720, TargetFPS: 30,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "ro/out.mp4") {
		t.Errorf("error %q does not name the destination", err)
	}
	if !source.CloseCalled {
		t.Error("source must be released when the destination fails to open")
	}
}

func TestStage_Execute_WriteFailure(t *testing.T) {
	source := &mocks.FrameSource{
		MetaValue: ports.VideoMeta{Width: 64, Height: 64, FPS: 30, FrameCount: 5},
		Frames:    5,
	}
	writeErr := errors.New("pipe closed")
	calls := 0
	sink := &mocks.FrameSink{
		WriteFunc: func(img image.Image) error {
			calls++
			if calls == 3 {
				return writeErr
			}
			return nil
		},
	}
	stage, _, _ := newStage(source, sink)

	_, err := stage.Execute(context.Background(), pipeline.TranscodeInput{
		SourcePath: "a.mp4", OutputPath: "out.mp4", Name: "a.mp4", Resolution: 720, TargetFPS: 30,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, writeErr) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
	if !sink.EndCalled {
		t.Error("sink must be finalized after a write failure")
	}
	if !source.CloseCalled {
		t.Error("source must be closed after a write failure")
	}
}

func TestStage_Execute_ContextCancelled(t *testing.T) {
	source := &mocks.FrameSource{
		MetaValue: ports.VideoMeta{Width: 64, Height: 64, FPS: 30, FrameCount: 100},
		Frames:    100,
	}
	sink := &mocks.FrameSink{}
	stage, _, _ := newStage(source, sink)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.TranscodeInput{
		SourcePath: "a.mp4", OutputPath: "out.mp4", Name: "a.mp4", Resolution: 720, TargetFPS: 30,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !sink.EndCalled {
		t.Error("sink must be finalized on cancellation")
	}
	if !source.CloseCalled {
		t.Error("source must be closed on cancellation")
	}
}

func TestStage_Execute_DebugArtifacts(t *testing.T) {
	source := &mocks.FrameSource{
		MetaValue: ports.VideoMeta{Width: 64, Height: 64, FPS: 30, FrameCount: 4},
		Frames:    4,
	}
	sink := &mocks.FrameSink{}
	debug := mocks.NewDebugSink()
	stage := New(source, sink, &mocks.FrameScaler{}, &mocks.SheetRenderer{}, debug, &mocks.Progress{}, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.TranscodeInput{
		SourcePath: "a.mp4", OutputPath: "out.mp4", Name: "a.mp4", Resolution: 360, TargetFPS: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := debug.SourceJSON["a.mp4"]; !ok {
		t.Error("expected source metadata to be saved")
	}
	if len(debug.RetainedFrames) != 4 {
		t.Errorf("expected 4 retained frames, got %d", len(debug.RetainedFrames))
	}
}

func TestStage_Execute_ContactSheet(t *testing.T) {
	source := &mocks.FrameSource{
		MetaValue: ports.VideoMeta{Width: 64, Height: 64, FPS: 60, FrameCount: 120},
		Frames:    120,
	}
	sink := &mocks.FrameSink{}
	renderer := &mocks.SheetRenderer{}
	debug := mocks.NewDebugSink()
	stage := New(source, sink, &mocks.FrameScaler{}, renderer, debug, &mocks.Progress{}, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.TranscodeInput{
		SourcePath: "a.mp4", OutputPath: "out.mp4", Name: "a.mp4",
		Resolution: 720, TargetFPS: 30, Sheet: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(renderer.RenderCalls) != 1 {
		t.Fatalf("expected 1 render call, got %d", len(renderer.RenderCalls))
	}
	if n := renderer.RenderCalls[0].Thumbs; n == 0 || n > maxSheetThumbs {
		t.Errorf("expected between 1 and %d thumbnails, got %d", maxSheetThumbs, n)
	}
	if _, ok := debug.Sheets["a.mp4"]; !ok {
		t.Error("expected contact sheet to be saved")
	}
}
