// Package integration contains integration tests for the vidsquare pipeline.
package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/user/vidsquare/pkg/adapters/logger"
	"github.com/user/vidsquare/pkg/mocks"
	"github.com/user/vidsquare/pkg/orchestrator"
	"github.com/user/vidsquare/pkg/pipeline"
	"github.com/user/vidsquare/pkg/ports"
	"github.com/user/vidsquare/pkg/stages/plan"
	"github.com/user/vidsquare/pkg/stages/scan"
	"github.com/user/vidsquare/pkg/stages/transcode"
)

// TestScanToPlan runs the scanner over a mock tree and maps every hit
// to its output location.
func TestScanToPlan(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.MkdirAll("in")
	fs.WriteFile("in/a.mp4", []byte{0})
	fs.WriteFile("in/sub/b.MOV", []byte{0})
	fs.WriteFile("in/sub/notes.txt", []byte{0})

	scanStage := scan.NewStage(fs)
	planStage := plan.NewStage()
	ctx := context.Background()

	scanned, err := scanStage.Execute(ctx, pipeline.ScanInput{Root: "in"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(scanned.Paths) != 2 {
		t.Fatalf("scan found %d files, want 2: %v", len(scanned.Paths), scanned.Paths)
	}

	var outputs []string
	for _, path := range scanned.Paths {
		planned, err := planStage.Execute(ctx, pipeline.PlanInput{
			InputRoot:  "in",
			OutputRoot: "out",
			SourcePath: path,
			Resolution: 720,
			TargetFPS:  30,
		})
		if err != nil {
			t.Fatalf("plan %s: %v", path, err)
		}
		outputs = append(outputs, planned.OutputPath)
	}

	want := []string{"out/a_720_30.mp4", "out/sub/b_720_30.mp4"}
	for i, w := range want {
		if outputs[i] != w {
			t.Errorf("output[%d] = %q, want %q", i, outputs[i], w)
		}
	}
}

// TestFullBatch drives scan, plan and transcode through the
// orchestrator with mock frame IO.
func TestFullBatch(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.MkdirAll("in")
	fs.WriteFile("in/clip.mp4", []byte{0})
	fs.WriteFile("in/nested/other.avi", []byte{0})

	source := &mocks.FrameSource{
		MetaValue: ports.VideoMeta{Width: 640, Height: 480, FPS: 60, FrameCount: 120},
		Frames:    120,
	}
	sink := &mocks.FrameSink{}

	transcodeStage := transcode.New(
		source,
		sink,
		&mocks.FrameScaler{},
		&mocks.SheetRenderer{},
		&mocks.DebugSink{},
		&mocks.Progress{},
		logger.NewNoop(),
	)

	orch := orchestrator.New(
		scan.NewStage(fs),
		plan.NewStage(),
		transcodeStage,
		fs,
		&mocks.Progress{},
		logger.NewNoop(),
	)

	config := orchestrator.DefaultConfig()
	config.InputDir = "in"
	config.OutputDir = "out"
	config.Resolution = 480

	result, err := orch.Run(context.Background(), config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Attempted != 2 || result.Succeeded != 2 {
		t.Errorf("Attempted=%d Succeeded=%d, want 2/2", result.Attempted, result.Succeeded)
	}

	// Each file got its square output path under the mirrored tree.
	if len(sink.BeginCalls) == 0 {
		t.Fatal("expected sink to be opened")
	}
	last := sink.BeginCalls[len(sink.BeginCalls)-1]
	if last.Width != 480 || last.Height != 480 || last.FPS != 30 {
		t.Errorf("Begin(%d, %d, %v), want (480, 480, 30)", last.Width, last.Height, last.FPS)
	}
	if !strings.HasPrefix(last.Path, "out/") || !strings.HasSuffix(last.Path, "_480_30.mp4") {
		t.Errorf("output path = %q", last.Path)
	}

	// Output directories were created for both the root and the
	// nested mirror.
	dirs := fs.MkdirAllCalls()
	found := false
	for _, d := range dirs {
		if d == "out/nested" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected out/nested to be created, got %v", dirs)
	}
}

// TestFullBatch_FailureIsRecorded checks the failure log across the
// whole pipeline.
func TestFullBatch_FailureIsRecorded(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.MkdirAll("in")
	fs.WriteFile("in/broken.mp4", []byte{0})
	fs.WriteFile("in/fine.mp4", []byte{0})

	source := &mocks.FrameSource{
		MetaValue: ports.VideoMeta{Width: 64, Height: 64, FPS: 30, FrameCount: 5},
		Frames:    5,
		OpenFunc: func(ctx context.Context, path string) error {
			if strings.Contains(path, "broken") {
				return context.DeadlineExceeded
			}
			return nil
		},
	}
	sink := &mocks.FrameSink{}

	transcodeStage := transcode.New(
		source,
		sink,
		&mocks.FrameScaler{},
		&mocks.SheetRenderer{},
		&mocks.DebugSink{},
		&mocks.Progress{},
		logger.NewNoop(),
	)

	orch := orchestrator.New(
		scan.NewStage(fs),
		plan.NewStage(),
		transcodeStage,
		fs,
		&mocks.Progress{},
		logger.NewNoop(),
	)

	config := orchestrator.DefaultConfig()
	config.InputDir = "in"
	config.OutputDir = "out"

	result, err := orch.Run(context.Background(), config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Succeeded != 1 || len(result.Failed) != 1 {
		t.Fatalf("Succeeded=%d Failed=%v, want 1 and [broken.mp4]", result.Succeeded, result.Failed)
	}

	data, ok := fs.GetFile("in/failed.txt")
	if !ok {
		t.Fatal("expected failure log")
	}
	if got, want := string(data), "broken.mp4 (resize failed)\n"; got != want {
		t.Errorf("failure log = %q, want %q", got, want)
	}
}
