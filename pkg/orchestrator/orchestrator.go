// Package orchestrator drives a batch run: scan the input tree, map each
// video to its output location, transcode one file at a time, and keep
// going when individual files fail.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ideamans/go-l10n"
	"github.com/user/vidsquare/pkg/pipeline"
	"github.com/user/vidsquare/pkg/ports"
)

// FailureLogName is the name of the failure log created in the input root.
const FailureLogName = "failed.txt"

// Config contains all configuration for a batch run.
type Config struct {
	// InputDir is the root of the tree to scan for videos.
	InputDir string

	// OutputDir is the root of the mirrored output tree.
	OutputDir string

	// Resolution is the square output resolution in pixels.
	Resolution int

	// TargetFPS is the nominal output frame rate.
	TargetFPS int

	// MaxFiles caps how many files are processed. 0 means no cap.
	MaxFiles int

	// Extensions is the case-insensitive allow-list of file extensions.
	// Empty means the default video extensions.
	Extensions []string

	// Sheet enables contact sheet generation per output video.
	Sheet bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		InputDir:   "./input",
		OutputDir:  "./output",
		Resolution: 720,
		TargetFPS:  30,
	}
}

// FileReport records the outcome of one attempted file.
type FileReport struct {
	RelativePath string
	OutputPath   string

	Meta          ports.VideoMeta
	FrameSkip     int
	FramesRead    int
	FramesWritten int

	// Err is nil when the file was transcoded successfully.
	Err error
}

// RunResult summarizes a batch run.
type RunResult struct {
	Attempted int
	Succeeded int
	Reports   []FileReport

	// Failed lists the relative paths of failed files in processing order.
	Failed []string
}

// Orchestrator coordinates the scan, plan and transcode stages over a
// batch of files.
type Orchestrator struct {
	scanStage      pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult]
	planStage      pipeline.Stage[pipeline.PlanInput, pipeline.PlanResult]
	transcodeStage pipeline.Stage[pipeline.TranscodeInput, pipeline.TranscodeResult]
	fs             ports.FileSystem
	progress       ports.ProgressReporter
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	scanStage pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult],
	planStage pipeline.Stage[pipeline.PlanInput, pipeline.PlanResult],
	transcodeStage pipeline.Stage[pipeline.TranscodeInput, pipeline.TranscodeResult],
	fs ports.FileSystem,
	progress ports.ProgressReporter,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		scanStage:      scanStage,
		planStage:      planStage,
		transcodeStage: transcodeStage,
		fs:             fs,
		progress:       progress,
		logger:         logger,
	}
}

// Run executes a complete batch. Per-file failures are recorded in the
// result and in the failure log; they never abort the batch. A non-nil
// error means the batch itself could not run (bad configuration,
// unreadable input root, cancellation).
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	result := RunResult{}

	if err := o.validate(config); err != nil {
		return result, err
	}

	if err := o.fs.MkdirAll(config.OutputDir); err != nil {
		return result, fmt.Errorf("create output directory %s: %w", config.OutputDir, err)
	}

	scan, err := o.scanStage.Execute(ctx, pipeline.ScanInput{
		Root:       config.InputDir,
		Extensions: config.Extensions,
	})
	if err != nil {
		return result, fmt.Errorf("scan %s: %w", config.InputDir, err)
	}

	if len(scan.Paths) == 0 {
		o.logger.Info(l10n.F("No video files found in %s", config.InputDir))
		return result, nil
	}

	paths := scan.Paths
	if config.MaxFiles > 0 && len(paths) > config.MaxFiles {
		paths = paths[:config.MaxFiles]
	}

	o.logger.Info(l10n.F("Found %d video(s) to process", len(paths)))
	o.logger.Info(l10n.F("Output resolution: %dx%d @ %dfps", config.Resolution, config.Resolution, config.TargetFPS))

	o.progress.StartBatch(len(paths))
	defer o.progress.FinishBatch()

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		plan, err := o.planStage.Execute(ctx, pipeline.PlanInput{
			InputRoot:  config.InputDir,
			OutputRoot: config.OutputDir,
			SourcePath: path,
			Resolution: config.Resolution,
			TargetFPS:  config.TargetFPS,
		})
		if err != nil {
			return result, fmt.Errorf("plan output for %s: %w", path, err)
		}

		o.logger.Info(l10n.F("Processing %s", plan.RelativePath))

		report := FileReport{
			RelativePath: plan.RelativePath,
			OutputPath:   plan.OutputPath,
		}
		result.Attempted++

		if err := o.transcodeFile(ctx, config, path, plan, &report); err != nil {
			if ctx.Err() != nil {
				result.Reports = append(result.Reports, report)
				return result, ctx.Err()
			}
			report.Err = err
			result.Failed = append(result.Failed, plan.RelativePath)
			o.logger.Error(l10n.F("Error processing %s: %s", plan.RelativePath, err))
			o.recordFailure(config.InputDir, plan.RelativePath)
		} else {
			result.Succeeded++
		}
		result.Reports = append(result.Reports, report)
	}

	o.logger.Info(l10n.F("Completed: %d/%d videos processed successfully", result.Succeeded, result.Attempted))
	for _, rel := range result.Failed {
		o.logger.Error(l10n.F("Failed: %s", rel))
	}

	return result, nil
}

func (o *Orchestrator) validate(config Config) error {
	if config.Resolution <= 0 {
		return fmt.Errorf("resolution must be positive, got %d", config.Resolution)
	}
	if config.TargetFPS <= 0 {
		return fmt.Errorf("target fps must be positive, got %d", config.TargetFPS)
	}
	if config.MaxFiles < 0 {
		return fmt.Errorf("file cap must be positive, got %d", config.MaxFiles)
	}
	isDir, err := o.fs.IsDir(config.InputDir)
	if err != nil {
		return fmt.Errorf("input directory %s: %w", config.InputDir, err)
	}
	if !isDir {
		return fmt.Errorf("input directory %s does not exist", config.InputDir)
	}
	return nil
}

// transcodeFile runs one file through the transcode stage. A panic in
// the stage or its adapters is converted to an error so the batch can
// continue with the next file.
func (o *Orchestrator) transcodeFile(ctx context.Context, config Config, path string, plan pipeline.PlanResult, report *FileReport) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected fault: %v", r)
		}
	}()

	if err := o.fs.MkdirAll(plan.OutputDir); err != nil {
		return fmt.Errorf("create output directory %s: %w", plan.OutputDir, err)
	}

	transcoded, err := o.transcodeStage.Execute(ctx, pipeline.TranscodeInput{
		SourcePath: path,
		OutputPath: plan.OutputPath,
		Name:       plan.RelativePath,
		Resolution: config.Resolution,
		TargetFPS:  float64(config.TargetFPS),
		Sheet:      config.Sheet,
	})
	report.Meta = transcoded.Meta
	report.FrameSkip = transcoded.FrameSkip
	report.FramesRead = transcoded.FramesRead
	report.FramesWritten = transcoded.FramesWritten
	return err
}

// recordFailure appends one line to the failure log in the input root.
// Log write failures are reported but never fail the batch.
func (o *Orchestrator) recordFailure(inputDir, relativePath string) {
	logPath := filepath.Join(inputDir, FailureLogName)
	if err := o.fs.AppendLine(logPath, relativePath+" (resize failed)"); err != nil {
		o.logger.Warn(l10n.F("Failed to write failure log: %s", err))
	}
}
