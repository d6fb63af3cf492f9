// Package main provides the CLI entry point for vidsquare.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/vidsquare/pkg/adapters/consoleprogress"
	"github.com/user/vidsquare/pkg/adapters/ffmpegdecoder"
	"github.com/user/vidsquare/pkg/adapters/ffmpegencoder"
	"github.com/user/vidsquare/pkg/adapters/ffprobe"
	"github.com/user/vidsquare/pkg/adapters/filesink"
	"github.com/user/vidsquare/pkg/adapters/imagingscaler"
	"github.com/user/vidsquare/pkg/adapters/logger"
	"github.com/user/vidsquare/pkg/adapters/mp4probe"
	"github.com/user/vidsquare/pkg/adapters/nullsink"
	"github.com/user/vidsquare/pkg/adapters/osfilesystem"
	"github.com/user/vidsquare/pkg/adapters/sheetrenderer"
	"github.com/user/vidsquare/pkg/config"
	"github.com/user/vidsquare/pkg/orchestrator"
	"github.com/user/vidsquare/pkg/ports"
	"github.com/user/vidsquare/pkg/stages/plan"
	"github.com/user/vidsquare/pkg/stages/scan"
	"github.com/user/vidsquare/pkg/stages/transcode"
	"github.com/user/vidsquare/pkg/summarizer"
	"github.com/user/vidsquare/pkg/vidsquare"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Run     RunCmd     `cmd:"" help:"Transcode all videos under the input directory."`
	Probe   ProbeCmd   `cmd:"" help:"Print metadata for a single video file."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// RunCmd defines the run subcommand.
type RunCmd struct {
	// Input/Output (override config file values)
	Input  *string `short:"i" help:"Input directory to scan for videos (default: ./input)."`
	Output *string `short:"o" help:"Output directory for transcoded videos (default: ./output)."`

	// Format
	Resolution *int `short:"r" help:"Square output resolution: 360, 480 or 720 (default: 720)."`

	// Processing
	Test *int `short:"t" help:"Process only the first N videos found."`

	// Config file
	Config string `help:"YAML configuration file."`

	// Debug options
	Sheet    bool   `help:"Save a contact sheet image per output video."`
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Summary output
	Summary string `short:"s" help:"Output execution summary to file (Markdown format)."`

	// Tool paths
	FFmpegPath  string `help:"Path to ffmpeg executable (falls back to FFMPEG_PATH env, then system default)."`
	FFprobePath string `help:"Path to ffprobe executable (falls back to FFPROBE_PATH env, then system default)."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// ProbeCmd defines the probe subcommand.
type ProbeCmd struct {
	Path string `arg:"" help:"Video file to inspect."`

	FFprobePath string `help:"Path to ffprobe executable."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("vidsquare"),
		kong.Description("Batch transcode videos to square resolution at 30 fps."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the run command.
func (cmd *RunCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	if cfg.FFmpegPath != "" {
		ffmpegdecoder.SetFFmpegPath(cfg.FFmpegPath)
	}
	if cfg.FFprobePath != "" {
		ffprobe.SetFFprobePath(cfg.FFprobePath)
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()
	decoder := ffmpegdecoder.New()
	encoder := ffmpegencoder.New()
	scaler := imagingscaler.New()
	renderer := sheetrenderer.New()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug || cfg.Sheet {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, filesink.Options{
			Frames: cfg.Debug,
			Sheets: cfg.Sheet,
		})
	} else {
		sink = nullsink.New()
	}

	// Create progress reporter
	var progress ports.ProgressReporter
	if cmd.Quiet {
		progress = consoleprogress.NewNoop()
	} else {
		progress = consoleprogress.New()
	}

	// Create stages
	scanStage := scan.NewStage(fs)
	planStage := plan.NewStage()
	transcodeStage := transcode.New(decoder, encoder, scaler, renderer, sink, progress, log)

	// Create orchestrator
	orch := orchestrator.New(
		scanStage,
		planStage,
		transcodeStage,
		fs,
		progress,
		log,
	)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	if cmd.Summary != "" {
		if err := cmd.writeSummary(cfg, result); err != nil {
			log.Warn(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", cmd.Summary))
		}
	}

	if len(result.Failed) > 0 {
		return errors.New(l10n.F("%d of %d videos failed", len(result.Failed), result.Attempted))
	}
	return nil
}

// buildConfig layers CLI flags over the config file and defaults.
func (cmd *RunCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", cmd.Config, err)
		}
		cfg = loaded
	}

	if cmd.Input != nil {
		cfg.InputDir = *cmd.Input
	}
	if cmd.Output != nil {
		cfg.OutputDir = *cmd.Output
	}
	if cmd.Resolution != nil {
		cfg.Resolution = *cmd.Resolution
	}
	if cmd.Test != nil {
		cfg.MaxFiles = *cmd.Test
	}
	if cmd.Sheet {
		cfg.Sheet = true
	}
	if cmd.Debug {
		cfg.Debug = true
	}
	if cmd.DebugDir != "" {
		cfg.DebugDir = cmd.DebugDir
	}
	if cmd.FFmpegPath != "" {
		cfg.FFmpegPath = cmd.FFmpegPath
	}
	if cmd.FFprobePath != "" {
		cfg.FFprobePath = cmd.FFprobePath
	}

	if !vidsquare.IsSupportedResolution(cfg.Resolution) {
		return cfg, errors.New(l10n.F("unsupported resolution %d, must be one of %v", cfg.Resolution, vidsquare.SupportedResolutions))
	}
	if cmd.Test != nil && *cmd.Test <= 0 {
		return cfg, errors.New(l10n.F("test count must be positive, got %d", *cmd.Test))
	}

	return cfg, nil
}

// writeSummary builds and writes the Markdown run summary.
func (cmd *RunCmd) writeSummary(cfg config.Config, result orchestrator.RunResult) error {
	builder := summarizer.NewBuilder().
		WithSettings(summarizer.Settings{
			InputDir:   cfg.InputDir,
			OutputDir:  cfg.OutputDir,
			Resolution: cfg.Resolution,
			TargetFPS:  cfg.FPS,
			MaxFiles:   cfg.MaxFiles,
		})

	for _, report := range result.Reports {
		file := summarizer.FileSummary{
			RelativePath:  report.RelativePath,
			OutputPath:    report.OutputPath,
			SourceWidth:   report.Meta.Width,
			SourceHeight:  report.Meta.Height,
			SourceFPS:     report.Meta.FPS,
			SourceFrames:  report.Meta.FrameCount,
			FrameSkip:     report.FrameSkip,
			FramesWritten: report.FramesWritten,
		}
		if report.Err != nil {
			file.Error = report.Err.Error()
		}
		builder.AddFile(file)
	}

	formatter := summarizer.NewMarkdownFormatter(summarizer.WithTranslator(l10n.T))
	writer := summarizer.NewWriter(formatter)
	return writer.Write(cmd.Summary, builder.Build())
}

// Run executes the probe command.
func (cmd *ProbeCmd) Run() error {
	if cmd.FFprobePath != "" {
		ffprobe.SetFFprobePath(cmd.FFprobePath)
	}

	meta, err := ffprobe.New().Probe(context.Background(), cmd.Path)
	if err != nil {
		return fmt.Errorf("probe %s: %w", cmd.Path, err)
	}

	fmt.Printf("%s: %s\n", l10n.T("File"), cmd.Path)
	fmt.Printf("%s: %s\n", l10n.T("Codec"), meta.CodecName)
	fmt.Printf("%s: %dx%d\n", l10n.T("Dimensions"), meta.Width, meta.Height)
	fmt.Printf("%s: %.2f fps\n", l10n.T("Frame Rate"), meta.FPS)
	fmt.Printf("%s: %d\n", l10n.T("Frame Count"), meta.FrameCount)
	fmt.Printf("%s: %d ms\n", l10n.T("Duration"), meta.DurationMs)

	// MP4 containers also get a container-level report.
	if report, err := mp4probe.InspectFile(cmd.Path); err == nil {
		fmt.Printf("%s: %s, %d %s, %d ms\n", l10n.T("Container"), report.Codec, report.SampleCount, l10n.T("samples"), report.DurationMs)
	}

	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("vidsquare (Go) version %s", version))
	return nil
}
