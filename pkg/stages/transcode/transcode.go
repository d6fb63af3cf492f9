// Package transcode implements the per-file transcoding stage: read
// frames sequentially, drop frames to approximate the target rate,
// resize the rest to a square, and write them to a new container.
package transcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/user/vidsquare/pkg/pipeline"
	"github.com/user/vidsquare/pkg/ports"
)

// maxSheetThumbs caps how many frames a contact sheet samples.
const maxSheetThumbs = 16

// FrameSkip returns the stride applied to the source frame index to
// approximate targetFPS by discarding frames. Rounding is half away
// from zero; the result is clamped to a minimum of 1, so a source with
// an unknown or low rate keeps every frame.
func FrameSkip(sourceFPS, targetFPS float64) int {
	if targetFPS <= 0 {
		return 1
	}
	skip := int(math.Round(sourceFPS / targetFPS))
	if skip < 1 {
		return 1
	}
	return skip
}

// ExpectedFrames returns the number of output frames for a source with
// frameCount frames at the given skip: ceil(frameCount / skip).
// Returns 0 when the source frame count is unknown.
func ExpectedFrames(frameCount, skip int) int {
	if frameCount <= 0 || skip <= 0 {
		return 0
	}
	return (frameCount + skip - 1) / skip
}

// Stage transcodes one video file per Execute call.
type Stage struct {
	source   ports.FrameSource
	sink     ports.FrameSink
	scaler   ports.FrameScaler
	sheet    ports.SheetRenderer
	debug    ports.DebugSink
	progress ports.ProgressReporter
	logger   ports.Logger
}

// New creates a new transcode stage.
func New(
	source ports.FrameSource,
	sink ports.FrameSink,
	scaler ports.FrameScaler,
	sheet ports.SheetRenderer,
	debug ports.DebugSink,
	progress ports.ProgressReporter,
	logger ports.Logger,
) *Stage {
	return &Stage{
		source:   source,
		sink:     sink,
		scaler:   scaler,
		sheet:    sheet,
		debug:    debug,
		progress: progress,
		logger:   logger.WithComponent("transcode"),
	}
}

// Execute transcodes input.SourcePath into input.OutputPath.
// Both streams are released on every exit path.
func (s *Stage) Execute(ctx context.Context, input pipeline.TranscodeInput) (pipeline.TranscodeResult, error) {
	result := pipeline.TranscodeResult{}

	if err := s.source.Open(ctx, input.SourcePath); err != nil {
		return result, fmt.Errorf("open source %s: %w", input.SourcePath, err)
	}
	defer s.source.Close()

	meta := s.source.Meta()
	result.Meta = meta
	s.logger.Debug("Source: %dx%d @ %.2f fps, %d frames", meta.Width, meta.Height, meta.FPS, meta.FrameCount)

	if meta.FPS == 0 {
		s.logger.Warn("Source reports no frame rate, keeping every frame")
	}

	skip := FrameSkip(meta.FPS, input.TargetFPS)
	result.FrameSkip = skip
	s.logger.Debug("Frame skip factor: %d", skip)

	if s.debug.Enabled() {
		if data, err := json.Marshal(meta); err == nil {
			if err := s.debug.SaveSourceJSON(input.Name, data); err != nil {
				s.logger.Warn("Failed to save debug output: %s", err)
			}
		}
	}

	if err := s.sink.Begin(input.OutputPath, input.Resolution, input.Resolution, input.TargetFPS); err != nil {
		return result, fmt.Errorf("open destination %s: %w", input.OutputPath, err)
	}

	// The sink must be finalized exactly once on every exit path.
	ended := false
	var endErr error
	end := func() error {
		if !ended {
			ended = true
			endErr = s.sink.End()
		}
		return endErr
	}
	defer end()

	expected := ExpectedFrames(meta.FrameCount, skip)
	s.progress.StartFile(input.Name, expected)
	defer s.progress.FinishFile()

	thumbStride := sheetStride(expected)
	var thumbs []ports.Thumbnail

	index := 0
	written := 0
	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frame, err := s.source.ReadFrame()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.FramesRead = index
			result.FramesWritten = written
			return result, fmt.Errorf("read frame %d: %w", index, err)
		}

		if index%skip == 0 {
			resized := s.scaler.Scale(frame, input.Resolution, input.Resolution)
			if err := s.sink.WriteFrame(resized); err != nil {
				result.FramesRead = index + 1
				result.FramesWritten = written
				return result, fmt.Errorf("write frame %d: %w", written, err)
			}

			if s.debug.Enabled() {
				if err := s.debug.SaveRetainedFrame(input.Name, written, resized); err != nil {
					s.logger.Warn("Failed to save debug output: %s", err)
				}
			}
			if input.Sheet && written%thumbStride == 0 && len(thumbs) < maxSheetThumbs {
				thumbs = append(thumbs, ports.Thumbnail{
					Image:       resized,
					Index:       written,
					TimestampMs: outputTimestampMs(written, input.TargetFPS),
				})
			}

			written++
			s.progress.Advance(1)
		}

		index++
	}

	result.FramesRead = index
	result.FramesWritten = written

	if err := end(); err != nil {
		return result, fmt.Errorf("finalize destination %s: %w", input.OutputPath, err)
	}
	if err := s.source.Close(); err != nil {
		return result, fmt.Errorf("close source %s: %w", input.SourcePath, err)
	}

	s.logger.Debug("Wrote %d of %d frames", written, index)

	if input.Sheet && len(thumbs) > 0 {
		s.saveSheet(input.Name, thumbs)
	}

	return result, nil
}

// saveSheet renders and stores the contact sheet. Sheet failures are
// logged but never fail the transcode.
func (s *Stage) saveSheet(name string, thumbs []ports.Thumbnail) {
	img, err := s.sheet.Render(name, thumbs, 4)
	if err != nil {
		s.logger.Warn("Failed to save debug output: %s", err)
		return
	}
	if err := s.debug.SaveContactSheet(name, img); err != nil {
		s.logger.Warn("Failed to save debug output: %s", err)
	}
}

// sheetStride spaces sampled thumbnails evenly over the expected output.
func sheetStride(expected int) int {
	if expected <= 0 {
		return 30
	}
	stride := expected / maxSheetThumbs
	if stride < 1 {
		return 1
	}
	return stride
}

func outputTimestampMs(index int, fps float64) int {
	if fps <= 0 {
		return 0
	}
	return int(math.Round(float64(index) * 1000 / fps))
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.TranscodeInput, pipeline.TranscodeResult] = (*Stage)(nil)
