// Package ffmpegencoder provides H.264/MP4 video writing using an ffmpeg
// external process fed raw RGBA frames over stdin.
package ffmpegencoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"

	"github.com/user/vidsquare/pkg/adapters/ffmpegdecoder"
	"github.com/user/vidsquare/pkg/ports"
)

var (
	// ErrNotInitialized is returned when writing before a successful Begin.
	ErrNotInitialized = errors.New("ffmpegencoder: encoder not initialized")
)

// Encoder implements ports.FrameSink using ffmpeg.
// Begin resets all state, so one Encoder can be reused across files.
type Encoder struct {
	width  int
	height int

	cmd        *exec.Cmd
	stdin      io.WriteCloser
	stderr     bytes.Buffer
	outputPath string
	frameCount int
	open       bool
}

// New creates a new Encoder.
func New() *Encoder {
	return &Encoder{}
}

// Begin creates the destination file and starts the encoding process at
// the given dimensions and frame rate. Any existing file is overwritten.
func (e *Encoder) Begin(path string, width, height int, fps float64) error {
	if e.open {
		e.End()
	}

	ffmpegPath, err := ffmpegdecoder.FindFFmpeg()
	if err != nil {
		return err
	}

	// Create the file up front so an unwritable destination surfaces
	// before any frame is decoded. ffmpeg overwrites it below.
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	f.Close()

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%.2f", fps),
		"-i", "pipe:0",
		"-c:v", "libx264",
		"-preset", "fast",
		"-pix_fmt", "yuv420p",
		"-crf", "23",
		"-profile:v", "baseline",
		"-level", "3.1",
		"-movflags", "+faststart",
		"-an",
		path,
	}

	cmd := exec.Command(ffmpegPath, args...)
	e.stderr.Reset()
	cmd.Stderr = &e.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("stdin pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		os.Remove(path)
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	e.width = width
	e.height = height
	e.cmd = cmd
	e.stdin = stdin
	e.outputPath = path
	e.frameCount = 0
	e.open = true

	return nil
}

// WriteFrame appends a single frame in arrival order.
func (e *Encoder) WriteFrame(img image.Image) error {
	if !e.open {
		return ErrNotInitialized
	}

	// Pix can only be piped verbatim when it is a tightly packed buffer
	// starting at the origin; sub-images carry a wider stride and a
	// shifted Rect, so they go through the conversion path.
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds().Dx() != e.width || rgba.Bounds().Dy() != e.height ||
		rgba.Stride != e.width*4 || rgba.Rect.Min != (image.Point{}) {
		converted := image.NewRGBA(image.Rect(0, 0, e.width, e.height))
		draw.Draw(converted, converted.Bounds(), img, img.Bounds().Min, draw.Src)
		rgba = converted
	}

	if _, err := e.stdin.Write(rgba.Pix); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	e.frameCount++
	return nil
}

// End finalizes the container and releases resources.
// Safe to call more than once.
func (e *Encoder) End() error {
	if !e.open {
		return nil
	}
	e.open = false

	e.stdin.Close()
	e.stdin = nil

	err := e.cmd.Wait()
	e.cmd = nil
	if err != nil {
		return fmt.Errorf("ffmpeg encoding failed: %w\nstderr: %s", err, e.stderr.String())
	}
	return nil
}

// FrameCount returns the number of frames written since Begin.
func (e *Encoder) FrameCount() int {
	return e.frameCount
}

// Ensure Encoder implements ports.FrameSink
var _ ports.FrameSink = (*Encoder)(nil)
