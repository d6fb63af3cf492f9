// Package ffmpegdecoder provides sequential video frame reading using an
// ffmpeg external process piping raw RGBA frames over stdout.
package ffmpegdecoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/user/vidsquare/pkg/adapters/ffprobe"
	"github.com/user/vidsquare/pkg/ports"
)

var (
	// ErrFFmpegNotFound is returned when ffmpeg cannot be located.
	ErrFFmpegNotFound = errors.New("ffmpegdecoder: ffmpeg not found in PATH")

	// ErrNotOpen is returned when reading before a successful Open.
	ErrNotOpen = errors.New("ffmpegdecoder: source not open")
)

// customFFmpegPath overrides the search when set via SetFFmpegPath.
var customFFmpegPath string

// SetFFmpegPath sets a custom path to the ffmpeg binary.
func SetFFmpegPath(path string) {
	customFFmpegPath = path
}

// FindFFmpeg searches for ffmpeg in PATH and common locations.
// Priority: 1) custom path, 2) FFMPEG_PATH env, 3) PATH, 4) common locations.
func FindFFmpeg() (string, error) {
	if customFFmpegPath != "" {
		if _, err := os.Stat(customFFmpegPath); err == nil {
			return customFFmpegPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, customFFmpegPath)
	}

	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: FFMPEG_PATH %s not found", ErrFFmpegNotFound, envPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}

	path, err := exec.LookPath(execName)
	if err == nil {
		return path, nil
	}

	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files (x86)\ffmpeg\bin\ffmpeg.exe`,
		}
	} else if runtime.GOOS == "darwin" {
		commonPaths = []string{
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/usr/bin/ffmpeg",
		}
	} else {
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}

	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// IsFFmpegAvailable checks if ffmpeg is available on the system.
func IsFFmpegAvailable() bool {
	_, err := FindFFmpeg()
	return err == nil
}

// Decoder implements ports.FrameSource using ffmpeg.
// The file is probed once on Open; frames are then streamed one at a
// time as raw RGBA over a pipe.
type Decoder struct {
	prober ports.VideoProber

	meta   ports.VideoMeta
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr bytes.Buffer
	buf    []byte
	open   bool
}

// New creates a new Decoder that probes files with ffprobe.
func New() *Decoder {
	return &Decoder{prober: ffprobe.New()}
}

// NewWithProber creates a Decoder with a custom prober.
func NewWithProber(prober ports.VideoProber) *Decoder {
	return &Decoder{prober: prober}
}

// Open probes the file and starts the decoding process.
func (d *Decoder) Open(ctx context.Context, path string) error {
	if d.open {
		d.Close()
	}

	meta, err := d.prober.Probe(ctx, path)
	if err != nil {
		return fmt.Errorf("probe %s: %w", path, err)
	}
	if meta.Width <= 0 || meta.Height <= 0 {
		return fmt.Errorf("ffmpegdecoder: %s reports invalid dimensions %dx%d", path, meta.Width, meta.Height)
	}

	ffmpegPath, err := FindFFmpeg()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, ffmpegPath,
		"-i", path,
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-an",
		"pipe:1",
	)
	// Reset before handing the buffer to the command: once Start
	// returns, a copy goroutine writes ffmpeg's stderr into it.
	d.stderr.Reset()
	cmd.Stderr = &d.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	d.meta = meta
	d.cmd = cmd
	d.stdout = stdout
	d.buf = make([]byte, meta.Width*meta.Height*4)
	d.open = true

	return nil
}

// Meta returns the metadata reported when the source was opened.
func (d *Decoder) Meta() ports.VideoMeta {
	return d.meta
}

// ReadFrame returns the next decoded frame, or io.EOF at end of stream.
func (d *Decoder) ReadFrame() (image.Image, error) {
	if !d.open {
		return nil, ErrNotOpen
	}

	if _, err := io.ReadFull(d.stdout, d.buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read frame: %w\nstderr: %s", err, d.stderr.String())
	}

	img := &image.RGBA{
		Pix:    append([]byte(nil), d.buf...),
		Stride: d.meta.Width * 4,
		Rect:   image.Rect(0, 0, d.meta.Width, d.meta.Height),
	}
	return img, nil
}

// Close releases the decoding process. Safe to call more than once.
func (d *Decoder) Close() error {
	if !d.open {
		return nil
	}
	d.open = false

	d.stdout.Close()
	// The process may still be running if the stream was not fully
	// consumed; Wait reaps it either way.
	err := d.cmd.Wait()
	d.cmd = nil
	d.stdout = nil
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Broken pipe after early close is expected.
			return nil
		}
		return err
	}
	return nil
}

// Ensure Decoder implements ports.FrameSource
var _ ports.FrameSource = (*Decoder)(nil)
