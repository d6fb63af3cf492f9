// Package ffprobe provides video metadata probing using the ffprobe
// external process.
package ffprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/user/vidsquare/pkg/ports"
)

var (
	// ErrFFprobeNotFound is returned when ffprobe cannot be located.
	ErrFFprobeNotFound = errors.New("ffprobe: ffprobe not found in PATH")

	// ErrNoVideoStream is returned when the file has no video stream.
	ErrNoVideoStream = errors.New("ffprobe: no video stream found")
)

// customFFprobePath overrides the search when set via SetFFprobePath.
var customFFprobePath string

// SetFFprobePath sets a custom path to the ffprobe binary.
func SetFFprobePath(path string) {
	customFFprobePath = path
}

// FindFFprobe searches for ffprobe in PATH and common locations.
// Priority: 1) custom path, 2) FFPROBE_PATH env, 3) PATH, 4) common locations.
func FindFFprobe() (string, error) {
	if customFFprobePath != "" {
		if _, err := os.Stat(customFFprobePath); err == nil {
			return customFFprobePath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFprobeNotFound, customFFprobePath)
	}

	if envPath := os.Getenv("FFPROBE_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: FFPROBE_PATH %s not found", ErrFFprobeNotFound, envPath)
	}

	execName := "ffprobe"
	if runtime.GOOS == "windows" {
		execName = "ffprobe.exe"
	}

	path, err := exec.LookPath(execName)
	if err == nil {
		return path, nil
	}

	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\ffprobe.exe`,
			`C:\Program Files\ffmpeg\bin\ffprobe.exe`,
			`C:\Program Files (x86)\ffmpeg\bin\ffprobe.exe`,
		}
	} else if runtime.GOOS == "darwin" {
		commonPaths = []string{
			"/opt/homebrew/bin/ffprobe",
			"/usr/local/bin/ffprobe",
			"/usr/bin/ffprobe",
		}
	} else {
		commonPaths = []string{
			"/usr/bin/ffprobe",
			"/usr/local/bin/ffprobe",
			"/opt/homebrew/bin/ffprobe",
			"/snap/bin/ffprobe",
		}
	}

	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFprobeNotFound
}

// IsFFprobeAvailable checks if ffprobe is available on the system.
func IsFFprobeAvailable() bool {
	_, err := FindFFprobe()
	return err == nil
}

// probeOutput mirrors the JSON shape emitted by ffprobe -show_streams.
type probeOutput struct {
	Streams []struct {
		CodecName    string `json:"codec_name"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		AvgFrameRate string `json:"avg_frame_rate"`
		RFrameRate   string `json:"r_frame_rate"`
		NbFrames     string `json:"nb_frames"`
		Duration     string `json:"duration"`
	} `json:"streams"`
}

// Prober implements ports.VideoProber using ffprobe.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Probe returns metadata for the first video stream of the file.
func (p *Prober) Probe(ctx context.Context, path string) (ports.VideoMeta, error) {
	ffprobePath, err := FindFFprobe()
	if err != nil {
		return ports.VideoMeta{}, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "quiet",
		"-select_streams", "v:0",
		"-print_format", "json",
		"-show_streams",
		path,
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return ports.VideoMeta{}, fmt.Errorf("ffprobe %s: %w\nstderr: %s", path, err, stderr.String())
	}

	var out probeOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return ports.VideoMeta{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	if len(out.Streams) == 0 {
		return ports.VideoMeta{}, fmt.Errorf("%w: %s", ErrNoVideoStream, path)
	}

	s := out.Streams[0]

	fps := ParseRational(s.AvgFrameRate)
	if fps == 0 {
		fps = ParseRational(s.RFrameRate)
	}

	meta := ports.VideoMeta{
		Width:     s.Width,
		Height:    s.Height,
		FPS:       fps,
		CodecName: s.CodecName,
	}

	if s.NbFrames != "" {
		if n, err := strconv.Atoi(s.NbFrames); err == nil {
			meta.FrameCount = n
		}
	}
	if s.Duration != "" {
		if d, err := strconv.ParseFloat(s.Duration, 64); err == nil {
			meta.DurationMs = int(math.Round(d * 1000))
		}
	}

	return meta, nil
}

// ParseRational parses an ffprobe frame rate fraction like "30000/1001".
// Returns 0 for empty, malformed, or zero-denominator values.
func ParseRational(s string) float64 {
	if s == "" {
		return 0
	}

	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0
	}
	if len(parts) == 1 {
		return num
	}

	den, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || den == 0 {
		return 0
	}
	return num / den
}

// Ensure Prober implements ports.VideoProber
var _ ports.VideoProber = (*Prober)(nil)
