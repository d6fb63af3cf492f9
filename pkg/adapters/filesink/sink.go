// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/user/vidsquare/pkg/ports"
)

// Options selects which artifacts the sink saves.
type Options struct {
	// Frames saves every retained frame as PNG.
	Frames bool

	// Sheets saves contact sheet images.
	Sheets bool
}

// Sink saves debug output to files under a base directory.
// Artifacts for each video go into a subdirectory named after it.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	opts    Options
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem, opts Options) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		opts:    opts,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveSourceJSON saves the probed source metadata as JSON.
func (s *Sink) SaveSourceJSON(name string, data []byte) error {
	path := filepath.Join(s.baseDir, flatten(name), "source.json")
	return s.fs.WriteFile(path, data)
}

// SaveRetainedFrame saves a retained frame after resizing.
func (s *Sink) SaveRetainedFrame(name string, index int, img image.Image) error {
	if !s.opts.Frames {
		return nil
	}
	data, err := encodePNG(img)
	if err != nil {
		return fmt.Errorf("encode frame %d: %w", index, err)
	}
	path := filepath.Join(s.baseDir, flatten(name), fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// SaveContactSheet saves the contact sheet rendered for a video.
func (s *Sink) SaveContactSheet(name string, img image.Image) error {
	if !s.opts.Sheets {
		return nil
	}
	data, err := encodePNG(img)
	if err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}
	path := filepath.Join(s.baseDir, flatten(name), "sheet.png")
	return s.fs.WriteFile(path, data)
}

// flatten turns a relative video path into a single directory name.
func flatten(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.ReplaceAll(name, "/", "_")
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
