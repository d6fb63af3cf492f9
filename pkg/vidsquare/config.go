// Package vidsquare provides a high-level API for batch square transcoding.
package vidsquare

import (
	"fmt"

	"github.com/user/vidsquare/pkg/orchestrator"
)

// TargetFPS is the nominal output frame rate for all generated videos.
const TargetFPS = 30

// DefaultResolution is the square output resolution used when none is
// requested.
const DefaultResolution = 720

// SupportedResolutions lists the accepted square output resolutions.
var SupportedResolutions = []int{360, 480, 720}

// IsSupportedResolution reports whether r is an accepted output resolution.
func IsSupportedResolution(r int) bool {
	for _, s := range SupportedResolutions {
		if r == s {
			return true
		}
	}
	return false
}

// Config represents the configuration for a batch transcode run.
type Config struct {
	// Resolution is the square output resolution in pixels.
	Resolution int

	// MaxFiles caps how many files are processed. 0 means no cap.
	MaxFiles int

	// Extensions is the case-insensitive allow-list of file extensions,
	// each including the leading dot. Empty means .mp4, .mov and .avi.
	Extensions []string

	// Sheet enables contact sheet generation per output video.
	Sheet bool
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: Config{
			Resolution: DefaultResolution,
		},
	}
}

// WithResolution sets the square output resolution.
func (b *ConfigBuilder) WithResolution(resolution int) *ConfigBuilder {
	b.config.Resolution = resolution
	return b
}

// WithMaxFiles caps how many files are processed. Use 0 for no cap.
func (b *ConfigBuilder) WithMaxFiles(n int) *ConfigBuilder {
	b.config.MaxFiles = n
	return b
}

// WithExtensions sets the file extension allow-list.
func (b *ConfigBuilder) WithExtensions(extensions ...string) *ConfigBuilder {
	b.config.Extensions = extensions
	return b
}

// WithSheet enables contact sheet generation.
func (b *ConfigBuilder) WithSheet(sheet bool) *ConfigBuilder {
	b.config.Sheet = sheet
	return b
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() (Config, error) {
	cfg := b.config

	if !IsSupportedResolution(cfg.Resolution) {
		return cfg, fmt.Errorf("unsupported resolution %d, must be one of %v", cfg.Resolution, SupportedResolutions)
	}
	if cfg.MaxFiles < 0 {
		return cfg, fmt.Errorf("file cap must be positive, got %d", cfg.MaxFiles)
	}

	return cfg, nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(inputDir, outputDir string) orchestrator.Config {
	return orchestrator.Config{
		InputDir:   inputDir,
		OutputDir:  outputDir,
		Resolution: c.Resolution,
		TargetFPS:  TargetFPS,
		MaxFiles:   c.MaxFiles,
		Extensions: c.Extensions,
		Sheet:      c.Sheet,
	}
}
