// Package config provides configuration loading and management.
package config

import (
	"os"

	"github.com/user/vidsquare/pkg/orchestrator"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for vidsquare.
type Config struct {
	// Input/Output
	InputDir  string `yaml:"input"`
	OutputDir string `yaml:"output"`

	// Format
	Resolution int `yaml:"resolution"`
	FPS        int `yaml:"fps"`

	// Processing
	MaxFiles   int      `yaml:"max_files"`
	Extensions []string `yaml:"extensions"`

	// Tools
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
	Sheet    bool   `yaml:"sheet"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		InputDir:  "./input",
		OutputDir: "./output",

		Resolution: 720,
		FPS:        30,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
// File values are layered over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		InputDir:   c.InputDir,
		OutputDir:  c.OutputDir,
		Resolution: c.Resolution,
		TargetFPS:  c.FPS,
		MaxFiles:   c.MaxFiles,
		Extensions: c.Extensions,
		Sheet:      c.Sheet,
	}
}
