// Package scan implements the directory scanning stage.
package scan

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/user/vidsquare/pkg/pipeline"
	"github.com/user/vidsquare/pkg/ports"
)

// DefaultExtensions is the allow-list of video container extensions.
var DefaultExtensions = []string{".mp4", ".mov", ".avi"}

// Stage finds video files under a root directory.
type Stage struct {
	fs ports.FileSystem
}

// NewStage creates a new scan stage.
func NewStage(fs ports.FileSystem) *Stage {
	return &Stage{fs: fs}
}

// Execute walks the root recursively and returns a deduplicated,
// lexicographically sorted list of video file paths. The ordering
// determines batch processing order.
func (s *Stage) Execute(ctx context.Context, input pipeline.ScanInput) (pipeline.ScanResult, error) {
	extensions := input.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}

	seen := make(map[string]bool)
	err := s.fs.Walk(input.Root, func(path string, isDir bool) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if isDir {
			return nil
		}
		if allowed[strings.ToLower(filepath.Ext(path))] {
			seen[path] = true
		}
		return nil
	})
	if err != nil {
		return pipeline.ScanResult{}, err
	}

	paths := make([]string, 0, len(seen))
	for path := range seen {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return pipeline.ScanResult{Paths: paths}, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult] = (*Stage)(nil)
