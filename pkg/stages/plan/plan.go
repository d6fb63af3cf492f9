// Package plan implements the output path mapping stage.
package plan

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/vidsquare/pkg/pipeline"
)

// OutputExtension is the container extension of every output file,
// regardless of the source container.
const OutputExtension = ".mp4"

// Stage computes output locations for one source file.
// The mapping is pure and deterministic: running it twice with the same
// input yields the same output path.
type Stage struct{}

// NewStage creates a new plan stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute maps a source path to its mirrored output location.
// The output file name is {stem}_{resolution}_{fps}.mp4.
func (s *Stage) Execute(ctx context.Context, input pipeline.PlanInput) (pipeline.PlanResult, error) {
	rel, err := filepath.Rel(input.InputRoot, input.SourcePath)
	if err != nil {
		return pipeline.PlanResult{}, fmt.Errorf("relativize %s: %w", input.SourcePath, err)
	}

	base := filepath.Base(rel)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := fmt.Sprintf("%s_%d_%d%s", stem, input.Resolution, input.TargetFPS, OutputExtension)

	outputDir := filepath.Join(input.OutputRoot, filepath.Dir(rel))

	return pipeline.PlanResult{
		RelativePath: rel,
		OutputDir:    outputDir,
		OutputPath:   filepath.Join(outputDir, name),
	}, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.PlanInput, pipeline.PlanResult] = (*Stage)(nil)
