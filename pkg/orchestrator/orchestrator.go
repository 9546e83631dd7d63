// Package orchestrator runs the compose stage over the fixed screenshot list.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/ports"
	"github.com/user/storeshots/pkg/theme"
)

// Config contains everything a batch run needs.
type Config struct {
	InputDir  string
	OutputDir string
	Target    pipeline.Dimension
	Files     []string
	Palette   theme.Palette
}

// FileResult describes a screenshot that was written.
type FileResult struct {
	Name       string
	Background string
	Result     pipeline.ComposeResult
}

// FileFailure describes a screenshot whose input existed but could not be processed.
type FileFailure struct {
	Name string
	Err  error
}

// RunResult summarizes a batch run.
type RunResult struct {
	// Attempted counts files whose input existed and was handed to the
	// compose stage, including those that then failed.
	Attempted int
	Succeeded []FileResult
	Skipped   []string
	Failed    []FileFailure
}

// Orchestrator drives the compose stage over Config.Files in order.
type Orchestrator struct {
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	fs           ports.FileSystem
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		composeStage: composeStage,
		fs:           fs,
		logger:       logger,
	}
}

// Run processes every file sequentially. Missing inputs and per-file
// processing errors are logged and recorded but never abort the batch.
// An error is returned only if the output directory cannot be created or
// ctx is cancelled; in the latter case the partial result is returned too.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Screenshot Resizer")
	o.logger.Info("Target dimensions: %dx%d", config.Target.Width, config.Target.Height)
	o.logger.Info("Input directory: %s", config.InputDir)
	o.logger.Info("Output directory: %s", config.OutputDir)

	var result RunResult

	if err := o.fs.MkdirAll(config.OutputDir); err != nil {
		return result, fmt.Errorf("create output directory: %w", err)
	}
	o.logger.Info("Output directory ready: %s", config.OutputDir)

	for _, name := range config.Files {
		if err := ctx.Err(); err != nil {
			o.logger.Warn("Interrupted, stopping before %s", name)
			return result, err
		}

		inputPath := filepath.Join(config.InputDir, name)
		outputPath := filepath.Join(config.OutputDir, name)

		exists, err := o.fs.Exists(inputPath)
		if err != nil || !exists {
			o.logger.Warn("File not found: %s", inputPath)
			result.Skipped = append(result.Skipped, name)
			continue
		}

		o.logger.Info("Processing: %s", name)
		result.Attempted++

		bg := config.Palette.BackgroundFor(name)
		composed, err := o.composeStage.Execute(ctx, pipeline.ComposeInput{
			InputPath:  inputPath,
			OutputPath: outputPath,
			Background: bg,
		})
		if err != nil {
			o.logger.Error("Error processing %s: %s", inputPath, err)
			result.Failed = append(result.Failed, FileFailure{Name: name, Err: err})
			continue
		}

		result.Succeeded = append(result.Succeeded, FileResult{
			Name:       name,
			Background: theme.FormatColor(bg),
			Result:     composed,
		})
	}

	o.logger.Info("Successfully processed %d screenshots!", result.Attempted)
	if n := len(result.Failed); n > 0 {
		o.logger.Warn("%d of %d screenshots failed", n, result.Attempted)
	}

	return result, nil
}
