// Package compose implements the screenshot composition stage: decode,
// scale to fit, center on a solid canvas, and write a PNG.
package compose

import (
	"context"
	"fmt"

	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/ports"
	"github.com/user/storeshots/pkg/stages/layout"
	"github.com/user/storeshots/pkg/theme"
)

// Stage composes one screenshot per call. It keeps no state between calls.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
	layout   pipeline.Stage[pipeline.FitInput, pipeline.FitResult]
	target   pipeline.Dimension
}

// NewStage creates a compose stage that produces target-sized images.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger, target pipeline.Dimension) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("compose"),
		layout:   layout.NewStage(),
		target:   target,
	}
}

// Execute reads input.InputPath, fits it onto a canvas filled with
// input.Background, and writes the PNG to input.OutputPath, replacing any
// existing file. Every failure is returned as a *ProcessingError.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	fail := func(op Op, err error) (pipeline.ComposeResult, error) {
		return pipeline.ComposeResult{}, &ProcessingError{Path: input.InputPath, Op: op, Err: err}
	}

	data, err := s.fs.ReadFile(input.InputPath)
	if err != nil {
		return fail(OpRead, err)
	}

	src, err := s.renderer.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		return fail(OpDecode, fmt.Errorf("%w: %v", ErrDecode, err))
	}

	original := pipeline.Dimension{Width: src.Bounds().Dx(), Height: src.Bounds().Dy()}
	s.logger.Info("Original dimensions: %dx%d", original.Width, original.Height)

	fit, err := s.layout.Execute(ctx, pipeline.FitInput{Source: original, Target: s.target})
	if err != nil {
		return fail(OpResize, err)
	}

	resized := s.renderer.ResizeImage(src, fit.Scaled.Width, fit.Scaled.Height)
	if resized == nil {
		return fail(OpResize, fmt.Errorf("resampler returned no image for %dx%d", fit.Scaled.Width, fit.Scaled.Height))
	}

	s.logger.Info("Scaled dimensions: %dx%d", fit.Scaled.Width, fit.Scaled.Height)
	s.logger.Info("Position: (%d, %d)", fit.Placement.X, fit.Placement.Y)
	s.logger.Info("Scale factor: %.3f", fit.Scale)
	s.logger.Info("Background: %s", theme.FormatColor(input.Background))

	hasAlpha := !ports.IsOpaque(resized)
	if hasAlpha {
		s.logger.Debug("Alpha compositing enabled")
	}

	canvas := s.renderer.CreateCanvas(s.target.Width, s.target.Height, input.Background)
	canvas.DrawImage(resized, fit.Placement.X, fit.Placement.Y)

	encoded, err := s.renderer.EncodeImage(canvas.ToImage(), ports.FormatPNG, 0)
	if err != nil {
		return fail(OpEncode, err)
	}

	if err := s.fs.WriteFile(input.OutputPath, encoded); err != nil {
		return fail(OpWrite, err)
	}
	s.logger.Info("Saved: %s", input.OutputPath)

	return pipeline.ComposeResult{
		OutputPath:   input.OutputPath,
		Original:     original,
		Fit:          fit,
		HasAlpha:     hasAlpha,
		BytesWritten: len(encoded),
	}, nil
}

var _ pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult] = (*Stage)(nil)
