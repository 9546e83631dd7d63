// Package layout computes how a screenshot fits on the output canvas.
package layout

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/user/storeshots/pkg/pipeline"
)

// ErrInvalidDimensions is returned when a source or target side is not positive.
var ErrInvalidDimensions = errors.New("layout: dimensions must be positive")

// Stage computes fit results. It has no external dependencies.
type Stage struct{}

// NewStage creates a new layout stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute validates the input and computes the fit.
func (s *Stage) Execute(ctx context.Context, input pipeline.FitInput) (pipeline.FitResult, error) {
	if err := ValidateFit(input); err != nil {
		return pipeline.FitResult{}, err
	}
	return ComputeFit(input), nil
}

// ValidateFit rejects inputs ComputeFit cannot handle.
func ValidateFit(input pipeline.FitInput) error {
	if input.Source.Width <= 0 || input.Source.Height <= 0 {
		return fmt.Errorf("%w: source %dx%d", ErrInvalidDimensions, input.Source.Width, input.Source.Height)
	}
	if input.Target.Width <= 0 || input.Target.Height <= 0 {
		return fmt.Errorf("%w: target %dx%d", ErrInvalidDimensions, input.Target.Width, input.Target.Height)
	}
	return nil
}

// ComputeFit scales the source uniformly so it fits inside the target
// without cropping, then centers it.
//
//	scale  = min(targetW/srcW, targetH/srcH)
//	scaled = round(src * scale), clamped to [1, target]
//	x, y   = (target - scaled) / 2
//
// The limiting side always comes out equal to the target side. Inputs must
// satisfy ValidateFit.
func ComputeFit(input pipeline.FitInput) pipeline.FitResult {
	src, dst := input.Source, input.Target

	scaleX := float64(dst.Width) / float64(src.Width)
	scaleY := float64(dst.Height) / float64(src.Height)
	scale := math.Min(scaleX, scaleY)

	w := clamp(int(math.Round(float64(src.Width)*scale)), 1, dst.Width)
	h := clamp(int(math.Round(float64(src.Height)*scale)), 1, dst.Height)

	return pipeline.FitResult{
		Scale:  scale,
		Scaled: pipeline.Dimension{Width: w, Height: h},
		Placement: pipeline.Rectangle{
			X:      (dst.Width - w) / 2,
			Y:      (dst.Height - h) / 2,
			Width:  w,
			Height: h,
		},
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
