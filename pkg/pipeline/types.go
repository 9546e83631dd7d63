package pipeline

import (
	"image/color"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// Rectangle represents a rectangular area.
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// =============================================================================
// Fit Types
// =============================================================================

// FitInput describes a source image that must fit inside a target canvas.
type FitInput struct {
	Source Dimension
	Target Dimension
}

// FitResult is the uniform scale of a source image and where it lands on
// the canvas. Placement.Width and Placement.Height equal Scaled.
type FitResult struct {
	Scale     float64
	Scaled    Dimension
	Placement Rectangle
}

// =============================================================================
// Compose Stage Types
// =============================================================================

// ComposeInput contains the parameters for composing one screenshot.
type ComposeInput struct {
	InputPath  string
	OutputPath string
	Background color.Color
}

// ComposeResult describes a screenshot that was written successfully.
type ComposeResult struct {
	OutputPath   string
	Original     Dimension
	Fit          FitResult
	HasAlpha     bool // source carried transparency and was alpha-composited
	BytesWritten int
}
