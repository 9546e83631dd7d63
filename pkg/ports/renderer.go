package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts the image operations needed to compose a screenshot.
type Renderer interface {
	// CreateCanvas creates a canvas of the given size filled with bg.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes image data. FormatAuto detects the format from the data.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	// quality is only used by lossy formats.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resamples an image to exactly width x height.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas is a fixed-size drawing surface.
type Canvas interface {
	// DrawImage pastes img with its top-left corner at (x, y).
	// Images with transparency are alpha-composited over the canvas.
	DrawImage(img image.Image, x, y int)

	// Size returns the canvas dimensions.
	Size() (width, height int)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// ImageFormat specifies an image encoding format.
type ImageFormat int

const (
	FormatAuto ImageFormat = iota
	FormatPNG
	FormatJPEG
)

// String returns the lowercase format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "auto"
	}
}

// IsOpaque reports whether every pixel of img is fully opaque.
// Images that cannot answer are treated as translucent.
func IsOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
