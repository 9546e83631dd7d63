// Package ggrenderer implements ports.Renderer with gg for canvases and
// imaging for Lanczos resampling.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/storeshots/pkg/ports"
)

// Renderer implements ports.Renderer.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// CreateCanvas creates a canvas filled with bg.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	dc := gg.NewContextForRGBA(im)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc, im: im}
}

// DecodeImage decodes image data into an image.Image.
// FormatAuto accepts anything registered with the image package
// (PNG, JPEG, GIF, WebP, BMP, TIFF). It also applies the EXIF orientation
// tag, so a rotated JPEG reports its upright size and is laid out upright.
// PNG screenshots carry no such tag and decode unchanged.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	reader := bytes.NewReader(data)

	switch format {
	case ports.FormatPNG:
		return png.Decode(reader)
	case ports.FormatJPEG:
		return jpeg.Decode(reader)
	default:
		return imaging.Decode(reader, imaging.AutoOrientation(true))
	}
}

// EncodeImage encodes an image to the specified format.
// PNG output uses the best compression level.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatPNG:
		enc := &png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resamples img to width x height with the Lanczos filter.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas on top of a gg context.
type Canvas struct {
	dc *gg.Context
	im *image.RGBA
}

// DrawImage pastes img at (x, y). Opaque images overwrite the canvas,
// anything else is composited with the Porter-Duff "over" operator.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())

	op := draw.Over
	if ports.IsOpaque(img) {
		op = draw.Src
	}
	draw.Draw(c.im, dst, img, b.Min, op)
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

var _ ports.Canvas = (*Canvas)(nil)
