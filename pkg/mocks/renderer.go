package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/storeshots/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image

	mu       sync.Mutex
	canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := &Canvas{Width: width, Height: height, Background: bg}
	m.mu.Lock()
	m.canvases = append(m.canvases, c)
	m.mu.Unlock()
	return c
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Canvases returns the canvases created by the default CreateCanvas.
func (m *Renderer) Canvases() []*Canvas {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Canvas(nil), m.canvases...)
}

var _ ports.Renderer = (*Renderer)(nil)

// Draw records a single DrawImage call.
type Draw struct {
	Image image.Image
	X, Y  int
}

// Canvas is a mock implementation of ports.Canvas that records draws.
type Canvas struct {
	Width      int
	Height     int
	Background color.Color
	Draws      []Draw
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	m.Draws = append(m.Draws, Draw{Image: img, X: x, Y: y})
}

func (m *Canvas) Size() (int, int) {
	return m.Width, m.Height
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
}

var _ ports.Canvas = (*Canvas)(nil)
