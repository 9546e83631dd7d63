// Package depcheck verifies at startup that the imaging stack is linked in
// and working before any file is touched.
package depcheck

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"runtime/debug"

	"github.com/user/storeshots/pkg/ports"
)

// ImagingModule is the module that provides Lanczos resampling.
const ImagingModule = "github.com/disintegration/imaging"

// ErrImagingUnavailable is returned when the imaging self-test fails.
var ErrImagingUnavailable = errors.New("depcheck: imaging library unavailable")

// InstallHint tells the user how to get a working binary.
const InstallHint = "Rebuild with the imaging module available: go get " + ImagingModule + " && go build ./cmd/storeshots"

// Report describes the imaging stack found at startup.
type Report struct {
	Module  string
	Version string
}

// BuildInfoFunc matches debug.ReadBuildInfo.
type BuildInfoFunc func() (*debug.BuildInfo, bool)

// Checker runs the startup check.
type Checker struct {
	renderer  ports.Renderer
	buildInfo BuildInfoFunc
}

// New creates a Checker that reads the running binary's build info.
func New(renderer ports.Renderer) *Checker {
	return &Checker{renderer: renderer, buildInfo: debug.ReadBuildInfo}
}

// WithBuildInfo replaces the build info source.
func (c *Checker) WithBuildInfo(fn BuildInfoFunc) *Checker {
	c.buildInfo = fn
	return c
}

// Check looks up the imaging module version and pushes a tiny image
// through encode, decode and resize.
func (c *Checker) Check() (Report, error) {
	report := Report{Module: ImagingModule, Version: ModuleVersion(c.buildInfo, ImagingModule)}

	if err := c.selfTest(); err != nil {
		return report, fmt.Errorf("%w: %v", ErrImagingUnavailable, err)
	}
	return report, nil
}

func (c *Checker) selfTest() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	probe := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range probe.Pix {
		probe.Pix[i] = 0xff
	}
	probe.SetNRGBA(0, 0, color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff})

	data, err := c.renderer.EncodeImage(probe, ports.FormatPNG, 0)
	if err != nil {
		return err
	}
	decoded, err := c.renderer.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		return err
	}
	resized := c.renderer.ResizeImage(decoded, 3, 3)
	if resized == nil || resized.Bounds().Dx() != 3 || resized.Bounds().Dy() != 3 {
		return errors.New("resize produced unexpected bounds")
	}
	return nil
}

// ModuleVersion returns the version of module in the build info,
// "(devel)" when it cannot be determined.
func ModuleVersion(read BuildInfoFunc, module string) string {
	info, ok := read()
	if !ok || info == nil {
		return "(devel)"
	}
	for _, dep := range info.Deps {
		if dep.Path != module {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		if dep.Version != "" {
			return dep.Version
		}
	}
	return "(devel)"
}
