package depcheck

import (
	"errors"
	"image"
	"runtime/debug"
	"testing"

	"github.com/user/storeshots/pkg/adapters/ggrenderer"
	"github.com/user/storeshots/pkg/mocks"
	"github.com/user/storeshots/pkg/ports"
)

func fakeBuildInfo(deps ...*debug.Module) BuildInfoFunc {
	return func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Deps: deps}, true
	}
}

func TestChecker_Check_RealRenderer(t *testing.T) {
	checker := New(ggrenderer.New()).WithBuildInfo(fakeBuildInfo(
		&debug.Module{Path: "gopkg.in/yaml.v3", Version: "v3.0.1"},
		&debug.Module{Path: ImagingModule, Version: "v1.6.2"},
	))

	report, err := checker.Check()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Version != "v1.6.2" {
		t.Errorf("expected v1.6.2, got %s", report.Version)
	}
	if report.Module != ImagingModule {
		t.Errorf("unexpected module %s", report.Module)
	}
}

func TestChecker_Check_Failures(t *testing.T) {
	tests := []struct {
		name     string
		renderer *mocks.Renderer
	}{
		{
			name: "encode fails",
			renderer: &mocks.Renderer{
				EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
					return nil, errors.New("no png encoder")
				},
			},
		},
		{
			name: "decode fails",
			renderer: &mocks.Renderer{
				DecodeImageFunc: func(data []byte, format ports.ImageFormat) (image.Image, error) {
					return nil, image.ErrFormat
				},
			},
		},
		{
			name: "resize returns nil",
			renderer: &mocks.Renderer{
				ResizeImageFunc: func(img image.Image, width, height int) image.Image {
					return nil
				},
			},
		},
		{
			name: "resize panics",
			renderer: &mocks.Renderer{
				ResizeImageFunc: func(img image.Image, width, height int) image.Image {
					panic("filter missing")
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.renderer).WithBuildInfo(fakeBuildInfo()).Check()
			if !errors.Is(err, ErrImagingUnavailable) {
				t.Errorf("expected ErrImagingUnavailable, got %v", err)
			}
		})
	}
}

func TestModuleVersion(t *testing.T) {
	tests := []struct {
		name string
		read BuildInfoFunc
		want string
	}{
		{
			name: "no build info",
			read: func() (*debug.BuildInfo, bool) { return nil, false },
			want: "(devel)",
		},
		{
			name: "module absent",
			read: fakeBuildInfo(&debug.Module{Path: "golang.org/x/image", Version: "v0.34.0"}),
			want: "(devel)",
		},
		{
			name: "module present",
			read: fakeBuildInfo(&debug.Module{Path: ImagingModule, Version: "v1.6.2"}),
			want: "v1.6.2",
		},
		{
			name: "replaced module",
			read: fakeBuildInfo(&debug.Module{
				Path:    ImagingModule,
				Version: "v1.6.2",
				Replace: &debug.Module{Path: "example.com/fork/imaging", Version: "v1.6.3"},
			}),
			want: "v1.6.3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModuleVersion(tt.read, ImagingModule); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
