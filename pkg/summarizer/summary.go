// Package summarizer builds and writes a report of a batch run.
package summarizer

import (
	"time"

	"github.com/user/storeshots/pkg/orchestrator"
	"github.com/user/storeshots/pkg/pipeline"
)

// Status is the outcome for one screenshot.
type Status string

const (
	StatusProcessed Status = "processed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Summary contains all data collected during a batch run.
type Summary struct {
	GeneratedAt time.Time
	Settings    Settings
	Files       []FileEntry
}

// Settings contains the run configuration.
type Settings struct {
	TargetWidth     int
	TargetHeight    int
	InputDir        string
	OutputDir       string
	DarkBackground  string
	LightBackground string
}

// FileEntry describes the outcome for one screenshot.
type FileEntry struct {
	Name       string
	Status     Status
	Original   pipeline.Dimension
	Scaled     pipeline.Dimension
	X, Y       int
	Scale      float64
	Background string
	Bytes      int
	Error      string
}

// Count returns the number of entries with the given status.
func (s *Summary) Count(status Status) int {
	n := 0
	for _, f := range s.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSettings sets the run configuration.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// AddProcessed records a screenshot that was written.
func (b *Builder) AddProcessed(file orchestrator.FileResult) *Builder {
	r := file.Result
	b.summary.Files = append(b.summary.Files, FileEntry{
		Name:       file.Name,
		Status:     StatusProcessed,
		Original:   r.Original,
		Scaled:     r.Fit.Scaled,
		X:          r.Fit.Placement.X,
		Y:          r.Fit.Placement.Y,
		Scale:      r.Fit.Scale,
		Background: file.Background,
		Bytes:      r.BytesWritten,
	})
	return b
}

// AddSkipped records a screenshot whose input was missing.
func (b *Builder) AddSkipped(name string) *Builder {
	b.summary.Files = append(b.summary.Files, FileEntry{Name: name, Status: StatusSkipped})
	return b
}

// AddFailed records a screenshot that could not be processed.
func (b *Builder) AddFailed(failure orchestrator.FileFailure) *Builder {
	entry := FileEntry{Name: failure.Name, Status: StatusFailed}
	if failure.Err != nil {
		entry.Error = failure.Err.Error()
	}
	b.summary.Files = append(b.summary.Files, entry)
	return b
}

// WithRunResult records every outcome of a run, in the order given.
func (b *Builder) WithRunResult(result orchestrator.RunResult, order []string) *Builder {
	processed := make(map[string]orchestrator.FileResult, len(result.Succeeded))
	for _, f := range result.Succeeded {
		processed[f.Name] = f
	}
	failed := make(map[string]orchestrator.FileFailure, len(result.Failed))
	for _, f := range result.Failed {
		failed[f.Name] = f
	}
	skipped := make(map[string]bool, len(result.Skipped))
	for _, name := range result.Skipped {
		skipped[name] = true
	}

	for _, name := range order {
		if f, ok := processed[name]; ok {
			b.AddProcessed(f)
			continue
		}
		if f, ok := failed[name]; ok {
			b.AddFailed(f)
			continue
		}
		if skipped[name] {
			b.AddSkipped(name)
		}
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
