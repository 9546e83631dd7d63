package summarizer

import (
	"errors"
	"testing"
	"time"

	"github.com/user/storeshots/pkg/orchestrator"
	"github.com/user/storeshots/pkg/pipeline"
)

func processedFile(name string) orchestrator.FileResult {
	return orchestrator.FileResult{
		Name:       name,
		Background: "#f5f5f5",
		Result: pipeline.ComposeResult{
			Original: pipeline.Dimension{Width: 800, Height: 600},
			Fit: pipeline.FitResult{
				Scale:     4.0 / 3.0,
				Scaled:    pipeline.Dimension{Width: 1067, Height: 800},
				Placement: pipeline.Rectangle{X: 106, Y: 0, Width: 1067, Height: 800},
			},
			BytesWritten: 2048,
		},
	}
}

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v", before, after, summary.GeneratedAt)
	}
}

func TestBuilder_AddProcessed(t *testing.T) {
	summary := NewBuilder().AddProcessed(processedFile("options-gold.png")).Build()

	if len(summary.Files) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(summary.Files))
	}
	e := summary.Files[0]
	if e.Status != StatusProcessed {
		t.Errorf("expected processed, got %s", e.Status)
	}
	if e.Scaled != (pipeline.Dimension{Width: 1067, Height: 800}) || e.X != 106 || e.Y != 0 {
		t.Errorf("unexpected geometry %+v", e)
	}
	if e.Bytes != 2048 || e.Background != "#f5f5f5" {
		t.Errorf("unexpected entry %+v", e)
	}
}

func TestBuilder_AddFailedAndSkipped(t *testing.T) {
	summary := NewBuilder().
		AddSkipped("popup-gold.png").
		AddFailed(orchestrator.FileFailure{Name: "tools-gold.png", Err: errors.New("bad header")}).
		Build()

	if summary.Count(StatusSkipped) != 1 || summary.Count(StatusFailed) != 1 {
		t.Errorf("unexpected counts: %+v", summary.Files)
	}
	if summary.Files[1].Error != "bad header" {
		t.Errorf("expected error message, got %q", summary.Files[1].Error)
	}
}

func TestBuilder_WithRunResult_KeepsListOrder(t *testing.T) {
	result := orchestrator.RunResult{
		Attempted: 2,
		Succeeded: []orchestrator.FileResult{processedFile("c.png")},
		Skipped:   []string{"b.png"},
		Failed:    []orchestrator.FileFailure{{Name: "a.png", Err: errors.New("x")}},
	}

	summary := NewBuilder().WithRunResult(result, []string{"a.png", "b.png", "c.png"}).Build()

	want := []struct {
		name   string
		status Status
	}{
		{"a.png", StatusFailed},
		{"b.png", StatusSkipped},
		{"c.png", StatusProcessed},
	}
	if len(summary.Files) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(summary.Files))
	}
	for i, w := range want {
		if summary.Files[i].Name != w.name || summary.Files[i].Status != w.status {
			t.Errorf("entry %d: expected %s/%s, got %s/%s", i, w.name, w.status, summary.Files[i].Name, summary.Files[i].Status)
		}
	}
}
