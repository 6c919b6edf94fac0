package util

import (
	"os"
	"strings"
	"testing"

	"github.com/evolab/evolve/pkg/evolution/framework"
)

func TestPlotHistory(t *testing.T) {
	tracker := framework.NewTracker(0)
	for gen := 1; gen <= 5; gen++ {
		tracker.Record(gen, float64(-10+gen), float64(-20+gen), 1/float64(gen))
	}

	dir := t.TempDir()
	path, err := PlotHistory(dir, tracker.Snapshot(), "sphere", "GA")
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	if !strings.HasSuffix(path, "sphere_GA_history.html") {
		t.Errorf("unexpected output path %q", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected chart file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestPlotHistoryEmpty(t *testing.T) {
	if _, err := PlotHistory(t.TempDir(), framework.Stats{}, "sphere", "GA"); err == nil {
		t.Fatal("expected error for empty history")
	}
}

func TestPlotHistoryCappedAxis(t *testing.T) {
	tracker := framework.NewTracker(3)
	for gen := 1; gen <= 10; gen++ {
		tracker.Record(gen, float64(gen), float64(gen), 0)
	}

	dir := t.TempDir()
	path, err := PlotHistory(dir, tracker.Snapshot(), "rastrigin", "DE")
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading chart failed: %v", err)
	}
	if !strings.Contains(string(raw), "\"8\"") {
		t.Error("expected the axis to start at the oldest retained generation")
	}
}
