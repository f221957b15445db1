package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blaketorres2000-2/verlander-analysis/internal/analysis"
	"github.com/blaketorres2000-2/verlander-analysis/internal/statcast"
)

func TestGroupedWritesPNG(t *testing.T) {
	tab := analysis.Crosstab([]statcast.Pitch{
		{Type: "FF", Count: "0-0", ReleaseSpeed: 95},
		{Type: "FF", Count: "3-2", ReleaseSpeed: 96},
		{Type: "SL", Count: "0-0", ReleaseSpeed: 87},
		{Type: "SL", Count: "3-2", ReleaseSpeed: 88},
	})
	path := filepath.Join(t.TempDir(), "dist.png")
	if err := Grouped(tab, "Pitch Type Distribution by Count in 2019", path, DefaultOptions()); err != nil {
		t.Fatalf("Grouped: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat chart: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestGroupedEmptyTable(t *testing.T) {
	tab := analysis.Crosstab(nil)
	path := filepath.Join(t.TempDir(), "dist.png")
	if err := Grouped(tab, "empty", path, DefaultOptions()); err == nil {
		t.Fatal("Grouped: expected error for empty table")
	}
}
