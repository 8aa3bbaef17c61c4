package bench

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSweepCounts(t *testing.T) {
	points := Sweep(8)
	if len(points) != 8 {
		t.Fatalf("expected 8 points, got %d", len(points))
	}
	for _, p := range points {
		want := uint64(1) << uint(p.N)
		if p.Count != want {
			t.Errorf("N=%d: count=%d, want %d", p.N, p.Count, want)
		}
	}
}

func TestRenderSweep(t *testing.T) {
	points := Sweep(4)
	path := filepath.Join(t.TempDir(), "sweep.html")
	if err := RenderSweep(points, path); err != nil {
		t.Fatalf("RenderSweep: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("output file is empty")
	}
}
