package measureutil

import (
	"testing"

	"tautology/quality"
)

func TestSnapshotAndResetForwardsToQuality(t *testing.T) {
	quality.SnapshotStats() // clear any leftover state from other tests

	quality.Measure(7, func() bool { return true })
	stats := SnapshotAndReset()
	if stats["measure"] != 7 {
		t.Fatalf("expected 7 recorded measure trials, got %d", stats["measure"])
	}

	stats2 := SnapshotAndReset()
	if len(stats2) != 0 {
		t.Fatalf("expected stats to reset after snapshot, got %v", stats2)
	}
}
