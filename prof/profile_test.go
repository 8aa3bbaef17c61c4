package prof

import (
	"testing"
	"time"
)

func TestTrackAccumulatesByOp(t *testing.T) {
	SnapshotAndReset() // clear any leftover state from other tests

	start := time.Now()
	Track(start, "countn")
	Track(start, "countn")
	Track(start, "path1")

	snap := SnapshotAndReset()
	if len(snap["countn"]) != 2 {
		t.Fatalf("expected 2 countn samples, got %d", len(snap["countn"]))
	}
	if len(snap["path1"]) != 1 {
		t.Fatalf("expected 1 path1 sample, got %d", len(snap["path1"]))
	}

	again := SnapshotAndReset()
	if len(again) != 0 {
		t.Fatalf("expected records to reset after snapshot, got %v", again)
	}
}
