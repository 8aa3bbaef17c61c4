// Package measureutil exposes visibility into the quality layer's
// Monte-Carlo trial counts, the way the original measure forwarder exposed
// the signature layer's timing counters.
package measureutil

import "tautology/quality"

// SnapshotAndReset returns the accumulated Measure/MeasureCount trial
// counts and clears them.
func SnapshotAndReset() map[string]uint64 {
	return quality.SnapshotStats()
}
