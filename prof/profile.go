// Package prof times counter calls, grouped by operation name, so a sweep
// over growing N can report how CountN's cost scales.
package prof

import (
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	records = map[string][]time.Duration{}
)

// Track logs the duration since start under the given operation name.
func Track(start time.Time, op string) {
	elapsed := time.Since(start)
	mu.Lock()
	records[op] = append(records[op], elapsed)
	mu.Unlock()
}

// SnapshotAndReset returns the collected durations grouped by operation
// name and clears them.
func SnapshotAndReset() map[string][]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string][]time.Duration, len(records))
	for op, durs := range records {
		cp := make([]time.Duration, len(durs))
		copy(cp, durs)
		out[op] = cp
	}
	records = map[string][]time.Duration{}
	return out
}
