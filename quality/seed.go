// Package quality implements the randomized "quality" operator and its
// supporting qubit/amplify/measure primitives: a propositional analogue of
// quantum measurement layered on top of the bit-parallel connectives in
// bitword.
package quality

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"

	mrand "math/rand"
)

// fallbackSource seeds the process-level PRNG used to mint fresh ambient
// seeds. crypto/rand is preferred; a wall-clock fallback keeps startup from
// ever failing outright, mirroring the ntru package's seeding convention.
var fallbackSource = mrand.New(mrand.NewSource(processSeed()))
var fallbackMu sync.Mutex

func processSeed() int64 {
	var seed int64
	if err := binary.Read(rand.Reader, binary.LittleEndian, &seed); err != nil {
		seed = time.Now().UnixNano()
	}
	return seed
}

// seedStack holds the ambient-seed scope, stack-disciplined so nested or
// reentrant counter calls save and restore their caller's seed on return.
type seedStack struct {
	mu    sync.Mutex
	stack []uint64
}

var ambient seedStack

// initSeed is the process-level fallback seed, minted once at package
// initialization, used by currentSeed when no ScopedSeed is active.
var initSeed = freshSeed()

func freshSeed() uint64 {
	fallbackMu.Lock()
	defer fallbackMu.Unlock()
	return fallbackSource.Uint64()
}

// ScopedSeed installs a fresh ambient seed and returns a release function
// that restores whatever seed (if any) was active before. Every top-level
// counter call wraps its evaluation in ScopedSeed so that qubit-dependent
// formulas draw from a seed scoped to that one invocation.
func ScopedSeed() func() {
	s := freshSeed()
	ambient.mu.Lock()
	ambient.stack = append(ambient.stack, s)
	ambient.mu.Unlock()
	return func() {
		ambient.mu.Lock()
		n := len(ambient.stack)
		if n > 0 {
			ambient.stack = ambient.stack[:n-1]
		}
		ambient.mu.Unlock()
	}
}

// currentSeed reads the innermost active ambient seed, or the process-level
// initSeed if none has been installed (so qubit stays well-defined even when
// called outside a counter scope, e.g. directly from a test).
func currentSeed() uint64 {
	ambient.mu.Lock()
	defer ambient.mu.Unlock()
	n := len(ambient.stack)
	if n == 0 {
		return initSeed
	}
	return ambient.stack[n-1]
}
