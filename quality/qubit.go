package quality

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Qubit draws a deterministic 64-bit pseudo-random word from a xor the
// ambient seed, using SHAKE-256 as the splittable generator: same seed and
// argument always reproduce the same word, and the generator is otherwise
// opaque.
func Qubit(a uint64) uint64 {
	return qubitWithSeed(a, currentSeed())
}

func qubitWithSeed(a, seed uint64) uint64 {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], a^seed)

	xof := sha3.NewShake256()
	xof.Write(key[:])
	var out [8]byte
	xof.Read(out[:])
	return binary.LittleEndian.Uint64(out[:])
}

// Amplify folds Qubit over itself n times and ORs every intermediate word
// into a, so the result is monotone: a bit set at any fold stays set at
// every later fold.
func Amplify(n int, a uint64) uint64 {
	acc := a
	cur := a
	for i := 0; i < n; i++ {
		cur = Qubit(cur)
		acc |= cur
	}
	return acc
}

// Qual is the randomized equality connective: bit-for-bit equality of a and
// b, gated by a random word only on the self-quality diagonal (a == b).
// Off-diagonal it degenerates to ordinary eq.
func Qual(a, b uint64) uint64 {
	if a == b {
		return (^(a ^ b)) & Qubit(a)
	}
	return ^(a ^ b)
}

// PSCore is the core axiom of path semantics lifted into the quality logic:
// (qual(a,b) and (a->c) and (b->d)) -> qual(c,d).
func PSCore(a, b, c, d uint64) uint64 {
	lhs := (Qual(a, b)) & (^a | c) & (^b | d)
	return ^lhs | Qual(c, d)
}
