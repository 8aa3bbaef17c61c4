package pathsem

import (
	"testing"

	"tautology/bitword"
)

func TestLenNMFormula(t *testing.T) {
	cases := []struct {
		m, n int
		want uint64
	}{
		{0, 0, 1},
		{1, 1, 4},
		{2, 2, 14},
	}
	for _, c := range cases {
		got := LenNM(c.m, c.n)
		if got != c.want {
			t.Errorf("LenNM(%d,%d) = %d, want %d", c.m, c.n, got, c.want)
		}
	}
}

func pathIdentity(fs, xs []uint64) uint64 {
	f, g := fs[0], fs[1]
	x, y := xs[0], xs[1]
	return bitword.Imply(
		bitword.And3(bitword.Imply(f, x), bitword.Imply(g, y), bitword.Eq(f, g)),
		bitword.Eq(x, y),
	)
}

func TestProveKPathIdentity(t *testing.T) {
	if !ProveK(2, 2, pathIdentity) {
		t.Fatalf("path-1 identity should be proven by CountK")
	}
	if got := CountK(2, 2, pathIdentity); got != LenNM(2, 2) {
		t.Fatalf("CountK(2,2) = %d, want %d", got, LenNM(2, 2))
	}
}

func TestProvenMPathIdentity(t *testing.T) {
	if !ProvenM(2, 2, pathIdentity) {
		t.Fatalf("path-1 identity should be proven by CountNM")
	}
}

func TestCountKAndCountNMAgree(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {3, 2}, {2, 3}} {
		m, n := dims[0], dims[1]
		a := CountK(m, n, pathIdentityGeneric(m, n))
		b := CountNM(m, n, pathIdentityGeneric(m, n))
		if a != b {
			t.Errorf("m=%d n=%d: CountK=%d CountNM=%d disagree", m, n, a, b)
		}
	}
}

// pathIdentityGeneric builds a formula that enforces the path-1 core axiom
// across m F-propositions and n X-propositions pairwise by index, wrapping
// around the shorter side.
func pathIdentityGeneric(m, n int) func(fs, xs []uint64) uint64 {
	return func(fs, xs []uint64) uint64 {
		acc := bitword.T
		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				xi := xs[i%n]
				xj := xs[j%n]
				same := bitword.Eq(fs[i], fs[j])
				acc = bitword.And(acc, bitword.Imply(same, bitword.Eq(xi, xj)))
			}
		}
		return acc
	}
}

func TestNonNegativeForSmallCases(t *testing.T) {
	for m := 0; m <= 3; m++ {
		for n := 0; n <= 3; n++ {
			l := LenNM(m, n)
			if l > 1<<20 {
				t.Fatalf("LenNM(%d,%d) implausibly large: %d", m, n, l)
			}
		}
	}
}
