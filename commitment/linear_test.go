package commitment

import (
	"testing"

	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"
)

func randPoly(r *ring.Ring, prng utils.PRNG) *ring.Poly {
	p := r.NewPoly()
	us := ring.NewUniformSampler(prng, r)
	us.Read(p)
	return p
}

func TestCommitVerify(t *testing.T) {
	ringQ, err := ring.NewRing(ringN, []uint64{modQ})
	if err != nil {
		t.Fatalf("ring: %v", err)
	}
	prng, err := utils.NewPRNG()
	if err != nil {
		t.Fatalf("prng: %v", err)
	}

	vec := Vector{randPoly(ringQ, prng), randPoly(ringQ, prng), randPoly(ringQ, prng)}
	Ac := Matrix{
		{randPoly(ringQ, prng), randPoly(ringQ, prng), randPoly(ringQ, prng)},
		{randPoly(ringQ, prng), randPoly(ringQ, prng), randPoly(ringQ, prng)},
	}

	com, err := Commit(ringQ, Ac, vec)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := Verify(ringQ, Ac, vec, com); err != nil {
		t.Fatalf("verify: %v", err)
	}

	// Tamper a coefficient and expect verification to fail.
	com[0].Coeffs[0][0]++
	if err := Verify(ringQ, Ac, vec, com); err == nil {
		t.Fatalf("verify should fail on tampered commitment")
	}
}

func TestCommitDimensionMismatch(t *testing.T) {
	ringQ, err := ring.NewRing(ringN, []uint64{modQ})
	if err != nil {
		t.Fatalf("ring: %v", err)
	}
	vec := Vector{ringQ.NewPoly(), ringQ.NewPoly()}
	Ac := Matrix{{ringQ.NewPoly()}}
	if _, err := Commit(ringQ, Ac, vec); err == nil {
		t.Fatalf("expected dimension mismatch error")
	}
}

func TestCommitCountsRoundTrip(t *testing.T) {
	params, err := NewParams(2, 4)
	if err != nil {
		t.Fatalf("new params: %v", err)
	}
	counts := []uint64{4, 8, 9, 16}
	com, err := params.CommitCounts(counts)
	if err != nil {
		t.Fatalf("commit counts: %v", err)
	}
	if err := params.VerifyCounts(counts, com); err != nil {
		t.Fatalf("verify counts: %v", err)
	}

	tampered := []uint64{4, 8, 9, 17}
	if err := params.VerifyCounts(tampered, com); err == nil {
		t.Fatalf("verify should fail on tampered counts")
	}
}
