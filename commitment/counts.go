package commitment

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"
)

// ringN and modQ fix a small ring suitable for committing to batches of
// counter results; the parameters match the ones used to validate the
// linear commitment scheme itself.
const (
	ringN = 16
	modQ  = 12289
)

// Params bundles a ring and a uniformly random public matrix, so a sweep
// or bench run can commit to its batch of counts and later prove it did
// not tamper with them after the fact.
type Params struct {
	ringQ *ring.Ring
	Ac    Matrix
}

// NewParams builds a fresh ring and samples a uniformly random rows*cols
// public matrix over it.
func NewParams(rows, cols int) (*Params, error) {
	ringQ, err := ring.NewRing(ringN, []uint64{modQ})
	if err != nil {
		return nil, fmt.Errorf("commitment: new ring: %w", err)
	}
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("commitment: new prng: %w", err)
	}
	us := ring.NewUniformSampler(prng, ringQ)

	Ac := make(Matrix, rows)
	for i := range Ac {
		Ac[i] = make([]*ring.Poly, cols)
		for j := range Ac[i] {
			p := ringQ.NewPoly()
			us.Read(p)
			Ac[i][j] = p
		}
	}
	return &Params{ringQ: ringQ, Ac: Ac}, nil
}

// encode embeds each count as the constant term of a ring element.
func (p *Params) encode(counts []uint64) Vector {
	vec := make(Vector, len(counts))
	for i, c := range counts {
		poly := p.ringQ.NewPoly()
		poly.Coeffs[0][0] = c % modQ
		vec[i] = poly
	}
	return vec
}

// CommitCounts commits to a batch of counter results (e.g. one per sweep
// point). len(counts) must equal the column count Params was built with.
func (p *Params) CommitCounts(counts []uint64) (Vector, error) {
	return Commit(p.ringQ, p.Ac, p.encode(counts))
}

// VerifyCounts checks that counts is the opening of com under Params.
func (p *Params) VerifyCounts(counts []uint64, com Vector) error {
	return Verify(p.ringQ, p.Ac, p.encode(counts), com)
}
