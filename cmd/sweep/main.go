// Command sweep runs the recursive counter over a growing number of
// variables, renders the timing profile as an HTML chart, and commits the
// batch of sweep counts to a lattice-ring commitment so the batch can be
// attested without re-running the sweep.
package main

import (
	"flag"
	"fmt"
	"log"

	"tautology/bench"
	"tautology/commitment"
)

func main() {
	maxN := flag.Int("max-n", 20, "largest N to sweep up to")
	out := flag.String("out", "sweep.html", "output HTML file")
	flag.Parse()

	points := bench.Sweep(*maxN)
	counts := make([]uint64, len(points))
	for i, p := range points {
		fmt.Printf("N=%2d count=%d elapsed=%s\n", p.N, p.Count, p.Elapsed)
		counts[i] = p.Count
	}

	if err := bench.RenderSweep(points, *out); err != nil {
		log.Fatalf("render sweep: %v", err)
	}
	fmt.Println("wrote", *out)

	params, err := commitment.NewParams(1, len(counts))
	if err != nil {
		log.Fatalf("commitment params: %v", err)
	}
	com, err := params.CommitCounts(counts)
	if err != nil {
		log.Fatalf("commit counts: %v", err)
	}
	if err := params.VerifyCounts(counts, com); err != nil {
		log.Fatalf("verify own commitment: %v", err)
	}
	fmt.Printf("committed %d sweep counts to a %d-row lattice commitment\n", len(counts), len(com))
}
