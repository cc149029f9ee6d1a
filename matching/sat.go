// File: sat.go
// Role: Perfect matching as CNF, delegated to the gophersat solver.
//
// Encoding:
//   - One boolean variable per adjacent unordered vertex pair (i < j);
//     parallel edges collapse onto the same variable.
//   - Per vertex: one at-least-one clause over its incident pair variables,
//     plus pairwise at-most-one clauses (exactly-one).
//   - Forcing an edge into the matching is a single unit clause.
//
// Outcome mapping: Sat → matching, Unsat → ErrNoPerfectMatching,
// Indet (stopped) → ErrSolverTimeout.

package matching

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
)

// pairKey identifies an unordered index pair, lo < hi.
type pairKey struct {
	lo, hi int
}

// cnfEncoding maps pair variables to CNF literals (1-based).
type cnfEncoding struct {
	pairs   []pairKey        // variable v ↔ pairs[v-1]
	varOf   map[pairKey]int  // pair → variable
	clauses [][]int
}

// normalizePair orders an index pair.
func normalizePair(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// buildPerfectMatchingCNF encodes "ig has a perfect matching" as CNF.
// A vertex with no usable neighbor short-circuits to ErrNoPerfectMatching.
func buildPerfectMatchingCNF(ig *indexGraph) (*cnfEncoding, error) {
	enc := &cnfEncoding{varOf: make(map[pairKey]int)}

	// Allocate variables in deterministic (i, j) order.
	for i, row := range ig.adj {
		for _, j := range row {
			if i >= j {
				continue
			}
			k := pairKey{lo: i, hi: j}
			if _, ok := enc.varOf[k]; !ok {
				enc.pairs = append(enc.pairs, k)
				enc.varOf[k] = len(enc.pairs)
			}
		}
	}

	// Per-vertex exactly-one over incident pair variables.
	for i, row := range ig.adj {
		incident := make([]int, 0, len(row))
		for _, j := range row {
			incident = append(incident, enc.varOf[normalizePair(i, j)])
		}
		if len(incident) == 0 {
			// Isolated vertex: nothing can ever cover it.
			return nil, fmt.Errorf("%w: vertex %q has no incident edge", ErrNoPerfectMatching, ig.ids[i])
		}
		atLeastOne := make([]int, len(incident))
		copy(atLeastOne, incident)
		enc.clauses = append(enc.clauses, atLeastOne)
		for a := 0; a < len(incident); a++ {
			for b := a + 1; b < len(incident); b++ {
				enc.clauses = append(enc.clauses, []int{-incident[a], -incident[b]})
			}
		}
	}

	return enc, nil
}

// solveCNF runs gophersat on the clauses, honoring cancellation through the
// solver's stop channel. On Sat it returns the true pair variables.
func solveCNF(enc *cnfEncoding, opts Options) ([]pairKey, error) {
	pb := solver.ParseSlice(enc.clauses)
	s := solver.New(pb)
	if opts.Verbose {
		fmt.Printf("sat: %d variables, %d clauses\n", len(enc.pairs), len(enc.clauses))
	}

	// An already-expired context never reaches the solver.
	if ctxErr := opts.Ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolverTimeout, ctxErr)
	}

	// Bridge ctx cancellation to the solver's stop channel.
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		select {
		case <-opts.Ctx.Done():
			close(stop)
		case <-done:
		}
	}()
	res := s.Optimal(nil, stop)
	close(done)

	switch res.Status {
	case solver.Sat:
		chosen := make([]pairKey, 0, len(enc.pairs)/2)
		for idx, bound := range res.Model {
			if !bound {
				continue
			}
			v := idx + 1
			if v >= 1 && v <= len(enc.pairs) {
				chosen = append(chosen, enc.pairs[v-1])
			}
		}
		if opts.Verbose {
			fmt.Printf("sat: model selects %d pairs\n", len(chosen))
		}
		return chosen, nil
	case solver.Unsat:
		return nil, ErrNoPerfectMatching
	default:
		// Indet: the solver was stopped before deciding.
		if ctxErr := opts.Ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrSolverTimeout, ctxErr)
		}
		return nil, ErrSolverTimeout
	}
}

// perfectMatchingSAT finds a perfect matching of ig, optionally forcing the
// pair (fu, fv) into it (pass unmatched, unmatched for no forcing).
func perfectMatchingSAT(ig *indexGraph, fu, fv int, opts Options) (*Matching, error) {
	enc, err := buildPerfectMatchingCNF(ig)
	if err != nil {
		return nil, err
	}

	if fu != unmatched && fv != unmatched {
		v, ok := enc.varOf[normalizePair(fu, fv)]
		if !ok {
			return nil, fmt.Errorf("%w: (%q, %q)", ErrEdgeNotInGraph, ig.ids[fu], ig.ids[fv])
		}
		enc.clauses = append(enc.clauses, []int{v})
	}

	chosen, err := solveCNF(enc, opts)
	if err != nil {
		return nil, err
	}

	m := NewMatching()
	for _, k := range chosen {
		m.mate[ig.ids[k.lo]] = ig.ids[k.hi]
		m.mate[ig.ids[k.hi]] = ig.ids[k.lo]
	}
	return m, nil
}
