// File: matching.go
// Role: Public entry points — PerfectMatching, MaximumMatching, ExtendsToPerfect.

package matching

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matchcover/core"
)

// PerfectMatching computes a perfect matching of g, or reports definitively
// that none exists.
//
// Contract:
//   - nil graph → ErrGraphNil.
//   - Empty graph or odd vertex count → ErrNoPerfectMatching without search.
//   - Success yields exactly VertexCount()/2 pairs; there are no partial or
//     greedy outputs.
//   - g is never mutated; the search runs on a snapshot.
//   - Cancellation mid-run yields the ctx error (blossom) or
//     ErrSolverTimeout (SAT), never a partial matching.
//
// Backend is selected by WithAlgorithm: AlgoBlossom (default, O(V²·E) worst
// case) or AlgoSAT (gophersat, exactly-one CNF per vertex).
func PerfectMatching(g *core.Graph, opts ...Option) (*Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolveOptions(opts...)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	if n == 0 || n%2 != 0 {
		// Parity decides without any search.
		return nil, fmt.Errorf("%w: %d vertices", ErrNoPerfectMatching, n)
	}

	ig, err := newIndexGraph(g)
	if err != nil {
		return nil, err
	}

	switch o.Algo {
	case AlgoBlossom:
		match, err := maximumMatching(ig, nil, o)
		if err != nil {
			return nil, err
		}
		if matchedPairs(match)*2 != n {
			return nil, exposureError(ig, match)
		}
		return ig.toMatching(match), nil
	case AlgoSAT:
		return perfectMatchingSAT(ig, unmatched, unmatched, o)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, o.Algo)
	}
}

// MaximumMatching computes a maximum matching of g along with the sorted list
// of exposed (uncovered) vertices. Only the blossom backend supports maximum
// (as opposed to perfect) matchings; AlgoSAT yields ErrUnsupportedAlgorithm.
func MaximumMatching(g *core.Graph, opts ...Option) (*Matching, []string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	o, err := resolveOptions(opts...)
	if err != nil {
		return nil, nil, err
	}
	if o.Algo != AlgoBlossom {
		return nil, nil, fmt.Errorf("%w: MaximumMatching requires %s, got %s",
			ErrUnsupportedAlgorithm, AlgoBlossom, o.Algo)
	}

	ig, err := newIndexGraph(g)
	if err != nil {
		return nil, nil, err
	}
	match, err := maximumMatching(ig, nil, o)
	if err != nil {
		return nil, nil, err
	}

	exposed := make([]string, 0)
	for i, m := range match {
		if m == unmatched {
			exposed = append(exposed, ig.ids[i])
		}
	}
	// ig.ids is sorted, so exposed already is.
	return ig.toMatching(match), exposed, nil
}

// ExtendsToPerfect reports whether some perfect matching of g contains the
// edge (u, v). base must be a perfect matching of g witnessing that at least
// one exists; passing nil computes one first.
//
// Blossom strategy: force (u, v) into the matching by removing the ≤2 pairs
// of base covering u and v, banning u and v, and running a single
// re-augmentation restricted to G − {u, v}. The forced matching extends to a
// perfect one iff that search succeeds.
//
// SAT strategy: re-solve with a unit clause on the pair variable.
//
// A false return is definitive; ErrSolverTimeout means the question stayed
// open.
func ExtendsToPerfect(g *core.Graph, base *Matching, u, v string, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	o, err := resolveOptions(opts...)
	if err != nil {
		return false, err
	}
	if !g.HasVertex(u) {
		return false, fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	if !g.HasVertex(v) {
		return false, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}
	if u == v {
		return false, fmt.Errorf("%w: self-pair (%q, %q)", ErrOptionViolation, u, v)
	}
	if !g.HasEdge(u, v) {
		return false, fmt.Errorf("%w: (%q, %q)", ErrEdgeNotInGraph, u, v)
	}

	if base == nil {
		base, err = PerfectMatching(g, opts...)
		if err != nil {
			return false, err
		}
	} else if !base.IsPerfect(g) {
		// The single-search strategy relies on base leaving nothing exposed.
		return false, fmt.Errorf("%w: base matching is not perfect", ErrOptionViolation)
	}
	// A pair already in the witness answers immediately.
	if base.Has(u, v) {
		return true, nil
	}

	switch o.Algo {
	case AlgoBlossom:
		return extendsBlossom(g, base, u, v, o)
	case AlgoSAT:
		ig, igErr := newIndexGraph(g)
		if igErr != nil {
			return false, igErr
		}
		_, satErr := perfectMatchingSAT(ig, ig.index[u], ig.index[v], o)
		switch {
		case satErr == nil:
			return true, nil
		case errors.Is(satErr, ErrNoPerfectMatching):
			return false, nil
		default:
			return false, satErr
		}
	default:
		return false, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, o.Algo)
	}
}

// extendsBlossom runs the forced re-augmentation strategy.
func extendsBlossom(g *core.Graph, base *Matching, u, v string, o Options) (bool, error) {
	ig, err := newIndexGraph(g)
	if err != nil {
		return false, err
	}
	match, err := ig.toMatchArray(base)
	if err != nil {
		return false, err
	}

	ui, vi := ig.index[u], ig.index[v]
	banned := make([]bool, len(ig.ids))
	banned[ui] = true
	banned[vi] = true

	// Strip the pairs of base covering u and v; their former mates become the
	// only exposed vertices of the residual search.
	exposed := make([]int, 0, 2)
	for _, w := range []int{ui, vi} {
		mate := match[w]
		match[w] = unmatched
		if mate != unmatched {
			match[mate] = unmatched
			exposed = append(exposed, mate)
		}
	}
	if len(exposed) == 0 {
		// base matched u with v directly; handled by the caller already, but
		// the forced matching is trivially perfect here.
		return true, nil
	}

	select {
	case <-o.Ctx.Done():
		return false, o.Ctx.Err()
	default:
	}

	// One augmenting search in G − {u, v} joins the two exposed mates iff a
	// perfect matching of the residual graph exists (Berge).
	state := newBlossomState(ig, match, banned)
	finish := state.findAugmentingPath(exposed[0])
	if finish == unmatched {
		return false, nil
	}
	state.augment(finish)
	if o.Verbose {
		fmt.Printf("blossom: edge (%s, %s) re-augmented via %s\n", u, v, ig.ids[finish])
	}
	return true, nil
}

// exposureError builds the definitive no-perfect-matching error, citing the
// exposed vertices left by a maximum matching.
func exposureError(ig *indexGraph, match []int) error {
	exposed := make([]string, 0, 2)
	for i, m := range match {
		if m == unmatched {
			exposed = append(exposed, ig.ids[i])
		}
	}
	return fmt.Errorf("%w: exposed vertices %v", ErrNoPerfectMatching, exposed)
}
