// File: certify.go
// Role: The certification state machine — structural screening, witness
// resolution, and per-edge classification.
//
// Pipeline:
//  1. STRUCTURAL  — nil / trivial / loops / connectivity.
//  2. RESOLUTION  — validate the supplied witness or run the finder.
//  3. CERTIFY     — classify every edge; any FORBIDDEN edge rejects.
//
// Rejections with a Reason return the populated Result AND the matching
// typed error; indeterminate outcomes (cancellation, solver stop) and
// internal failures return an error alone.

package matchcover

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/matchcover/bfs"
	"github.com/katalvlaran/matchcover/core"
	"github.com/katalvlaran/matchcover/matching"
)

// Certify decides whether g is matching covered: connected, on at least two
// vertices, loopless, and with every edge in some perfect matching.
//
// On success, Result.Verdicts classifies each edge as IN_MATCHING or ALLOWED
// and Result.Matching carries the witness. On rejection, Result.Reason and
// Result.Certificate explain why, and the paired sentinel error is returned
// alongside. g is never mutated.
func Certify(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolveOptions(opts...)
	if err != nil {
		return nil, err
	}

	// Stage 1: structural screening.
	if res, err := screenStructure(g, o); err != nil {
		return res, err
	}

	// Stage 2: witness resolution.
	witness, res, err := resolveWitness(g, o)
	if err != nil {
		return res, err
	}

	// Stage 3: per-edge classification.
	return classifyEdges(g, witness, o)
}

// screenStructure runs the cheap structural rejections in fixed order:
// trivial size, stored loops, connectivity.
func screenStructure(g *core.Graph, o Options) (*Result, error) {
	if g.VertexCount() < 2 {
		return &Result{Reason: ReasonTrivial}, ErrTrivialGraph
	}
	if g.HasLoops() {
		return &Result{Reason: ReasonHasLoop}, ErrLoopNotAllowed
	}
	connected, err := bfs.IsConnected(g, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("matchcover: connectivity check: %w", err)
	}
	if !connected {
		return &Result{Reason: ReasonDisconnected}, ErrDisconnectedGraph
	}
	return nil, nil
}

// resolveWitness validates the supplied matching or runs the finder.
// Rejections come back as (nil, Result, err); indeterminate finder outcomes
// as (nil, nil, err).
func resolveWitness(g *core.Graph, o Options) (*matching.Matching, *Result, error) {
	if o.Matching != nil {
		if err := o.Matching.ValidateAgainst(g); err != nil {
			reason := ReasonNotAMatching
			if errors.Is(err, matching.ErrEdgeNotInGraph) {
				// Disjoint pairs over known vertices, but not edges of g.
				reason = ReasonNotAMatchingOfGraph
			}
			return nil, &Result{Reason: reason}, fmt.Errorf("%w: %v", ErrInvalidMatching, err)
		}
		if !o.Matching.IsPerfect(g) {
			return nil, &Result{Reason: ReasonNotPerfect}, ErrNotPerfectMatching
		}
		// Clone so later mutations of the caller's value cannot skew verdicts.
		return o.Matching.Clone(), nil, nil
	}

	witness, err := matching.PerfectMatching(g, o.finderOptions()...)
	switch {
	case err == nil:
		return witness, nil, nil
	case errors.Is(err, matching.ErrNoPerfectMatching):
		res := &Result{
			Reason:      ReasonNoPerfectMatching,
			Certificate: Certificate{ExposedVertices: exposedVertices(g, o)},
		}
		return nil, res, err
	default:
		// Cancellation or solver stop: the question stayed open.
		return nil, nil, err
	}
}

// exposedVertices names the vertices a maximum matching leaves uncovered.
// Always computed with the blossom backend; best effort only.
func exposedVertices(g *core.Graph, o Options) []string {
	_, exposed, err := matching.MaximumMatching(g, matching.WithContext(o.Ctx))
	if err != nil {
		return nil
	}
	return exposed
}

// vertexPair is an unordered endpoint pair; parallel edges share one.
type vertexPair struct {
	u, v string
}

func pairOf(e *core.Edge) vertexPair {
	if e.From < e.To {
		return vertexPair{u: e.From, v: e.To}
	}
	return vertexPair{u: e.To, v: e.From}
}

// classifyEdges assigns a Verdict to every edge. Witness pairs are
// IN_MATCHING (parallel edges between matched partners share the pair's
// class); each remaining parallel class is decided once via
// matching.ExtendsToPerfect, serially or fanned out across o.Workers.
func classifyEdges(g *core.Graph, witness *matching.Matching, o Options) (*Result, error) {
	edges := g.Edges()
	verdicts := make(map[string]Verdict, len(edges))

	// Collect the parallel classes that need a search.
	open := make([]vertexPair, 0, len(edges))
	seen := make(map[vertexPair]bool, len(edges))
	for _, e := range edges {
		p := pairOf(e)
		if witness.Has(e.From, e.To) {
			verdicts[e.ID] = VerdictInMatching
			continue
		}
		if !seen[p] {
			seen[p] = true
			open = append(open, p)
		}
	}

	allowed, err := classifyPairs(g, witness, open, o)
	if err != nil {
		return nil, err
	}

	for _, e := range edges {
		if _, done := verdicts[e.ID]; done {
			continue
		}
		if allowed[pairOf(e)] {
			verdicts[e.ID] = VerdictAllowed
		} else {
			verdicts[e.ID] = VerdictForbidden
		}
	}

	// Reject on the smallest forbidden edge ID for a stable certificate.
	forbidden := ""
	for id, v := range verdicts {
		if v == VerdictForbidden && (forbidden == "" || id < forbidden) {
			forbidden = id
		}
	}
	if forbidden != "" {
		res := &Result{
			Reason:      ReasonEdgeNotCovered,
			Matching:    witness,
			Verdicts:    verdicts,
			Certificate: Certificate{EdgeID: forbidden},
		}
		return res, fmt.Errorf("%w: edge %s", ErrNotMatchingCovered, forbidden)
	}

	return &Result{Covered: true, Matching: witness, Verdicts: verdicts}, nil
}

// classifyPairs answers "lies in some perfect matching?" per parallel class.
func classifyPairs(g *core.Graph, witness *matching.Matching, open []vertexPair, o Options) (map[vertexPair]bool, error) {
	allowed := make(map[vertexPair]bool, len(open))
	if len(open) == 0 {
		return allowed, nil
	}

	if o.Workers > 1 {
		return classifyPairsParallel(g, witness, open, o)
	}

	for _, p := range open {
		// Cancellation point between classifications: abort with the ctx
		// error, never a false verdict.
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		ok, err := matching.ExtendsToPerfect(g, witness, p.u, p.v, o.finderOptions()...)
		if err != nil {
			return nil, err
		}
		allowed[p] = ok
	}
	return allowed, nil
}

// classifyPairsParallel fans classification out over o.Workers goroutines.
// Each worker writes disjoint slots; errors are reduced in pair order so the
// outcome matches a serial run.
func classifyPairsParallel(g *core.Graph, witness *matching.Matching, open []vertexPair, o Options) (map[vertexPair]bool, error) {
	type slot struct {
		ok  bool
		err error
	}
	slots := make([]slot, len(open))
	next := make(chan int)

	workers := o.Workers
	if workers > len(open) {
		workers = len(open)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				p := open[i]
				ok, err := matching.ExtendsToPerfect(g, witness, p.u, p.v, o.finderOptions()...)
				slots[i] = slot{ok: ok, err: err}
			}
		}()
	}

feed:
	for i := range open {
		select {
		case <-o.Ctx.Done():
			break feed
		case next <- i:
		}
	}
	close(next)
	wg.Wait()

	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}
	for _, s := range slots {
		if s.err != nil {
			return nil, s.err
		}
	}

	allowed := make(map[vertexPair]bool, len(open))
	for i, p := range open {
		allowed[p] = slots[i].ok
	}
	return allowed, nil
}
