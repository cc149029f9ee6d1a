// File: api.go
// Role: Thin, deterministic public facade exposing policy getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.

package core

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v) rejects the operation with ErrLoopNotAllowed.
//
// This is a policy flag, not a content probe: use HasLoops() to ask whether
// any self-loop is currently stored.
//
// Complexity: Time O(1), Space O(1).
// Concurrency: read lock on muVert (flags are immutable after construction).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are
// permitted by policy. If false, AddEdge(from,to) rejects duplicates with
// ErrMultiEdgeNotAllowed.
//
// Complexity: Time O(1), Space O(1).
// Concurrency: read lock on muVert.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// HasLoops reports whether the graph currently contains at least one
// self-loop. A graph created without WithLoops can never answer true.
//
// Complexity: Time O(E) scan of the edge catalog, Space O(1).
// Concurrency: read lock on muEdgeAdj.
func (g *Graph) HasLoops() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var e *Edge
	for _, e = range g.edges {
		if e.From == e.To {
			return true
		}
	}

	return false
}

// Stats produces a deterministic, read-only snapshot of configuration flags
// and catalog sizes, including the number of stored self-loops.
//
// The two lock phases are taken separately (flags/vertices under muVert,
// then edges under muEdgeAdj) to avoid holding both locks simultaneously.
//
// Complexity: Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	// First phase: capture configuration flags and vertex count under muVert.
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	// Second phase: edge counters under muEdgeAdj.
	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges { // single pass over all edges (O(E))
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
