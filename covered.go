// File: covered.go
// Role: MatchingCoveredGraph — a certified, immutable-by-contract wrapper.
//
// The wrapper owns a deep clone of the certified graph, the witnessing
// perfect matching, and the per-edge verdict map. Loops can never persist:
// any mutation producing one fails certification, so there is no AllowLoops
// knob to expose. Mutators re-certify on a candidate clone and roll back
// (by not swapping) on rejection.

package matchcover

import (
	"fmt"

	"github.com/katalvlaran/matchcover/core"
	"github.com/katalvlaran/matchcover/matching"
)

// MatchingCoveredGraph is a graph whose matching-covered status has been
// certified. All read accessors delegate to the internal clone; mutators
// keep the certificate current or fail atomically.
type MatchingCoveredGraph struct {
	g        *core.Graph
	witness  *matching.Matching
	verdicts map[string]Verdict
}

// New certifies g and wraps it. Certification failures propagate unchanged.
func New(g *core.Graph, opts ...Option) (*MatchingCoveredGraph, error) {
	res, err := Certify(g, opts...)
	if err != nil {
		return nil, err
	}
	return &MatchingCoveredGraph{
		g:        g.Clone(),
		witness:  res.Matching,
		verdicts: res.Verdicts,
	}, nil
}

// NewFromCertified re-wraps an already certified graph without running
// certification again. The new wrapper is fully independent of h.
func NewFromCertified(h *MatchingCoveredGraph) (*MatchingCoveredGraph, error) {
	if h == nil {
		return nil, ErrGraphNil
	}
	return &MatchingCoveredGraph{
		g:        h.g.Clone(),
		witness:  h.witness.Clone(),
		verdicts: copyVerdicts(h.verdicts),
	}, nil
}

// Vertices returns all vertex IDs in sorted order.
func (h *MatchingCoveredGraph) Vertices() []string { return h.g.Vertices() }

// Edges returns copies of all edges, sorted by edge ID.
func (h *MatchingCoveredGraph) Edges() []*core.Edge { return h.g.Edges() }

// Neighbors returns the incident edges of id, sorted by edge ID.
func (h *MatchingCoveredGraph) Neighbors(id string) ([]*core.Edge, error) {
	return h.g.Neighbors(id)
}

// HasEdge reports whether an edge joins u and v.
func (h *MatchingCoveredGraph) HasEdge(u, v string) bool { return h.g.HasEdge(u, v) }

// Degree returns the number of edge endpoints incident to id.
func (h *MatchingCoveredGraph) Degree(id string) (int, error) { return h.g.Degree(id) }

// VertexCount returns the number of vertices.
func (h *MatchingCoveredGraph) VertexCount() int { return h.g.VertexCount() }

// EdgeCount returns the number of edges.
func (h *MatchingCoveredGraph) EdgeCount() int { return h.g.EdgeCount() }

// Matching returns an independent copy of the witnessing perfect matching.
func (h *MatchingCoveredGraph) Matching() *matching.Matching { return h.witness.Clone() }

// Verdicts returns an independent copy of the per-edge verdict map.
func (h *MatchingCoveredGraph) Verdicts() map[string]Verdict {
	return copyVerdicts(h.verdicts)
}

// Graph clones the certified graph out; mutations of the clone never touch h.
func (h *MatchingCoveredGraph) Graph() *core.Graph { return h.g.Clone() }

// AddEdge inserts the edge (u, v) and re-certifies. On rejection the wrapper
// is left untouched and the typed certification error is returned.
// The witness stays valid across an insertion, so only the new edge's class
// needs solving.
func (h *MatchingCoveredGraph) AddEdge(u, v string) (string, error) {
	candidate := h.g.Clone()
	id, err := candidate.AddEdge(u, v)
	if err != nil {
		return "", fmt.Errorf("matchcover: AddEdge: %w", err)
	}
	if err := h.swapIfCovered(candidate, h.witness); err != nil {
		return "", err
	}
	return id, nil
}

// RemoveEdge deletes the edge and re-certifies. Removing a witness edge
// forces a fresh perfect-matching search.
func (h *MatchingCoveredGraph) RemoveEdge(id string) error {
	candidate := h.g.Clone()
	edge, err := candidate.GetEdge(id)
	if err != nil {
		return fmt.Errorf("matchcover: RemoveEdge: %w", err)
	}
	if err = candidate.RemoveEdge(id); err != nil {
		return fmt.Errorf("matchcover: RemoveEdge: %w", err)
	}
	witness := h.witness
	if witness.Has(edge.From, edge.To) && !candidate.HasEdge(edge.From, edge.To) {
		// The witness pair lost its last parallel edge; recompute from scratch.
		witness = nil
	}
	return h.swapIfCovered(candidate, witness)
}

// RemoveVertex deletes the vertex with its incident edges and re-certifies.
func (h *MatchingCoveredGraph) RemoveVertex(id string) error {
	candidate := h.g.Clone()
	if err := candidate.RemoveVertex(id); err != nil {
		return fmt.Errorf("matchcover: RemoveVertex: %w", err)
	}
	// Vertex removal always invalidates the witness.
	return h.swapIfCovered(candidate, nil)
}

// swapIfCovered certifies the candidate (seeded with witness when still
// valid) and installs it only on success.
func (h *MatchingCoveredGraph) swapIfCovered(candidate *core.Graph, witness *matching.Matching) error {
	opts := make([]Option, 0, 1)
	if witness != nil {
		opts = append(opts, WithMatching(witness))
	}
	res, err := Certify(candidate, opts...)
	if err != nil {
		return err
	}
	h.g = candidate
	h.witness = res.Matching
	h.verdicts = res.Verdicts
	return nil
}

func copyVerdicts(in map[string]Verdict) map[string]Verdict {
	out := make(map[string]Verdict, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
