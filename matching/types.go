// File: types.go
// Role: Matching value type, algorithm tokens, options, and sentinel errors.

package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/matchcover/core"
)

// Sentinel errors for matching computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrVertexNotFound is returned when a referenced vertex is absent.
	ErrVertexNotFound = errors.New("matching: vertex not found")

	// ErrEdgeNotInGraph is returned when a vertex pair is not an edge of the graph.
	ErrEdgeNotInGraph = errors.New("matching: pair is not an edge of the graph")

	// ErrNoPerfectMatching is returned when the graph holds no perfect matching.
	// This is a definitive answer, not a failure.
	ErrNoPerfectMatching = errors.New("matching: no perfect matching exists")

	// ErrSolverTimeout is returned when a backend stops before reaching a
	// definitive answer (cancellation mid-solve). Distinct from
	// ErrNoPerfectMatching: the question remains open.
	ErrSolverTimeout = errors.New("matching: solver stopped before a definitive answer")

	// ErrUnsupportedAlgorithm is returned for an unknown Algo token.
	ErrUnsupportedAlgorithm = errors.New("matching: unsupported algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")
)

// Algorithm selects the perfect-matching backend.
type Algorithm uint8

const (
	// AlgoBlossom is the Edmonds blossom augmenting search (default).
	AlgoBlossom Algorithm = iota
	// AlgoSAT encodes perfect matching as CNF and delegates to gophersat.
	AlgoSAT
)

// String implements fmt.Stringer for diagnostics.
func (a Algorithm) String() string {
	switch a {
	case AlgoBlossom:
		return "Blossom"
	case AlgoSAT:
		return "SAT"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// maxTolerance bounds the half-open acceptance interval [0, 0.5):
// at 0.5 a fractional value can no longer be rounded unambiguously.
const maxTolerance = 0.5

// Options holds parameters for the matching backends.
type Options struct {
	// Ctx allows cancellation and deadlines. Cancellation mid-run yields the
	// ctx error (blossom) or ErrSolverTimeout (SAT), never a partial matching.
	Ctx context.Context

	// Algo selects the backend; AlgoBlossom by default.
	Algo Algorithm

	// Verbose, if true, prints each augmentation / solver milestone.
	Verbose bool

	// Tolerance governs integrality acceptance for relaxation-based backends,
	// in [0, 0.5). Exact backends (blossom, SAT) ignore it.
	Tolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with deterministic defaults:
// background context, blossom backend, quiet, Tolerance 1e-9.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Algo:      AlgoBlossom,
		Verbose:   false,
		Tolerance: 1e-9,
	}
}

// Option configures matching behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation at call time.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlgorithm selects the backend. Unknown tokens surface as
// ErrUnsupportedAlgorithm when the search runs, not here.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algo = a
	}
}

// WithVerbose toggles progress printing.
func WithVerbose(v bool) Option {
	return func(o *Options) {
		o.Verbose = v
	}
}

// WithTolerance sets the integrality acceptance threshold, t ∈ [0, 0.5).
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t < 0 || t >= maxTolerance {
			o.err = fmt.Errorf("%w: Tolerance %g outside [0, %g)", ErrOptionViolation, t, maxTolerance)
			return
		}
		o.Tolerance = t
	}
}

// resolveOptions applies opts over defaults and surfaces recorded violations.
func resolveOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

// Matching is a set of vertex-disjoint pairs, held as a symmetric partner map.
// The zero value is not usable; construct with NewMatching.
type Matching struct {
	mate map[string]string
}

// NewMatching returns an empty matching.
func NewMatching() *Matching {
	return &Matching{mate: make(map[string]string)}
}

// Add records the pair (u, v). It rejects self-pairs and pairs whose
// endpoints are already matched elsewhere; re-adding an existing pair is a
// no-op.
func (m *Matching) Add(u, v string) error {
	if u == "" || v == "" {
		return fmt.Errorf("%w: empty endpoint in pair (%q, %q)", ErrVertexNotFound, u, v)
	}
	if u == v {
		return fmt.Errorf("%w: self-pair (%q, %q)", ErrOptionViolation, u, v)
	}
	if w, ok := m.mate[u]; ok {
		if w == v {
			return nil
		}
		return fmt.Errorf("%w: %q already matched to %q", ErrOptionViolation, u, w)
	}
	if w, ok := m.mate[v]; ok {
		return fmt.Errorf("%w: %q already matched to %q", ErrOptionViolation, v, w)
	}
	m.mate[u] = v
	m.mate[v] = u
	return nil
}

// Mate returns the partner of v and whether v is covered.
func (m *Matching) Mate(v string) (string, bool) {
	w, ok := m.mate[v]
	return w, ok
}

// Covers reports whether v is an endpoint of some pair.
func (m *Matching) Covers(v string) bool {
	_, ok := m.mate[v]
	return ok
}

// Has reports whether the unordered pair (u, v) belongs to the matching.
func (m *Matching) Has(u, v string) bool {
	return u != v && m.mate[u] == v
}

// Size returns the number of pairs.
func (m *Matching) Size() int {
	return len(m.mate) / 2
}

// Pairs returns the pairs as [smaller, larger] endpoint tuples, sorted by the
// smaller endpoint. Deterministic for equal contents.
func (m *Matching) Pairs() [][2]string {
	pairs := make([][2]string, 0, len(m.mate)/2)
	for u, v := range m.mate {
		if u < v {
			pairs = append(pairs, [2]string{u, v})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs
}

// Clone returns an independent deep copy.
func (m *Matching) Clone() *Matching {
	c := NewMatching()
	for u, v := range m.mate {
		c.mate[u] = v
	}
	return c
}

// IsPerfect reports whether the matching covers every vertex of g.
// A nil graph or an empty graph is never perfectly matched.
func (m *Matching) IsPerfect(g *core.Graph) bool {
	if g == nil || g.VertexCount() == 0 {
		return false
	}
	if m.Size()*2 != g.VertexCount() {
		return false
	}
	for _, id := range g.Vertices() {
		if !m.Covers(id) {
			return false
		}
	}
	return true
}

// ValidateAgainst checks that every pair of the matching is an actual edge of
// g (both endpoints present, at least one edge between them). Disjointness of
// pairs is guaranteed by construction.
func (m *Matching) ValidateAgainst(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, p := range m.Pairs() {
		u, v := p[0], p[1]
		if !g.HasVertex(u) {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, u)
		}
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, v)
		}
		if !g.HasEdge(u, v) {
			return fmt.Errorf("%w: (%q, %q)", ErrEdgeNotInGraph, u, v)
		}
	}
	return nil
}
