// File: types.go
// Role: Verdict/Reason enums, Result and Certificate shapes, certifier
// options, and the package error taxonomy.

package matchcover

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/matchcover/matching"
)

// Sentinel errors of the certification pipeline. Structural and matching
// rejections pair with a Reason tag on the returned Result; indeterminate
// outcomes (cancellation, solver stops) surface as an error alone.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matchcover: graph is nil")

	// ErrTrivialGraph is returned for graphs with fewer than two vertices:
	// there is no edge set for the covering question to range over.
	ErrTrivialGraph = errors.New("matchcover: graph has fewer than two vertices")

	// ErrDisconnectedGraph is returned when the graph has multiple components.
	ErrDisconnectedGraph = errors.New("matchcover: graph is not connected")

	// ErrLoopNotAllowed is returned when the graph stores a self-loop; a loop
	// can never be part of a matching.
	ErrLoopNotAllowed = errors.New("matchcover: graph contains a self-loop")

	// ErrInvalidMatching is returned when a caller-supplied matching is not a
	// matching of the graph (unknown endpoints, or pairs that are no edges).
	ErrInvalidMatching = errors.New("matchcover: supplied matching is invalid")

	// ErrNotPerfectMatching is returned when a caller-supplied matching is
	// valid but leaves vertices exposed.
	ErrNotPerfectMatching = errors.New("matchcover: supplied matching is not perfect")

	// ErrNotMatchingCovered is returned when at least one edge lies in no
	// perfect matching; the Result cites a witness edge.
	ErrNotMatchingCovered = errors.New("matchcover: an edge lies in no perfect matching")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matchcover: invalid option supplied")

	// ErrNoPerfectMatching and ErrSolverTimeout are the finder's sentinels,
	// re-exported so callers can branch without importing matching.
	ErrNoPerfectMatching = matching.ErrNoPerfectMatching
	ErrSolverTimeout     = matching.ErrSolverTimeout
)

// Verdict classifies a single edge with respect to perfect matchings.
type Verdict uint8

const (
	// VerdictInMatching marks an edge of the witnessing perfect matching.
	VerdictInMatching Verdict = iota
	// VerdictAllowed marks an edge outside the witness that still lies in
	// some perfect matching.
	VerdictAllowed
	// VerdictForbidden marks an edge that lies in no perfect matching.
	VerdictForbidden
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case VerdictInMatching:
		return "IN_MATCHING"
	case VerdictAllowed:
		return "ALLOWED"
	case VerdictForbidden:
		return "FORBIDDEN"
	default:
		return fmt.Sprintf("Verdict(%d)", uint8(v))
	}
}

// Reason tags why certification rejected a graph. ReasonNone accompanies a
// positive result.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonTrivial
	ReasonHasLoop
	ReasonDisconnected
	ReasonNotAMatching
	ReasonNotAMatchingOfGraph
	ReasonNotPerfect
	ReasonNoPerfectMatching
	ReasonEdgeNotCovered
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "NONE"
	case ReasonTrivial:
		return "TRIVIAL"
	case ReasonHasLoop:
		return "HAS_LOOP"
	case ReasonDisconnected:
		return "DISCONNECTED"
	case ReasonNotAMatching:
		return "NOT_A_MATCHING"
	case ReasonNotAMatchingOfGraph:
		return "NOT_A_MATCHING_OF_GRAPH"
	case ReasonNotPerfect:
		return "NOT_PERFECT"
	case ReasonNoPerfectMatching:
		return "NO_PERFECT_MATCHING"
	case ReasonEdgeNotCovered:
		return "EDGE_NOT_COVERED"
	default:
		return fmt.Sprintf("Reason(%d)", uint8(r))
	}
}

// Certificate pins a rejection to concrete evidence: the edge no perfect
// matching uses, or the vertices a maximum matching leaves exposed.
type Certificate struct {
	// EdgeID cites the uncovered edge for ReasonEdgeNotCovered.
	EdgeID string
	// ExposedVertices lists uncovered vertices for ReasonNoPerfectMatching,
	// sorted.
	ExposedVertices []string
}

// Result is the full certification outcome.
type Result struct {
	// Covered reports whether every edge lies in some perfect matching.
	Covered bool
	// Reason tags the rejection; ReasonNone when Covered.
	Reason Reason
	// Matching is the witnessing perfect matching, when one was resolved.
	Matching *matching.Matching
	// Verdicts classifies every edge of the graph, keyed by edge ID. Present
	// whenever classification ran (including ReasonEdgeNotCovered rejections).
	Verdicts map[string]Verdict
	// Certificate carries rejection evidence, when any exists.
	Certificate Certificate
}

// Options holds certifier parameters.
type Options struct {
	// Ctx allows cancellation; checked between per-edge classifications.
	Ctx context.Context

	// Workers >1 classifies edges in parallel over a read-only snapshot;
	// 0 or 1 runs serially. Verdict slots are disjoint, so results are
	// identical either way.
	Workers int

	// Matching, if set, is used as the witness instead of running the finder.
	// It must be a perfect matching of the graph.
	Matching *matching.Matching

	// Finder options are passed through to the matching package (algorithm
	// token, verbosity, tolerance).
	Finder []matching.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context and serial
// classification.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// Option configures certification via functional arguments.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the classification fan-out. n < 0 is an option violation;
// 0 and 1 both mean serial.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMatching supplies a caller-side witness matching.
func WithMatching(m *matching.Matching) Option {
	return func(o *Options) {
		o.Matching = m
	}
}

// WithFinderOptions forwards options to the matching backends.
func WithFinderOptions(opts ...matching.Option) Option {
	return func(o *Options) {
		o.Finder = append(o.Finder, opts...)
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

// finderOptions merges the certifier context into the passthrough options.
// Caller-supplied finder options win on conflict (applied last).
func (o Options) finderOptions() []matching.Option {
	merged := make([]matching.Option, 0, len(o.Finder)+1)
	merged = append(merged, matching.WithContext(o.Ctx))
	merged = append(merged, o.Finder...)
	return merged
}
