// File: matching_test.go
// Role: Functional tests for PerfectMatching, MaximumMatching and
// ExtendsToPerfect across both backends.

package matching_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchcover/builder"
	"github.com/katalvlaran/matchcover/core"
	"github.com/katalvlaran/matchcover/matching"
)

// build constructs a fixture graph or fails the test.
func build(t *testing.T, cons builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons)
	require.NoError(t, err)
	return g
}

// backends runs fn once per algorithm token.
func backends(t *testing.T, fn func(t *testing.T, algo matching.Algorithm)) {
	for _, algo := range []matching.Algorithm{matching.AlgoBlossom, matching.AlgoSAT} {
		algo := algo
		t.Run(algo.String(), func(t *testing.T) {
			fn(t, algo)
		})
	}
}

func TestPerfectMatching_EvenCycle(t *testing.T) {
	g := build(t, builder.Cycle(6))
	backends(t, func(t *testing.T, algo matching.Algorithm) {
		m, err := matching.PerfectMatching(g, matching.WithAlgorithm(algo))
		require.NoError(t, err)
		require.Equal(t, 3, m.Size())
		require.True(t, m.IsPerfect(g))
		require.NoError(t, m.ValidateAgainst(g))
	})
}

func TestPerfectMatching_OddCycle(t *testing.T) {
	g := build(t, builder.Cycle(5))
	backends(t, func(t *testing.T, algo matching.Algorithm) {
		_, err := matching.PerfectMatching(g, matching.WithAlgorithm(algo))
		require.ErrorIs(t, err, matching.ErrNoPerfectMatching)
	})
}

func TestPerfectMatching_Petersen(t *testing.T) {
	g := build(t, builder.Petersen())
	backends(t, func(t *testing.T, algo matching.Algorithm) {
		m, err := matching.PerfectMatching(g, matching.WithAlgorithm(algo))
		require.NoError(t, err)
		require.Equal(t, 5, m.Size())
		require.True(t, m.IsPerfect(g))
	})
}

func TestPerfectMatching_Bipartite(t *testing.T) {
	balanced := build(t, builder.CompleteBipartite(3, 3))
	unbalanced := build(t, builder.CompleteBipartite(2, 4))
	backends(t, func(t *testing.T, algo matching.Algorithm) {
		m, err := matching.PerfectMatching(balanced, matching.WithAlgorithm(algo))
		require.NoError(t, err)
		require.True(t, m.IsPerfect(balanced))

		// Even vertex count, but the small side starves: definitive no.
		_, err = matching.PerfectMatching(unbalanced, matching.WithAlgorithm(algo))
		require.ErrorIs(t, err, matching.ErrNoPerfectMatching)
	})
}

func TestPerfectMatching_DegenerateInputs(t *testing.T) {
	_, err := matching.PerfectMatching(nil)
	require.ErrorIs(t, err, matching.ErrGraphNil)

	empty := core.NewGraph()
	_, err = matching.PerfectMatching(empty)
	require.ErrorIs(t, err, matching.ErrNoPerfectMatching)

	// Even count, isolated vertex: the SAT encoder and blossom must agree.
	g := build(t, builder.Path(3))
	require.NoError(t, g.AddVertex("Z"))
	backends(t, func(t *testing.T, algo matching.Algorithm) {
		_, err := matching.PerfectMatching(g, matching.WithAlgorithm(algo))
		require.ErrorIs(t, err, matching.ErrNoPerfectMatching)
	})
}

func TestPerfectMatching_UnknownAlgorithm(t *testing.T) {
	g := build(t, builder.Cycle(4))
	_, err := matching.PerfectMatching(g, matching.WithAlgorithm(matching.Algorithm(99)))
	require.ErrorIs(t, err, matching.ErrUnsupportedAlgorithm)
}

func TestPerfectMatching_OptionViolation(t *testing.T) {
	g := build(t, builder.Cycle(4))
	_, err := matching.PerfectMatching(g, matching.WithTolerance(0.5))
	require.ErrorIs(t, err, matching.ErrOptionViolation)
	_, err = matching.PerfectMatching(g, matching.WithTolerance(-0.1))
	require.ErrorIs(t, err, matching.ErrOptionViolation)
}

func TestPerfectMatching_Cancellation(t *testing.T) {
	g := build(t, builder.Cycle(6))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := matching.PerfectMatching(g, matching.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = matching.PerfectMatching(g,
		matching.WithContext(ctx), matching.WithAlgorithm(matching.AlgoSAT))
	require.ErrorIs(t, err, matching.ErrSolverTimeout)
}

func TestMaximumMatching_PathAndExposure(t *testing.T) {
	g := build(t, builder.Path(5))
	m, exposed, err := matching.MaximumMatching(g)
	require.NoError(t, err)
	require.Equal(t, 2, m.Size())
	require.Len(t, exposed, 1)
	require.False(t, m.Covers(exposed[0]))

	_, _, err = matching.MaximumMatching(g, matching.WithAlgorithm(matching.AlgoSAT))
	require.ErrorIs(t, err, matching.ErrUnsupportedAlgorithm)
}

func TestExtendsToPerfect_EvenCycleAllAllowed(t *testing.T) {
	g := build(t, builder.Cycle(6))
	backends(t, func(t *testing.T, algo matching.Algorithm) {
		base, err := matching.PerfectMatching(g, matching.WithAlgorithm(algo))
		require.NoError(t, err)
		for _, e := range g.Edges() {
			ok, err := matching.ExtendsToPerfect(g, base, e.From, e.To, matching.WithAlgorithm(algo))
			require.NoError(t, err)
			require.True(t, ok, "edge %s-%s must lie in some perfect matching", e.From, e.To)
		}
	})
}

func TestExtendsToPerfect_TriangleBridge(t *testing.T) {
	// Unique perfect matching {0-1, 2-3, 4-5}; every other edge is forbidden.
	g := build(t, builder.TriangleBridge())
	inMatching := map[[2]string]bool{
		{"0", "1"}: true,
		{"2", "3"}: true,
		{"4", "5"}: true,
	}
	backends(t, func(t *testing.T, algo matching.Algorithm) {
		base, err := matching.PerfectMatching(g, matching.WithAlgorithm(algo))
		require.NoError(t, err)
		for _, e := range g.Edges() {
			u, v := e.From, e.To
			if u > v {
				u, v = v, u
			}
			ok, err := matching.ExtendsToPerfect(g, base, u, v, matching.WithAlgorithm(algo))
			require.NoError(t, err)
			require.Equal(t, inMatching[[2]string{u, v}], ok, "edge %s-%s", u, v)
		}
	})
}

func TestExtendsToPerfect_Petersen(t *testing.T) {
	g := build(t, builder.Petersen())
	base, err := matching.PerfectMatching(g)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		ok, err := matching.ExtendsToPerfect(g, base, e.From, e.To)
		require.NoError(t, err)
		require.True(t, ok, "Petersen is matching covered; edge %s-%s", e.From, e.To)
	}
}

func TestExtendsToPerfect_Validation(t *testing.T) {
	g := build(t, builder.Cycle(4))
	base, err := matching.PerfectMatching(g)
	require.NoError(t, err)

	_, err = matching.ExtendsToPerfect(nil, base, "0", "1")
	require.ErrorIs(t, err, matching.ErrGraphNil)

	_, err = matching.ExtendsToPerfect(g, base, "0", "Z")
	require.ErrorIs(t, err, matching.ErrVertexNotFound)

	// 0 and 2 are opposite corners of the square, not adjacent.
	_, err = matching.ExtendsToPerfect(g, base, "0", "2")
	require.ErrorIs(t, err, matching.ErrEdgeNotInGraph)

	_, err = matching.ExtendsToPerfect(g, base, "0", "0")
	require.ErrorIs(t, err, matching.ErrOptionViolation)
}

func TestExtendsToPerfect_NilBaseComputesWitness(t *testing.T) {
	g := build(t, builder.Cycle(4))
	ok, err := matching.ExtendsToPerfect(g, nil, "0", "1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMatching_TypeSemantics(t *testing.T) {
	m := matching.NewMatching()
	require.NoError(t, m.Add("B", "A"))
	require.NoError(t, m.Add("A", "B")) // re-adding the same pair is a no-op
	require.Error(t, m.Add("A", "C"))   // A already matched
	require.Error(t, m.Add("D", "D"))   // self-pair
	require.NoError(t, m.Add("C", "D"))

	require.Equal(t, 2, m.Size())
	require.True(t, m.Has("A", "B"))
	require.True(t, m.Has("B", "A"))
	require.False(t, m.Has("A", "C"))

	mate, ok := m.Mate("C")
	require.True(t, ok)
	require.Equal(t, "D", mate)

	require.Equal(t, [][2]string{{"A", "B"}, {"C", "D"}}, m.Pairs())

	clone := m.Clone()
	require.NoError(t, clone.Add("E", "F"))
	require.Equal(t, 2, m.Size(), "clone must be independent")

	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("C", "D")
	require.NoError(t, err)
	require.True(t, m.IsPerfect(g))
	require.NoError(t, m.ValidateAgainst(g))

	// A pair that is no edge of g fails membership validation.
	bad := matching.NewMatching()
	require.NoError(t, bad.Add("A", "C"))
	require.ErrorIs(t, bad.ValidateAgainst(g), matching.ErrEdgeNotInGraph)
}

func TestBackendsAgree_Prism(t *testing.T) {
	g := build(t, builder.CircularLadder(4))
	mb, err := matching.PerfectMatching(g, matching.WithAlgorithm(matching.AlgoBlossom))
	require.NoError(t, err)
	ms, err := matching.PerfectMatching(g, matching.WithAlgorithm(matching.AlgoSAT))
	require.NoError(t, err)
	require.Equal(t, mb.Size(), ms.Size())
	require.True(t, mb.IsPerfect(g))
	require.True(t, ms.IsPerfect(g))
}
