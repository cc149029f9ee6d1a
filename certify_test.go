// File: certify_test.go
// Role: Certification pipeline tests — structural screening, witness
// resolution, per-edge verdicts, and rejection certificates.

package matchcover_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	matchcover "github.com/katalvlaran/matchcover"
	"github.com/katalvlaran/matchcover/builder"
	"github.com/katalvlaran/matchcover/core"
	"github.com/katalvlaran/matchcover/matching"
)

// fixture builds a graph from a single constructor or fails the test.
func fixture(t *testing.T, cons builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons)
	require.NoError(t, err)
	return g
}

// requireCovered asserts a fully positive certification of g.
func requireCovered(t *testing.T, g *core.Graph, opts ...matchcover.Option) *matchcover.Result {
	t.Helper()
	res, err := matchcover.Certify(g, opts...)
	require.NoError(t, err)
	require.True(t, res.Covered)
	require.Equal(t, matchcover.ReasonNone, res.Reason)
	require.NotNil(t, res.Matching)
	require.Len(t, res.Verdicts, g.EdgeCount(), "every edge must be classified")
	for id, v := range res.Verdicts {
		require.NotEqual(t, matchcover.VerdictForbidden, v, "edge %s", id)
	}
	return res
}

func TestCertify_CoveredFamilies(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
	}{
		{"C4", builder.Cycle(4)},
		{"C6", builder.Cycle(6)},
		{"K4", builder.Complete(4)},
		{"K33", builder.CompleteBipartite(3, 3)},
		{"Prism", builder.CircularLadder(4)},
		{"Petersen", builder.Petersen()},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := fixture(t, tc.cons)
			res := requireCovered(t, g)

			// Witness edges and the rest partition the verdict map.
			inMatching := 0
			for _, v := range res.Verdicts {
				if v == matchcover.VerdictInMatching {
					inMatching++
				}
			}
			require.Equal(t, g.VertexCount()/2, inMatching)
		})
	}
}

func TestCertify_StructuralRejections(t *testing.T) {
	t.Run("nil graph", func(t *testing.T) {
		_, err := matchcover.Certify(nil)
		require.ErrorIs(t, err, matchcover.ErrGraphNil)
	})

	t.Run("trivial", func(t *testing.T) {
		g := core.NewGraph()
		require.NoError(t, g.AddVertex("A"))
		res, err := matchcover.Certify(g)
		require.ErrorIs(t, err, matchcover.ErrTrivialGraph)
		require.NotNil(t, res)
		require.False(t, res.Covered)
		require.Equal(t, matchcover.ReasonTrivial, res.Reason)
	})

	t.Run("loop", func(t *testing.T) {
		g := core.NewGraph(core.WithLoops())
		_, err := g.AddEdge("A", "B")
		require.NoError(t, err)
		_, err = g.AddEdge("A", "A")
		require.NoError(t, err)
		res, err := matchcover.Certify(g)
		require.ErrorIs(t, err, matchcover.ErrLoopNotAllowed)
		require.Equal(t, matchcover.ReasonHasLoop, res.Reason)
	})

	t.Run("disconnected", func(t *testing.T) {
		g := fixture(t, builder.Cycle(4))
		_, err := g.AddEdge("X", "Y")
		require.NoError(t, err)
		res, err := matchcover.Certify(g)
		require.ErrorIs(t, err, matchcover.ErrDisconnectedGraph)
		require.Equal(t, matchcover.ReasonDisconnected, res.Reason)
	})
}

func TestCertify_NoPerfectMatching(t *testing.T) {
	t.Run("odd cycle", func(t *testing.T) {
		g := fixture(t, builder.Cycle(5))
		res, err := matchcover.Certify(g)
		require.ErrorIs(t, err, matchcover.ErrNoPerfectMatching)
		require.Equal(t, matchcover.ReasonNoPerfectMatching, res.Reason)
		require.Len(t, res.Certificate.ExposedVertices, 1)
	})

	t.Run("bowtie", func(t *testing.T) {
		// Two triangles sharing vertex C: five vertices, connected, loopless.
		g := core.NewGraph()
		for _, p := range [][2]string{
			{"A", "B"}, {"A", "C"}, {"B", "C"},
			{"C", "D"}, {"C", "E"}, {"D", "E"},
		} {
			_, err := g.AddEdge(p[0], p[1])
			require.NoError(t, err)
		}
		res, err := matchcover.Certify(g)
		require.ErrorIs(t, err, matchcover.ErrNoPerfectMatching)
		require.Equal(t, matchcover.ReasonNoPerfectMatching, res.Reason)
		require.NotEmpty(t, res.Certificate.ExposedVertices)
	})

	t.Run("odd complete graph", func(t *testing.T) {
		g := fixture(t, builder.Complete(5))
		res, err := matchcover.Certify(g)
		require.ErrorIs(t, err, matchcover.ErrNoPerfectMatching)
		require.Equal(t, matchcover.ReasonNoPerfectMatching, res.Reason)
	})

	t.Run("unbalanced bipartite", func(t *testing.T) {
		g := fixture(t, builder.CompleteBipartite(2, 4))
		res, err := matchcover.Certify(g)
		require.ErrorIs(t, err, matchcover.ErrNoPerfectMatching)
		require.Equal(t, matchcover.ReasonNoPerfectMatching, res.Reason)
		// The large side cannot be saturated by the small one.
		require.Len(t, res.Certificate.ExposedVertices, 2)
	})
}

func TestCertify_TriangleBridge(t *testing.T) {
	g := fixture(t, builder.TriangleBridge())
	res, err := matchcover.Certify(g)
	require.ErrorIs(t, err, matchcover.ErrNotMatchingCovered)
	require.False(t, res.Covered)
	require.Equal(t, matchcover.ReasonEdgeNotCovered, res.Reason)
	require.Len(t, res.Verdicts, g.EdgeCount(), "rejection still classifies every edge")

	// The unique perfect matching is {0-1, 2-3, 4-5}; the four remaining
	// triangle edges are forbidden.
	forbidden := 0
	for _, v := range res.Verdicts {
		if v == matchcover.VerdictForbidden {
			forbidden++
		}
	}
	require.Equal(t, 4, forbidden)
	require.NotEmpty(t, res.Certificate.EdgeID)
	require.Equal(t, matchcover.VerdictForbidden, res.Verdicts[res.Certificate.EdgeID])
}

func TestCertify_BridgedEvenCycles(t *testing.T) {
	// Two 4-cycles joined by a single cut edge. Using the bridge strands an
	// odd remainder on each side, so the bridge lies in no perfect matching
	// while every cycle edge stays allowed.
	g := fixture(t, builder.Cycle(4))
	err := builder.Build(g, builder.Cycle(4),
		builder.WithIDScheme(func(i int) string { return fmt.Sprintf("b%d", i) }))
	require.NoError(t, err)
	bridgeID, err := g.AddEdge("0", "b0")
	require.NoError(t, err)

	res, err := matchcover.Certify(g)
	require.ErrorIs(t, err, matchcover.ErrNotMatchingCovered)
	require.Equal(t, matchcover.ReasonEdgeNotCovered, res.Reason)
	require.Equal(t, bridgeID, res.Certificate.EdgeID)
	require.Equal(t, matchcover.VerdictForbidden, res.Verdicts[bridgeID])
	for id, v := range res.Verdicts {
		if id != bridgeID {
			require.NotEqual(t, matchcover.VerdictForbidden, v, "cycle edge %s", id)
		}
	}
}

func TestCertify_SuppliedWitness(t *testing.T) {
	g := fixture(t, builder.Cycle(4))

	t.Run("valid witness reproduces verdicts", func(t *testing.T) {
		auto := requireCovered(t, g)
		res := requireCovered(t, g, matchcover.WithMatching(auto.Matching))
		require.Equal(t, auto.Verdicts, res.Verdicts, "idempotent under its own witness")
	})

	t.Run("unknown vertex", func(t *testing.T) {
		m := matching.NewMatching()
		require.NoError(t, m.Add("0", "Q"))
		res, err := matchcover.Certify(g, matchcover.WithMatching(m))
		require.ErrorIs(t, err, matchcover.ErrInvalidMatching)
		require.Equal(t, matchcover.ReasonNotAMatching, res.Reason)
	})

	t.Run("pair is not an edge", func(t *testing.T) {
		m := matching.NewMatching()
		require.NoError(t, m.Add("0", "2")) // opposite corners of the square
		require.NoError(t, m.Add("1", "3"))
		res, err := matchcover.Certify(g, matchcover.WithMatching(m))
		require.ErrorIs(t, err, matchcover.ErrInvalidMatching)
		require.Equal(t, matchcover.ReasonNotAMatchingOfGraph, res.Reason)
	})

	t.Run("not perfect", func(t *testing.T) {
		m := matching.NewMatching()
		require.NoError(t, m.Add("0", "1"))
		res, err := matchcover.Certify(g, matchcover.WithMatching(m))
		require.ErrorIs(t, err, matchcover.ErrNotPerfectMatching)
		require.Equal(t, matchcover.ReasonNotPerfect, res.Reason)
	})
}

func TestCertify_FinderPassthroughSAT(t *testing.T) {
	g := fixture(t, builder.Cycle(6))
	requireCovered(t, g,
		matchcover.WithFinderOptions(matching.WithAlgorithm(matching.AlgoSAT)))
}

func TestCertify_ParallelWorkersAgree(t *testing.T) {
	g := fixture(t, builder.Petersen())
	serial := requireCovered(t, g)
	parallel := requireCovered(t, g, matchcover.WithWorkers(4))
	require.Equal(t, serial.Verdicts, parallel.Verdicts)
}

func TestCertify_ParallelEdgesShareClass(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B")
	require.NoError(t, err)
	res := requireCovered(t, g)

	// Both parallel edges join the matched partners A and B.
	for id, v := range res.Verdicts {
		require.Equal(t, matchcover.VerdictInMatching, v, "edge %s", id)
	}
}

func TestCertify_OptionViolationAndCancellation(t *testing.T) {
	g := fixture(t, builder.Cycle(4))

	_, err := matchcover.Certify(g, matchcover.WithWorkers(-1))
	require.ErrorIs(t, err, matchcover.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = matchcover.Certify(g, matchcover.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
