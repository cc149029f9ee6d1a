// File: covered_test.go
// Role: MatchingCoveredGraph wrapper tests — accessors, clone-out isolation,
// and re-certifying mutators with rollback.

package matchcover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	matchcover "github.com/katalvlaran/matchcover"
	"github.com/katalvlaran/matchcover/builder"
)

func TestCoveredGraph_NewAndAccessors(t *testing.T) {
	g := fixture(t, builder.Cycle(4))
	h, err := matchcover.New(g)
	require.NoError(t, err)

	require.Equal(t, 4, h.VertexCount())
	require.Equal(t, 4, h.EdgeCount())
	require.Equal(t, []string{"0", "1", "2", "3"}, h.Vertices())
	require.True(t, h.HasEdge("0", "1"))
	require.False(t, h.HasEdge("0", "2"))

	deg, err := h.Degree("0")
	require.NoError(t, err)
	require.Equal(t, 2, deg)

	nbrs, err := h.Neighbors("0")
	require.NoError(t, err)
	require.Len(t, nbrs, 2)

	require.True(t, h.Matching().IsPerfect(g))
	require.Len(t, h.Verdicts(), 4)
}

func TestCoveredGraph_RejectionPropagates(t *testing.T) {
	_, err := matchcover.New(fixture(t, builder.TriangleBridge()))
	require.ErrorIs(t, err, matchcover.ErrNotMatchingCovered)

	_, err = matchcover.New(fixture(t, builder.Cycle(5)))
	require.ErrorIs(t, err, matchcover.ErrNoPerfectMatching)

	_, err = matchcover.New(nil)
	require.ErrorIs(t, err, matchcover.ErrGraphNil)
}

func TestCoveredGraph_CloneOutIsolation(t *testing.T) {
	h, err := matchcover.New(fixture(t, builder.Cycle(4)))
	require.NoError(t, err)

	// Mutating the cloned-out graph must not affect the certified wrapper.
	clone := h.Graph()
	_, err = clone.AddEdge("0", "2")
	require.NoError(t, err)
	require.False(t, h.HasEdge("0", "2"))

	// Mutating the cloned-out witness must not affect later reads.
	m := h.Matching()
	require.NoError(t, m.Add("X", "Y"))
	require.False(t, h.Matching().Covers("X"))

	// Verdict map copies are independent too.
	vs := h.Verdicts()
	for id := range vs {
		vs[id] = matchcover.VerdictForbidden
	}
	for _, v := range h.Verdicts() {
		require.NotEqual(t, matchcover.VerdictForbidden, v)
	}
}

func TestCoveredGraph_AddEdge(t *testing.T) {
	h, err := matchcover.New(fixture(t, builder.Cycle(6)))
	require.NoError(t, err)

	// The long chord 0-3 stays covered: {0-3, 1-2, 4-5} is a perfect matching.
	id, err := h.AddEdge("0", "3")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, 7, h.EdgeCount())
	require.Equal(t, matchcover.VerdictAllowed, h.Verdicts()[id])

	// A short chord on a square kills coverage: C4 + 0-2 leaves 1 and 3
	// unmatchable once 0-2 is used. The wrapper must roll back.
	square, err := matchcover.New(fixture(t, builder.Cycle(4)))
	require.NoError(t, err)
	_, err = square.AddEdge("0", "2")
	require.ErrorIs(t, err, matchcover.ErrNotMatchingCovered)
	require.Equal(t, 4, square.EdgeCount(), "rejected mutation must not stick")
	require.False(t, square.HasEdge("0", "2"))
}

func TestCoveredGraph_RemoveEdge(t *testing.T) {
	h, err := matchcover.New(fixture(t, builder.Cycle(6)))
	require.NoError(t, err)
	id, err := h.AddEdge("0", "3")
	require.NoError(t, err)

	// Dropping the chord restores the plain cycle.
	require.NoError(t, h.RemoveEdge(id))
	require.Equal(t, 6, h.EdgeCount())
	require.False(t, h.HasEdge("0", "3"))
	require.True(t, h.Matching().IsPerfect(h.Graph()))

	// Removing a cycle edge leaves a path, whose inner edges are forbidden.
	edges := h.Edges()
	err = h.RemoveEdge(edges[0].ID)
	require.ErrorIs(t, err, matchcover.ErrNotMatchingCovered)
	require.Equal(t, 6, h.EdgeCount(), "rejected mutation must not stick")

	require.Error(t, h.RemoveEdge("no-such-edge"))
}

func TestCoveredGraph_RemoveVertex(t *testing.T) {
	h, err := matchcover.New(fixture(t, builder.Complete(4)))
	require.NoError(t, err)

	// Any single removal leaves an odd order, so no perfect matching exists;
	// the wrapper must reject and keep its state.
	err = h.RemoveVertex("0")
	require.ErrorIs(t, err, matchcover.ErrNoPerfectMatching)
	require.Equal(t, 4, h.VertexCount())
	require.True(t, h.HasEdge("0", "1"))

	require.Error(t, h.RemoveVertex("no-such-vertex"))
}

func TestCoveredGraph_NewFromCertified(t *testing.T) {
	h, err := matchcover.New(fixture(t, builder.Petersen()))
	require.NoError(t, err)

	dup, err := matchcover.NewFromCertified(h)
	require.NoError(t, err)
	require.Equal(t, h.Verdicts(), dup.Verdicts())
	require.Equal(t, h.Matching().Pairs(), dup.Matching().Pairs())

	// Independence: a mutation on the duplicate leaves the original intact.
	_, err = dup.AddEdge("0", "2")
	if err == nil {
		require.Equal(t, 15, h.EdgeCount())
	}

	_, err = matchcover.NewFromCertified(nil)
	require.ErrorIs(t, err, matchcover.ErrGraphNil)
}

func TestCoveredGraph_CertifyIdempotence(t *testing.T) {
	h, err := matchcover.New(fixture(t, builder.CircularLadder(4)))
	require.NoError(t, err)

	res, err := matchcover.Certify(h.Graph(), matchcover.WithMatching(h.Matching()))
	require.NoError(t, err)
	require.True(t, res.Covered)
	require.Equal(t, h.Verdicts(), res.Verdicts)
}
