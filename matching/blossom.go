// File: blossom.go
// Role: Edmonds blossom augmenting search over an index-compressed graph.
//
// Representation:
//   - Vertices are compressed to indices 0..n-1 in sorted-ID order, so equal
//     graphs always yield equal matchings.
//   - Blossoms are never materialized: base[] maps every vertex to the
//     representative of its contracted blossom, and contraction is a
//     relabeling sweep over base[] during the BFS.
//   - match[i] == -1 marks an exposed vertex.
//
// Complexity: one augmenting search is O(V·E); a full maximum matching is
// O(V²·E) worst case, far better in practice on sparse graphs.

package matching

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/matchcover/core"
)

const unmatched = -1

// indexGraph is a read-only index-compressed view of a core.Graph.
type indexGraph struct {
	ids   []string       // index -> vertex ID, sorted
	index map[string]int // vertex ID -> index
	adj   [][]int        // neighbor indices, sorted, loops and duplicates dropped
}

// newIndexGraph snapshots g into compressed form. Parallel edges collapse to
// a single neighbor entry; self-loops are dropped (they never participate in
// a matching).
func newIndexGraph(g *core.Graph) (*indexGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	ig := &indexGraph{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		adj:   make([][]int, len(ids)),
	}
	for i, id := range ids {
		ig.index[id] = i
	}
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("matching: snapshot of %q: %w", id, err)
		}
		row := make([]int, 0, len(nbrs))
		for _, nbr := range nbrs {
			if nbr == id {
				continue
			}
			row = append(row, ig.index[nbr])
		}
		sort.Ints(row)
		ig.adj[i] = row
	}
	return ig, nil
}

// blossomState carries the mutable arrays of one augmenting search.
type blossomState struct {
	g      *indexGraph
	match  []int  // match[i] = partner index or unmatched
	parent []int  // BFS forest parent links (on even vertices' mates)
	base   []int  // blossom representative per vertex
	used   []bool // vertex reached at even depth
	banned []bool // vertices excluded from the search entirely
}

// newBlossomState wraps an existing match slice; banned may be nil.
func newBlossomState(ig *indexGraph, match []int, banned []bool) *blossomState {
	n := len(ig.ids)
	if banned == nil {
		banned = make([]bool, n)
	}
	return &blossomState{
		g:      ig,
		match:  match,
		parent: make([]int, n),
		base:   make([]int, n),
		used:   make([]bool, n),
		banned: banned,
	}
}

// lowestCommonBase walks both alternating paths to the root, returning the
// first common blossom representative. O(V).
func (s *blossomState) lowestCommonBase(a, b int) int {
	onPath := make([]bool, len(s.base))
	for {
		a = s.base[a]
		onPath[a] = true
		if s.match[a] == unmatched {
			break
		}
		a = s.parent[s.match[a]]
	}
	for {
		b = s.base[b]
		if onPath[b] {
			return b
		}
		b = s.parent[s.match[b]]
	}
}

// markPath flips parent pointers along v's alternating path down to the new
// blossom base b, marking every traversed representative for contraction.
func (s *blossomState) markPath(v, b, child int, inBlossom []bool) {
	for s.base[v] != b {
		inBlossom[s.base[v]] = true
		inBlossom[s.base[s.match[v]]] = true
		s.parent[v] = child
		child = s.match[v]
		v = s.parent[s.match[v]]
	}
}

// findAugmentingPath runs one BFS from root over the alternating forest,
// contracting blossoms in place. It returns the exposed endpoint of an
// augmenting path, or unmatched when none exists.
func (s *blossomState) findAugmentingPath(root int) int {
	n := len(s.g.ids)
	for i := 0; i < n; i++ {
		s.used[i] = false
		s.parent[i] = unmatched
		s.base[i] = i
	}
	s.used[root] = true
	queue := make([]int, 0, n)
	queue = append(queue, root)

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, to := range s.g.adj[v] {
			if s.banned[to] {
				continue
			}
			// Edges inside one blossom, and the matched edge itself, are inert.
			if s.base[v] == s.base[to] || s.match[v] == to {
				continue
			}
			if to == root || (s.match[to] != unmatched && s.parent[s.match[to]] != unmatched) {
				// Odd cycle closed: contract the blossom around its base.
				curBase := s.lowestCommonBase(v, to)
				inBlossom := make([]bool, n)
				s.markPath(v, curBase, to, inBlossom)
				s.markPath(to, curBase, v, inBlossom)
				for i := 0; i < n; i++ {
					if inBlossom[s.base[i]] {
						s.base[i] = curBase
						if !s.used[i] {
							s.used[i] = true
							queue = append(queue, i)
						}
					}
				}
			} else if s.parent[to] == unmatched {
				s.parent[to] = v
				if s.match[to] == unmatched {
					// Exposed vertex reached: augmenting path found.
					return to
				}
				// Extend the forest through to's mate at even depth.
				s.used[s.match[to]] = true
				queue = append(queue, s.match[to])
			}
		}
	}
	return unmatched
}

// augment flips matched/unmatched status along the path ending at finish.
func (s *blossomState) augment(finish int) {
	for v := finish; v != unmatched; {
		pv := s.parent[v]
		next := s.match[pv]
		s.match[v] = pv
		s.match[pv] = v
		v = next
	}
}

// maximumMatching computes a maximum matching on ig, honoring banned vertices
// and cancellation between augmenting searches. The returned slice is the
// match array; cancellation yields the ctx error and no array.
func maximumMatching(ig *indexGraph, banned []bool, opts Options) ([]int, error) {
	n := len(ig.ids)
	match := make([]int, n)
	for i := range match {
		match[i] = unmatched
	}
	state := newBlossomState(ig, match, banned)

	for root := 0; root < n; root++ {
		if match[root] != unmatched || state.banned[root] {
			continue
		}
		// Cancellation point: between searches only, never mid-augmentation.
		select {
		case <-opts.Ctx.Done():
			return nil, opts.Ctx.Err()
		default:
		}
		if finish := state.findAugmentingPath(root); finish != unmatched {
			state.augment(finish)
			if opts.Verbose {
				fmt.Printf("blossom: augmented from %s, matched %d pairs\n", ig.ids[root], matchedPairs(match))
			}
		}
	}
	return match, nil
}

// matchedPairs counts pairs in a match array.
func matchedPairs(match []int) int {
	covered := 0
	for _, m := range match {
		if m != unmatched {
			covered++
		}
	}
	return covered / 2
}

// toMatching lifts an index match array back to vertex IDs.
func (ig *indexGraph) toMatching(match []int) *Matching {
	m := NewMatching()
	for i, j := range match {
		if j != unmatched && i < j {
			m.mate[ig.ids[i]] = ig.ids[j]
			m.mate[ig.ids[j]] = ig.ids[i]
		}
	}
	return m
}

// toMatchArray lowers a Matching to an index match array. Pairs covering
// vertices outside ig yield ErrVertexNotFound.
func (ig *indexGraph) toMatchArray(m *Matching) ([]int, error) {
	match := make([]int, len(ig.ids))
	for i := range match {
		match[i] = unmatched
	}
	for _, p := range m.Pairs() {
		ui, ok := ig.index[p[0]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, p[0])
		}
		vi, ok := ig.index[p[1]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, p[1])
		}
		match[ui] = vi
		match[vi] = ui
	}
	return match, nil
}
