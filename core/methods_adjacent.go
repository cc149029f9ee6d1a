// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex edgeID slices sorted by Edge.ID asc.
// Concurrency:
//   - Read operations hold muVert or muEdgeAdj read locks as needed.
//   - Helpers are called only under appropriate write locks by mutating code.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id.
// Self-loops, when present, appear once.
//
// Steps:
//  1. Validate id is non-empty (ErrEmptyVertexID).
//  2. Acquire muVert and muEdgeAdj read locks (in that order) for a
//     consistent snapshot.
//  3. Validate vertex existence (ErrVertexNotFound).
//  4. Collect incident edges by scanning adjacencyList[id] buckets.
//  5. Sort by Edge.ID ascending and return.
//
// The returned *Edge pointers reference live catalog entries; treat them as
// read-only.
//
// Complexity: Time O(d log d), Space O(d), where d is the incident edge count.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Lock order matches mutators (muVert -> muEdgeAdj) so a vertex cannot
	// disappear between validation and adjacency snapshotting.
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]

			// Adjacency should not reference missing edges; keep the guard tight.
			if e.IsNil() {
				continue
			}
			out = append(out, e)
		}
	}
	// Sort by ID to ensure reproducible ordering
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// lexicographically ascending. Parallel edges collapse to one entry; a
// self-loop contributes id itself.
//
// Complexity: Time O(d + k log k), Space O(k), where d is incident edges and
// k is unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Other(id)] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to the list of
// incident edge IDs. Each slice is sorted by Edge.ID ascending for
// deterministic per-vertex enumeration.
//
// Returned slices are freshly allocated and safe to retain and mutate by the
// caller. Map key iteration order is not deterministic in Go; use Vertices()
// for stable key order.
//
// Complexity: Time O(V + E + Σ sort(deg(v))), Space O(V + E) for the snapshot.
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		// Fresh buffer per vertex to avoid sharing backing arrays across keys.
		var buf []string
		for _, edgeMap := range toMap {
			for eid := range edgeMap {
				buf = append(buf, eid)
			}
		}
		sort.Strings(buf)
		result[from] = buf
	}

	return result
}

// ensureAdjacency guarantees that adjacencyList[from] and
// adjacencyList[from][to] are initialized.
// Must be called ONLY under muEdgeAdj write lock by mutating code paths.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from adjacency buckets for both endpoints,
// pruning buckets that become empty.
// Must be called ONLY under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested adjacency buckets after removals.
// Safe to call repeatedly; idempotent relative to empty-state pruning.
// Must be called ONLY under muEdgeAdj write lock.
//
// Complexity: Time O(V + B) where B is the number of (from,to) buckets scanned.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
