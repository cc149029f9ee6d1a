// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyVertexID).
//  2. Under muVert write lock, check presence; if missing, allocate Vertex
//     and register it.
//  3. Under muEdgeAdj write lock, bootstrap adjacency buckets so edge
//     methods can rely on invariants.
//
// Lock order is muVert -> muEdgeAdj to avoid inversion across vertex/edge
// code paths.
//
// Complexity: Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	// No-op for an existing vertex.
	if _, exists := g.vertices[id]; exists {
		return nil
	}

	// Metadata is initialized to a non-nil map by policy.
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	// Bootstrap adjacency buckets so later edge operations never nil-check.
	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
//
// Complexity: Time O(1), Space O(1).
// Concurrency: read lock on muVert.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyVertexID).
//  2. Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//  3. Verify vertex presence (ErrVertexNotFound).
//  4. Scan the edge catalog once; remove each incident edge and its
//     adjacency references.
//  5. Delete the vertex record and prune empty adjacency buckets.
//
// This method is intentionally heavy: removing a vertex is a topology rewrite.
//
// Complexity: Time O(E) for the catalog scan plus cleanup, Space O(1) extra.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Remove all incident edges.
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, id)
	cleanupAdjacency(g)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// A stable enumeration surface: higher-level algorithms derive their
// deterministic index orders from it.
//
// Complexity: Time O(V log V), Space O(V).
// Concurrency: read lock on muVert.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
//
// Prefer VertexCount() over len(Vertices()) to avoid O(V log V) sorting.
//
// Complexity: Time O(1), Space O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VerticesMap returns a shallow copy of the vertex catalog (ID -> *Vertex).
//
// Callers can retain the returned map without holding graph locks; vertex
// pointers refer to live objects and are read-only by convention. Use
// Vertices() when you need deterministic ordering.
//
// Complexity: Time O(V), Space O(V).
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[string]*Vertex, len(g.vertices))
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		out[id] = v
	}

	return out
}

// Degree returns the degree of the given vertex ID under the classic
// undirected convention: each incident edge contributes 1, a self-loop
// contributes 2.
//
// The full edge catalog is scanned so parallel edges are counted per edge,
// not per adjacency bucket.
//
// Complexity: Time O(E), Space O(1).
// Concurrency: read locks on muVert then muEdgeAdj (standard order).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	var deg int
	for _, e := range g.edges {
		if e.IsNil() {
			continue
		}
		if e.From == id && e.To == id {
			// Self-loop increases degree by 2 in classic theory.
			deg += 2
			continue
		}
		if e.From == id || e.To == id {
			deg++
		}
	}

	return deg, nil
}
