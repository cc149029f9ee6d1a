// Package core provides a high-performance, thread-safe in-memory Graph
// implementation with a minimal, composable API surface.
//
// The Graph G = (V,E) is undirected and unweighted, with two policy knobs:
//
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[u][v][edgeID] = struct{}{}, mirrored for both endpoints
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency
//
// Loop policy is structural: when loops are disabled (the default), AddEdge
// rejects a from==to request with ErrLoopNotAllowed before any state is
// touched. A loop can therefore never enter a default graph; callers that
// enable WithLoops for general work can probe stored loops with HasLoops().
// Matching algorithms require loop-free input and rely on this invariant.
//
// Why use core.Graph?
//
//   - Deterministic iteration — Vertices(), Edges(), NeighborIDs() all return
//     sorted results, so every algorithm above core is reproducible.
//   - Clone support — CloneEmpty (vertices+flags), Clone (deep copy of
//     edges+adjacency), both carrying the edge-ID sequence.
//   - Parallel-edge classes — EdgesBetween(u,v) enumerates a class; matching
//     logic treats the class as one adjacency.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error                     // O(1)
//	HasEdge(from, to string) bool                       // O(1)
//
//	// Queries
//	Vertices() []string                // sorted, O(V log V)
//	Edges() []*Edge                    // sorted by ID, O(E log E)
//	Neighbors(id) ([]*Edge, error)     // sorted by ID, O(d log d)
//	NeighborIDs(id) ([]string, error)  // unique, sorted, O(d + k log k)
//	Degree(id) (int, error)            // classic convention, O(E)
//
// All errors are strict sentinels; branch with errors.Is.
package core
