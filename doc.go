// Package matchcover is an in-memory toolkit for perfect matchings and
// matching-covered graph certification.
//
// 🚀 What is matchcover?
//
//	A thread-safe library that answers one question precisely: does every
//	edge of a graph lie in some perfect matching? It brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Traversal: BFS with hooks, plus connectivity queries
//		• Matching: Edmonds' blossom algorithm and a SAT solver backend
//		• Certification: per-edge allowed/forbidden verdicts with certificates
//		• Builders: deterministic cycles, complete & bipartite fixtures
//
// ✨ Why choose matchcover?
//
//   - Exact answers — blossom contraction handles odd cycles; no greedy shortcuts
//   - Typed rejections — every failure carries a reason tag and a certificate
//   - Deterministic — sorted enumeration everywhere, reproducible verdicts
//   - Cancellable — context checks between searches and classifications
//
// The certifier itself lives in this root package — Certify, Result,
// MatchingCoveredGraph — on top of four subpackages:
//
//	core/     — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bfs/      — breadth-first traversal and connected-component queries
//	builder/  — deterministic topology constructors for fixtures
//	matching/ — maximum & perfect matchings (blossom, SAT)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a 4-cycle: both perfect matchings {AB,CD} and {AC,BD} exist, so every
//	edge is allowed and the graph is matching covered.
//
//	go get github.com/katalvlaran/matchcover
package matchcover
