// SPDX-License-Identifier: MIT
// Package: matchcover/builder
//
// doc.go — package overview.

// Package builder provides deterministic constructors for the graph families
// used throughout matching analysis: cycles, paths, complete and complete
// bipartite graphs, ladders and prisms, the Petersen graph, and the
// triangle-bridge fixture.
//
// Entry points:
//   - BuildGraph(gopts, bopts, cons...) creates a fresh core.Graph and applies
//     constructors in order.
//   - Build(g, cons, opts...) layers a constructor onto an existing graph.
//
// Determinism contract: for equal inputs, options, and constructor order, the
// produced graph is identical — vertex IDs come from the configured ID scheme
// (WithIDScheme, default decimal "0","1",...), edges are emitted in a stable
// documented order per constructor, and no randomness is involved.
//
// Each constructor validates its parameters up front and returns sentinel
// errors (ErrTooFewVertices, ErrConstructFailed, ...); constructors never
// panic at runtime.
package builder
