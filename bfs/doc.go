// Package bfs implements breadth-first search and connectivity queries on
// core.Graph.
//
// Key features:
//   - BFS(g, startID, opts...): traverse from a root with hooks and limits
//   - ConnectedComponents(g, opts...): sweep all components in sorted order
//   - IsConnected(g, opts...): single-component query (validator precondition)
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for traversal (where V = vertices, E = edges), plus
//     overhead of hooks and filters.
//   - Memory: O(V) for queue and metadata maps.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnEnqueue(fn)         hook on enqueue, before visiting.
//   - WithOnVisit(fn)           hook on visit; error aborts traversal.
//   - WithMaxDepth(limit)       stops exploration beyond given depth (>0).
//   - WithFilterNeighbor(fn)    filters neighbor IDs; return false to skip.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - ErrOptionViolation        if an option value is invalid.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package bfs
