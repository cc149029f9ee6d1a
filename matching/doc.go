// Package matching computes perfect and maximum matchings on core.Graph and
// answers edge-extension queries ("does some perfect matching use this edge?").
//
// Backends:
//
//   - AlgoBlossom (default): Edmonds blossom augmenting search. Blossoms are
//     contracted in place through a base-representative array — no cyclic
//     structures are built. O(V²·E) worst case.
//   - AlgoSAT: perfect matching encoded as per-vertex exactly-one CNF over
//     pair variables, solved by gophersat. Unsat maps to
//     ErrNoPerfectMatching; a stopped solve maps to ErrSolverTimeout.
//
// Entry points:
//
//   - PerfectMatching(g, opts...): a perfect matching or a definitive
//     ErrNoPerfectMatching. Never a partial result.
//   - MaximumMatching(g, opts...): maximum matching plus sorted exposed
//     vertices (blossom only).
//   - ExtendsToPerfect(g, base, u, v, opts...): forced-edge re-augmentation
//     seeded from the witness matching base; a single search in G − {u, v}
//     decides membership of (u, v) in some perfect matching.
//
// All entry points take a snapshot of g and never mutate it. Results are
// deterministic for equal graphs: vertices are compressed in sorted-ID order
// and neighbors are scanned sorted.
//
// Options follow the functional pattern: WithContext, WithAlgorithm,
// WithVerbose, WithTolerance. Cancellation is honored between augmenting
// searches and through the SAT solver's stop channel; a cancelled run never
// yields a truncated matching.
package matching
