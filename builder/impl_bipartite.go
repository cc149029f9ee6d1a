// SPDX-License-Identifier: MIT
// Package: matchcover/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side IDs: cfg.leftPrefix + index ("L0","L1",...).
//   • Right side IDs: cfg.rightPrefix + index ("R0","R1",...).
//   • Emits edges left-major: (L_i, R_j) for i ascending, then j ascending.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges; O(1) extra space.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/matchcover/core"
)

const (
	methodBipartite  = "CompleteBipartite"
	minBipartiteSide = 1
)

// CompleteBipartite returns a Constructor that builds simple K_{n1,n2} using
// cfg.leftPrefix / cfg.rightPrefix for the two sides. Balanced K_{k,k} is
// matching covered; unbalanced K_{m,n} (m ≠ n) has no perfect matching at all.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minBipartiteSide || n2 < minBipartiteSide {
			return fmt.Errorf("%s: sides=(%d,%d) < min=%d: %w",
				methodBipartite, n1, n2, minBipartiteSide, ErrTooFewVertices)
		}

		// Left side first, then right: deterministic vertex insertion order.
		for i := 0; i < n1; i++ {
			id := cfg.leftPrefix + strconv.Itoa(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodBipartite, id, err)
			}
		}
		for j := 0; j < n2; j++ {
			id := cfg.rightPrefix + strconv.Itoa(j)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodBipartite, id, err)
			}
		}

		// Left-major edge emission.
		for i := 0; i < n1; i++ {
			uID := cfg.leftPrefix + strconv.Itoa(i)
			for j := 0; j < n2; j++ {
				vID := cfg.rightPrefix + strconv.Itoa(j)
				if _, err := g.AddEdge(uID, vID); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodBipartite, uID, vID, err)
				}
			}
		}

		return nil
	}
}
