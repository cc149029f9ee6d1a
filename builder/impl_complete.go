// SPDX-License-Identifier: MIT
// Package: matchcover/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 is a single vertex, no edges.
//   • Emits edges in stable lexicographic pair order (i<j, i ascending).
//
// Complexity: O(n) vertices + O(n²) edges; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/matchcover/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
// K_n holds a perfect matching iff n is even; for even n ≥ 2 every edge lies
// in one, which makes K_{2k} a canonical covered fixture.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, id, err)
			}
		}

		// All unordered pairs, i < j, in ascending order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				uID, vID := cfg.idFn(i), cfg.idFn(j)
				if _, err := g.AddEdge(uID, vID); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodComplete, uID, vID, err)
				}
			}
		}

		return nil
	}
}
