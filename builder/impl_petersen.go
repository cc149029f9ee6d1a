// SPDX-License-Identifier: MIT
// Package: matchcover/builder
//
// impl_petersen.go — Petersen() constructor.
//
// Topology (fixed, 10 vertices / 15 edges):
//   • Outer 5-cycle on indices 0..4.
//   • Inner pentagram on indices 5..9 (step-2 chords).
//   • Five spokes i — i+5.
//
// The Petersen graph is 3-regular, non-bipartite, and matching covered:
// every one of its 15 edges lies in one of its 6 perfect matchings.
//
// Complexity: O(1) — fixed size.

package builder

import (
	"fmt"

	"github.com/katalvlaran/matchcover/core"
)

const (
	methodPetersen = "Petersen"
	petersenOuter  = 5
)

// Petersen returns a Constructor that builds the Petersen graph.
// Emission order: outer ring, inner pentagram, spokes (each ascending).
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i := 0; i < 2*petersenOuter; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPetersen, id, err)
			}
		}

		// Outer ring 0-1-2-3-4-0.
		for i := 0; i < petersenOuter; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn((i+1)%petersenOuter)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPetersen, uID, vID, err)
			}
		}

		// Inner pentagram: step-2 chords among 5..9.
		for i := 0; i < petersenOuter; i++ {
			uID := cfg.idFn(petersenOuter + i)
			vID := cfg.idFn(petersenOuter + (i+2)%petersenOuter)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPetersen, uID, vID, err)
			}
		}

		// Spokes i — i+5.
		for i := 0; i < petersenOuter; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn(petersenOuter+i)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPetersen, uID, vID, err)
			}
		}

		return nil
	}
}
