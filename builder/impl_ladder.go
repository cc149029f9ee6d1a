// SPDX-License-Identifier: MIT
// Package: matchcover/builder
//
// impl_ladder.go — Ladder(n) and CircularLadder(n) constructors.
//
// Contract:
//   • n ≥ 2 rungs (else ErrTooFewVertices).
//   • Rail A IDs: cfg.idFn(0..n-1); rail B IDs: cfg.idFn(n..2n-1).
//   • Emission order: rail A edges, rail B edges, then rungs, each ascending.
//   • CircularLadder additionally closes both rails (the prism Y_n); for n=2
//     the wrap edges would duplicate the rails, so closure requires n ≥ 3.
//
// Complexity: O(n) vertices + O(3n) edges; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/matchcover/core"
)

const (
	methodLadder         = "Ladder"
	methodCircularLadder = "CircularLadder"
	minLadderRungs       = 2
	minCircularRungs     = 3
)

// Ladder returns a Constructor that builds the ladder graph P_2 × P_n:
// two parallel rails of n vertices joined by n rungs. Every ladder has the
// all-rungs perfect matching.
func Ladder(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minLadderRungs {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLadder, n, minLadderRungs, ErrTooFewVertices)
		}
		return buildLadder(g, cfg, n, false, methodLadder)
	}
}

// CircularLadder returns a Constructor that builds the prism Y_n = C_n × K_2:
// a ladder whose rails are closed into rings. Prisms are matching covered
// for even n.
func CircularLadder(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCircularRungs {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCircularLadder, n, minCircularRungs, ErrTooFewVertices)
		}
		return buildLadder(g, cfg, n, true, methodCircularLadder)
	}
}

// buildLadder emits the shared rail/rung structure; closed wraps both rails.
func buildLadder(g *core.Graph, cfg builderConfig, n int, closed bool, method string) error {
	// Rail A occupies indices 0..n-1, rail B occupies n..2n-1.
	for i := 0; i < 2*n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	// Rail A, then rail B.
	for _, base := range []int{0, n} {
		for i := 0; i < n-1; i++ {
			uID, vID := cfg.idFn(base+i), cfg.idFn(base+i+1)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, uID, vID, err)
			}
		}
		if closed {
			uID, vID := cfg.idFn(base+n-1), cfg.idFn(base)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, uID, vID, err)
			}
		}
	}

	// Rungs.
	for i := 0; i < n; i++ {
		uID, vID := cfg.idFn(i), cfg.idFn(n+i)
		if _, err := g.AddEdge(uID, vID); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, uID, vID, err)
		}
	}

	return nil
}
