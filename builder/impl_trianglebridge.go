// SPDX-License-Identifier: MIT
// Package: matchcover/builder
//
// impl_trianglebridge.go — TriangleBridge() constructor.
//
// Topology (fixed, 6 vertices / 7 edges):
//   • Left triangle on indices 0,1,2; right triangle on 3,4,5.
//   • Bridge edge 2 — 3.
//
// The graph has exactly one perfect matching {0-1, 2-3, 4-5}, so the four
// remaining triangle edges lie in no perfect matching. That makes it the
// canonical connected, perfectly-matchable but NOT matching-covered fixture.
//
// Complexity: O(1) — fixed size.

package builder

import (
	"fmt"

	"github.com/katalvlaran/matchcover/core"
)

const methodTriangleBridge = "TriangleBridge"

// TriangleBridge returns a Constructor that builds two triangles joined by a
// single bridge edge. Emission order: left triangle, right triangle, bridge.
func TriangleBridge() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const vertexCount = 6
		for i := 0; i < vertexCount; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodTriangleBridge, id, err)
			}
		}

		pairs := [][2]int{
			{0, 1}, {0, 2}, {1, 2}, // left triangle
			{3, 4}, {3, 5}, {4, 5}, // right triangle
			{2, 3}, // bridge
		}
		for _, p := range pairs {
			uID, vID := cfg.idFn(p[0]), cfg.idFn(p[1])
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodTriangleBridge, uID, vID, err)
			}
		}

		return nil
	}
}
