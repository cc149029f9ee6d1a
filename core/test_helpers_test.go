// Package core_test contains test helpers for matchcover/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only (no third-party assertion frameworks).
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/matchcover/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexU = "U"
	VertexV = "V"

	VertexX = "X"
	VertexY = "Y"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NAtomicEdgeIDs  = 100
	NConcurrentAdds = 200
)

// NewGraphFull returns a Graph with every policy flag enabled, for broad
// contract coverage. Test-fixture constructor only.
func NewGraphFull() *core.Graph {
	return core.NewGraph(core.WithMultiEdges(), core.WithLoops())
}

// MustErrorNil fails the test if err != nil.
func MustErrorNil(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs fails the test unless errors.Is(err, want).
func MustErrorIs(t *testing.T, err, want error, op string) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("%s: got error %v, want %v", op, err, want)
	}
}

// MustEqualBool fails the test unless got == want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
}

// MustEqualInt fails the test unless got == want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}

// MustEqualStrings fails the test unless got equals want element-wise.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", op, got, want)
		}
	}
}

// MustBeSorted fails the test unless ids is sorted ascending.
func MustBeSorted(t *testing.T, ids []string, op string) {
	t.Helper()
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("%s: not sorted: %v", op, ids)
	}
}
