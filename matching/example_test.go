package matching_test

import (
	"fmt"

	"github.com/katalvlaran/matchcover/builder"
	"github.com/katalvlaran/matchcover/matching"
)

// The 4-cycle pairs consecutive vertices; enumeration order is deterministic.
func ExamplePerfectMatching() {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	m, err := matching.PerfectMatching(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Pairs())
	// Output: [[0 1] [2 3]]
}

// Edge 0-2 of the triangle-bridge graph lies in no perfect matching.
func ExampleExtendsToPerfect() {
	g, err := builder.BuildGraph(nil, nil, builder.TriangleBridge())
	if err != nil {
		fmt.Println(err)
		return
	}
	ok, err := matching.ExtendsToPerfect(g, nil, "0", "2")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ok)
	// Output: false
}
