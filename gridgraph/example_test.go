// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Build
////////////////////////////////////////////////////////////////////////////////

// ExampleBuild parses a 3×3 grid, builds its graph and resolves the endpoints.
// Scenario:
//
//   - 9 grid cells plus a 16-node Wall ring.
//   - Every grid cell has 8 neighbors, edge cells included.
//
// Complexity: O(W·H·8), Memory: O((W+2)·(H+2))
func ExampleBuild() {
	grid, _ := gridgraph.ParseString("S.#\n.#E\n...")
	g, _ := gridgraph.Build(grid)

	start, end, _ := gridgraph.Endpoints(g, grid)
	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("start:", start.Coord(), "degree", start.Degree())
	fmt.Println("end:", end.Coord(), "degree", end.Degree())

	// Output:
	// nodes: 25
	// start: (0,0) degree 8
	// end: (2,1) degree 8
}

////////////////////////////////////////////////////////////////////////////////
// Example: Reachable
////////////////////////////////////////////////////////////////////////////////

// ExampleReachable flood-fills the open cells around the start in
// breadth-first order. Diagonal moves slip between the two walls.
func ExampleReachable() {
	grid, _ := gridgraph.ParseString("S.#\n.#E\n...")
	start := grid.Find(core.Start)[0]

	fmt.Println(gridgraph.Reachable(grid, start))

	// Output:
	// [(0,0) (1,0) (0,1) (2,1) (0,2) (1,2) (2,2)]
}
