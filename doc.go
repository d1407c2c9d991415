// Package pathgrid turns a painted rectangular grid into a weighted graph and
// finds the shortest route across it with Dijkstra or A*, recording every
// node the search settles so the run can be replayed frame by frame.
//
// What is inside?
//
//	core/       - Graph and Node primitives: coordinates, roles, ordered neighbor lists
//	gridgraph/  - RoleGrid, text parsing, grid → graph construction, reachability
//	heuristic/  - Euclidean and Manhattan distance estimates
//	search/     - Dijkstra and A* over one frontier loop; path + explored order
//	canvas/     - click-driven painter: start, then end, then walls
//	render/     - PNG frames of a search (explored cells, newest cell, final path)
//	cmd/        - pathgrid (CLI) and pathgridd (HTTP API)
//	internal/   - config (YAML + env, hot reload), logging, metrics, HTTP server
//
// Grid text format:
//
//	S..#
//	.#..
//	...E
//
// '.' empty, '#' wall, 'S' start, 'E' end. Movement goes to all eight
// neighbors: orthogonal steps cost 1.0, diagonal steps 1.4. The grid is
// surrounded by a ring of wall nodes, so every cell has exactly eight
// neighbors.
//
// Quick start:
//
//	grid, _ := gridgraph.ParseString("S..\n.#.\n..E")
//	g, _ := gridgraph.Build(grid)
//	start, end, _ := gridgraph.Endpoints(g, grid)
//	res, _ := search.Dijkstra(g, start, end)
//	fmt.Println(res.Points(), res.Cost()) // [(0,0) (1,0) (2,1) (2,2)] 3.4
//
//	go install github.com/katalvlaran/pathgrid/cmd/pathgrid@latest
package pathgrid
