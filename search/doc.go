// Package search runs Dijkstra and A* over a grid graph built by gridgraph and
// reports both the shortest path and the order in which nodes were settled.
//
// Overview:
//
//   - Both algorithms share one frontier expansion loop and differ only in the
//     selection key (distance for Dijkstra, distance+heuristic for A*) and in
//     the relaxation test.
//   - Wall nodes stay in the graph but are never added to the frontier, so
//     walls block movement without removing edges.
//   - The explored list grows by one node per selection. The start node is
//     never in it; on success the end node is its last element. It is
//     returned even when no path exists so the search can be replayed.
//
// Determinism:
//
//   - The frontier is an insertion-ordered slice scanned linearly; the first
//     node with the minimum key wins. Together with the neighbor insertion
//     order fixed by gridgraph.Build this makes every result reproducible.
//
// A* relaxation:
//
//   - A discovered neighbor nb of cur is improved when
//     g(cur)+w + h(cur) < g(nb)+h(nb).
//     The h(cur) term makes this differ from the textbook g(cur)+w < g(nb)
//     test, so A* can return a longer path than Dijkstra on walled grids.
//
// Performance and complexity:
//
//   - Time:  O(V·F) where F is the peak frontier size (linear selection).
//   - Space: O(V) id-indexed tables per call.
//
// Concurrency:
//
//   - All bookkeeping lives in a per-call runner, never on core.Node, so any
//     number of searches may run on one graph at the same time as long as
//     the graph is not mutated.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: the graph pointer is nil.
//   - ErrInvalidNode: start or end is nil or not owned by the graph; it wraps
//     core.ErrInvalidNode.
//   - ErrHeuristicRequired: A* without a heuristic.
//   - ErrHeuristicNotAllowed: Dijkstra with a heuristic.
//   - ErrUnknownAlgorithm: an Algorithm value or name outside the enumeration.
//
// "No path" is not an error: Search returns a Result with an empty Path.
//
// Example:
//
//	grid, _ := gridgraph.ParseString("S..\n.#.\n..E")
//	g, _ := gridgraph.Build(grid)
//	start, end, _ := gridgraph.Endpoints(g, grid)
//	res, err := search.Search(g, start, end,
//	    search.WithAlgorithm(search.AlgorithmAStar),
//	    search.WithHeuristicKind(heuristic.KindEuclidean),
//	)
package search
