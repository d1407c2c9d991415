package search

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/heuristic"
)

// unknown marks a tentative distance that has not been set yet.
const unknown = -1.0

// Search finds a path from start to end in g with the configured algorithm.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be non-nil nodes owned by g (ErrInvalidNode).
//  3. Algorithm must be known (ErrUnknownAlgorithm).
//  4. A* needs a heuristic (ErrHeuristicRequired); Dijkstra rejects one
//     (ErrHeuristicNotAllowed).
//
// A blocked end is reported as a Result with an empty Path and a nil error.
// start == end yields Path [start] and no explored nodes.
//
// Complexity:
//
//   - Time:  O(V·F), F = peak frontier size.
//   - Space: O(V).
func Search(g *core.Graph, start, end *core.Node, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.Contains(start) {
		return Result{}, fmt.Errorf("%w: start %v", ErrInvalidNode, start)
	}
	if !g.Contains(end) {
		return Result{}, fmt.Errorf("%w: end %v", ErrInvalidNode, end)
	}
	switch cfg.Algorithm {
	case AlgorithmDijkstra:
		if cfg.Heuristic != nil {
			return Result{}, ErrHeuristicNotAllowed
		}
	case AlgorithmAStar:
		if cfg.Heuristic == nil {
			return Result{}, ErrHeuristicRequired
		}
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(cfg.Algorithm))
	}

	// 3) Run
	r := newRunner(g, start, end, cfg)
	r.init()
	found := r.process()

	res := Result{Explored: r.explored}
	if found {
		res.Path = r.path()
	}

	return res, nil
}

// Dijkstra is shorthand for Search with AlgorithmDijkstra.
func Dijkstra(g *core.Graph, start, end *core.Node) (Result, error) {
	return Search(g, start, end, WithAlgorithm(AlgorithmDijkstra))
}

// AStar is shorthand for Search with AlgorithmAStar and heuristic h.
func AStar(g *core.Graph, start, end *core.Node, h heuristic.Func) (Result, error) {
	return Search(g, start, end, WithAlgorithm(AlgorithmAStar), WithHeuristic(h))
}

// runner holds the mutable state for a single search. Every table is indexed
// by node id and sized to the node count at the start of the call.
type runner struct {
	g          *core.Graph
	start, end *core.Node
	astar      bool
	h          heuristic.Func
	maxSteps   int

	dist       []float64    // tentative distance, unknown until discovered
	est        []float64    // heuristic estimate to end (A* only)
	prev       []*core.Node // predecessor on the best known route
	settled    []bool       // node is final and never revisited
	inFrontier []bool       // membership table for frontier

	frontier []*core.Node // discovered, unsettled nodes in insertion order
	explored []*core.Node // settle order, start excluded
}

func newRunner(g *core.Graph, start, end *core.Node, cfg Options) *runner {
	nodes := g.NodeCount()
	r := &runner{
		g:          g,
		start:      start,
		end:        end,
		astar:      cfg.Algorithm == AlgorithmAStar,
		h:          cfg.Heuristic,
		maxSteps:   cfg.MaxSteps,
		dist:       make([]float64, nodes),
		prev:       make([]*core.Node, nodes),
		settled:    make([]bool, nodes),
		inFrontier: make([]bool, nodes),
	}
	if r.maxSteps <= 0 || r.maxSteps > nodes {
		r.maxSteps = nodes
	}
	if r.astar {
		r.est = make([]float64, nodes)
	}

	return r
}

// init sets every distance to unknown except the start, computes the
// heuristic once per node for A*, and seeds the frontier with the start.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = unknown
	}
	r.dist[r.start.ID()] = 0

	if r.astar {
		goal := r.end.Coord()
		for _, n := range r.g.Nodes() {
			if id := n.ID(); id < len(r.est) {
				r.est[id] = r.h(n.Coord(), goal)
			}
		}
	}

	r.push(r.start)
}

// process runs the frontier loop until the end node is selected. It returns
// false when the frontier runs dry or the step cap is reached.
func (r *runner) process() bool {
	cur := r.start
	for steps := 0; cur != r.end; steps++ {
		if steps >= r.maxSteps {
			return false
		}

		// 1) Discover and relax open neighbors.
		r.relax(cur)

		// 2) Settle the current node.
		r.settle(cur)

		// 3) Pick the next node; an empty frontier means no path.
		next := r.selectNext()
		if next == nil {
			return false
		}
		cur = next
		r.explored = append(r.explored, cur)
	}

	return true
}

// relax adds every unsettled, non-wall neighbor of cur to the frontier and
// lowers its tentative distance when the algorithm's improvement test holds.
func (r *runner) relax(cur *core.Node) {
	u := cur.ID()
	cur.EachNeighbor(func(nb *core.Node, w float64) {
		v := nb.ID()
		if v < 0 || v >= len(r.settled) {
			return
		}
		if r.settled[v] || nb.Role() == core.Wall {
			return
		}
		if !r.inFrontier[v] {
			r.push(nb)
		}

		cand := r.dist[u] + w
		if r.dist[v] == unknown || r.improves(u, v, cand) {
			r.dist[v] = cand
			r.prev[v] = cur
		}
	})
}

// improves is the relaxation test for a discovered neighbor v of u.
func (r *runner) improves(u, v int, cand float64) bool {
	if !r.astar {
		return cand < r.dist[v]
	}

	return cand+r.est[u] < r.dist[v]+r.est[v]
}

// key is the frontier selection key of node id.
func (r *runner) key(id int) float64 {
	if r.astar {
		return r.dist[id] + r.est[id]
	}

	return r.dist[id]
}

// selectNext returns the frontier node with the smallest key, the first one
// in frontier order on ties, or nil if the frontier is empty.
func (r *runner) selectNext() *core.Node {
	var best *core.Node
	var bestKey float64
	for _, n := range r.frontier {
		k := r.key(n.ID())
		if best == nil || k < bestKey {
			best, bestKey = n, k
		}
	}

	return best
}

func (r *runner) push(n *core.Node) {
	r.inFrontier[n.ID()] = true
	r.frontier = append(r.frontier, n)
}

// settle marks n final and removes it from the frontier, keeping the order
// of the remaining members.
func (r *runner) settle(n *core.Node) {
	id := n.ID()
	r.settled[id] = true
	if !r.inFrontier[id] {
		return
	}
	r.inFrontier[id] = false
	for i, f := range r.frontier {
		if f == n {
			r.frontier = append(r.frontier[:i], r.frontier[i+1:]...)
			break
		}
	}
}

// path walks predecessors from end back to start. A chain that does not
// reach start yields nil.
func (r *runner) path() []*core.Node {
	if r.start == r.end {
		return []*core.Node{r.start}
	}
	if r.prev[r.end.ID()] == nil {
		return nil
	}

	out := []*core.Node{r.end}
	for n := r.end; n != r.start; {
		n = r.prev[n.ID()]
		if n == nil || len(out) > len(r.prev) {
			return nil
		}
		out = append(out, n)
	}

	return out
}
