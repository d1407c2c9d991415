// File: methods_edges.go
// Role: Edge lifecycle & queries: Connect, Neighbors, Weight, Degree.
//
// Concurrency:
//   - Connect mutates neighbor tables under the graph write lock.
//   - Node neighbor queries are lock-free; the graph must not be mutated
//     while a search runs.
package core

import (
	"fmt"
	"math"
)

// Connect adds the edge a→b with weight w. In an undirected graph it also adds
// b→a with the same weight. Re-connecting an existing ordered pair overwrites
// its weight.
//
// Steps:
//  1. Validate weight (ErrBadWeight) and reject a == b (ErrLoopNotAllowed).
//  2. Under the write lock verify both nodes are owned by g (ErrInvalidNode).
//  3. Record a→b; mirror when undirected.
//
// Complexity: O(1) amortized.
func (g *Graph) Connect(a, b *Node, w float64) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil endpoint", ErrInvalidNode)
	}
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, a.coord, b.coord, w)
	}
	if a == b {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, a.coord)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.nodes[a.coord] != a {
		return fmt.Errorf("%w: %s", ErrInvalidNode, a)
	}
	if g.nodes[b.coord] != b {
		return fmt.Errorf("%w: %s", ErrInvalidNode, b)
	}

	a.addNeighbor(b, w)
	if !g.directed {
		b.addNeighbor(a, w)
	}

	return nil
}

// Neighbors returns the outgoing edges of n in insertion order.
// The returned slice is a copy.
// Complexity: O(d).
func (n *Node) Neighbors() []Neighbor {
	out := make([]Neighbor, len(n.neighbors))
	copy(out, n.neighbors)

	return out
}

// Weight returns the weight of the edge n→c, if present.
func (n *Node) Weight(c Coord) (float64, bool) {
	i, ok := n.index[c]
	if !ok {
		return 0, false
	}

	return n.neighbors[i].Weight, true
}

// Degree returns the number of outgoing edges.
func (n *Node) Degree() int { return len(n.neighbors) }

// EachNeighbor calls fn for every outgoing edge in insertion order without
// copying. fn must not mutate the graph.
func (n *Node) EachNeighbor(fn func(to *Node, w float64)) {
	for _, nb := range n.neighbors {
		fn(nb.Node, nb.Weight)
	}
}
