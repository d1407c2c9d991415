// File: methods_nodes.go
// Role: Node accessors and Graph node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in id (insertion) order.
//   - Node.Neighbors() returns edges in insertion order.
//
// Concurrency:
//   - Graph catalog protected by mu.
package core

import "fmt"

// ID returns the graph-assigned identifier, or -1 for a detached node.
func (n *Node) ID() int { return n.id }

// X returns the column of the node.
func (n *Node) X() int { return n.coord.X }

// Y returns the row of the node.
func (n *Node) Y() int { return n.coord.Y }

// Coord returns the node coordinate.
func (n *Node) Coord() Coord { return n.coord }

// Role returns the node role. It never changes after creation.
func (n *Node) Role() Role { return n.role }

// String formats the node as "role(x,y)#id".
func (n *Node) String() string {
	return fmt.Sprintf("%s%s#%d", n.role, n.coord, n.id)
}

// addNeighbor records n→to with weight w, overwriting an existing entry in place.
func (n *Node) addNeighbor(to *Node, w float64) {
	if i, ok := n.index[to.coord]; ok {
		n.neighbors[i] = Neighbor{Node: to, Weight: w}
		return
	}
	n.index[to.coord] = len(n.neighbors)
	n.neighbors = append(n.neighbors, Neighbor{Node: to, Weight: w})
}

// AddNode assigns the next sequential id to n and inserts it by coordinate.
//
// Steps:
//  1. Reject nil (ErrNilNode). Claim n atomically; a node already claimed by
//     any graph is rejected (ErrInvalidNode), even under concurrent inserts.
//  2. Under the write lock, reject an occupied coordinate (ErrDuplicateCoord)
//     and release the claim; the node already stored there is kept.
//  3. Assign id = count, append to id order, register coordinate.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if !n.claimed.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: %s%s already inserted", ErrInvalidNode, n.role, n.coord)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[n.coord]; exists {
		n.claimed.Store(false)
		return fmt.Errorf("%w: %s", ErrDuplicateCoord, n.coord)
	}
	n.id = g.nodeCount
	g.nodeCount++
	g.nodes[n.coord] = n
	g.order = append(g.order, n)

	return nil
}

// GetNode returns the node at (x, y), or nil when no node occupies it.
// It never fails; GraphBuilder relies on nil to detect missing boundary cells.
// Complexity: O(1).
func (g *Graph) GetNode(x, y int) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[Coord{X: x, Y: y}]
}

// Lookup is the strict form of GetNode.
func (g *Graph) Lookup(c Coord) (*Node, error) {
	if n := g.GetNode(c.X, c.Y); n != nil {
		return n, nil
	}

	return nil, fmt.Errorf("%w: no node at %s", ErrInvalidNode, c)
}

// Contains reports whether n is the node this graph owns at n's coordinate.
func (g *Graph) Contains(n *Node) bool {
	if n == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[n.coord] == n
}

// Nodes returns all nodes in id order. The slice is a copy; nodes are shared.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes inserted so far.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeCount
}

// Directed reports whether Connect adds single arcs.
func (g *Graph) Directed() bool { return g.directed }
