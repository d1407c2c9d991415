// Package core defines the central Graph, Node, Role and Coord types used by
// the grid pathfinding engine, and provides thread-safe primitives for
// building and querying a weighted grid graph.
//
// This file declares Role, Coord, Node, Neighbor, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNilNode         - node pointer is nil.
//	ErrInvalidNode     - node is not owned by the graph (or coordinate is absent).
//	ErrDuplicateCoord  - a node already occupies the coordinate.
//	ErrBadWeight       - edge weight is not a positive finite real.
//	ErrLoopNotAllowed  - self-loop requested.
package core

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates that a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("core: node is nil")

	// ErrInvalidNode indicates an operation referenced a node absent from the Graph.
	ErrInvalidNode = errors.New("core: node not found in graph")

	// ErrDuplicateCoord indicates a second node was inserted at an occupied coordinate.
	ErrDuplicateCoord = errors.New("core: coordinate already occupied")

	// ErrBadWeight indicates a non-positive, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a positive finite number")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Role classifies a grid cell.
type Role uint8

const (
	// Empty is a passable, unlabelled cell.
	Empty Role = iota
	// Start is the search origin.
	Start
	// End is the search goal.
	End
	// Wall is impassable.
	Wall
)

var roleNames = [...]string{"empty", "start", "end", "wall"}

// String returns the lower-case role name.
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}

	return "role(" + strconv.Itoa(int(r)) + ")"
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool { return r <= Wall }

// Passable reports whether a search may enter a cell with this role.
func (r Role) Passable() bool { return r != Wall }

// Coord is a grid coordinate. It is comparable and used directly as a map key.
type Coord struct {
	X, Y int
}

// Add returns the coordinate shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// Neighbor is one outgoing edge of a Node.
type Neighbor struct {
	// Node is the edge target.
	Node *Node
	// Weight is the positive edge cost.
	Weight float64
}

// Node is a graph vertex representing one grid cell (or a synthetic boundary cell).
//
// A Node carries only identity, coordinate, role and its outgoing edges.
// Per-search bookkeeping (distance, predecessor, visited) lives outside the
// node so that searches stay independent.
type Node struct {
	id    int
	coord Coord
	role  Role

	// claimed is set by the first AddNode that takes the node, across all graphs.
	claimed atomic.Bool

	// neighbors holds outgoing edges in insertion order; index maps a
	// neighbor coordinate to its slot so re-adding overwrites in place.
	neighbors []Neighbor
	index     map[Coord]int
}

// NewNode returns a detached node at (x, y) with the given role.
// Its ID is -1 until the node is inserted with Graph.AddNode.
func NewNode(x, y int, role Role) *Node {
	return &Node{
		id:    -1,
		coord: Coord{X: x, Y: y},
		role:  role,
		index: make(map[Coord]int, 8),
	}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether Connect adds a single arc (true) or a mirrored pair (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the weighted, optionally directed adjacency structure that owns all Nodes.
//
// mu guards nodes, order and the neighbor tables of owned nodes.
type Graph struct {
	mu sync.RWMutex

	directed bool

	nodes     map[Coord]*Node // coordinate → node
	order     []*Node         // nodes by id
	nodeCount int             // next id
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[Coord]*Node),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
