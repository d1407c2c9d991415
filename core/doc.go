// Package core provides the thread-safe in-memory graph that backs grid
// pathfinding: Nodes keyed by grid coordinate, each carrying a Role and a
// weighted, insertion-ordered neighbor table.
//
// The Graph supports:
//
//   - Directed vs. undirected connections (WithDirected). Undirected graphs
//     mirror every edge with the same weight.
//   - Positive real edge weights; re-connecting an ordered pair overwrites
//     its weight without changing neighbor order.
//   - Coordinate lookup through a struct key (Coord) instead of string keys.
//   - Sequential node ids assigned on insertion, usable as dense indices by
//     algorithms that keep per-run state outside the graph.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n *Node) error               // O(1)
//	GetNode(x, y int) *Node              // O(1), nil when absent
//	Lookup(c Coord) (*Node, error)       // O(1), ErrInvalidNode when absent
//	Nodes() []*Node                      // O(V), id order
//	NodeCount() int                      // O(1)
//
//	// Edges
//	Connect(a, b *Node, w float64) error // O(1)
//	(*Node).Neighbors() []Neighbor       // O(d), insertion order
//	(*Node).Weight(c Coord) (float64, bool)
//
// Roles:
//
//	Empty, Start, End, Wall: a fixed enumeration; Wall is the only
//	impassable role.
//
// Errors:
//
//	ErrNilNode        – nil node pointer
//	ErrInvalidNode    – node absent from the graph
//	ErrDuplicateCoord – coordinate already occupied
//	ErrBadWeight      – weight not positive and finite
//	ErrLoopNotAllowed – a == b in Connect
//
// Searches must not write to nodes; package search keeps its own id-indexed
// state so that several searches may run over one graph concurrently.
package core
