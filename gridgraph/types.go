// Package gridgraph defines the role grid, build options and edge-cost
// constants for the gridgraph subpackage of github.com/katalvlaran/pathgrid.
package gridgraph

import "github.com/katalvlaran/pathgrid/core"

// Edge costs for 8-directional movement.
const (
	// OrthogonalWeight is the cost of a N, S, E or W step.
	OrthogonalWeight = 1.0
	// DiagonalWeight is the cost of a diagonal step.
	DiagonalWeight = 1.4
)

// Reference deployment dimensions. They are not part of the build contract.
const (
	DefaultWidth    = 75
	DefaultHeight   = 75
	DefaultCellSize = 7
)

// offset is one of the eight neighbor directions.
type offset struct {
	dx, dy   int
	diagonal bool
}

// neighborOffsets lists the 8 directions in build order: W, E, N, S, NW, SW, NE, SE.
// The order fixes neighbor insertion order and therefore search tie-breaking.
var neighborOffsets = [8]offset{
	{-1, 0, false},
	{1, 0, false},
	{0, -1, false},
	{0, 1, false},
	{-1, -1, true},
	{-1, 1, true},
	{1, -1, true},
	{1, 1, true},
}

// RoleGrid is an immutable W×H array of cell roles. Cells[y][x] holds the role
// of column x in row y.
type RoleGrid struct {
	width, height int
	cells         [][]core.Role
}

// Options tunes graph construction.
type Options struct {
	// Orthogonal is the weight of N, S, E and W edges.
	Orthogonal float64
	// Diagonal is the weight of diagonal edges.
	Diagonal float64
	// Directed builds a directed graph when true.
	Directed bool
}

// Option customizes Build.
type Option func(*Options)

// DefaultOptions returns weights 1.0/1.4 on an undirected graph.
func DefaultOptions() Options {
	return Options{
		Orthogonal: OrthogonalWeight,
		Diagonal:   DiagonalWeight,
	}
}

// WithWeights overrides the orthogonal and diagonal edge weights.
// Panics on non-positive weights.
func WithWeights(orthogonal, diagonal float64) Option {
	if orthogonal <= 0 || diagonal <= 0 {
		panic("gridgraph: WithWeights requires positive weights")
	}
	return func(o *Options) {
		o.Orthogonal = orthogonal
		o.Diagonal = diagonal
	}
}

// WithDirected builds a directed graph: each grid cell gets arcs to its eight
// neighbors, boundary Wall nodes get none.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}
