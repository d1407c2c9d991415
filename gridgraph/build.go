package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/core"
)

// Build converts the RoleGrid into a weighted *core.Graph in which every grid
// cell, including those on the edge, has exactly 8 neighbors.
//
// Behavior:
//  1. One node per cell, inserted in row-major order with the cell's role.
//  2. For every cell and each of its 8 offsets, a missing neighbor coordinate
//     gets a synthetic Wall node. These boundary nodes form a one-cell ring
//     outside the grid and are not expanded further.
//  3. Every cell is connected to its 8 neighbors: orthogonal edges weigh
//     Options.Orthogonal, diagonal edges Options.Diagonal.
//
// Boundary nodes may end up with fewer than 8 neighbors.
// Complexity: O(W×H×8) time, O((W+2)×(H+2)) nodes.
func Build(grid *RoleGrid, opts ...Option) (*core.Graph, error) {
	if grid == nil {
		return nil, ErrEmptyGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.NewGraph(core.WithDirected(cfg.Directed))

	// 1) Grid nodes.
	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			if err := g.AddNode(core.NewNode(x, y, grid.cells[y][x])); err != nil {
				return nil, fmt.Errorf("gridgraph: add node (%d,%d): %w", x, y, err)
			}
		}
	}

	// 2) Boundary ring.
	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			for _, d := range neighborOffsets {
				nx, ny := x+d.dx, y+d.dy
				if g.GetNode(nx, ny) != nil {
					continue
				}
				if err := g.AddNode(core.NewNode(nx, ny, core.Wall)); err != nil {
					return nil, fmt.Errorf("gridgraph: add boundary (%d,%d): %w", nx, ny, err)
				}
			}
		}
	}

	// 3) Connections.
	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			u := g.GetNode(x, y)
			for _, d := range neighborOffsets {
				w := cfg.Orthogonal
				if d.diagonal {
					w = cfg.Diagonal
				}
				if err := g.Connect(u, g.GetNode(x+d.dx, y+d.dy), w); err != nil {
					return nil, fmt.Errorf("gridgraph: connect (%d,%d)+(%d,%d): %w", x, y, d.dx, d.dy, err)
				}
			}
		}
	}

	return g, nil
}

// Endpoints locates the unique Start and End cells of grid and returns the
// corresponding nodes of g, which must have been built from grid.
//
// Errors:
//   - ErrMissingEndpoint when the grid has no Start or no End.
//   - ErrMultipleEndpoints when it has more than one of either.
//   - core.ErrInvalidNode when g lacks a node at an endpoint coordinate.
func Endpoints(g *core.Graph, grid *RoleGrid) (start, end *core.Node, err error) {
	if grid == nil {
		return nil, nil, ErrEmptyGrid
	}
	starts, ends := grid.Find(core.Start), grid.Find(core.End)
	switch {
	case len(starts) == 0 && len(ends) == 0:
		return nil, nil, fmt.Errorf("%w: grid has neither start nor end", ErrMissingEndpoint)
	case len(starts) == 0:
		return nil, nil, fmt.Errorf("%w: grid has no start", ErrMissingEndpoint)
	case len(ends) == 0:
		return nil, nil, fmt.Errorf("%w: grid has no end", ErrMissingEndpoint)
	case len(starts) > 1:
		return nil, nil, fmt.Errorf("%w: %d starts", ErrMultipleEndpoints, len(starts))
	case len(ends) > 1:
		return nil, nil, fmt.Errorf("%w: %d ends", ErrMultipleEndpoints, len(ends))
	}

	if start, err = g.Lookup(starts[0]); err != nil {
		return nil, nil, err
	}
	if end, err = g.Lookup(ends[0]); err != nil {
		return nil, nil, err
	}

	return start, end, nil
}
