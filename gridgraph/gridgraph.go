// Package gridgraph converts a 2D grid of cell roles into a weighted
// 8-connected graph. It supports:
//
//   - Validated, immutable RoleGrid construction and text parsing
//   - Graph construction with a synthetic Wall ring around the grid
//   - Start/End lookup with explicit missing/multiple diagnostics
//   - Reachability of open cells from a coordinate
package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/core"
)

// NewRoleGrid constructs a RoleGrid from a non-empty, rectangular 2D slice
// indexed as values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrUnknownRole for values
// outside the Role enumeration.
// Algorithmic complexity: O(W×H) time and memory.
func NewRoleGrid(values [][]core.Role) (*RoleGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]core.Role, h)
	for y := 0; y < h; y++ {
		for x, r := range values[y] {
			if !r.Valid() {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrUnknownRole, r, x, y)
			}
		}
		cells[y] = make([]core.Role, w)
		copy(cells[y], values[y])
	}

	return &RoleGrid{width: w, height: h, cells: cells}, nil
}

// Blank returns an all-Empty w×h grid. Non-positive sizes yield ErrEmptyGrid.
func Blank(w, h int) (*RoleGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]core.Role, h)
	for y := range cells {
		cells[y] = make([]core.Role, w)
	}

	return &RoleGrid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (rg *RoleGrid) Width() int { return rg.width }

// Height returns the number of rows.
func (rg *RoleGrid) Height() int { return rg.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (rg *RoleGrid) InBounds(x, y int) bool {
	return x >= 0 && x < rg.width && y >= 0 && y < rg.height
}

// At returns the role at (x,y); out-of-bounds cells read as Wall.
func (rg *RoleGrid) At(x, y int) core.Role {
	if !rg.InBounds(x, y) {
		return core.Wall
	}

	return rg.cells[y][x]
}

// With returns a copy of the grid with (x,y) set to role.
func (rg *RoleGrid) With(x, y int, role core.Role) (*RoleGrid, error) {
	if !rg.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownRole, role)
	}
	out, _ := NewRoleGrid(rg.cells)
	out.cells[y][x] = role

	return out, nil
}

// Rows returns a deep copy of the cells, indexed [y][x].
func (rg *RoleGrid) Rows() [][]core.Role {
	out := make([][]core.Role, rg.height)
	for y := range out {
		out[y] = make([]core.Role, rg.width)
		copy(out[y], rg.cells[y])
	}

	return out
}

// Find returns the coordinates holding role, in row-major order.
func (rg *RoleGrid) Find(role core.Role) []core.Coord {
	var out []core.Coord
	for y := 0; y < rg.height; y++ {
		for x := 0; x < rg.width; x++ {
			if rg.cells[y][x] == role {
				out = append(out, core.Coord{X: x, Y: y})
			}
		}
	}

	return out
}

// String renders the grid in the text format accepted by Parse.
func (rg *RoleGrid) String() string {
	var b strings.Builder
	b.Grow((rg.width + 1) * rg.height)
	for y := 0; y < rg.height; y++ {
		for x := 0; x < rg.width; x++ {
			b.WriteByte(roleChars[rg.cells[y][x]])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (rg *RoleGrid) index(x, y int) int {
	return y*rg.width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (rg *RoleGrid) Coordinate(idx int) (x, y int) {
	return idx % rg.width, idx / rg.width
}
