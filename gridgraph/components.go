package gridgraph

import "github.com/katalvlaran/pathgrid/core"

// Reachable returns every passable cell reachable from `from` by 8-directional
// moves inside the grid, in breadth-first order starting with `from` itself.
// A Wall or out-of-bounds origin yields nil.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func Reachable(grid *RoleGrid, from core.Coord) []core.Coord {
	if grid == nil || !grid.InBounds(from.X, from.Y) || !grid.At(from.X, from.Y).Passable() {
		return nil
	}
	seen := make([]bool, grid.width*grid.height)
	i0 := grid.index(from.X, from.Y)
	seen[i0] = true
	queue := []int{i0}
	out := make([]core.Coord, 0, 16)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := grid.Coordinate(u)
		out = append(out, core.Coord{X: ux, Y: uy})
		for _, d := range neighborOffsets {
			vx, vy := ux+d.dx, uy+d.dy
			if !grid.InBounds(vx, vy) || !grid.cells[vy][vx].Passable() {
				continue
			}
			vi := grid.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return out
}

// Connected reports whether b is reachable from a.
func Connected(grid *RoleGrid, a, b core.Coord) bool {
	for _, c := range Reachable(grid, a) {
		if c == b {
			return true
		}
	}

	return false
}
