package canvas

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/heuristic"
	"github.com/katalvlaran/pathgrid/search"
)

// ErrNotReady indicates Solve was called before start and end were placed.
var ErrNotReady = errors.New("canvas: start and end must be placed first")

// ErrBadSize indicates a non-positive canvas dimension.
var ErrBadSize = errors.New("canvas: width and height must be positive")

// State is the painting phase.
type State uint8

const (
	// PlacingStart waits for the start cell.
	PlacingStart State = iota
	// PlacingEnd waits for the end cell.
	PlacingEnd
	// PlacingWalls paints walls on every click.
	PlacingWalls
	// Done holds a solved grid; clicks are ignored.
	Done
)

var stateNames = [...]string{"placing_start", "placing_end", "placing_walls", "done"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return fmt.Sprintf("state(%d)", s)
}

// Painter records clicks on a fixed-size grid.
type Painter struct {
	width, height int
	cells         [][]core.Role
	state         State
	result        *search.Result
}

// NewPainter returns an all-empty w×h painter in PlacingStart.
func NewPainter(w, h int) (*Painter, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
	}
	p := &Painter{width: w, height: h}
	p.Reset()

	return p, nil
}

// Width returns the number of columns.
func (p *Painter) Width() int { return p.width }

// Height returns the number of rows.
func (p *Painter) Height() int { return p.height }

// State returns the current phase.
func (p *Painter) State() State { return p.state }

// Ready reports whether a solved result is available.
func (p *Painter) Ready() bool { return p.state == Done }

// CanSolve reports whether both endpoints have been placed.
func (p *Painter) CanSolve() bool { return p.state >= PlacingWalls }

// Click paints the cell at (x, y) according to the current state and
// reports whether anything changed.
func (p *Painter) Click(x, y int) bool {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return false
	}
	if p.cells[y][x] != core.Empty {
		return false
	}

	switch p.state {
	case PlacingStart:
		p.cells[y][x] = core.Start
		p.state = PlacingEnd
	case PlacingEnd:
		p.cells[y][x] = core.End
		p.state = PlacingWalls
	case PlacingWalls:
		p.cells[y][x] = core.Wall
	default:
		return false
	}

	return true
}

// Drag paints every cell of a stroke in order, as a held mouse button does.
// It returns the number of cells changed.
func (p *Painter) Drag(points []core.Coord) int {
	changed := 0
	for _, c := range points {
		if p.Click(c.X, c.Y) {
			changed++
		}
	}

	return changed
}

// Grid returns the painted cells as an immutable RoleGrid.
func (p *Painter) Grid() (*gridgraph.RoleGrid, error) {
	return gridgraph.NewRoleGrid(p.cells)
}

// Solve builds the graph for the painted grid, searches it with alg and kind,
// stores the result and moves to Done. It may be called again from Done,
// for example with another algorithm.
//
// Errors: ErrNotReady before both endpoints are placed, otherwise any error
// from gridgraph.Build, gridgraph.Endpoints or search.Search.
func (p *Painter) Solve(alg search.Algorithm, kind heuristic.Kind) (search.Result, error) {
	if !p.CanSolve() {
		return search.Result{}, fmt.Errorf("%w: state %s", ErrNotReady, p.state)
	}
	grid, err := p.Grid()
	if err != nil {
		return search.Result{}, err
	}
	g, err := gridgraph.Build(grid)
	if err != nil {
		return search.Result{}, err
	}
	start, end, err := gridgraph.Endpoints(g, grid)
	if err != nil {
		return search.Result{}, err
	}

	res, err := search.Search(g, start, end,
		search.WithAlgorithm(alg),
		search.WithHeuristicKind(kind),
	)
	if err != nil {
		return search.Result{}, err
	}
	p.state = Done
	p.result = &res

	return res, nil
}

// Result returns the last solved result.
func (p *Painter) Result() (search.Result, bool) {
	if p.result == nil {
		return search.Result{}, false
	}

	return *p.result, true
}

// Reset clears every cell and returns to PlacingStart.
func (p *Painter) Reset() {
	p.cells = make([][]core.Role, p.height)
	for y := range p.cells {
		p.cells[y] = make([]core.Role, p.width)
	}
	p.state = PlacingStart
	p.result = nil
}
