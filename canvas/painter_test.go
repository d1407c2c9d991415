package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/canvas"
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/heuristic"
	"github.com/katalvlaran/pathgrid/search"
)

func TestNewPainter(t *testing.T) {
	p, err := canvas.NewPainter(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Width())
	assert.Equal(t, 3, p.Height())
	assert.Equal(t, canvas.PlacingStart, p.State())
	assert.False(t, p.Ready())

	_, err = canvas.NewPainter(0, 3)
	assert.ErrorIs(t, err, canvas.ErrBadSize)
}

func TestClick_StateMachine(t *testing.T) {
	p, err := canvas.NewPainter(3, 3)
	require.NoError(t, err)

	assert.False(t, p.Click(-1, 0), "outside clicks are ignored")
	assert.False(t, p.Click(3, 0))
	assert.Equal(t, canvas.PlacingStart, p.State())

	require.True(t, p.Click(0, 0))
	assert.Equal(t, canvas.PlacingEnd, p.State())
	assert.False(t, p.Click(0, 0), "painted cells are ignored")

	require.True(t, p.Click(2, 2))
	assert.Equal(t, canvas.PlacingWalls, p.State())
	assert.True(t, p.CanSolve())

	assert.True(t, p.Click(1, 1))
	assert.True(t, p.Click(1, 0))
	assert.False(t, p.Click(2, 2), "end cannot be overwritten by a wall")
	assert.Equal(t, canvas.PlacingWalls, p.State())

	grid, err := p.Grid()
	require.NoError(t, err)
	assert.Equal(t, "S#.\n.#.\n..E\n", grid.String())
}

func TestDrag(t *testing.T) {
	p, err := canvas.NewPainter(5, 1)
	require.NoError(t, err)

	n := p.Drag([]core.Coord{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 4, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 9, Y: 0}})
	assert.Equal(t, 4, n)
	grid, err := p.Grid()
	require.NoError(t, err)
	assert.Equal(t, "S##.E\n", grid.String())
}

func TestSolve(t *testing.T) {
	p, err := canvas.NewPainter(3, 3)
	require.NoError(t, err)

	_, err = p.Solve(search.AlgorithmDijkstra, heuristic.None)
	require.ErrorIs(t, err, canvas.ErrNotReady)
	p.Click(0, 0)
	_, err = p.Solve(search.AlgorithmDijkstra, heuristic.None)
	require.ErrorIs(t, err, canvas.ErrNotReady)

	p.Click(2, 2)
	p.Click(1, 1)
	res, err := p.Solve(search.AlgorithmDijkstra, heuristic.None)
	require.NoError(t, err)
	assert.True(t, p.Ready())
	assert.Equal(t, canvas.Done, p.State())
	assert.InDelta(t, 3.4, res.Cost(), 1e-9)

	assert.False(t, p.Click(2, 0), "clicks are ignored once solved")

	stored, ok := p.Result()
	require.True(t, ok)
	assert.Equal(t, res.Points(), stored.Points())

	// Re-solving from Done with another algorithm is allowed.
	res, err = p.Solve(search.AlgorithmAStar, heuristic.KindManhattan)
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}, res.ExploredPoints())

	_, err = p.Solve(search.AlgorithmAStar, heuristic.None)
	assert.ErrorIs(t, err, search.ErrHeuristicRequired)
}

func TestReset(t *testing.T) {
	p, err := canvas.NewPainter(2, 2)
	require.NoError(t, err)
	p.Click(0, 0)
	p.Click(1, 1)
	_, err = p.Solve(search.AlgorithmDijkstra, heuristic.None)
	require.NoError(t, err)

	p.Reset()
	assert.Equal(t, canvas.PlacingStart, p.State())
	_, ok := p.Result()
	assert.False(t, ok)
	grid, err := p.Grid()
	require.NoError(t, err)
	assert.Equal(t, "..\n..\n", grid.String())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "placing_walls", canvas.PlacingWalls.String())
	assert.Equal(t, "state(9)", canvas.State(9).String())
}
