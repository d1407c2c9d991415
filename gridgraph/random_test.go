package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

func TestRandom_Deterministic(t *testing.T) {
	a, err := gridgraph.Random(30, 20, 0.3, gridgraph.WithSeed(5))
	require.NoError(t, err)
	b, err := gridgraph.Random(30, 20, 0.3, gridgraph.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	c, err := gridgraph.Random(30, 20, 0.3, gridgraph.WithSeed(6))
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

func TestRandom_Endpoints(t *testing.T) {
	grid, err := gridgraph.Random(7, 4, 0.5, gridgraph.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, []core.Coord{{X: 0, Y: 0}}, grid.Find(core.Start))
	assert.Equal(t, []core.Coord{{X: 6, Y: 3}}, grid.Find(core.End))

	g, err := gridgraph.Build(grid)
	require.NoError(t, err)
	_, _, err = gridgraph.Endpoints(g, grid)
	assert.NoError(t, err)
}

func TestRandom_DensityBounds(t *testing.T) {
	open, err := gridgraph.Random(4, 3, 0)
	require.NoError(t, err)
	assert.Empty(t, open.Find(core.Wall))

	full, err := gridgraph.Random(4, 3, 1)
	require.NoError(t, err)
	assert.Len(t, full.Find(core.Wall), 10, "every cell but the endpoints")

	grid, err := gridgraph.Random(100, 100, 0.25, gridgraph.WithSeed(3))
	require.NoError(t, err)
	walls := len(grid.Find(core.Wall))
	assert.InDelta(t, 2500, walls, 300)
}

func TestRandom_Errors(t *testing.T) {
	_, err := gridgraph.Random(1, 1, 0)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = gridgraph.Random(0, 5, 0)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = gridgraph.Random(5, 5, 1.5, gridgraph.WithSeed(1))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidDensity)
	_, err = gridgraph.Random(5, 5, 0.5)
	assert.ErrorIs(t, err, gridgraph.ErrNeedRandSource)

	assert.Panics(t, func() { gridgraph.WithRand(nil) })
}
