package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// mustGraph parses src, builds its graph and resolves the endpoints.
func mustGraph(t testing.TB, src string) (*core.Graph, *core.Node, *core.Node) {
	t.Helper()
	grid, err := gridgraph.ParseString(src)
	require.NoError(t, err)
	g, err := gridgraph.Build(grid)
	require.NoError(t, err)
	start, end, err := gridgraph.Endpoints(g, grid)
	require.NoError(t, err)

	return g, start, end
}

// coords maps nodes to their coordinates.
func coords(nodes []*core.Node) []core.Coord {
	out := make([]core.Coord, len(nodes))
	for i, n := range nodes {
		out[i] = n.Coord()
	}

	return out
}

// pts is shorthand for a coordinate list given as x,y pairs.
func pts(xy ...int) []core.Coord {
	out := make([]core.Coord, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Coord{X: xy[i], Y: xy[i+1]})
	}

	return out
}

// randomGrid returns a w×h grid with about one wall in four cells and
// Start/End at opposite corners.
func randomGrid(t testing.TB, w, h int, seed int64) *gridgraph.RoleGrid {
	t.Helper()
	grid, err := gridgraph.Random(w, h, 0.25, gridgraph.WithSeed(seed))
	require.NoError(t, err)

	return grid
}
