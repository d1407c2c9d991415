package gridgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

//----------------------------------------------------------------------------//
// NewRoleGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewRoleGrid_Errors verifies that NewRoleGrid rejects empty, ragged or unknown inputs.
func TestNewRoleGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]core.Role
		err  error
	}{
		{"EmptyRows", [][]core.Role{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]core.Role{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]core.Role{{core.Empty, core.Wall}, {core.Empty}}, gridgraph.ErrNonRectangular},
		{"UnknownRole", [][]core.Role{{core.Empty, core.Role(7)}}, gridgraph.ErrUnknownRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewRoleGrid(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewRoleGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewRoleGrid_DeepCopy ensures later mutation of the input does not leak in.
func TestNewRoleGrid_DeepCopy(t *testing.T) {
	in := [][]core.Role{{core.Start, core.End}}
	rg, err := gridgraph.NewRoleGrid(in)
	require.NoError(t, err)
	in[0][0] = core.Wall
	assert.Equal(t, core.Start, rg.At(0, 0))

	rows := rg.Rows()
	rows[0][1] = core.Wall
	assert.Equal(t, core.End, rg.At(1, 0))
}

// TestInBounds checks InBounds and At on a 3×2 grid.
func TestInBounds(t *testing.T) {
	rg, err := gridgraph.Blank(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, rg.Width())
	assert.Equal(t, 2, rg.Height())

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		assert.True(t, rg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
		assert.Equal(t, core.Empty, rg.At(xy[0], xy[1]))
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		assert.False(t, rg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
		assert.Equal(t, core.Wall, rg.At(xy[0], xy[1]), "outside reads as wall")
	}

	_, err = gridgraph.Blank(0, 3)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestWith(t *testing.T) {
	rg, err := gridgraph.Blank(2, 2)
	require.NoError(t, err)

	next, err := rg.With(1, 0, core.Wall)
	require.NoError(t, err)
	assert.Equal(t, core.Wall, next.At(1, 0))
	assert.Equal(t, core.Empty, rg.At(1, 0), "original must be unchanged")

	_, err = rg.With(2, 0, core.Wall)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = rg.With(0, 0, core.Role(5))
	assert.ErrorIs(t, err, gridgraph.ErrUnknownRole)
}

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

func TestParse_RoundTrip(t *testing.T) {
	src := "S..#\n.##.\n...E\n"
	rg, err := gridgraph.ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, 4, rg.Width())
	assert.Equal(t, 3, rg.Height())
	assert.Equal(t, core.Start, rg.At(0, 0))
	assert.Equal(t, core.Wall, rg.At(3, 0))
	assert.Equal(t, core.End, rg.At(3, 2))
	assert.Equal(t, src, rg.String())
}

func TestParse_IgnoresBlankLinesAndIndent(t *testing.T) {
	rg, err := gridgraph.ParseString("\n  S.\n\n  .E  \n")
	require.NoError(t, err)
	assert.Equal(t, "S.\n.E\n", rg.String())

	rows, err := gridgraph.ParseRows([]string{"S.", ".E"})
	require.NoError(t, err)
	assert.Equal(t, rg.String(), rows.String())
}

func TestParse_Errors(t *testing.T) {
	_, err := gridgraph.ParseString("S.\n.x")
	require.ErrorIs(t, err, gridgraph.ErrUnknownRole)
	assert.True(t, strings.Contains(err.Error(), "line 2 column 2"), err.Error())

	// Every valid cell character is one byte, so a multi-byte character is
	// reported at its rune column.
	_, err = gridgraph.ParseString("S.\n.é")
	require.ErrorIs(t, err, gridgraph.ErrUnknownRole)
	assert.True(t, strings.Contains(err.Error(), "line 2 column 2"), err.Error())
	_, err = gridgraph.ParseString("S..é.E")
	require.ErrorIs(t, err, gridgraph.ErrUnknownRole)
	assert.True(t, strings.Contains(err.Error(), "line 1 column 4"), err.Error())

	_, err = gridgraph.ParseString("S..\n.E")
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	_, err = gridgraph.ParseString("\n\n")
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestFind(t *testing.T) {
	rg, err := gridgraph.ParseString("#.#\n.#.")
	require.NoError(t, err)
	assert.Equal(t,
		[]core.Coord{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}},
		rg.Find(core.Wall))
	assert.Empty(t, rg.Find(core.Start))
}
