package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/heuristic"
)

func TestEuclidean(t *testing.T) {
	assert.InDelta(t, 5.0, heuristic.Euclidean(core.Coord{X: 0, Y: 0}, core.Coord{X: 3, Y: 4}), 1e-12)
	assert.InDelta(t, 5.0, heuristic.Euclidean(core.Coord{X: 3, Y: 4}, core.Coord{X: 0, Y: 0}), 1e-12)
	assert.Zero(t, heuristic.Euclidean(core.Coord{X: 2, Y: 2}, core.Coord{X: 2, Y: 2}))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 7.0, heuristic.Manhattan(core.Coord{X: 0, Y: 0}, core.Coord{X: 3, Y: 4}))
	assert.Equal(t, 7.0, heuristic.Manhattan(core.Coord{X: 3, Y: -4}, core.Coord{X: 0, Y: 0}))
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want heuristic.Kind
	}{
		{"", heuristic.None},
		{"none", heuristic.None},
		{"Euclidean", heuristic.KindEuclidean},
		{" manhattan ", heuristic.KindManhattan},
	}
	for _, tc := range cases {
		got, err := heuristic.ParseKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := heuristic.ParseKind("chebyshev")
	assert.ErrorIs(t, err, heuristic.ErrUnknownHeuristic)
}

func TestKind_Func(t *testing.T) {
	assert.Nil(t, heuristic.None.Func(), "None must be the absence of a heuristic")
	require.NotNil(t, heuristic.KindEuclidean.Func())
	require.NotNil(t, heuristic.KindManhattan.Func())

	a, b := core.Coord{X: 0, Y: 0}, core.Coord{X: 1, Y: 1}
	assert.Equal(t, heuristic.Manhattan(a, b), heuristic.KindManhattan.Func()(a, b))
}

func TestKind_Text(t *testing.T) {
	var k heuristic.Kind
	require.NoError(t, k.UnmarshalText([]byte("manhattan")))
	assert.Equal(t, heuristic.KindManhattan, k)

	b, err := k.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "manhattan", string(b))

	assert.Error(t, k.UnmarshalText([]byte("bogus")))
	assert.Equal(t, "kind(7)", heuristic.Kind(7).String())
}

func TestChoices(t *testing.T) {
	assert.Equal(t, []heuristic.Kind{heuristic.None}, heuristic.Choices(false))
	assert.Equal(t, []heuristic.Kind{heuristic.KindEuclidean, heuristic.KindManhattan}, heuristic.Choices(true))
}
