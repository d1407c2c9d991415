package gridgraph

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathgrid/core"
)

// RandomOption customizes Random.
type RandomOption func(*randomConfig)

type randomConfig struct {
	rng *rand.Rand
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("gridgraph: WithRand(nil)")
	}
	return func(c *randomConfig) { c.rng = r }
}

// WithSeed uses a fresh source seeded with seed, so equal seeds give equal grids.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// Random returns a w×h grid in which every cell is independently a wall with
// probability density, then puts Start at (0,0) and End at (w-1,h-1).
//
// Contract:
//   - w, h ≥ 1 and w·h ≥ 2 (else ErrEmptyGrid).
//   - 0 ≤ density ≤ 1 (else ErrInvalidDensity).
//   - An RNG is required when 0 < density < 1 (ErrNeedRandSource).
//
// Determinism:
//   - Cells are sampled in row-major order, one draw per cell.
//
// Complexity: O(W×H).
func Random(w, h int, density float64, opts ...RandomOption) (*RoleGrid, error) {
	if w < 1 || h < 1 || w*h < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, w, h)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: %.3f", ErrInvalidDensity, density)
	}
	var cfg randomConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil && density > 0 && density < 1 {
		return nil, ErrNeedRandSource
	}

	cells := make([][]core.Role, h)
	for y := range cells {
		cells[y] = make([]core.Role, w)
		for x := range cells[y] {
			switch {
			case density == 1:
				cells[y][x] = core.Wall
			case density > 0 && cfg.rng.Float64() < density:
				cells[y][x] = core.Wall
			}
		}
	}
	cells[0][0] = core.Start
	cells[h-1][w-1] = core.End

	return &RoleGrid{width: w, height: h, cells: cells}, nil
}
