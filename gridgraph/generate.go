package gridgraph

import (
	"fmt"
	"math/rand"
)

// defaultGenerateSeed is the fixed "zero" seed used when callers pass Seed==0
// and no Rand. The value is arbitrary but stable to keep reproducible defaults.
const defaultGenerateSeed int64 = 1

// GenerateOptions configures Generate.
type GenerateOptions struct {
	// Height and Width of the grid; both must be ≥ 1.
	Height, Width int
	// ObstacleProbability in [0,1] is the chance that a cell starts blocked.
	ObstacleProbability float64
	// Seed drives a private RNG when Rand is nil. Seed==0 maps to a fixed default.
	Seed int64
	// Rand, if non-nil, is used verbatim and advanced by H×W draws.
	// math/rand.Rand is not goroutine-safe; do not share it across goroutines.
	Rand *rand.Rand
	// Keep lists cells forced free after sampling (e.g. search endpoints).
	Keep []Cell
	// Corridor forces column 0 and the last row free, which guarantees that
	// every Keep cell on either of them shares one free-space region.
	Corridor bool
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultGenerateSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultGenerateSeed
	}
	return rand.New(rand.NewSource(s))
}

// Generate builds a random occupancy grid. Cells are sampled in row-major
// order, each blocked when rng.Float64() < ObstacleProbability; Corridor
// and Keep are applied afterwards. The same options (and the same Rand
// state) always yield the same grid; no global random state is touched.
//
// Returns ErrGenerateOptions for non-positive dimensions, a probability
// outside [0,1] or an out-of-bounds Keep cell.
//
// Complexity: O(W×H) time and memory.
func Generate(opts GenerateOptions) (*Grid, error) {
	if opts.Height < 1 || opts.Width < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be at least 1x1",
			ErrGenerateOptions, opts.Height, opts.Width)
	}
	if opts.ObstacleProbability < 0 || opts.ObstacleProbability > 1 {
		return nil, fmt.Errorf("%w: obstacle probability %v not in [0,1]",
			ErrGenerateOptions, opts.ObstacleProbability)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rngFromSeed(opts.Seed)
	}

	g := &Grid{
		height: opts.Height,
		width:  opts.Width,
		cells:  make([]uint8, opts.Height*opts.Width),
	}
	for i := range g.cells {
		if rng.Float64() < opts.ObstacleProbability {
			g.cells[i] = Blocked
		}
	}

	if opts.Corridor {
		for r := 0; r < g.height; r++ {
			g.cells[r*g.width] = Free
		}
		last := (g.height - 1) * g.width
		for c := 0; c < g.width; c++ {
			g.cells[last+c] = Free
		}
	}
	for _, k := range opts.Keep {
		if !g.InBounds(k) {
			return nil, fmt.Errorf("%w: keep cell %v outside %dx%d grid",
				ErrGenerateOptions, k, g.height, g.width)
		}
		g.cells[g.Index(k)] = Free
	}

	return g, nil
}
