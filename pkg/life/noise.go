package life

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"

	"simwall/pkg/core"
)

const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
)

// InitializeNoise seeds a grid whose alive probability varies smoothly across
// the board, producing clusters instead of uniform static. The local
// probability is p scaled by 1+noise and clamped to [0, 1]; scale sets how
// many noise units one cell spans. The result depends only on the arguments.
func InitializeNoise(geo core.Geometry, p float64, seed int64, scale float64) (*Grid, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if err := checkProbability(p); err != nil {
		return nil, err
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, errors.Errorf("noise scale %v must be positive", scale)
	}

	field := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	rng := core.NewRNG(seed)
	g := newGrid(geo)
	for r := 0; r < geo.Height; r++ {
		for c := 0; c < geo.Width; c++ {
			n := field.Noise2D(float64(c)*scale, float64(r)*scale)
			local := min(max(p*(1+n), 0), 1)
			g.cells[r*geo.Width+c] = rng.Float64() < local
		}
	}
	return g, nil
}
