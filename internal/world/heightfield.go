package world

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Classic Perlin smoothing/frequency parameters; only octave count and seed
// vary per world.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
)

// HeightField samples terrain column heights from multi-octave 2D Perlin
// noise. It is a pure function of (x, z) and its construction parameters: no
// heightmap is cached, so generation stays stateless and repeat samples are
// guaranteed identical.
type HeightField struct {
	noise     *perlin.Perlin
	scale     float64
	amplitude float64
	midpoint  int
}

// NewHeightField creates a height sampler. chunkHeight/2 (integer division)
// becomes the midpoint every column height is offset by.
func NewHeightField(seed int64, octaves int, scale, amplitude float64, chunkHeight int) *HeightField {
	return &HeightField{
		noise:     perlin.NewPerlin(perlinAlpha, perlinBeta, int32(octaves), seed),
		scale:     scale,
		amplitude: amplitude,
		midpoint:  chunkHeight / 2,
	}
}

// HeightAt returns the number of solid layers in the column at (x, z).
// height-1 is the topmost occupied layer index. A result <= 0 means the
// column is entirely empty.
func (h *HeightField) HeightAt(x, z int) int {
	n := h.noise.Noise2D(float64(x)/h.scale, float64(z)/h.scale) // approx [-1, 1]
	return int(math.Floor((n+1.0)*h.amplitude)) + h.midpoint
}

// BlockRoles names the gameplay block kind for each terrain tier.
type BlockRoles struct {
	Surface    BlockKind
	Secondary  BlockKind
	Foundation BlockKind
}

// KindForLayer classifies layer y in a column whose topmost occupied layer is
// columnTop: the top layer is surface, the two layers below it are secondary,
// everything deeper is foundation.
func (r BlockRoles) KindForLayer(y, columnTop int) BlockKind {
	if y == columnTop {
		return r.Surface
	}
	if columnTop-y <= 2 {
		return r.Secondary
	}
	return r.Foundation
}
