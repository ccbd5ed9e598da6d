package chaosgame

import (
	"math/rand"

	"github.com/lixenwraith/fractal-explorer/geometry"
)

// FernTransforms are the reference affine transforms for the Barnsley fern
var FernTransforms = [4]geometry.Affine{
	{{0, 0, 0}, {0, 0.16, 0}},
	{{0.85, 0.04, 0}, {-0.04, 0.85, 1.6}},
	{{0.2, -0.26, 0}, {0.23, 0.22, 1.6}},
	{{-0.15, 0.28, 0}, {0.26, 0.24, 0.44}},
}

// FernWeights are the reference pick weights for the transforms
var FernWeights = [4]uint32{1, 85, 7, 7}

// BarnsleyFern is an iterated function system played as a chaos game: start
// at the origin, repeatedly apply a weighted-random affine transform, and
// plot each point scaled down to the unit-ish space the renderer expects.
type BarnsleyFern struct {
	transforms [4]geometry.Affine
	weights    [4]uint32
	total      uint32
}

// NewBarnsleyFern creates a fern from four transforms and their weights
func NewBarnsleyFern(transforms [4]geometry.Affine, weights [4]uint32) BarnsleyFern {
	var total uint32
	for _, w := range weights {
		total += w
	}
	return BarnsleyFern{transforms: transforms, weights: weights, total: total}
}

// NewDefaultFern creates the reference Barnsley fern
func NewDefaultFern() BarnsleyFern {
	return NewBarnsleyFern(FernTransforms, FernWeights)
}

func (b BarnsleyFern) pickTransform(rng *rand.Rand) geometry.Affine {
	pick := uint32(rng.Intn(int(b.total)))
	for i, w := range b.weights {
		if pick < w {
			return b.transforms[i]
		}
		pick -= w
	}
	return b.transforms[len(b.transforms)-1]
}

// Generate iterates from the origin. The fern lives in roughly
// [-2.2, 2.7] x [0, 10], so points are scaled by a tenth before sending.
func (b BarnsleyFern) Generate(rng *rand.Rand, send func(geometry.Point) bool) {
	curr := geometry.Point{X: 0, Y: 0}
	for {
		if !send(geometry.Point{X: curr.X / 10, Y: curr.Y / 10}) {
			return
		}
		curr = b.pickTransform(rng).Transform(curr)
	}
}

// DefaultRect frames the scaled fern with the stem near the bottom edge
func (b BarnsleyFern) DefaultRect() (min, max geometry.Point) {
	return geometry.Point{X: -0.6, Y: -0.05}, geometry.Point{X: 0.6, Y: 1.05}
}
