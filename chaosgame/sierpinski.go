package chaosgame

import (
	"math/rand"

	"github.com/lixenwraith/fractal-explorer/geometry"
)

// Sierpinski plays the chaos game on a randomly chosen triangle: start at
// the triangle's center and repeatedly jump halfway toward a random vertex.
// The points settle onto a Sierpinski gasket regardless of the triangle.
type Sierpinski struct{}

// NewSierpinski creates a Sierpinski triangle chaos game
func NewSierpinski() Sierpinski {
	return Sierpinski{}
}

// Generate picks three vertices in [-1, 1) x [-1, 1) and jumps
func (s Sierpinski) Generate(rng *rand.Rand, send func(geometry.Point) bool) {
	randCoord := func() float64 {
		return rng.Float64()*2 - 1
	}

	vertices := [3]geometry.Point{
		{X: randCoord(), Y: randCoord()},
		{X: randCoord(), Y: randCoord()},
		{X: randCoord(), Y: randCoord()},
	}

	// start from the center of the triangle
	curr := geometry.Point{
		X: (vertices[0].X + vertices[1].X + vertices[2].X) / 3,
		Y: (vertices[0].Y + vertices[1].Y + vertices[2].Y) / 3,
	}

	for {
		target := vertices[rng.Intn(len(vertices))]
		curr = geometry.Point{
			X: (curr.X + target.X) / 2,
			Y: (curr.Y + target.Y) / 2,
		}
		if !send(curr) {
			return
		}
	}
}

// DefaultRect covers the square the vertices are drawn from
func (s Sierpinski) DefaultRect() (min, max geometry.Point) {
	return geometry.Point{X: -1, Y: -1}, geometry.Point{X: 1, Y: 1}
}
