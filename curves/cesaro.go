package curves

import (
	"math"

	"github.com/lixenwraith/fractal-explorer/geometry"
	"github.com/lixenwraith/fractal-explorer/turtle"
)

// cesaroSymbol is the square Cesàro fractal alphabet
type cesaroSymbol uint8

const (
	cesaroF cesaroSymbol = iota // move forward
	cesaroQ                     // corner of the square
	cesaroL                     // turn left 85 degrees
	cesaroR                     // turn right 85 degrees
)

// Cesaro is the square Cesàro fractal, a unit square whose sides grow
// near-right-angle bumps toward the interior
type Cesaro struct {
	iterations uint64
}

// NewCesaro creates a square Cesàro fractal
func NewCesaro(iterations uint64) Cesaro {
	return Cesaro{iterations: iterations}
}

// Initial is the four sides of a square with a corner turn after each
func (c Cesaro) Initial() []cesaroSymbol {
	return []cesaroSymbol{
		cesaroF, cesaroQ,
		cesaroF, cesaroQ,
		cesaroF, cesaroQ,
		cesaroF, cesaroQ,
	}
}

// Rewrite splits each side around a bump: F -> F L F RR F L F
func (c Cesaro) Rewrite(sym cesaroSymbol) []cesaroSymbol {
	if sym == cesaroF {
		return []cesaroSymbol{cesaroF, cesaroL, cesaroF, cesaroR, cesaroR, cesaroF, cesaroL, cesaroF}
	}
	return []cesaroSymbol{sym}
}

// SegmentCount returns 4*4^iterations forward moves
func (c Cesaro) SegmentCount() uint64 {
	return 4 << (2 * c.iterations)
}

func (c Cesaro) distanceForward() float64 {
	// 2.2 approximates the growth factor as more gaps are added to each side
	return 1 / math.Pow(2.2, float64(c.iterations))
}

// Init starts half a unit below the origin so the square is centered on
// the X axis
func (c Cesaro) Init(t turtle.Turtle) {
	t.SetPos(geometry.Point{X: 0, Y: -0.5})
	t.SetAngle(0)
	t.PenDown()
}

// Steps expands the Lindenmayer system and interprets the symbols
func (c Cesaro) Steps() []turtle.Step {
	return turtle.ExpandSteps[cesaroSymbol](c, c.iterations, func(sym cesaroSymbol) turtle.Step {
		switch sym {
		case cesaroF:
			return turtle.Forward(c.distanceForward())
		case cesaroQ:
			return turtle.Turn(geometry.Deg2Rad(90))
		case cesaroL:
			return turtle.Turn(geometry.Deg2Rad(85))
		default:
			return turtle.Turn(geometry.Deg2Rad(-85))
		}
	})
}

// ViewRect frames the unit square spanning (0,-0.5) to (1,0.5)
func (c Cesaro) ViewRect() (min, max geometry.Point) {
	return geometry.Point{X: -0.1, Y: -0.6}, geometry.Point{X: 1.1, Y: 0.6}
}
