package curves

import (
	"math"

	"github.com/lixenwraith/fractal-explorer/geometry"
	"github.com/lixenwraith/fractal-explorer/turtle"
)

// terdragonSymbol is the terdragon alphabet
type terdragonSymbol uint8

const (
	terdragonF terdragonSymbol = iota // move forward
	terdragonL                        // turn left 120 degrees
	terdragonR                        // turn right 120 degrees
)

// Terdragon is the terdragon curve, a triple of dragon curves sharing
// one endpoint
type Terdragon struct {
	iterations uint64
}

// NewTerdragon creates a terdragon curve
func NewTerdragon(iterations uint64) Terdragon {
	return Terdragon{iterations: iterations}
}

// Initial is a single forward move
func (t Terdragon) Initial() []terdragonSymbol {
	return []terdragonSymbol{terdragonF}
}

// Rewrite replaces each segment with a zigzag: F -> F L F R F
func (t Terdragon) Rewrite(sym terdragonSymbol) []terdragonSymbol {
	if sym == terdragonF {
		return []terdragonSymbol{terdragonF, terdragonL, terdragonF, terdragonR, terdragonF}
	}
	return []terdragonSymbol{sym}
}

// SegmentCount returns 3^iterations forward moves
func (t Terdragon) SegmentCount() uint64 {
	count := uint64(1)
	for i := uint64(0); i < t.iterations; i++ {
		count *= 3
	}
	return count
}

func (t Terdragon) distanceForward() float64 {
	return 1 / math.Pow(math.Sqrt(3), float64(t.iterations))
}

// Init tilts the start angle so the endpoints stay level at every
// iteration depth
func (t Terdragon) Init(tt turtle.Turtle) {
	tt.SetPos(geometry.Point{X: 0, Y: 0})
	tt.SetAngle(-math.Pi / 6 * float64(t.iterations))
	tt.PenDown()
}

// Steps expands the Lindenmayer system and interprets the symbols
func (t Terdragon) Steps() []turtle.Step {
	return turtle.ExpandSteps[terdragonSymbol](t, t.iterations, func(sym terdragonSymbol) turtle.Step {
		switch sym {
		case terdragonF:
			return turtle.Forward(t.distanceForward())
		case terdragonL:
			return turtle.Turn(geometry.Deg2Rad(120))
		default:
			return turtle.Turn(geometry.Deg2Rad(-120))
		}
	})
}

// ViewRect frames the curve over its baseline from (0,0) to (1,0)
func (t Terdragon) ViewRect() (min, max geometry.Point) {
	return geometry.Point{X: -0.1, Y: -0.55}, geometry.Point{X: 1.1, Y: 0.55}
}
