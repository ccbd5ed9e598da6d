package curves

import (
	"math"

	"github.com/lixenwraith/fractal-explorer/geometry"
	"github.com/lixenwraith/fractal-explorer/turtle"
)

// levySymbol is the Lévy C curve alphabet
type levySymbol uint8

const (
	levyF levySymbol = iota // move forward
	levyL                   // turn left 45 degrees
	levyR                   // turn right 45 degrees
)

// LevyC is the Lévy C curve
type LevyC struct {
	iterations uint64
}

// NewLevyC creates a Lévy C curve
func NewLevyC(iterations uint64) LevyC {
	return LevyC{iterations: iterations}
}

// Initial is a single forward move
func (l LevyC) Initial() []levySymbol {
	return []levySymbol{levyF}
}

// Rewrite bends each segment into a right angle: F -> L F RR F L
func (l LevyC) Rewrite(sym levySymbol) []levySymbol {
	if sym == levyF {
		return []levySymbol{levyL, levyF, levyR, levyR, levyF, levyL}
	}
	return []levySymbol{sym}
}

// SegmentCount returns 2^iterations forward moves
func (l LevyC) SegmentCount() uint64 {
	return uint64(1) << l.iterations
}

func (l LevyC) linesBetweenEndpoints() float64 {
	if l.iterations == 0 {
		return 1
	}
	return math.Pow(math.Sqrt2, float64(l.iterations))
}

func (l LevyC) distanceForward() float64 {
	return 1 / l.linesBetweenEndpoints() / 2
}

// Init starts at the origin facing the positive X axis
func (l LevyC) Init(t turtle.Turtle) {
	t.SetPos(geometry.Point{X: 0, Y: 0})
	t.SetAngle(0)
	t.PenDown()
}

// Steps expands the Lindenmayer system and interprets the symbols
func (l LevyC) Steps() []turtle.Step {
	return turtle.ExpandSteps[levySymbol](l, l.iterations, func(sym levySymbol) turtle.Step {
		switch sym {
		case levyF:
			return turtle.Forward(l.distanceForward())
		case levyL:
			return turtle.Turn(geometry.Deg2Rad(45))
		default:
			return turtle.Turn(geometry.Deg2Rad(-45))
		}
	})
}

// ViewRect frames the curve over its baseline from (0,0) to (0.5,0); the
// tendrils eventually curl below the baseline as iterations grow
func (l LevyC) ViewRect() (min, max geometry.Point) {
	return geometry.Point{X: -0.3, Y: -0.35}, geometry.Point{X: 0.8, Y: 0.5}
}
