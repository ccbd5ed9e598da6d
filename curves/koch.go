package curves

import (
	"math"

	"github.com/lixenwraith/fractal-explorer/geometry"
	"github.com/lixenwraith/fractal-explorer/turtle"
)

// kochSymbol is the Koch snowflake alphabet
type kochSymbol uint8

const (
	kochF kochSymbol = iota // move forward
	kochL                   // turn left 60 degrees
	kochR                   // turn right 60 degrees
)

// Koch is the Koch snowflake: a triangle whose sides sprout triangular bumps
// every generation
type Koch struct {
	iterations uint64
}

// NewKoch creates a Koch snowflake curve
func NewKoch(iterations uint64) Koch {
	return Koch{iterations: iterations}
}

// Initial is the axiom: a triangle (F LL F LL F)
func (k Koch) Initial() []kochSymbol {
	return []kochSymbol{kochF, kochL, kochL, kochF, kochL, kochL, kochF}
}

// Rewrite grows a bump on every forward move: F -> F R F LL F R F
func (k Koch) Rewrite(sym kochSymbol) []kochSymbol {
	if sym == kochF {
		return []kochSymbol{kochF, kochR, kochF, kochL, kochL, kochF, kochR, kochF}
	}
	return []kochSymbol{sym}
}

// SegmentCount returns 3 * 4^iterations forward moves
func (k Koch) SegmentCount() uint64 {
	count := uint64(3)
	for i := uint64(0); i < k.iterations; i++ {
		count *= 4
	}
	return count
}

// distanceForward shrinks each side by a third per generation; the factor of
// two keeps the whole snowflake at a drawable scale
func (k Koch) distanceForward() float64 {
	return 1.0 / 2.0 / math.Pow(3, float64(k.iterations))
}

// Init starts at the origin facing the positive X axis
func (k Koch) Init(t turtle.Turtle) {
	t.SetPos(geometry.Point{X: 0, Y: 0})
	t.SetAngle(0)
	t.PenDown()
}

// Steps expands the Lindenmayer system and interprets the symbols
func (k Koch) Steps() []turtle.Step {
	return turtle.ExpandSteps[kochSymbol](k, k.iterations, func(sym kochSymbol) turtle.Step {
		switch sym {
		case kochF:
			return turtle.Forward(k.distanceForward())
		case kochL:
			return turtle.Turn(geometry.Deg2Rad(60))
		default:
			return turtle.Turn(geometry.Deg2Rad(-60))
		}
	})
}

// ViewRect frames the snowflake around its base side from (0,0) to (0.5,0)
func (k Koch) ViewRect() (min, max geometry.Point) {
	return geometry.Point{X: -0.2, Y: -0.25}, geometry.Point{X: 0.7, Y: 0.65}
}
