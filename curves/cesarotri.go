package curves

import (
	"math"

	"github.com/lixenwraith/fractal-explorer/geometry"
	"github.com/lixenwraith/fractal-explorer/turtle"
)

// cesaroTriSymbol is the triangle Cesàro fractal alphabet
type cesaroTriSymbol uint8

const (
	cesaroTriF1 cesaroTriSymbol = iota // hypotenuse
	cesaroTriF2                        // side 2
	cesaroTriF3                        // side 3
	cesaroTriQ1                        // corner 1
	cesaroTriQ2                        // corner 2
	cesaroTriQ3                        // corner 3
	cesaroTriL                         // turn left by the base angle
	cesaroTriR                         // turn right by the base angle
)

// cesaroTriBaseAngle is the bump angle in degrees. The hypotenuse and
// side lengths are derived from it so the triangle closes.
const cesaroTriBaseAngle = 85.0

// CesaroTri is the triangle Cesàro fractal, an isoceles triangle whose
// sides grow bumps toward the interior
type CesaroTri struct {
	iterations uint64
}

// NewCesaroTri creates a triangle Cesàro fractal
func NewCesaroTri(iterations uint64) CesaroTri {
	return CesaroTri{iterations: iterations}
}

// Initial is the three sides of the triangle with a corner turn after each
func (c CesaroTri) Initial() []cesaroTriSymbol {
	return []cesaroTriSymbol{
		cesaroTriF1, cesaroTriQ1,
		cesaroTriF2, cesaroTriQ2,
		cesaroTriF3, cesaroTriQ3,
	}
}

// Rewrite splits each side around a bump: Fn -> Fn L Fn RR Fn L Fn
func (c CesaroTri) Rewrite(sym cesaroTriSymbol) []cesaroTriSymbol {
	switch sym {
	case cesaroTriF1, cesaroTriF2, cesaroTriF3:
		return []cesaroTriSymbol{sym, cesaroTriL, sym, cesaroTriR, cesaroTriR, sym, cesaroTriL, sym}
	default:
		return []cesaroTriSymbol{sym}
	}
}

// SegmentCount returns 3*4^iterations forward moves
func (c CesaroTri) SegmentCount() uint64 {
	return 3 << (2 * c.iterations)
}

// hypotenuseUnit is the length of one line segment on the hypotenuse.
// Each iteration divides the side by 2*(1 + sin(pi - 2*baseAngle)).
func (c CesaroTri) hypotenuseUnit() float64 {
	baseAngleRads := geometry.Deg2Rad(cesaroTriBaseAngle)
	shrink := 2 * (1 + math.Sin(math.Pi-2*baseAngleRads))
	return 1 / math.Pow(shrink, float64(c.iterations))
}

// sideUnit is the length of one line segment on the two short sides.
// cos(a/2) = (hyp/2)/side, so side = hyp/2/cos(a/2).
func (c CesaroTri) sideUnit() float64 {
	baseAngleRads := geometry.Deg2Rad(cesaroTriBaseAngle)
	return c.hypotenuseUnit() / 2 / math.Cos(baseAngleRads/2)
}

// Init starts at the origin facing along the hypotenuse
func (c CesaroTri) Init(t turtle.Turtle) {
	t.SetPos(geometry.Point{X: 0, Y: 0})
	t.SetAngle(0)
	t.PenDown()
}

// Steps expands the Lindenmayer system and interprets the symbols
func (c CesaroTri) Steps() []turtle.Step {
	sideAngle := cesaroTriBaseAngle / 2
	topAngle := 180 - 2*sideAngle
	return turtle.ExpandSteps[cesaroTriSymbol](c, c.iterations, func(sym cesaroTriSymbol) turtle.Step {
		switch sym {
		case cesaroTriF1:
			return turtle.Forward(c.hypotenuseUnit())
		case cesaroTriF2, cesaroTriF3:
			return turtle.Forward(c.sideUnit())
		case cesaroTriQ1, cesaroTriQ3:
			return turtle.Turn(geometry.Deg2Rad(180 - sideAngle))
		case cesaroTriQ2:
			return turtle.Turn(geometry.Deg2Rad(180 - topAngle))
		case cesaroTriL:
			return turtle.Turn(geometry.Deg2Rad(cesaroTriBaseAngle))
		default:
			return turtle.Turn(geometry.Deg2Rad(-cesaroTriBaseAngle))
		}
	})
}

// ViewRect frames the triangle over its hypotenuse from (0,0) to (1,0)
func (c CesaroTri) ViewRect() (min, max geometry.Point) {
	return geometry.Point{X: -0.1, Y: -0.15}, geometry.Point{X: 1.1, Y: 0.6}
}
