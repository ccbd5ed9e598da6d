package curves

import (
	"math"

	"github.com/lixenwraith/fractal-explorer/geometry"
	"github.com/lixenwraith/fractal-explorer/turtle"
)

// Turn is the direction the dragon curve folds after a segment
type Turn uint8

const (
	TurnLeft Turn = iota
	TurnRight
)

// Dragon is the dragon curve of a given folding iteration. Unlike the other
// curves it is generated directly from the fold-parity rule rather than a
// Lindenmayer system.
type Dragon struct {
	iterations uint64
}

// NewDragon creates a dragon curve; iterations is the number of times the
// curve is folded in half
func NewDragon(iterations uint64) Dragon {
	return Dragon{iterations: iterations}
}

// SegmentCount returns the number of line segments: 2^iterations
func (d Dragon) SegmentCount() uint64 {
	return uint64(1) << d.iterations
}

// linesBetweenEndpoints is how many segment lengths separate the curve's
// start and end points: sqrt(2)^iterations. Dividing the unit span by it
// keeps the curve ending at (1, 0) regardless of iteration.
func (d Dragon) linesBetweenEndpoints() float64 {
	if d.iterations == 0 {
		return 1
	}
	return math.Pow(math.Sqrt2, float64(d.iterations))
}

// TurnAfterSegment returns which way the curve folds after drawing the given
// 1-based segment: strip the trailing zero bits and check the next bit.
func TurnAfterSegment(segment uint64) Turn {
	for segment != 0 && segment%2 == 0 {
		segment /= 2
	}
	if segment%4 == 1 {
		return TurnLeft
	}
	return TurnRight
}

// Init starts the turtle at the origin, angled so the curve ends at (1, 0)
func (d Dragon) Init(t turtle.Turtle) {
	t.SetPos(geometry.Point{X: 0, Y: 0})
	t.SetAngle(math.Pi / 4 * -float64(d.iterations))
	t.PenDown()
}

// Steps emits forward/turn pairs for every segment of the curve
func (d Dragon) Steps() []turtle.Step {
	count := d.SegmentCount()
	dist := 1 / d.linesBetweenEndpoints()

	steps := make([]turtle.Step, 0, 2*count)
	for seg := uint64(1); seg <= count; seg++ {
		steps = append(steps, turtle.Forward(dist))
		if TurnAfterSegment(seg) == TurnLeft {
			steps = append(steps, turtle.Turn(math.Pi/2))
		} else {
			steps = append(steps, turtle.Turn(-math.Pi/2))
		}
	}
	return steps
}

// ViewRect frames the curve between its (0,0) start and (1,0) end with room
// for the folds that swing wide of the baseline
func (d Dragon) ViewRect() (min, max geometry.Point) {
	return geometry.Point{X: -0.45, Y: -0.6}, geometry.Point{X: 1.35, Y: 0.75}
}
