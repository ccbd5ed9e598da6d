// Package turtle provides the line-drawing abstraction used by the curve
// fractals: a turtle has a position and a heading, moves forward, turns, and
// raises or lowers its pen. Programs are sequences of steps interpreted
// against a Turtle implementation.
package turtle

import "github.com/lixenwraith/fractal-explorer/geometry"

// StepKind discriminates turtle program steps
type StepKind uint8

const (
	StepForward StepKind = iota // move forward Distance units
	StepSetPos                  // teleport to Pos without drawing
	StepSetAngle                // set heading to Angle radians
	StepTurn                    // rotate by Angle radians, positive = counter-clockwise
	StepPenDown                 // touch the pen to the surface
	StepPenUp                   // lift the pen
)

// Step is a single instruction of a turtle program. Only the field relevant
// to Kind is meaningful.
type Step struct {
	Kind     StepKind
	Distance float64
	Pos      geometry.Point
	Angle    float64
}

// Forward builds a forward step
func Forward(distance float64) Step { return Step{Kind: StepForward, Distance: distance} }

// SetPos builds a reposition step
func SetPos(p geometry.Point) Step { return Step{Kind: StepSetPos, Pos: p} }

// SetAngle builds a heading step; 0 faces the positive X axis
func SetAngle(rad float64) Step { return Step{Kind: StepSetAngle, Angle: rad} }

// Turn builds a rotation step; positive turns counter-clockwise
func Turn(rad float64) Step { return Step{Kind: StepTurn, Angle: rad} }

// PenDown builds a pen-down step
func PenDown() Step { return Step{Kind: StepPenDown} }

// PenUp builds a pen-up step
func PenUp() Step { return Step{Kind: StepPenUp} }

// Turtle executes steps against some drawing surface
type Turtle interface {
	Forward(distance float64)
	SetPos(p geometry.Point)
	SetAngle(rad float64)
	Turn(rad float64)
	PenDown()
	PenUp()
}

// Perform applies one step to a turtle
func Perform(t Turtle, s Step) {
	switch s.Kind {
	case StepForward:
		t.Forward(s.Distance)
	case StepSetPos:
		t.SetPos(s.Pos)
	case StepSetAngle:
		t.SetAngle(s.Angle)
	case StepTurn:
		t.Turn(s.Angle)
	case StepPenDown:
		t.PenDown()
	case StepPenUp:
		t.PenUp()
	}
}

// Program describes how to draw one fractal curve: an initializer that
// positions the turtle, and the step sequence of the drawing itself.
// Step counts grow geometrically with curve iterations, so callers animate
// by consuming the slice a few steps per frame.
type Program interface {
	// Init positions the turtle before drawing begins
	Init(t Turtle)
	// Steps returns the full drawing program
	Steps() []Step
}

// State is the bookkeeping core of a turtle: position, heading, pen flag.
// A new turtle starts at the origin facing the positive X axis with the pen
// down.
type State struct {
	Pos     geometry.Point
	Angle   float64
	PenDown bool
}

// NewState returns the starting turtle state
func NewState() State {
	return State{PenDown: true}
}

// Segment is one drawn line
type Segment struct {
	A, B geometry.Point
}

// Recorder is a Turtle that records the segments a program draws, for
// replay onto a canvas
type Recorder struct {
	state    State
	segments []Segment
}

// NewRecorder creates a recorder with a fresh turtle state
func NewRecorder() *Recorder {
	return &Recorder{state: NewState()}
}

// Forward advances the turtle, recording a segment if the pen is down
func (r *Recorder) Forward(distance float64) {
	next := r.state.Pos.PointAt(geometry.Vector{Direction: r.state.Angle, Magnitude: distance})
	if r.state.PenDown {
		r.segments = append(r.segments, Segment{A: r.state.Pos, B: next})
	}
	r.state.Pos = next
}

// SetPos teleports the turtle without drawing
func (r *Recorder) SetPos(p geometry.Point) { r.state.Pos = p }

// SetAngle sets the heading
func (r *Recorder) SetAngle(rad float64) { r.state.Angle = rad }

// Turn rotates the heading
func (r *Recorder) Turn(rad float64) { r.state.Angle += rad }

// PenDown touches the pen to the surface
func (r *Recorder) PenDown() { r.state.PenDown = true }

// PenUp lifts the pen
func (r *Recorder) PenUp() { r.state.PenDown = false }

// Segments returns the lines drawn so far
func (r *Recorder) Segments() []Segment { return r.segments }

// Run interprets a whole program and returns the segments it draws
func Run(p Program) []Segment {
	r := NewRecorder()
	p.Init(r)
	for _, s := range p.Steps() {
		Perform(r, s)
	}
	return r.Segments()
}
