// Package curves implements the turtle-drawn fractal curves: the dragon
// curve and a set of Lindenmayer-system curves (Koch, Lévy C, terdragon,
// and the two Cesàro variants).
//
// Every curve draws in a unit-ish coordinate space of its own choosing and
// reports the cartesian rectangle that comfortably frames it, so the scene
// layer can map it onto whatever pixel grid is available.
package curves

import (
	"github.com/lixenwraith/fractal-explorer/geometry"
	"github.com/lixenwraith/fractal-explorer/turtle"
)

// Curve is a turtle program with enough metadata to animate and frame it
type Curve interface {
	turtle.Program

	// SegmentCount returns how many line segments the program draws, so the
	// animation can pace itself
	SegmentCount() uint64

	// ViewRect returns the cartesian rectangle that frames the drawing
	ViewRect() (min, max geometry.Point)
}
