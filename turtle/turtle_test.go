package turtle

import (
	"math"
	"testing"

	"github.com/lixenwraith/fractal-explorer/geometry"
)

const tolerance = 1e-9

func pointEq(a, b geometry.Point) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

func TestRecorderDrawsSquare(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 4; i++ {
		r.Forward(1)
		r.Turn(math.Pi / 2)
	}

	segments := r.Segments()
	if len(segments) != 4 {
		t.Fatalf("len(segments) = %d, want 4", len(segments))
	}
	if !pointEq(segments[0].A, geometry.Point{X: 0, Y: 0}) || !pointEq(segments[0].B, geometry.Point{X: 1, Y: 0}) {
		t.Errorf("first segment = %+v", segments[0])
	}
	// The square closes back at the origin
	if !pointEq(segments[3].B, geometry.Point{X: 0, Y: 0}) {
		t.Errorf("square does not close: last point %+v", segments[3].B)
	}
}

func TestRecorderPenUp(t *testing.T) {
	r := NewRecorder()
	r.Forward(1)
	r.PenUp()
	r.Forward(1)
	r.PenDown()
	r.Forward(1)

	segments := r.Segments()
	if len(segments) != 2 {
		t.Fatalf("len(segments) = %d, want 2 (middle move not drawn)", len(segments))
	}
	if !pointEq(segments[1].A, geometry.Point{X: 2, Y: 0}) {
		t.Errorf("second segment starts at %+v, want (2,0)", segments[1].A)
	}
}

func TestRecorderSetPos(t *testing.T) {
	r := NewRecorder()
	r.SetPos(geometry.Point{X: 5, Y: 5})
	if len(r.Segments()) != 0 {
		t.Error("SetPos drew a segment")
	}
	r.Forward(1)
	if !pointEq(r.Segments()[0].A, geometry.Point{X: 5, Y: 5}) {
		t.Errorf("segment starts at %+v, want (5,5)", r.Segments()[0].A)
	}
}

func TestPerform(t *testing.T) {
	r := NewRecorder()
	steps := []Step{
		SetPos(geometry.Point{X: 1, Y: 0}),
		SetAngle(math.Pi / 2),
		Forward(2),
		PenUp(),
		Turn(-math.Pi / 2),
		Forward(1),
		PenDown(),
		Forward(1),
	}
	for _, s := range steps {
		Perform(r, s)
	}

	segments := r.Segments()
	if len(segments) != 2 {
		t.Fatalf("len(segments) = %d, want 2", len(segments))
	}
	if !pointEq(segments[0].B, geometry.Point{X: 1, Y: 2}) {
		t.Errorf("first segment ends at %+v, want (1,2)", segments[0].B)
	}
	if !pointEq(segments[1].A, geometry.Point{X: 2, Y: 2}) || !pointEq(segments[1].B, geometry.Point{X: 3, Y: 2}) {
		t.Errorf("second segment = %+v", segments[1])
	}
}
