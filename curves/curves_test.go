package curves

import (
	"math"
	"testing"

	"github.com/lixenwraith/fractal-explorer/geometry"
	"github.com/lixenwraith/fractal-explorer/turtle"
)

const epsilon = 1e-9

func TestDragonSegmentCount(t *testing.T) {
	counts := []uint64{1, 2, 4, 8, 16}
	for n, want := range counts {
		if got := NewDragon(uint64(n)).SegmentCount(); got != want {
			t.Errorf("iterations %d: segment count %d, want %d", n, got, want)
		}
	}
}

func TestDragonTurnAfterSegment(t *testing.T) {
	want := []Turn{
		TurnLeft, TurnLeft, TurnRight, TurnLeft, TurnLeft,
		TurnRight, TurnRight, TurnLeft, TurnLeft, TurnLeft,
		TurnRight, TurnRight, TurnLeft, TurnRight, TurnRight,
	}
	for i, w := range want {
		seg := uint64(i + 1)
		if got := TurnAfterSegment(seg); got != w {
			t.Errorf("segment %d: turn %v, want %v", seg, got, w)
		}
	}
}

func TestDragonLinesBetweenEndpoints(t *testing.T) {
	want := []float64{1, math.Sqrt2, 2, 2 * math.Sqrt2, 4}
	for n, w := range want {
		got := NewDragon(uint64(n)).linesBetweenEndpoints()
		if math.Abs(got-w) > 1e-6 {
			t.Errorf("iterations %d: lines between endpoints %v, want %v", n, got, w)
		}
	}
}

func TestDragonEndsAtUnitX(t *testing.T) {
	for n := uint64(0); n <= 6; n++ {
		segs := turtle.Run(NewDragon(n))
		end := segs[len(segs)-1].B
		if math.Abs(end.X-1) > epsilon || math.Abs(end.Y) > epsilon {
			t.Errorf("iterations %d: curve ends at (%v, %v), want (1, 0)", n, end.X, end.Y)
		}
	}
}

// closedCurves should return the turtle to its starting point at any depth
func TestClosedCurvesReturnToStart(t *testing.T) {
	cases := []struct {
		name  string
		curve func(uint64) Curve
	}{
		{"koch", func(n uint64) Curve { return NewKoch(n) }},
		{"cesaro", func(n uint64) Curve { return NewCesaro(n) }},
	}
	for _, tc := range cases {
		for n := uint64(0); n <= 3; n++ {
			segs := turtle.Run(tc.curve(n))
			start := segs[0].A
			end := segs[len(segs)-1].B
			if math.Abs(end.X-start.X) > 1e-6 || math.Abs(end.Y-start.Y) > 1e-6 {
				t.Errorf("%s iterations %d: ends at (%v, %v), start was (%v, %v)",
					tc.name, n, end.X, end.Y, start.X, start.Y)
			}
		}
	}
}

func TestSegmentCountMatchesDrawnSegments(t *testing.T) {
	cases := []struct {
		name  string
		curve func(uint64) Curve
	}{
		{"dragon", func(n uint64) Curve { return NewDragon(n) }},
		{"koch", func(n uint64) Curve { return NewKoch(n) }},
		{"levyc", func(n uint64) Curve { return NewLevyC(n) }},
		{"terdragon", func(n uint64) Curve { return NewTerdragon(n) }},
		{"cesaro", func(n uint64) Curve { return NewCesaro(n) }},
		{"cesarotri", func(n uint64) Curve { return NewCesaroTri(n) }},
	}
	for _, tc := range cases {
		for n := uint64(0); n <= 4; n++ {
			c := tc.curve(n)
			segs := turtle.Run(c)
			if got, want := uint64(len(segs)), c.SegmentCount(); got != want {
				t.Errorf("%s iterations %d: drew %d segments, SegmentCount says %d",
					tc.name, n, got, want)
			}
		}
	}
}

func TestTerdragonEndsAtUnitX(t *testing.T) {
	for n := uint64(0); n <= 4; n++ {
		segs := turtle.Run(NewTerdragon(n))
		end := segs[len(segs)-1].B
		if math.Abs(end.X-1) > epsilon || math.Abs(end.Y) > epsilon {
			t.Errorf("iterations %d: curve ends at (%v, %v), want (1, 0)", n, end.X, end.Y)
		}
	}
}

func TestViewRectsAreOrdered(t *testing.T) {
	curves := []Curve{
		NewDragon(1), NewKoch(1), NewLevyC(1),
		NewTerdragon(1), NewCesaro(1), NewCesaroTri(1),
	}
	for _, c := range curves {
		min, max := c.ViewRect()
		if min.X >= max.X || min.Y >= max.Y {
			t.Errorf("%T: view rect %v..%v is not ordered", c, min, max)
		}
	}
}

func TestCurvesStayInsideViewRect(t *testing.T) {
	curves := []Curve{
		NewKoch(3), NewCesaro(3), NewCesaroTri(3),
	}
	for _, c := range curves {
		min, max := c.ViewRect()
		for _, seg := range turtle.Run(c) {
			for _, p := range []geometry.Point{seg.A, seg.B} {
				if p.X < min.X || p.X > max.X || p.Y < min.Y || p.Y > max.Y {
					t.Errorf("%T: point (%v, %v) outside view rect %v..%v",
						c, p.X, p.Y, min, max)
					break
				}
			}
		}
	}
}
