package geometry

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestDistanceTo(t *testing.T) {
	cases := []struct {
		a, b Point
		want float64
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 0}, Point{0, 1}, 1},
		{Point{0, 0}, Point{1, 0}, 1},
		{Point{0, 0}, Point{1, 1}, math.Sqrt2},
		{Point{1, 1}, Point{2, 2}, math.Sqrt2},
		{Point{1, 1}, Point{4, 5}, 5},
		{Point{4, 5}, Point{1, 1}, 5},
	}
	for _, c := range cases {
		if got := c.a.DistanceTo(c.b); !approxEq(got, c.want) {
			t.Errorf("DistanceTo(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestVectorComponents(t *testing.T) {
	cases := []struct {
		v      Vector
		dx, dy float64
	}{
		{Vector{0, 1}, 1, 0},
		{Vector{math.Pi / 2, 1}, 0, 1},
		{Vector{math.Pi, 1}, -1, 0},
		{Vector{math.Pi / 4, 5}, math.Cos(math.Pi/4) * 5, math.Sin(math.Pi/4) * 5},
		{Vector{3 * math.Pi / 2, 5}, 0, -5},
	}
	for _, c := range cases {
		if got := c.v.DeltaX(); !approxEq(got, c.dx) {
			t.Errorf("Vector%+v.DeltaX() = %v, want %v", c.v, got, c.dx)
		}
		if got := c.v.DeltaY(); !approxEq(got, c.dy) {
			t.Errorf("Vector%+v.DeltaY() = %v, want %v", c.v, got, c.dy)
		}
	}
}

func TestPointAt(t *testing.T) {
	got := Point{1, 0}.PointAt(Vector{Direction: math.Pi / 2, Magnitude: 1})
	if !approxEq(got.X, 1) || !approxEq(got.Y, 1) {
		t.Errorf("PointAt = %v, want (1, 1)", got)
	}
}

func TestDeg2Rad(t *testing.T) {
	cases := []struct{ deg, rad float64 }{
		{0, 0},
		{60, math.Pi / 3},
		{90, math.Pi / 2},
		{120, 2 * math.Pi / 3},
		{180, math.Pi},
		{360, 2 * math.Pi},
	}
	for _, c := range cases {
		if got := Deg2Rad(c.deg); !approxEq(got, c.rad) {
			t.Errorf("Deg2Rad(%v) = %v, want %v", c.deg, got, c.rad)
		}
	}
}

func TestAffineTransform(t *testing.T) {
	p := Point{1.45, 6.78}

	identity := Affine{{1, 0, 0}, {0, 1, 0}}
	if got := identity.Transform(p); !approxEq(got.X, p.X) || !approxEq(got.Y, p.Y) {
		t.Errorf("identity.Transform(%v) = %v", p, got)
	}

	moveRight := Affine{{1, 0, 1}, {0, 1, 0}}
	if got := moveRight.Transform(p); !approxEq(got.X, 2.45) || !approxEq(got.Y, 6.78) {
		t.Errorf("moveRight.Transform(%v) = %v", p, got)
	}

	mirrorX := Affine{{-1, 0, 0}, {0, 1, 0}}
	if got := mirrorX.Transform(p); !approxEq(got.X, -1.45) || !approxEq(got.Y, 6.78) {
		t.Errorf("mirrorX.Transform(%v) = %v", p, got)
	}

	shrinkAndMove := Affine{{0.5, 0, 1.2}, {0, 0.5, -5}}
	got := shrinkAndMove.Transform(Point{5, 4.9})
	if !approxEq(got.X, 0.5*5+1.2) || !approxEq(got.Y, 4.9*0.5-5) {
		t.Errorf("shrinkAndMove.Transform = %v", got)
	}
}
