// Package geometry provides the 2-D cartesian primitives shared by the
// turtle curve and chaos game generators.
package geometry

import "math"

// Point represents a point in a 2-D cartesian coordinate system
type Point struct {
	X, Y float64
}

// DistanceTo computes the distance between two points
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointAt computes the point found at Vector from p
func (p Point) PointAt(v Vector) Point {
	return Point{
		X: p.X + v.DeltaX(),
		Y: p.Y + v.DeltaY(),
	}
}

// Vector is a direction (radians) plus a magnitude in spatial units
type Vector struct {
	Direction float64
	Magnitude float64
}

// DeltaX returns the cartesian X component of the vector
func (v Vector) DeltaX() float64 {
	return math.Cos(v.Direction) * v.Magnitude
}

// DeltaY returns the cartesian Y component of the vector
func (v Vector) DeltaY() float64 {
	return math.Sin(v.Direction) * v.Magnitude
}

// Deg2Rad converts degrees into radians
func Deg2Rad(degrees float64) float64 {
	return degrees / 360.0 * 2.0 * math.Pi
}

// Affine is a row-major 3x2 affine transform over cartesian points:
//
//	x' = a*x + b*y + e
//	y' = c*x + d*y + f
//
// stored as [[a b e] [c d f]] (the constant third row of the augmented 3x3
// matrix is omitted)
type Affine [2][3]float64

// Transform applies the affine transform to a point
func (m Affine) Transform(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}
