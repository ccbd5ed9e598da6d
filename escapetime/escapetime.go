// Package escapetime implements the escape-time fractal families: the
// generalized Mandelbrot (multibrot) set, the Burning Ship, and the two
// single-component Burning Ship variations.
//
// Every family iterates z = transform(z)^power + c from z = 0 and classifies
// the starting point c by whether the iterate's magnitude crosses the escape
// radius before the iteration cutoff. The families differ only in transform:
// identity for Mandelbrot, component-wise absolute value for the Burning Ship,
// and absolute value of a single component for the two variations.
package escapetime

import (
	"fmt"
	"math"

	"github.com/lixenwraith/fractal-explorer/parameter"
)

// Family discriminates the supported escape-time fractal families
type Family uint8

const (
	Mandelbrot Family = iota
	BurningShip
	BurningMandel
	RoadRunner
)

// String returns the display name of the family
func (f Family) String() string {
	switch f {
	case Mandelbrot:
		return "Mandelbrot"
	case BurningShip:
		return "Burning Ship"
	case BurningMandel:
		return "Burning Mandel"
	case RoadRunner:
		return "Roadrunner"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// transform returns the family-specific pre-power adjustment of z.
//
// The Burning Ship flips both components to their absolute value (the
// imaginary one negated, which mirrors the ship right side up). Burning
// Mandel and Roadrunner each flip only one component.
func (f Family) transform(z complex128) complex128 {
	switch f {
	case Mandelbrot:
		return z
	case BurningShip:
		return complex(math.Abs(real(z)), -math.Abs(imag(z)))
	case BurningMandel:
		return complex(math.Abs(real(z)), -imag(z))
	case RoadRunner:
		return complex(real(z), -math.Abs(imag(z)))
	default:
		return z
	}
}

// DefaultPlane returns the plane rectangle each family opens with, as
// (min, max) corners of the visible region of the complex plane.
func (f Family) DefaultPlane() (min, max complex128) {
	switch f {
	case BurningShip:
		return complex(-2.5, -1.0), complex(1.5, 2.0)
	case BurningMandel:
		return complex(-2.5, -1.0), complex(1.5, 1.0)
	case RoadRunner:
		return complex(-2.5, -1.5), complex(1.5, 1.5)
	default:
		return complex(-2.0, -1.1), complex(0.8, 1.1)
	}
}

// IterationResult classifies a single point of the complex plane
type IterationResult struct {
	// Iterations is the zero-based iteration at which the point escaped, or
	// the iteration cutoff if it never did
	Iterations uint32
	// Escaped reports whether the iterate's magnitude crossed the escape
	// radius before the cutoff
	Escaped bool
}

// Func is a configured escape-time function: a family, an exponent, and an
// iteration cutoff. It holds no mutable state, so a single Func may be
// evaluated from any number of goroutines concurrently.
type Func struct {
	family  Family
	power   uint32
	maxIter uint32
}

// New validates the parameters and builds an escape-time function.
// A power of zero and a cutoff of zero are both rejected: neither has a
// meaningful fractal, and silently defaulting would mask caller bugs.
func New(family Family, power, maxIterations uint32) (*Func, error) {
	if power < 1 {
		return nil, fmt.Errorf("escapetime: power must be a positive integer, got %d", power)
	}
	if maxIterations < 1 {
		return nil, fmt.Errorf("escapetime: max iterations must be at least 1, got %d", maxIterations)
	}
	return &Func{family: family, power: power, maxIter: maxIterations}, nil
}

// Family returns the configured fractal family
func (f *Func) Family() Family { return f.family }

// Power returns the configured exponent
func (f *Func) Power() uint32 { return f.power }

// MaxIterations returns the configured iteration cutoff
func (f *Func) MaxIterations() uint32 { return f.maxIter }

// Classify iterates the family's update rule on c and reports when (and
// whether) the orbit escapes. Escape is checked against |z|^2 so no square
// root is taken in the hot loop; escaping orbits exit on the iteration that
// crosses the radius, far sooner than the cutoff for most of the plane.
func (f *Func) Classify(c complex128) IterationResult {
	z := complex(0, 0)
	for i := uint32(0); i < f.maxIter; i++ {
		z = Cpow(f.family.transform(z), f.power) + c
		if real(z)*real(z)+imag(z)*imag(z) > parameter.EscapeRadiusSq {
			return IterationResult{Iterations: i, Escaped: true}
		}
	}
	return IterationResult{Iterations: f.maxIter, Escaped: false}
}

// Cpow raises a complex number to a non-negative integer exponent by repeated
// multiplication. The generic exp/log path (cmplx.Pow) introduces branch-cut
// artifacts along the very boundary curves these fractals live on, so integer
// powers are multiplied out directly.
func Cpow(c complex128, exponent uint32) complex128 {
	switch exponent {
	case 0:
		return complex(1, 0)
	case 1:
		return c
	case 2:
		return c * c
	default:
		accum := c
		for i := uint32(1); i < exponent; i++ {
			accum *= c
		}
		return accum
	}
}
