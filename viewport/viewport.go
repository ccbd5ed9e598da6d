// Package viewport maintains the bidirectional mapping between a pixel
// rectangle and an axis-aligned rectangle of the complex plane.
//
// Each axis maps independently and linearly: the plane rectangle is never
// letterboxed to match the pixel aspect ratio, so zooming to an arbitrary
// selection shows exactly the selected region. Orientation convention: pixel
// y grows downward while the imaginary axis grows upward, so pixel row 0 maps
// to the top of the plane rectangle (max imaginary part). Both directions of
// the mapping use this convention.
package viewport

import "image"

// Viewport binds a pixel grid to a region of the complex plane
type Viewport struct {
	pixelWidth  int
	pixelHeight int

	planeMin complex128
	planeMax complex128

	defaultMin complex128
	defaultMax complex128
}

// New creates a viewport over the given pixel dimensions showing the plane
// rectangle (min, max), which is also recorded as the reset default.
// The plane rectangle and pixel dimensions must be non-degenerate.
func New(pixelWidth, pixelHeight int, min, max complex128) *Viewport {
	if pixelWidth < 1 || pixelHeight < 1 {
		panic("viewport: pixel dimensions must be positive")
	}
	if real(max) <= real(min) || imag(max) <= imag(min) {
		panic("viewport: degenerate plane rectangle")
	}
	return &Viewport{
		pixelWidth:  pixelWidth,
		pixelHeight: pixelHeight,
		planeMin:    min,
		planeMax:    max,
		defaultMin:  min,
		defaultMax:  max,
	}
}

// PixelWidth returns the width of the pixel grid
func (v *Viewport) PixelWidth() int { return v.pixelWidth }

// PixelHeight returns the height of the pixel grid
func (v *Viewport) PixelHeight() int { return v.pixelHeight }

// PlaneMin returns the bottom-left corner of the visible plane rectangle
func (v *Viewport) PlaneMin() complex128 { return v.planeMin }

// PlaneMax returns the top-right corner of the visible plane rectangle
func (v *Viewport) PlaneMax() complex128 { return v.planeMax }

func (v *Viewport) planeWidth() float64  { return real(v.planeMax) - real(v.planeMin) }
func (v *Viewport) planeHeight() float64 { return imag(v.planeMax) - imag(v.planeMin) }

// PixelToPlane maps a pixel coordinate to its complex plane point.
// Row 0 maps to the maximum imaginary part (top of the view).
func (v *Viewport) PixelToPlane(px, py float64) complex128 {
	re := real(v.planeMin) + px/float64(v.pixelWidth)*v.planeWidth()
	im := imag(v.planeMax) - py/float64(v.pixelHeight)*v.planeHeight()
	return complex(re, im)
}

// PlaneToPixel is the exact inverse of PixelToPlane
func (v *Viewport) PlaneToPixel(c complex128) (px, py float64) {
	px = (real(c) - real(v.planeMin)) / v.planeWidth() * float64(v.pixelWidth)
	py = (imag(v.planeMax) - imag(c)) / v.planeHeight() * float64(v.pixelHeight)
	return px, py
}

// ZoomTo replaces the visible plane rectangle with the region covered by the
// pixel selection. Degenerate selections (zero width or height) are rejected
// as a no-op; releasing the mouse without dragging is not a zoom. Reports
// whether the view changed.
func (v *Viewport) ZoomTo(selection image.Rectangle) bool {
	sel := selection.Canon()
	if sel.Dx() == 0 || sel.Dy() == 0 {
		return false
	}

	// Top-left pixel corner has the max imaginary part, bottom-right the min
	tl := v.PixelToPlane(float64(sel.Min.X), float64(sel.Min.Y))
	br := v.PixelToPlane(float64(sel.Max.X), float64(sel.Max.Y))

	v.planeMin = complex(real(tl), imag(br))
	v.planeMax = complex(real(br), imag(tl))
	return true
}

// Pan translates the plane rectangle by a pixel delta converted through the
// current per-axis scale. Positive dx moves the view right; positive dy moves
// it down (towards smaller imaginary parts). Zoom level is unchanged.
func (v *Viewport) Pan(dx, dy int) {
	dre := float64(dx) * v.planeWidth() / float64(v.pixelWidth)
	dim := -float64(dy) * v.planeHeight() / float64(v.pixelHeight)
	delta := complex(dre, dim)
	v.planeMin += delta
	v.planeMax += delta
}

// Zoom scales the plane rectangle about its center by the given factor;
// factors above 1 zoom out, below 1 zoom in. Non-positive factors are
// rejected as a no-op.
func (v *Viewport) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	center := (v.planeMin + v.planeMax) / 2
	half := complex(v.planeWidth()/2*factor, v.planeHeight()/2*factor)
	v.planeMin = center - half
	v.planeMax = center + half
}

// Reset restores the plane rectangle recorded at construction, regardless of
// any zooming or panning since
func (v *Viewport) Reset() {
	v.planeMin = v.defaultMin
	v.planeMax = v.defaultMax
}

// Resize updates the pixel dimensions only. The plane rectangle is retained,
// so the visible region survives window resizes; only the pixels-per-plane-
// unit scale changes. Zero or negative dimensions would leave the transform
// undefined and are rejected as a no-op. Reports whether the size changed.
func (v *Viewport) Resize(pixelWidth, pixelHeight int) bool {
	if pixelWidth < 1 || pixelHeight < 1 {
		return false
	}
	if pixelWidth == v.pixelWidth && pixelHeight == v.pixelHeight {
		return false
	}
	v.pixelWidth = pixelWidth
	v.pixelHeight = pixelHeight
	return true
}
