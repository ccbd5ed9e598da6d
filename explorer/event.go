// Package explorer drives the interactive fractal views: an event-driven
// controller for the escape-time fractals, and animated scenes for the
// turtle curves and chaos games.
package explorer

import "github.com/lixenwraith/fractal-explorer/compute"

// Event is an input or lifecycle event delivered to a Controller. All
// coordinates are canvas pixels.
type Event interface {
	isEvent()
}

// PointerDown starts a selection drag
type PointerDown struct {
	X, Y int
}

// PointerMove extends the selection drag while the button is held
type PointerMove struct {
	X, Y int
}

// PointerUp finishes the drag; the dragged rectangle becomes the new view
type PointerUp struct {
	X, Y int
}

// PanKey shifts the view by a pixel delta
type PanKey struct {
	Dx, Dy int
}

// ZoomKey zooms around the view center
type ZoomKey struct {
	In bool
}

// ResetKey restores the fractal's home view
type ResetKey struct{}

// Resize reports a new canvas size in pixels
type Resize struct {
	Width, Height int
}

// Quit asks the host loop to exit. The controller ignores it.
type Quit struct{}

// passDone is the internal completion event for an async compute pass
type passDone struct {
	result *compute.Result
	err    error
}

func (PointerDown) isEvent() {}
func (PointerMove) isEvent() {}
func (PointerUp) isEvent()   {}
func (PanKey) isEvent()      {}
func (ZoomKey) isEvent()     {}
func (ResetKey) isEvent()    {}
func (Resize) isEvent()      {}
func (Quit) isEvent()        {}
func (passDone) isEvent()    {}
