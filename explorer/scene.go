package explorer

import (
	"github.com/lixenwraith/fractal-explorer/geometry"
	"github.com/lixenwraith/fractal-explorer/render"
	"github.com/lixenwraith/fractal-explorer/viewport"
)

// Scene animates a fractal that accumulates over time instead of computing
// whole frames: turtle curves draw a batch of segments per tick, chaos games
// plot a batch of points.
type Scene interface {
	// Step draws the next animation batch onto the canvas
	Step(c *render.Canvas)

	// Resize remaps the drawing to the canvas dimensions and redraws what
	// has accumulated so far
	Resize(c *render.Canvas)
}

// sceneViewport maps a cartesian view rectangle onto a canvas. The viewport
// already puts larger Y values toward the top of the pixel grid, which is
// what the cartesian curves and games expect.
func sceneViewport(c *render.Canvas, min, max geometry.Point) *viewport.Viewport {
	return viewport.New(c.Width(), c.Height(), complex(min.X, min.Y), complex(max.X, max.Y))
}
