package render

import (
	"github.com/lixenwraith/fractal-explorer/compute"
	"github.com/lixenwraith/fractal-explorer/parameter"
)

// Emitter colors finished escape-time passes onto a canvas. Escaped points
// shade from black to white with iteration count, capped so deep zooms keep
// contrast; points that never escape get the set's interior color.
type Emitter struct {
	ramp Ramp
}

// NewEmitter builds the color ramp for a given iteration limit
func NewEmitter(maxIterations uint32) *Emitter {
	steps := uint(maxIterations)
	if steps > parameter.ColorRampSteps {
		steps = parameter.ColorRampSteps
	}
	return &Emitter{ramp: LinearRamp(Black, White, steps)}
}

// Draw paints the whole result. The canvas must match the result's
// dimensions; mismatched pixels are clipped.
func (e *Emitter) Draw(c *Canvas, res *compute.Result) {
	for y := 0; y < res.Height(); y++ {
		for x := 0; x < res.Width(); x++ {
			cell := res.At(x, y)
			if !cell.Escaped {
				c.SetPixel(x, y, Aeblue)
				continue
			}
			idx := int(cell.Iterations)
			if idx >= len(e.ramp) {
				idx = len(e.ramp) - 1
			}
			c.SetPixel(x, y, e.ramp[idx])
		}
	}
}
