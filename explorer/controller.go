package explorer

import (
	"image"

	"github.com/lixenwraith/fractal-explorer/compute"
	"github.com/lixenwraith/fractal-explorer/parameter"
	"github.com/lixenwraith/fractal-explorer/viewport"
)

// State is where the controller is in its select-compute cycle
type State uint8

const (
	// Idle shows the last finished pass and waits for input
	Idle State = iota
	// Selecting tracks a pointer drag for the next zoom rectangle
	Selecting
	// Computing runs a pass on a worker pool; input is still accepted and
	// the latest view-changing intent is parked until the pass finishes
	Computing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case Computing:
		return "computing"
	default:
		return "unknown"
	}
}

// intent is a deferred viewport mutation; it reports whether it changed
// the view
type intent func(vp *viewport.Viewport) bool

// Controller owns the escape-time view state: it turns input events into
// viewport changes, runs compute passes asynchronously, and hands back
// finished frames.
//
// All methods must be called from a single goroutine. Pass completions
// arrive on Completions; feed them back through HandleEvent.
type Controller struct {
	vp        *viewport.Viewport
	point     compute.PointFunc
	maxIter   uint32
	scheduler *compute.Scheduler

	state    State
	dragging bool
	anchor   image.Point
	cursor   image.Point
	pending  intent

	result      *compute.Result
	completions chan Event
}

// NewController creates a controller over a viewport and a point function.
// Call Start to kick off the first pass.
func NewController(vp *viewport.Viewport, point compute.PointFunc, maxIterations uint32, scheduler *compute.Scheduler) *Controller {
	return &Controller{
		vp:          vp,
		point:       point,
		maxIter:     maxIterations,
		scheduler:   scheduler,
		completions: make(chan Event, 1),
	}
}

// Start launches the initial compute pass
func (c *Controller) Start() {
	c.startPass()
}

// Completions delivers pass-completion events from the compute goroutine.
// The host loop must feed them back into HandleEvent.
func (c *Controller) Completions() <-chan Event {
	return c.completions
}

// State returns the controller's current state
func (c *Controller) State() State {
	return c.state
}

// Result returns the most recent finished frame, or nil before the first
// pass completes. A failed pass keeps the previous frame.
func (c *Controller) Result() *compute.Result {
	return c.result
}

// Viewport returns the viewport the controller mutates
func (c *Controller) Viewport() *viewport.Viewport {
	return c.vp
}

// Selection returns the in-progress drag rectangle, if any
func (c *Controller) Selection() (image.Rectangle, bool) {
	if !c.dragging {
		return image.Rectangle{}, false
	}
	return image.Rectangle{Min: c.anchor, Max: c.cursor}, true
}

// HandleEvent applies one event. When the event completes a compute pass it
// returns the finished frame; a failed pass returns the error and leaves the
// previous frame in place. All other events return nil, nil.
func (c *Controller) HandleEvent(ev Event) (*compute.Result, error) {
	switch e := ev.(type) {
	case PointerDown:
		c.dragging = true
		c.anchor = image.Pt(e.X, e.Y)
		c.cursor = c.anchor
		if c.state == Idle {
			c.state = Selecting
		}

	case PointerMove:
		if c.dragging {
			c.cursor = image.Pt(e.X, e.Y)
		}

	case PointerUp:
		if !c.dragging {
			break
		}
		c.dragging = false
		sel := image.Rectangle{Min: c.anchor, Max: image.Pt(e.X, e.Y)}
		if c.state == Selecting {
			c.state = Idle
		}
		c.submit(func(vp *viewport.Viewport) bool {
			return vp.ZoomTo(sel)
		})

	case PanKey:
		c.submit(func(vp *viewport.Viewport) bool {
			vp.Pan(e.Dx, e.Dy)
			return true
		})

	case ZoomKey:
		factor := parameter.KeyZoomFactor
		if e.In {
			factor = 1 / parameter.KeyZoomFactor
		}
		c.submit(func(vp *viewport.Viewport) bool {
			vp.Zoom(factor)
			return true
		})

	case ResetKey:
		c.submit(func(vp *viewport.Viewport) bool {
			vp.Reset()
			return true
		})

	case Resize:
		c.submit(func(vp *viewport.Viewport) bool {
			return vp.Resize(e.Width, e.Height)
		})

	case passDone:
		c.state = Idle
		if pending := c.pending; pending != nil {
			c.pending = nil
			if pending(c.vp) {
				c.startPass()
			}
		}
		if e.err != nil {
			return nil, e.err
		}
		c.result = e.result
		return e.result, nil
	}
	return nil, nil
}

// submit applies a view-changing intent, or parks it while a pass is
// running. Only the newest parked intent survives.
func (c *Controller) submit(in intent) {
	if c.state == Computing {
		c.pending = in
		return
	}
	if in(c.vp) {
		c.startPass()
	}
}

// startPass launches an async compute pass over the current viewport. The
// viewport is not mutated while the pass runs because every view-changing
// intent is parked until completion.
func (c *Controller) startPass() {
	c.state = Computing
	vp, point, maxIter := c.vp, c.point, c.maxIter
	go func() {
		res, err := c.scheduler.Compute(vp, point, maxIter)
		c.completions <- passDone{result: res, err: err}
	}()
}
