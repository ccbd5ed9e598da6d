package explorer

import (
	"testing"
	"time"

	"github.com/lixenwraith/fractal-explorer/compute"
	"github.com/lixenwraith/fractal-explorer/escapetime"
	"github.com/lixenwraith/fractal-explorer/viewport"
)

func newTestController(t *testing.T, point compute.PointFunc) *Controller {
	t.Helper()
	vp := viewport.New(16, 16, complex(-2.0, -1.1), complex(0.8, 1.1))
	if point == nil {
		ef, err := escapetime.New(escapetime.Mandelbrot, 2, 50)
		if err != nil {
			t.Fatal(err)
		}
		point = ef.Classify
	}
	return NewController(vp, point, 50, compute.NewSchedulerWithWorkers(1))
}

// waitPass feeds the next completion back into the controller
func waitPass(t *testing.T, c *Controller) (*compute.Result, error) {
	t.Helper()
	select {
	case ev := <-c.Completions():
		return c.HandleEvent(ev)
	case <-time.After(5 * time.Second):
		t.Fatal("compute pass did not complete")
		return nil, nil
	}
}

// settle drains completions until the controller goes idle
func settle(t *testing.T, c *Controller) {
	t.Helper()
	for c.State() == Computing {
		waitPass(t, c)
	}
}

func TestInitialPassProducesFrame(t *testing.T) {
	c := newTestController(t, nil)
	c.Start()
	if c.State() != Computing {
		t.Fatalf("state after Start is %v, want computing", c.State())
	}

	res, err := waitPass(t, c)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || c.Result() != res {
		t.Fatal("completed pass did not become the current frame")
	}
	if c.State() != Idle {
		t.Errorf("state after completion is %v, want idle", c.State())
	}
}

func TestSelectionDragZoomsIn(t *testing.T) {
	c := newTestController(t, nil)
	c.Start()
	settle(t, c)

	origMin, origMax := c.Viewport().PlaneMin(), c.Viewport().PlaneMax()

	c.HandleEvent(PointerDown{X: 4, Y: 4})
	if c.State() != Selecting {
		t.Fatalf("state after pointer down is %v, want selecting", c.State())
	}
	c.HandleEvent(PointerMove{X: 10, Y: 12})
	if sel, ok := c.Selection(); !ok || sel.Min.X != 4 || sel.Max.X != 10 {
		t.Fatalf("selection is %v, %v after drag", sel, ok)
	}

	c.HandleEvent(PointerUp{X: 12, Y: 12})
	if c.State() != Computing {
		t.Fatalf("state after pointer up is %v, want computing", c.State())
	}
	if _, ok := c.Selection(); ok {
		t.Error("selection still reported after pointer up")
	}

	settle(t, c)
	min, max := c.Viewport().PlaneMin(), c.Viewport().PlaneMax()
	if min == origMin && max == origMax {
		t.Error("zoom selection did not change the view")
	}
	if real(max)-real(min) >= real(origMax)-real(origMin) {
		t.Error("view did not narrow after zooming in")
	}
}

func TestDegenerateSelectionIsIgnored(t *testing.T) {
	c := newTestController(t, nil)
	c.Start()
	settle(t, c)

	origMin := c.Viewport().PlaneMin()
	c.HandleEvent(PointerDown{X: 5, Y: 5})
	c.HandleEvent(PointerUp{X: 5, Y: 5})
	if c.State() != Idle {
		t.Errorf("click without drag left state %v, want idle", c.State())
	}
	if c.Viewport().PlaneMin() != origMin {
		t.Error("click without drag changed the view")
	}
}

func TestPointerUpWithoutDownIsIgnored(t *testing.T) {
	c := newTestController(t, nil)
	c.Start()
	settle(t, c)

	origMin := c.Viewport().PlaneMin()
	c.HandleEvent(PointerUp{X: 10, Y: 10})
	if c.State() != Idle || c.Viewport().PlaneMin() != origMin {
		t.Error("stray pointer up changed the controller")
	}
}

func TestIntentsCoalesceNewestWins(t *testing.T) {
	c := newTestController(t, nil)
	origMin, origMax := c.Viewport().PlaneMin(), c.Viewport().PlaneMax()

	c.Start()
	// both arrive while the first pass is still running; only the reset
	// should survive
	c.HandleEvent(PanKey{Dx: 4, Dy: 0})
	c.HandleEvent(ResetKey{})
	if c.State() != Computing {
		t.Fatalf("state is %v, want computing", c.State())
	}

	settle(t, c)
	if c.Viewport().PlaneMin() != origMin || c.Viewport().PlaneMax() != origMax {
		t.Error("parked pan was applied; reset should have replaced it")
	}
}

func TestPanAndKeyZoomRecompute(t *testing.T) {
	c := newTestController(t, nil)
	c.Start()
	settle(t, c)

	origMin := c.Viewport().PlaneMin()
	c.HandleEvent(PanKey{Dx: 4, Dy: 0})
	if c.State() != Computing {
		t.Fatal("pan did not start a pass")
	}
	settle(t, c)
	if c.Viewport().PlaneMin() == origMin {
		t.Error("pan did not move the view")
	}

	width := real(c.Viewport().PlaneMax()) - real(c.Viewport().PlaneMin())
	c.HandleEvent(ZoomKey{In: false})
	settle(t, c)
	zoomed := real(c.Viewport().PlaneMax()) - real(c.Viewport().PlaneMin())
	if zoomed <= width {
		t.Error("zoom out did not widen the view")
	}
}

func TestFailedPassKeepsPreviousFrame(t *testing.T) {
	fail := false
	ef, err := escapetime.New(escapetime.Mandelbrot, 2, 50)
	if err != nil {
		t.Fatal(err)
	}
	c := newTestController(t, func(z complex128) escapetime.IterationResult {
		if fail {
			panic("injected failure")
		}
		return ef.Classify(z)
	})

	c.Start()
	res, err := waitPass(t, c)
	if err != nil || res == nil {
		t.Fatalf("first pass failed: %v", err)
	}

	fail = true
	c.HandleEvent(ResetKey{})
	if _, err := waitPass(t, c); err == nil {
		t.Fatal("panicking pass reported no error")
	}
	if c.Result() != res {
		t.Error("failed pass discarded the previous frame")
	}
	if c.State() != Idle {
		t.Errorf("state after failed pass is %v, want idle", c.State())
	}
}

func TestResizeToSameSizeDoesNotRecompute(t *testing.T) {
	c := newTestController(t, nil)
	c.Start()
	settle(t, c)

	c.HandleEvent(Resize{Width: 16, Height: 16})
	if c.State() != Idle {
		t.Error("no-op resize started a pass")
	}

	c.HandleEvent(Resize{Width: 20, Height: 10})
	if c.State() != Computing {
		t.Fatal("resize did not start a pass")
	}
	settle(t, c)
	if c.Result().Width() != 20 || c.Result().Height() != 10 {
		t.Errorf("frame is %dx%d after resize, want 20x10",
			c.Result().Width(), c.Result().Height())
	}
}
