package explorer

import (
	"github.com/lixenwraith/fractal-explorer/curves"
	"github.com/lixenwraith/fractal-explorer/render"
	"github.com/lixenwraith/fractal-explorer/turtle"
	"github.com/lixenwraith/fractal-explorer/viewport"
)

// TurtleScene animates a turtle curve, revealing a batch of segments per
// tick, black on white like pen on paper
type TurtleScene struct {
	curve    curves.Curve
	segments []turtle.Segment
	drawRate int
	drawn    int
	vp       *viewport.Viewport
}

// NewTurtleScene runs the curve's turtle program up front and animates the
// recorded segments at drawRate segments per Step
func NewTurtleScene(curve curves.Curve, drawRate int) *TurtleScene {
	return &TurtleScene{
		curve:    curve,
		segments: turtle.Run(curve),
		drawRate: drawRate,
	}
}

// Done reports whether every segment has been drawn
func (s *TurtleScene) Done() bool {
	return s.drawn >= len(s.segments)
}

// Step draws the next batch of segments
func (s *TurtleScene) Step(c *render.Canvas) {
	if s.vp == nil {
		s.Resize(c)
		return
	}
	end := s.drawn + s.drawRate
	if end > len(s.segments) {
		end = len(s.segments)
	}
	for _, seg := range s.segments[s.drawn:end] {
		s.drawSegment(c, seg)
	}
	s.drawn = end
}

// Resize remaps the curve's view rectangle to the canvas and redraws the
// segments revealed so far
func (s *TurtleScene) Resize(c *render.Canvas) {
	min, max := s.curve.ViewRect()
	s.vp = sceneViewport(c, min, max)
	c.Fill(render.White)
	for _, seg := range s.segments[:s.drawn] {
		s.drawSegment(c, seg)
	}
}

func (s *TurtleScene) drawSegment(c *render.Canvas, seg turtle.Segment) {
	x0, y0 := s.vp.PlaneToPixel(complex(seg.A.X, seg.A.Y))
	x1, y1 := s.vp.PlaneToPixel(complex(seg.B.X, seg.B.Y))
	c.Line(int(x0), int(y0), int(x1), int(y1), render.Black)
}
