package explorer

import (
	"github.com/lixenwraith/fractal-explorer/chaosgame"
	"github.com/lixenwraith/fractal-explorer/geometry"
	"github.com/lixenwraith/fractal-explorer/render"
	"github.com/lixenwraith/fractal-explorer/viewport"
)

// ChaosScene animates a chaos game, plotting a batch of points per tick.
// Points are kept so a resize can replot the attractor so far.
type ChaosScene struct {
	stream   *chaosgame.Stream
	drawRate int
	plotted  []geometry.Point
	min, max geometry.Point
	vp       *viewport.Viewport
}

// NewChaosScene starts the game's generator goroutine. Close the scene to
// stop it.
func NewChaosScene(game chaosgame.Game, drawRate int) *ChaosScene {
	min, max := game.DefaultRect()
	return &ChaosScene{
		stream:   chaosgame.NewStream(game),
		drawRate: drawRate,
		min:      min,
		max:      max,
	}
}

// Step plots the next batch of points
func (s *ChaosScene) Step(c *render.Canvas) {
	if s.vp == nil {
		s.Resize(c)
		return
	}
	for i := 0; i < s.drawRate; i++ {
		p, ok := <-s.stream.Points()
		if !ok {
			return
		}
		s.plotted = append(s.plotted, p)
		s.plot(c, p)
	}
}

// Resize remaps the game's view rectangle to the canvas and replots every
// point drawn so far
func (s *ChaosScene) Resize(c *render.Canvas) {
	s.vp = sceneViewport(c, s.min, s.max)
	c.Fill(render.White)
	for _, p := range s.plotted {
		s.plot(c, p)
	}
}

// Close stops the generator goroutine
func (s *ChaosScene) Close() {
	s.stream.Close()
}

func (s *ChaosScene) plot(c *render.Canvas, p geometry.Point) {
	px, py := s.vp.PlaneToPixel(complex(p.X, p.Y))
	c.SetPixel(int(px), int(py), render.Black)
}
