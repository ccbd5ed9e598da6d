// Package chaosgame implements fractals drawn by randomly iterating a point:
// pick a random rule, apply it to the current point, plot, repeat. See
// https://en.wikipedia.org/wiki/Chaos_game for the technique.
package chaosgame

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/fractal-explorer/geometry"
	"github.com/lixenwraith/fractal-explorer/parameter"
)

// Game generates an endless sequence of points. Generate must call send for
// every point and return as soon as send reports false. The rng is supplied
// by the caller so tests can seed it.
type Game interface {
	Generate(rng *rand.Rand, send func(geometry.Point) bool)

	// DefaultRect returns the cartesian rectangle that frames the attractor
	DefaultRect() (min, max geometry.Point)
}

// Stream runs a Game on its own goroutine and delivers its points over a
// buffered channel. Close it to stop the generator.
type Stream struct {
	points chan geometry.Point
	stop   chan struct{}
	done   chan struct{}
}

// NewStream starts generating points from the game
func NewStream(game Game) *Stream {
	return newStream(game, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newStream(game Game, rng *rand.Rand) *Stream {
	s := &Stream{
		points: make(chan geometry.Point, parameter.ChaosStreamBuffer),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		defer close(s.points)
		game.Generate(rng, func(p geometry.Point) bool {
			select {
			case s.points <- p:
				return true
			case <-s.stop:
				return false
			}
		})
	}()
	return s
}

// Points is the channel the generator delivers on. It is closed after Close.
func (s *Stream) Points() <-chan geometry.Point {
	return s.points
}

// Close stops the generator and waits for it to exit
func (s *Stream) Close() {
	close(s.stop)
	for range s.points {
		// drain so the generator can observe the stop
	}
	<-s.done
}
