package parameter

import "time"

// Event Loop & Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS).
	// Terminal cell updates are expensive compared to a GPU surface, and the
	// fractal image only changes on interaction or animation ticks.
	FrameUpdateInterval = 33 * time.Millisecond

	// EventChanSize is the capacity of the channel the terminal event pump
	// feeds into the main loop
	EventChanSize = 64
)

// Animation
const (
	// DefaultDrawRate is how many curve segments / chaos game points are
	// plotted per frame when animating non-escape-time fractals
	DefaultDrawRate = 64

	// ChaosStreamBuffer is the buffered channel size between a chaos game
	// generator goroutine and its consumer
	ChaosStreamBuffer = 10
)
