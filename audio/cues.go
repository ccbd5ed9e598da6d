// Package audio plays short feedback cues over the system speaker: a chime
// when a compute pass lands and a buzz for rejected input. Audio failures
// are never fatal; the explorer stays silent and keeps running.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cues manages the explorer's audio feedback
type Cues struct {
	mu          sync.Mutex
	config      *Config
	mixer       *beep.Mixer
	sampleRate  beep.SampleRate
	initialized bool
}

// NewCues creates a cue player from a config
func NewCues(cfg *Config) *Cues {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Cues{
		config:     cfg,
		mixer:      &beep.Mixer{},
		sampleRate: beep.SampleRate(cfg.SampleRate),
	}
}

// Initialize sets up the speaker. Returns nil without initializing when
// audio is disabled.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.config.Enabled {
		return nil
	}
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences and releases the mixer
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	c.mixer.Clear()
	c.initialized = false
}

// RenderDone chimes when a compute pass finishes
func (c *Cues) RenderDone() {
	c.play(880, 120*time.Millisecond)
}

// InvalidInput buzzes when input is rejected
func (c *Cues) InvalidInput() {
	c.play(220, 80*time.Millisecond)
}

// play mixes in a sine tone of the given frequency and duration, scaled by
// the master volume
func (c *Cues) play(freq float64, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	tone, err := generators.SineTone(c.sampleRate, freq)
	if err != nil {
		return
	}

	streamer := beep.Take(c.sampleRate.N(d), tone)
	volume := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volumeGain(c.config.MasterVolume),
		Silent:   c.config.MasterVolume <= 0,
	}

	speaker.Lock()
	c.mixer.Add(volume)
	speaker.Unlock()
}

// volumeGain maps a 0..1 volume to the logarithmic gain beep expects,
// where 0 is unity and each -1 halves the power
func volumeGain(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(v)
}
