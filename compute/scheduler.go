// Package compute spreads per-pixel escape-time evaluation across a pool of
// workers. The pixel grid is split into row-band tiles, each worker claims
// tiles from a shared channel and writes results into its tile's region of
// the shared buffer. Tiles never overlap, so the write phase needs no
// locking; the only synchronization is the join at the end of a pass.
package compute

import (
	"fmt"
	"image"
	"log"
	"runtime"
	"sync"

	"github.com/lixenwraith/fractal-explorer/escapetime"
	"github.com/lixenwraith/fractal-explorer/parameter"
	"github.com/lixenwraith/fractal-explorer/viewport"
)

// PointFunc classifies one point of the complex plane. It must be safe to
// call from multiple goroutines; escapetime.Func.Classify satisfies this.
type PointFunc func(c complex128) escapetime.IterationResult

// Scheduler runs compute passes over a fixed-size worker pool
type Scheduler struct {
	workers int
}

// NewScheduler sizes the pool to the available hardware concurrency
func NewScheduler() *Scheduler {
	return &Scheduler{workers: runtime.NumCPU()}
}

// NewSchedulerWithWorkers sizes the pool explicitly; values below 1 fall
// back to a single worker
func NewSchedulerWithWorkers(workers int) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{workers: workers}
}

// Workers returns the worker pool size
func (s *Scheduler) Workers() int { return s.workers }

// Compute evaluates fn for every pixel of the viewport and returns the
// filled result grid. It blocks until every tile has completed.
//
// A panicking worker aborts the whole pass: the first recovered panic is
// reported as the pass error and no partial result is returned. Remaining
// tiles still drain (cheaply, bounded by maxIterations), which keeps the
// pool's goroutines from leaking; the next interaction simply recomputes.
func (s *Scheduler) Compute(vp *viewport.Viewport, fn PointFunc, maxIterations uint32) (*Result, error) {
	if maxIterations < 1 {
		return nil, fmt.Errorf("compute: max iterations must be at least 1, got %d", maxIterations)
	}

	w, h := vp.PixelWidth(), vp.PixelHeight()
	result := NewResult(w, h, maxIterations)

	tiles := SplitRows(w, h, s.workers*parameter.TilesPerWorker)
	work := make(chan int, len(tiles))
	for i := range tiles {
		work <- i
	}
	close(work)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		passErr  error
		panicked func(id int, r any)
	)
	panicked = func(id int, r any) {
		errOnce.Do(func() {
			passErr = fmt.Errorf("compute: worker %d: %v", id, r)
		})
		log.Printf("compute: worker %d panicked: %v", id, r)
	}

	for id := 0; id < s.workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range work {
				s.computeTile(vp, fn, result, tiles[i], id, panicked)
			}
		}(id)
	}
	wg.Wait()

	if passErr != nil {
		return nil, passErr
	}
	return result, nil
}

// computeTile fills one tile's region of the result. The recover boundary
// sits per tile so one faulting tile cannot take down its worker's remaining
// tiles mid-write.
func (s *Scheduler) computeTile(vp *viewport.Viewport, fn PointFunc, result *Result, tile image.Rectangle, id int, panicked func(int, any)) {
	defer func() {
		if r := recover(); r != nil {
			panicked(id, r)
		}
	}()
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		for px := tile.Min.X; px < tile.Max.X; px++ {
			c := vp.PixelToPlane(float64(px), float64(py))
			result.set(px, py, fn(c))
		}
	}
}
