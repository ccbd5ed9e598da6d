package compute

import "github.com/lixenwraith/fractal-explorer/escapetime"

// Result is a pixel grid of iteration results from one compute pass.
// It is written by the scheduler's workers (each confined to its own tile)
// while the pass runs, and is read-only once Compute returns it.
type Result struct {
	width  int
	height int
	cells  []escapetime.IterationResult

	// MaxIterations is the cutoff the pass ran with, so shading can
	// normalize iteration counts
	MaxIterations uint32
}

// NewResult allocates a result grid for a w x h pixel viewport
func NewResult(w, h int, maxIterations uint32) *Result {
	if w < 1 || h < 1 {
		panic("compute: result dimensions must be positive")
	}
	return &Result{
		width:         w,
		height:        h,
		cells:         make([]escapetime.IterationResult, w*h),
		MaxIterations: maxIterations,
	}
}

// Width returns the pixel width of the grid
func (r *Result) Width() int { return r.width }

// Height returns the pixel height of the grid
func (r *Result) Height() int { return r.height }

// At returns the iteration result for pixel (x, y)
func (r *Result) At(x, y int) escapetime.IterationResult {
	return r.cells[y*r.width+x]
}

func (r *Result) set(x, y int, res escapetime.IterationResult) {
	r.cells[y*r.width+x] = res
}
