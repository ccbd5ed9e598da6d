package parameter

// Escape-Time Iteration
const (
	// EscapeRadius is the iterate magnitude beyond which a point is classified
	// as escaped. 4.0 safely exceeds the escape radius of the power-2 families.
	EscapeRadius = 4.0

	// EscapeRadiusSq is compared against |z|^2 to avoid a sqrt per iteration
	EscapeRadiusSq = EscapeRadius * EscapeRadius

	// DefaultMaxIterations is the iteration cutoff used when none is given
	DefaultMaxIterations = 100

	// DefaultPower is the exponent of the classic Mandelbrot/Burning Ship case
	DefaultPower = 2
)

// Tile Scheduling
const (
	// TilesPerWorker controls how many row-band tiles each worker gets on
	// average. Escape times vary wildly across the plane, so a few tiles per
	// worker keeps the pool balanced without drowning it in tiny bands.
	TilesPerWorker = 4
)

// Interaction
const (
	// PanStepDivisor converts the window dimension into an arrow-key pan step
	// (window/4 = 25% of the view per key press)
	PanStepDivisor = 4

	// KeyZoomFactor is the view growth/shrink factor for keyboard zoom.
	// Zooming in keeps the middle half of the view; zooming out makes the
	// current view the middle half of the new one.
	KeyZoomFactor = 2.0
)
