package parameter

// Coloring
const (
	// ColorRampSteps caps the size of the escaped-pixel color ramp. Iteration
	// counts above the cap saturate at the final ramp color, which keeps
	// low-iteration renders from washing out to near-black everywhere.
	ColorRampSteps = 50
)
