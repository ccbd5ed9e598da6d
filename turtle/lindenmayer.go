package turtle

// System is a Lindenmayer system over symbol alphabet S: an axiom plus a
// production rule applied to every symbol of the current string per
// generation. Symbols without an explicit production rewrite to themselves.
type System[S any] interface {
	// Initial returns the axiom (iteration 0)
	Initial() []S
	// Rewrite returns the production of one symbol
	Rewrite(sym S) []S
}

// Expand generates the symbol string for the given iteration by rewriting
// the axiom repeatedly
func Expand[S any](sys System[S], iterations uint64) []S {
	symbols := sys.Initial()
	for i := uint64(0); i < iterations; i++ {
		next := make([]S, 0, len(symbols)*2)
		for _, sym := range symbols {
			next = append(next, sys.Rewrite(sym)...)
		}
		symbols = next
	}
	return symbols
}

// ExpandSteps expands the system and interprets every symbol as a turtle
// step. This is the common body of the Lindenmayer-based curve programs.
func ExpandSteps[S any](sys System[S], iterations uint64, interpret func(S) Step) []Step {
	symbols := Expand(sys, iterations)
	steps := make([]Step, len(symbols))
	for i, sym := range symbols {
		steps[i] = interpret(sym)
	}
	return steps
}
