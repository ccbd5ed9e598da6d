// Package registry catalogs every fractal the explorer can draw, keyed by
// the slug used on the command line.
package registry

import (
	"sort"

	"github.com/lixenwraith/fractal-explorer/chaosgame"
	"github.com/lixenwraith/fractal-explorer/curves"
	"github.com/lixenwraith/fractal-explorer/escapetime"
)

// Category groups fractals by how they are rendered and interacted with
type Category uint8

const (
	// EscapeTimeFractals compute whole frames and support zoom and pan
	EscapeTimeFractals Category = iota
	// TurtleCurves animate a turtle program segment by segment
	TurtleCurves
	// ChaosGames animate randomly iterated points
	ChaosGames
)

func (c Category) String() string {
	switch c {
	case EscapeTimeFractals:
		return "escape-time fractals"
	case TurtleCurves:
		return "turtle curves"
	case ChaosGames:
		return "chaos games"
	default:
		return "unknown"
	}
}

// Descriptor describes one fractal. The constructor matching the category
// is set; the others are zero.
type Descriptor struct {
	Slug        string
	Name        string
	Description string
	Category    Category

	// Family identifies the escape-time iteration family
	Family escapetime.Family

	// NewCurve builds the turtle program for a folding depth
	NewCurve func(iterations uint64) curves.Curve

	// NewGame builds the chaos game
	NewGame func() chaosgame.Game
}

var catalog = map[string]*Descriptor{
	"barnsleyfern": {
		Slug:        "barnsleyfern",
		Name:        "Barnsley Fern",
		Description: "Draws the Barnsley Fern fractal using a chaos game with affine transforms.",
		Category:    ChaosGames,
		NewGame:     func() chaosgame.Game { return chaosgame.NewDefaultFern() },
	},
	"burningmandel": {
		Slug:        "burningmandel",
		Name:        "Burning Mandel",
		Description: "Draws a variation of the burning ship fractal",
		Category:    EscapeTimeFractals,
		Family:      escapetime.BurningMandel,
	},
	"burningship": {
		Slug:        "burningship",
		Name:        "Burning Ship",
		Description: "Draws the burning ship fractal",
		Category:    EscapeTimeFractals,
		Family:      escapetime.BurningShip,
	},
	"cesaro": {
		Slug:        "cesaro",
		Name:        "Cesàro",
		Description: "Draws a square Cesàro fractal",
		Category:    TurtleCurves,
		NewCurve:    func(n uint64) curves.Curve { return curves.NewCesaro(n) },
	},
	"cesarotri": {
		Slug:        "cesarotri",
		Name:        "Cesàro Triangle",
		Description: "Draws a triangle Cesàro fractal",
		Category:    TurtleCurves,
		NewCurve:    func(n uint64) curves.Curve { return curves.NewCesaroTri(n) },
	},
	"dragon": {
		Slug:        "dragon",
		Name:        "Dragon",
		Description: "Draws a dragon curve fractal",
		Category:    TurtleCurves,
		NewCurve:    func(n uint64) curves.Curve { return curves.NewDragon(n) },
	},
	"kochcurve": {
		Slug:        "kochcurve",
		Name:        "Koch Curve",
		Description: "Draws a Koch snowflake curve",
		Category:    TurtleCurves,
		NewCurve:    func(n uint64) curves.Curve { return curves.NewKoch(n) },
	},
	"levyccurve": {
		Slug:        "levyccurve",
		Name:        "Lévy C Curve",
		Description: "Draws a Lévy C Curve",
		Category:    TurtleCurves,
		NewCurve:    func(n uint64) curves.Curve { return curves.NewLevyC(n) },
	},
	"mandelbrot": {
		Slug:        "mandelbrot",
		Name:        "Mandelbrot",
		Description: "Draws the mandelbrot fractal",
		Category:    EscapeTimeFractals,
		Family:      escapetime.Mandelbrot,
	},
	"roadrunner": {
		Slug:        "roadrunner",
		Name:        "Roadrunner",
		Description: "Draws a variation of the burning ship fractal",
		Category:    EscapeTimeFractals,
		Family:      escapetime.RoadRunner,
	},
	"sierpinski": {
		Slug:        "sierpinski",
		Name:        "Sierpiński Triangle",
		Description: "Draws a Sierpiński triangle using a chaos game and 3 randomly chosen points on the screen",
		Category:    ChaosGames,
		NewGame:     func() chaosgame.Game { return chaosgame.NewSierpinski() },
	},
	"terdragon": {
		Slug:        "terdragon",
		Name:        "Terdragon",
		Description: "Draws a terdragon curve",
		Category:    TurtleCurves,
		NewCurve:    func(n uint64) curves.Curve { return curves.NewTerdragon(n) },
	},
}

// Lookup finds a fractal by slug
func Lookup(slug string) (*Descriptor, bool) {
	d, ok := catalog[slug]
	return d, ok
}

// All returns every descriptor sorted by slug
func All() []*Descriptor {
	all := make([]*Descriptor, 0, len(catalog))
	for _, d := range catalog {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Slug < all[j].Slug
	})
	return all
}
