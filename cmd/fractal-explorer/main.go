package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fractal-explorer/audio"
	"github.com/lixenwraith/fractal-explorer/compute"
	"github.com/lixenwraith/fractal-explorer/escapetime"
	"github.com/lixenwraith/fractal-explorer/explorer"
	"github.com/lixenwraith/fractal-explorer/input"
	"github.com/lixenwraith/fractal-explorer/parameter"
	"github.com/lixenwraith/fractal-explorer/registry"
	"github.com/lixenwraith/fractal-explorer/render"
	"github.com/lixenwraith/fractal-explorer/terminal"
	"github.com/lixenwraith/fractal-explorer/viewport"
)

var (
	listFlag    = flag.Bool("list", false, "List the available fractals and exit")
	maxIterFlag = flag.Uint("max-iterations", parameter.DefaultMaxIterations, "Iteration cutoff for escape-time fractals")
	powerFlag   = flag.Uint("power", parameter.DefaultPower, "Exponent for escape-time fractals (2 is the classic set)")
	iterFlag    = flag.Uint64("iterations", 6, "Folding depth for turtle curves")
	drawRate    = flag.Int("drawrate", parameter.DefaultDrawRate, "Segments or points drawn per frame for animated fractals")
	debugFlag   = flag.Bool("debug", false, "Log debug information to stderr")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] FRACTAL\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Run with -list to see the available fractals.\n\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *listFlag {
		printCatalog()
		return
	}

	slug := flag.Arg(0)
	if slug == "" {
		usage()
		os.Exit(2)
	}
	desc, ok := registry.Lookup(slug)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown fractal %q, run with -list to see the catalog\n", slug)
		os.Exit(1)
	}

	if *debugFlag {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before the stack trace hits stderr, otherwise the
	// trace lands inside the alternate screen and vanishes with it
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "fractal-explorer crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cues := audio.NewCues(audio.LoadConfig())
	if err := cues.Initialize(); err != nil {
		log.Printf("audio unavailable: %v", err)
	}
	defer cues.Cleanup()

	if err := run(screen, desc, cues); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func printCatalog() {
	for _, d := range registry.All() {
		fmt.Printf("%-14s %-20s %s\n", d.Slug, "("+d.Category.String()+")", d.Description)
	}
}

// pumpEvents forwards terminal events to a channel the main loop can select
// on. It exits when the screen is finalized and PollEvent returns nil.
func pumpEvents(screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, parameter.EventChanSize)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	return events
}

func run(screen tcell.Screen, desc *registry.Descriptor, cues *audio.Cues) error {
	cols, rows := screen.Size()
	width, height := render.PixelSize(cols, rows)

	switch desc.Category {
	case registry.EscapeTimeFractals:
		return runEscapeTime(screen, desc, cues, width, height)
	default:
		return runScene(screen, desc, cues, width, height)
	}
}

// selectionColor outlines the zoom rectangle over the rendered set
var selectionColor = render.RGB{R: 255, G: 0, B: 0}

func runEscapeTime(screen tcell.Screen, desc *registry.Descriptor, cues *audio.Cues, width, height int) error {
	ef, err := escapetime.New(desc.Family, uint32(*powerFlag), uint32(*maxIterFlag))
	if err != nil {
		return err
	}

	min, max := desc.Family.DefaultPlane()
	vp := viewport.New(width, height, min, max)
	ctrl := explorer.NewController(vp, ef.Classify, ef.MaxIterations(), compute.NewScheduler())

	canvas := render.NewCanvas(width, height)
	emitter := render.NewEmitter(ef.MaxIterations())
	presenter := render.NewPresenter(screen)
	machine := input.NewMachine(width, height)
	events := pumpEvents(screen)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	ctrl.Start()
	for {
		select {
		case tev := <-events:
			ev := machine.Process(tev)
			if ev == nil {
				continue
			}
			if _, quit := ev.(explorer.Quit); quit {
				return nil
			}
			if rz, ok := ev.(explorer.Resize); ok {
				canvas.Resize(rz.Width, rz.Height)
				screen.Sync()
			}
			ctrl.HandleEvent(ev)

		case cev := <-ctrl.Completions():
			if _, err := ctrl.HandleEvent(cev); err != nil {
				log.Printf("compute pass failed: %v", err)
				cues.InvalidInput()
			} else {
				cues.RenderDone()
			}

		case <-ticker.C:
			if res := ctrl.Result(); res != nil {
				emitter.Draw(canvas, res)
			}
			if sel, ok := ctrl.Selection(); ok {
				render.DrawSelection(canvas, sel, selectionColor)
			}
			presenter.Present(canvas)
		}
	}
}

func runScene(screen tcell.Screen, desc *registry.Descriptor, cues *audio.Cues, width, height int) error {
	var scene explorer.Scene
	var turtle *explorer.TurtleScene
	switch desc.Category {
	case registry.TurtleCurves:
		turtle = explorer.NewTurtleScene(desc.NewCurve(*iterFlag), *drawRate)
		scene = turtle
	case registry.ChaosGames:
		chaos := explorer.NewChaosScene(desc.NewGame(), *drawRate)
		defer chaos.Close()
		scene = chaos
	}

	canvas := render.NewCanvas(width, height)
	presenter := render.NewPresenter(screen)
	machine := input.NewMachine(width, height)
	events := pumpEvents(screen)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	announced := false
	for {
		select {
		case tev := <-events:
			switch ev := machine.Process(tev).(type) {
			case nil:
			case explorer.Quit:
				return nil
			case explorer.Resize:
				canvas.Resize(ev.Width, ev.Height)
				scene.Resize(canvas)
				screen.Sync()
			case explorer.PanKey, explorer.ZoomKey, explorer.ResetKey:
				// these views have no camera
				cues.InvalidInput()
			}

		case <-ticker.C:
			scene.Step(canvas)
			presenter.Present(canvas)
			if turtle != nil && turtle.Done() && !announced {
				announced = true
				cues.RenderDone()
			}
		}
	}
}
