// Package input translates tcell terminal events into the semantic events
// the explorer controller consumes.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fractal-explorer/explorer"
	"github.com/lixenwraith/fractal-explorer/parameter"
	"github.com/lixenwraith/fractal-explorer/render"
)

// Machine is the input state machine. It tracks the primary mouse button so
// raw motion events become pointer down/move/up transitions, and the canvas
// size so pan keys can step a fraction of the view.
type Machine struct {
	width   int
	height  int
	button1 bool
}

// NewMachine creates an input machine for a canvas of the given pixel size
func NewMachine(width, height int) *Machine {
	return &Machine{width: width, height: height}
}

// Process parses a terminal event and returns a semantic event, or nil if
// the event carries no meaning for the explorer
func (m *Machine) Process(ev tcell.Event) explorer.Event {
	switch e := ev.(type) {
	case *tcell.EventResize:
		cols, rows := e.Size()
		w, h := render.PixelSize(cols, rows)
		if w == m.width && h == m.height {
			return nil
		}
		m.width, m.height = w, h
		return explorer.Resize{Width: w, Height: h}
	case *tcell.EventKey:
		return m.processKey(e)
	case *tcell.EventMouse:
		return m.processMouse(e)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) explorer.Event {
	panX := m.width / parameter.PanStepDivisor
	panY := m.height / parameter.PanStepDivisor

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return explorer.Quit{}
	case tcell.KeyLeft:
		return explorer.PanKey{Dx: -panX}
	case tcell.KeyRight:
		return explorer.PanKey{Dx: panX}
	case tcell.KeyUp:
		return explorer.PanKey{Dy: -panY}
	case tcell.KeyDown:
		return explorer.PanKey{Dy: panY}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return explorer.ResetKey{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return explorer.Quit{}
		case '=', '+':
			return explorer.ZoomKey{In: true}
		case '-':
			return explorer.ZoomKey{In: false}
		}
	}
	return nil
}

// processMouse synthesizes pointer transitions from the button bitmask.
// Mouse rows cover two canvas pixels; the upper one is reported.
func (m *Machine) processMouse(ev *tcell.EventMouse) explorer.Event {
	cx, cy := ev.Position()
	x, y := cx, cy*2

	held := ev.Buttons()&tcell.Button1 != 0
	switch {
	case held && !m.button1:
		m.button1 = true
		return explorer.PointerDown{X: x, Y: y}
	case held && m.button1:
		return explorer.PointerMove{X: x, Y: y}
	case !held && m.button1:
		m.button1 = false
		return explorer.PointerUp{X: x, Y: y}
	}
	return nil
}
