// Package terminal restores the terminal to a usable state after a crash,
// when the tcell screen can no longer be trusted to clean up after itself.
package terminal

import (
	"io"
	"os"
)

var (
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseSGROff    = []byte("\x1b[?1006l")

	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiRIS           = []byte("\x1bc")
)

// EmergencyReset writes the escape sequences that undo everything the
// explorer turns on: mouse tracking, the alternate screen, the hidden
// cursor. Safe to call with the terminal in any state.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best effort, errors
	// don't matter in a crash context
	resetTerminalMode()
}
