package render

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// halfBlock is the upper-half-block rune. Each terminal cell carries two
// vertically stacked pixels: the foreground colors the upper half and the
// background the lower half, doubling the vertical resolution.
const halfBlock = '▀'

// Presenter flushes a canvas onto a tcell screen
type Presenter struct {
	screen tcell.Screen
}

// NewPresenter wraps an initialized tcell screen
func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{screen: screen}
}

// PixelSize converts a terminal size in cells to the canvas size in pixels
func PixelSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

func toTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Present writes the canvas to the screen and shows it
func (p *Presenter) Present(c *Canvas) {
	cols, rows := p.screen.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			style := tcell.StyleDefault.
				Foreground(toTcell(c.At(cx, 2*cy))).
				Background(toTcell(c.At(cx, 2*cy+1)))
			p.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	p.screen.Show()
}

// DrawSelection outlines a selection rectangle on the canvas in pixel
// coordinates. The rectangle may have unordered corners.
func DrawSelection(c *Canvas, sel image.Rectangle, color RGB) {
	sel = sel.Canon()
	c.Line(sel.Min.X, sel.Min.Y, sel.Max.X, sel.Min.Y, color)
	c.Line(sel.Max.X, sel.Min.Y, sel.Max.X, sel.Max.Y, color)
	c.Line(sel.Max.X, sel.Max.Y, sel.Min.X, sel.Max.Y, color)
	c.Line(sel.Min.X, sel.Max.Y, sel.Min.X, sel.Min.Y, color)
}
