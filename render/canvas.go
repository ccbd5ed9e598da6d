package render

// Canvas is a pixel buffer the scenes draw into before it is presented on
// the terminal. Coordinates are in pixels with (0, 0) at the top left.
type Canvas struct {
	width  int
	height int
	pixels []RGB
}

// NewCanvas creates a canvas cleared to black
func NewCanvas(width, height int) *Canvas {
	if width < 1 || height < 1 {
		panic("render: canvas dimensions must be positive")
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]RGB, width*height),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// SetPixel writes a pixel; out-of-bounds writes are dropped
func (c *Canvas) SetPixel(x, y int, color RGB) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = color
}

// At reads a pixel; out-of-bounds reads return black
func (c *Canvas) At(x, y int) RGB {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Black
	}
	return c.pixels[y*c.width+x]
}

// Fill sets every pixel to the color
func (c *Canvas) Fill(color RGB) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// Resize replaces the buffer with a cleared one of the new dimensions.
// Returns false when the size is unchanged or not positive.
func (c *Canvas) Resize(width, height int) bool {
	if width < 1 || height < 1 {
		return false
	}
	if width == c.width && height == c.height {
		return false
	}
	c.width = width
	c.height = height
	c.pixels = make([]RGB, width*height)
	return true
}

// Line draws a line between two pixels with Bresenham's algorithm
func (c *Canvas) Line(x0, y0, x1, y1 int, color RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.SetPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
