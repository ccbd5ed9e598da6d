package render

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	Black  = RGB{0, 0, 0}
	White  = RGB{255, 255, 255}
	Aeblue = RGB{0, 0, 48}
)

// Ramp is a sequence of colors indexed by escape iteration count
type Ramp []RGB

// LinearRamp interpolates from start to end across count colors. A single
// color ramp is just the start color.
func LinearRamp(start, end RGB, count uint) Ramp {
	if count == 0 {
		return Ramp{}
	}
	if count == 1 {
		return Ramp{start}
	}

	ramp := make(Ramp, count)
	dr := float64(int(end.R)-int(start.R)) / float64(count-1)
	dg := float64(int(end.G)-int(start.G)) / float64(count-1)
	db := float64(int(end.B)-int(start.B)) / float64(count-1)
	for i := range ramp {
		ramp[i] = RGB{
			R: uint8(float64(start.R) + dr*float64(i)),
			G: uint8(float64(start.G) + dg*float64(i)),
			B: uint8(float64(start.B) + db*float64(i)),
		}
	}
	return ramp
}
