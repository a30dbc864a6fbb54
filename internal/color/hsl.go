package color

import (
	"fmt"
	"math"
)

// HSL holds hue in degrees [0,360) and saturation/lightness in percent [0,100].
// Values are unrounded so conversions round-trip; use Rounded for display.
type HSL struct {
	H float64
	S float64
	L float64
}

// Rounded returns the integer degrees/percentages shown on picker sliders.
func (c HSL) Rounded() (h, s, l int) {
	return int(roundHalfUp(c.H)), int(roundHalfUp(c.S)), int(roundHalfUp(c.L))
}

func (c HSL) String() string {
	h, s, l := c.Rounded()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// RGBToHSL converts channels to HSL. Achromatic colors get hue 0 and saturation 0.
func RGBToHSL(c RGB) HSL {
	h, s, l := hslFractions(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

// HSLToRGB converts back to rounded channels.
func HSLToRGB(c HSL) RGB {
	h := c.H / 360
	s := c.S / 100
	l := c.L / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		q := l + s - l*s
		if l < 0.5 {
			q = l * (1 + s)
		}
		p := 2*l - q
		r = hueToChannel(p, q, h+1.0/3)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3)
	}

	return RGB{
		R: int(roundHalfUp(r * 255)),
		G: int(roundHalfUp(g * 255)),
		B: int(roundHalfUp(b * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// hslFractions returns hue, saturation and lightness all in [0,1].
func hslFractions(r, g, b float64) (h, s, l float64) {
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l = (hi + lo) / 2

	if hi == lo {
		return 0, 0, l
	}

	d := hi - lo
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6, s, l
}
