package color

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// AdjustSaturation shifts the HSL saturation of hex by adjustment percentage
// points, clamped to [0,100]%. A zero adjustment returns hex untouched. Input
// that is not a six digit color is returned unchanged.
func AdjustSaturation(hex string, adjustment float64) string {
	if adjustment == 0 {
		return hex
	}
	c, err := ParseHex(hex)
	if err != nil {
		return hex
	}

	h, s, l := hslFractions(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	s = math.Max(0, math.Min(1, s+adjustment/100))

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - chroma/2

	var r1, g1, b1 float64
	switch {
	case h < 1.0/6:
		r1, g1, b1 = chroma, x, 0
	case h < 2.0/6:
		r1, g1, b1 = x, chroma, 0
	case h < 3.0/6:
		r1, g1, b1 = 0, chroma, x
	case h < 4.0/6:
		r1, g1, b1 = 0, x, chroma
	case h < 5.0/6:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	return RGBToHex(
		int(roundHalfUp((r1+m)*255)),
		int(roundHalfUp((g1+m)*255)),
		int(roundHalfUp((b1+m)*255)),
	)
}

// ContrastRatio returns the WCAG contrast ratio between two hex colors,
// rounded to two decimals. The result is symmetric in its arguments.
func ContrastRatio(a, b string) float64 {
	la := relativeLuminance(a)
	lb := relativeLuminance(b)
	ratio := (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
	return math.Round(ratio*100) / 100
}

// TextColor picks white or black text for a background, preferring white when
// it reaches the 4.5:1 AA threshold.
func TextColor(background string) string {
	if ContrastRatio(background, "#ffffff") >= 4.5 {
		return "#ffffff"
	}
	return "#000000"
}

func relativeLuminance(hex string) float64 {
	r, g, b := laxChannels(hex)
	return 0.2126*linearize(r/255) + 0.7152*linearize(g/255) + 0.0722*linearize(b/255)
}

func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RandomColor returns a uniformly sampled 24-bit color as #rrggbb.
func RandomColor() string {
	return fmt.Sprintf("#%06x", rand.IntN(1<<24))
}

// RandomColorFrom draws from r, for reproducible sequences.
func RandomColorFrom(r *rand.Rand) string {
	return fmt.Sprintf("#%06x", r.IntN(1<<24))
}
