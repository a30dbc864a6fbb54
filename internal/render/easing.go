package render

import "github.com/alexisbeaulieu97/prism/internal/gradient"

// Ease remaps a stop position in percent through the given easing curve.
// Unknown easings leave the position untouched.
func Ease(e gradient.Easing, p float64) float64 {
	switch e {
	case gradient.EasingEaseIn:
		t := p / 100
		return t * t * 100
	case gradient.EasingEaseOut:
		t := 1 - p/100
		return (1 - t*t) * 100
	case gradient.EasingEaseInOut:
		if p <= 50 {
			t := p / 50
			return t * t * 50
		}
		t := 1 - (p-50)/50
		return (1-t*t)*50 + 50
	default:
		return p
	}
}
