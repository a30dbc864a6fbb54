// Package render turns a gradient.State into CSS gradient syntax. Every call
// recomputes from the state it is given; nothing is cached or mutated.
package render

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/color"
	"github.com/alexisbeaulieu97/prism/internal/gradient"
)

// AdjustedStops returns copies of the stops with the state's saturation
// adjustment applied to each color. A zero adjustment copies colors verbatim.
func AdjustedStops(s gradient.State) []gradient.ColorStop {
	stops := make([]gradient.ColorStop, len(s.ColorStops))
	for i, stop := range s.ColorStops {
		if s.SaturationAdjustment != 0 {
			stop.Color = color.AdjustSaturation(stop.Color, float64(s.SaturationAdjustment))
		}
		stops[i] = stop
	}
	return stops
}

// EasedStops returns the stops exactly as they are written into CSS:
// saturation adjusted, then with eased positions.
func EasedStops(s gradient.State) []gradient.ColorStop {
	stops := AdjustedStops(s)
	for i := range stops {
		stops[i].Position = Ease(s.Easing, stops[i].Position)
	}
	return stops
}

// ApplyOpacity returns copies of stops whose Color is the rgba() value that
// folds in the stop opacity.
func ApplyOpacity(stops []gradient.ColorStop) []gradient.ColorStop {
	out := make([]gradient.ColorStop, len(stops))
	for i, stop := range stops {
		stop.Color = color.HexToRGBA(stop.Color, stop.Opacity)
		out[i] = stop
	}
	return out
}

// StopList formats the eased stops as "rgba(r,g,b,a) p%" joined by ", ".
func StopList(s gradient.State) string {
	stops := EasedStops(s)
	parts := make([]string, len(stops))
	for i, stop := range stops {
		parts[i] = color.HexToRGBA(stop.Color, stop.Opacity) + " " + color.FormatNumber(stop.Position) + "%"
	}
	return strings.Join(parts, ", ")
}

// GradientCSS renders the complete CSS gradient function for s.
func GradientCSS(s gradient.State) string {
	stops := StopList(s)

	switch s.Type {
	case gradient.TypeLinear:
		return fmt.Sprintf("linear-gradient(%s, %s)", LinearDirection(s), stops)
	case gradient.TypeRadial:
		return fmt.Sprintf("radial-gradient(circle, %s)", stops)
	case gradient.TypeConic:
		return fmt.Sprintf("conic-gradient(from %ddeg, %s)", s.Angle, stops)
	default:
		return fmt.Sprintf("linear-gradient(%s, %s)", gradient.DirectionRight, stops)
	}
}

// LinearDirection is the first argument of linear-gradient(): the compass
// phrase, or the angle in degrees for custom directions.
func LinearDirection(s gradient.State) string {
	if s.Direction == gradient.DirectionCustom {
		return fmt.Sprintf("%ddeg", s.Angle)
	}
	return string(s.Direction)
}
