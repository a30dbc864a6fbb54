// Package preview draws gradients in the terminal using background colored
// cells.
package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/prism/internal/gradient"
	"github.com/alexisbeaulieu97/prism/internal/render"
)

const (
	// DefaultBackdrop is what translucent stops are composited over.
	DefaultBackdrop = "#000000"

	activeMarker   = "▲"
	inactiveMarker = "△"
)

// Bar renders width cells showing the gradient's color ramp along its axis,
// after saturation and easing, composited over DefaultBackdrop.
func Bar(s gradient.State, width int) string {
	return BarOver(s, width, DefaultBackdrop)
}

// BarOver is Bar with an explicit backdrop color for translucent stops.
func BarOver(s gradient.State, width int, backdrop string) string {
	if width <= 0 {
		return ""
	}

	stops := render.EasedStops(s)
	bg := parse(backdrop)

	var b strings.Builder
	for i := range width {
		position := (float64(i) + 0.5) / float64(width) * 100
		c, alpha := Sample(stops, position)
		cell := bg.BlendRgb(c, alpha).Clamped()
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(cell.Hex())).Render(" "))
	}
	return b.String()
}

// Sample returns the color and opacity at position (0..100) of stops, which
// must be ordered by position. Colors are interpolated in RGB like CSS
// gradients; positions outside the stops take the nearest stop's color.
func Sample(stops []gradient.ColorStop, position float64) (colorful.Color, float64) {
	switch len(stops) {
	case 0:
		return colorful.Color{}, 0
	case 1:
		return parse(stops[0].Color), stops[0].Opacity
	}

	first, last := stops[0], stops[len(stops)-1]
	if position <= first.Position {
		return parse(first.Color), first.Opacity
	}
	if position >= last.Position {
		return parse(last.Color), last.Opacity
	}

	for i := 0; i+1 < len(stops); i++ {
		left, right := stops[i], stops[i+1]
		if position < left.Position || position > right.Position {
			continue
		}
		span := right.Position - left.Position
		if span <= 0 {
			return parse(right.Color), right.Opacity
		}
		t := (position - left.Position) / span
		c := parse(left.Color).BlendRgb(parse(right.Color), t)
		return c, left.Opacity + (right.Opacity-left.Opacity)*t
	}

	return parse(last.Color), last.Opacity
}

// Swatch renders a two cell block filled with hex.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(parse(hex).Hex())).Render("  ")
}

// StopMarkers renders a line of width cells with a marker under each stop of
// s. The stop identified by activeID gets a filled, bold marker.
func StopMarkers(s gradient.State, width int, activeID string) string {
	if width <= 0 {
		return ""
	}

	cells := make([]string, width)
	for i := range cells {
		cells[i] = " "
	}

	columns := markerColumns(s, width)
	for i, stop := range s.ColorStops {
		col := columns[i]
		if stop.ID == activeID {
			cells[col] = lipgloss.NewStyle().Bold(true).Render(activeMarker)
			continue
		}
		if cells[col] == " " {
			cells[col] = inactiveMarker
		}
	}
	return strings.Join(cells, "")
}

// markerColumns maps each stop position onto a column in [0, width).
func markerColumns(s gradient.State, width int) []int {
	cols := make([]int, len(s.ColorStops))
	for i, stop := range s.ColorStops {
		p := math.Max(0, math.Min(100, stop.Position))
		cols[i] = int(math.Floor(p/100*float64(width-1) + 0.5))
	}
	return cols
}

func parse(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
