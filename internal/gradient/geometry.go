package gradient

import (
	"math"
	"slices"
)

const (
	defaultNewStopPosition = 50
	minStopGap             = 10
)

// SuggestStopPosition picks where an "add stop" action should land: the
// rounded midpoint of the first gap wider than 10%, or 50 when none exists.
func SuggestStopPosition(s State) float64 {
	positions := make([]float64, 0, len(s.ColorStops))
	for _, stop := range s.ColorStops {
		positions = append(positions, stop.Position)
	}
	slices.Sort(positions)

	for i := 0; i+1 < len(positions); i++ {
		if positions[i+1]-positions[i] > minStopGap {
			return math.Floor((positions[i]+positions[i+1])/2 + 0.5)
		}
	}
	return defaultNewStopPosition
}

// NearestStopColor returns the color of whichever stop bracketing position is
// closer to it, used to seed a stop added by clicking on the gradient bar.
func NearestStopColor(s State, position float64) string {
	stops := s.ColorStops
	switch len(stops) {
	case 0:
		return ""
	case 1:
		return stops[0].Color
	}

	left, right := stops[0], stops[len(stops)-1]
	for i := 0; i+1 < len(stops); i++ {
		if stops[i].Position <= position && stops[i+1].Position >= position {
			left, right = stops[i], stops[i+1]
			break
		}
	}

	if math.Abs(left.Position-position) < math.Abs(right.Position-position) {
		return left.Color
	}
	return right.Color
}

// ClampDragPosition limits a dragged stop to [0,100] and keeps it between its
// neighbours so a drag never reorders stops.
func ClampDragPosition(s State, id string, position float64) float64 {
	p := math.Max(0, math.Min(100, position))

	i := s.IndexOf(id)
	if i < 0 {
		return p
	}
	if i > 0 {
		p = math.Max(s.ColorStops[i-1].Position, p)
	}
	if i < len(s.ColorStops)-1 {
		p = math.Min(s.ColorStops[i+1].Position, p)
	}
	return p
}
