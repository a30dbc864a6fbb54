package gradient

import (
	"cmp"
	"crypto/rand"
	"slices"
)

// StopPatch carries the fields to change on a stop. Nil fields are left as is.
type StopPatch struct {
	Color    *string
	Position *float64
	Opacity  *float64
}

// NewID returns a random, collision resistant stop identifier.
func NewID() string {
	return rand.Text()
}

// NewColorStop creates a fully opaque stop with a fresh identifier.
func NewColorStop(position float64, color string) ColorStop {
	return ColorStop{
		ID:       NewID(),
		Color:    color,
		Position: position,
		Opacity:  1,
	}
}

// AddColorStop appends a new stop and re-sorts by position. When s already
// holds MaxStops stops it is returned unchanged.
func AddColorStop(s State, position float64, color string) State {
	added, _ := AddColorStopWithID(s, position, color)
	return added
}

// AddColorStopWithID behaves like AddColorStop and also reports the id of the
// new stop, which is empty when the gradient was already full.
func AddColorStopWithID(s State, position float64, color string) (State, string) {
	if len(s.ColorStops) >= MaxStops {
		return s, ""
	}

	stop := NewColorStop(position, color)
	stops := make([]ColorStop, 0, len(s.ColorStops)+1)
	stops = append(stops, s.ColorStops...)
	stops = append(stops, stop)
	sortStops(stops)

	s.ColorStops = stops
	return s, stop.ID
}

// UpdateColorStop merges patch into the stop with the given id and re-sorts.
// Unknown ids leave s unchanged.
func UpdateColorStop(s State, id string, patch StopPatch) State {
	i := s.IndexOf(id)
	if i < 0 {
		return s
	}

	stops := slices.Clone(s.ColorStops)
	stop := &stops[i]
	if patch.Color != nil {
		stop.Color = *patch.Color
	}
	if patch.Position != nil {
		stop.Position = *patch.Position
	}
	if patch.Opacity != nil {
		stop.Opacity = *patch.Opacity
	}
	sortStops(stops)

	s.ColorStops = stops
	return s
}

// RemoveColorStop drops the stop with the given id. A gradient with MinStops
// stops or fewer is returned unchanged.
func RemoveColorStop(s State, id string) State {
	if len(s.ColorStops) <= MinStops {
		return s
	}
	if s.IndexOf(id) < 0 {
		return s
	}

	stops := make([]ColorStop, 0, len(s.ColorStops)-1)
	for _, stop := range s.ColorStops {
		if stop.ID != id {
			stops = append(stops, stop)
		}
	}
	s.ColorStops = stops
	return s
}

// SetColor, SetPosition and SetOpacity build single-field patches.
func SetColor(color string) StopPatch { return StopPatch{Color: &color} }

func SetPosition(position float64) StopPatch { return StopPatch{Position: &position} }

func SetOpacity(opacity float64) StopPatch { return StopPatch{Opacity: &opacity} }

// Sorted returns a clone of s with its stops ordered by position.
func (s State) Sorted() State {
	out := s.Clone()
	sortStops(out.ColorStops)
	return out
}

// sortStops orders stops by position; ties keep their relative order.
func sortStops(stops []ColorStop) {
	slices.SortStableFunc(stops, func(a, b ColorStop) int {
		return cmp.Compare(a.Position, b.Position)
	})
}
