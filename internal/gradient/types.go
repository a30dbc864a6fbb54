package gradient

import "slices"

// Type selects the CSS gradient function.
type Type string

const (
	TypeLinear Type = "linear"
	TypeRadial Type = "radial"
	TypeConic  Type = "conic"
)

// Types lists every supported gradient type in display order.
var Types = []Type{TypeLinear, TypeRadial, TypeConic}

// Direction is a named compass direction for linear gradients, or
// DirectionCustom to use the explicit angle.
type Direction string

const (
	DirectionTop         Direction = "to top"
	DirectionRight       Direction = "to right"
	DirectionBottom      Direction = "to bottom"
	DirectionLeft        Direction = "to left"
	DirectionTopRight    Direction = "to top right"
	DirectionBottomRight Direction = "to bottom right"
	DirectionBottomLeft  Direction = "to bottom left"
	DirectionTopLeft     Direction = "to top left"
	DirectionCustom      Direction = "custom"
)

// Directions lists the direction choices in the order the editor cycles them.
var Directions = []Direction{
	DirectionTop,
	DirectionTopRight,
	DirectionRight,
	DirectionBottomRight,
	DirectionBottom,
	DirectionBottomLeft,
	DirectionLeft,
	DirectionTopLeft,
	DirectionCustom,
}

// Easing remaps stop positions before they are written out.
type Easing string

const (
	EasingNone      Easing = "none"
	EasingEaseIn    Easing = "ease-in"
	EasingEaseOut   Easing = "ease-out"
	EasingEaseInOut Easing = "ease-in-out"
)

// Easings lists every easing curve.
var Easings = []Easing{EasingNone, EasingEaseIn, EasingEaseOut, EasingEaseInOut}

const (
	// MinStops is the smallest number of stops a gradient may hold.
	MinStops = 2
	// MaxStops is the largest number of stops a gradient may hold.
	MaxStops = 10

	MinSaturation = -50
	MaxSaturation = 50
	MaxAngle      = 360
)

// ColorStop anchors a color at a percentage along the gradient axis.
type ColorStop struct {
	ID       string
	Color    string  `validate:"required,hexcolor6"`
	Position float64 `validate:"gte=0,lte=100"`
	Opacity  float64 `validate:"gte=0,lte=1"`
}

// State is the complete declarative description of a gradient. Every derived
// artifact (CSS, SVG, snippets, previews) is computed from it on demand.
type State struct {
	Type                 Type        `validate:"gradient_type"`
	ColorStops           []ColorStop `validate:"min=2,max=10,dive"`
	Direction            Direction   `validate:"direction"`
	Angle                int         `validate:"gte=0,lte=360"`
	Easing               Easing      `validate:"easing"`
	SaturationAdjustment int         `validate:"gte=-50,lte=50"`
}

// Clone returns a deep copy that shares no stop storage with s.
func (s State) Clone() State {
	out := s
	out.ColorStops = slices.Clone(s.ColorStops)
	return out
}

// Stop returns the stop with the given id.
func (s State) Stop(id string) (ColorStop, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return ColorStop{}, false
	}
	return s.ColorStops[i], true
}

// IndexOf returns the index of the stop with the given id, or -1.
func (s State) IndexOf(id string) int {
	return slices.IndexFunc(s.ColorStops, func(stop ColorStop) bool { return stop.ID == id })
}

// UsesAngle reports whether Angle affects the rendered gradient.
func (s State) UsesAngle() bool {
	return s.Type == TypeConic || (s.Type == TypeLinear && s.Direction == DirectionCustom)
}

// Valid reports whether t is a known gradient type.
func (t Type) Valid() bool { return slices.Contains(Types, t) }

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool { return slices.Contains(Directions, d) }

// Valid reports whether e is a known easing.
func (e Easing) Valid() bool { return slices.Contains(Easings, e) }
