package gradient

// Default returns the gradient a new editing session starts with.
func Default() State {
	return State{
		Type: TypeLinear,
		ColorStops: []ColorStop{
			NewColorStop(0, "#ff5f6d"),
			NewColorStop(100, "#ffc371"),
		},
		Direction:            DirectionRight,
		Angle:                90,
		Easing:               EasingNone,
		SaturationAdjustment: 0,
	}
}

// WithType returns a copy of s using gradient type t.
func (s State) WithType(t Type) State {
	s.Type = t
	return s
}

// WithDirection returns a copy of s using direction d.
func (s State) WithDirection(d Direction) State {
	s.Direction = d
	return s
}

// WithAngle returns a copy of s with the angle set in degrees.
func (s State) WithAngle(angle int) State {
	s.Angle = angle
	return s
}

// WithEasing returns a copy of s using easing e.
func (s State) WithEasing(e Easing) State {
	s.Easing = e
	return s
}

// WithSaturation returns a copy of s with the saturation adjustment set.
func (s State) WithSaturation(adjustment int) State {
	s.SaturationAdjustment = adjustment
	return s
}
