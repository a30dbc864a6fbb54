package config

import (
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/prism/internal/gradient"
)

// Document is the on-disk form of a gradient. Keys mirror gradient.State;
// stop identifiers are runtime only and never persisted.
type Document struct {
	Name                 string         `yaml:"name,omitempty" json:"name,omitempty"`
	Type                 string         `yaml:"type" json:"type"`
	Direction            string         `yaml:"direction" json:"direction"`
	Angle                int            `yaml:"angle" json:"angle"`
	Easing               string         `yaml:"easing" json:"easing"`
	SaturationAdjustment int            `yaml:"saturationAdjustment" json:"saturationAdjustment"`
	ColorStops           []StopDocument `yaml:"colorStops" json:"colorStops"`
}

// StopDocument is a single persisted color stop.
type StopDocument struct {
	Color    string  `yaml:"color" json:"color"`
	Position float64 `yaml:"position" json:"position"`
	Opacity  float64 `yaml:"opacity" json:"opacity"`
}

// DefaultDocument returns the document form of gradient.Default.
func DefaultDocument() Document {
	return FromState("", gradient.Default())
}

// UnmarshalYAML starts from DefaultDocument so omitted keys keep their
// default values.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	type rawDocument Document
	raw := rawDocument(DefaultDocument())
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*d = Document(raw)
	return nil
}

// UnmarshalYAML defaults a missing opacity to fully opaque.
func (s *StopDocument) UnmarshalYAML(node *yaml.Node) error {
	type rawStop StopDocument
	raw := rawStop{Opacity: 1}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*s = StopDocument(raw)
	return nil
}

// State converts the document into a gradient with fresh stop identifiers,
// ordered by position.
func (d Document) State() gradient.State {
	stops := make([]gradient.ColorStop, 0, len(d.ColorStops))
	for _, stop := range d.ColorStops {
		cs := gradient.NewColorStop(stop.Position, stop.Color)
		cs.Opacity = stop.Opacity
		stops = append(stops, cs)
	}

	return gradient.State{
		Type:                 gradient.Type(d.Type),
		ColorStops:           stops,
		Direction:            gradient.Direction(d.Direction),
		Angle:                d.Angle,
		Easing:               gradient.Easing(d.Easing),
		SaturationAdjustment: d.SaturationAdjustment,
	}.Sorted()
}

// FromState builds the persisted form of s.
func FromState(name string, s gradient.State) Document {
	stops := make([]StopDocument, 0, len(s.ColorStops))
	for _, stop := range s.ColorStops {
		stops = append(stops, StopDocument{
			Color:    stop.Color,
			Position: stop.Position,
			Opacity:  stop.Opacity,
		})
	}

	return Document{
		Name:                 name,
		Type:                 string(s.Type),
		Direction:            string(s.Direction),
		Angle:                s.Angle,
		Easing:               string(s.Easing),
		SaturationAdjustment: s.SaturationAdjustment,
		ColorStops:           stops,
	}
}
