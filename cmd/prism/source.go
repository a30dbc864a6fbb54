package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/gradient"
	"github.com/alexisbeaulieu97/prism/internal/presets"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// gradientSource names where a command reads its gradient from. A file wins
// over a preset; with neither, the settings preset and then the default
// gradient are used.
type gradientSource struct {
	file   string
	preset string
}

func (s gradientSource) validate() error {
	if strings.TrimSpace(s.file) != "" && strings.TrimSpace(s.preset) != "" {
		return fmt.Errorf("--file and --preset are mutually exclusive")
	}
	return nil
}

func (s gradientSource) load(settings config.Settings) (gradient.State, string, error) {
	if err := s.validate(); err != nil {
		return gradient.State{}, "", err
	}

	if file := strings.TrimSpace(s.file); file != "" {
		state, err := config.LoadState(file)
		if err != nil {
			return gradient.State{}, "", err
		}
		return state, file, nil
	}

	id := strings.TrimSpace(s.preset)
	if id == "" {
		id = settings.Preset
	}
	if id == "" {
		return gradient.Default(), "default", nil
	}

	p, err := lookupPreset(id)
	if err != nil {
		return gradient.State{}, "", err
	}
	return presets.Apply(p), "preset " + p.ID, nil
}

func lookupPreset(id string) (presets.Preset, error) {
	p, ok := presets.ByID(id)
	if !ok {
		return presets.Preset{}, prismerrors.NewValidationError("preset", fmt.Sprintf("unknown preset %q (see 'prism presets list')", id), nil)
	}
	return p, nil
}
