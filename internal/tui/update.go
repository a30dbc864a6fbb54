package tui

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/prism/internal/color"
	"github.com/alexisbeaulieu97/prism/internal/editor"
	"github.com/alexisbeaulieu97/prism/internal/export"
	"github.com/alexisbeaulieu97/prism/internal/gradient"
	"github.com/alexisbeaulieu97/prism/internal/presets"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

var errNoClipboard = errors.New("no clipboard configured")

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case copyResetMsg:
		if msg.seq == m.copySeq {
			m.session = m.session.ClearCopyStatus()
		}
		return m, nil

	case tea.KeyMsg:
		if m.editingHex {
			return m.handleHexKeys(msg)
		}
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextPane):
		m.focus = Pane((int(m.focus) + 1) % paneCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevPane):
		m.focus = Pane((int(m.focus) + paneCount - 1) % paneCount)
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.session = m.session.ToggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyCode()
	case key.Matches(msg, m.keys.Format):
		m.format = cycle(export.Formats, m.format, 1)
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.session = m.session.Reset()
		m.status = "Reset to the default gradient"
		return m, nil
	case key.Matches(msg, m.keys.AddStop):
		return m.addStop(), nil
	}

	switch m.focus {
	case PaneStops:
		return m.handleStopKeys(msg)
	case PaneControls:
		return m.handleControlKeys(msg), nil
	case PanePresets:
		return m.handlePresetKeys(msg), nil
	case PaneExport:
		return m.handleExportKeys(msg), nil
	default:
		return m, nil
	}
}

func (m Model) handleStopKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.session = m.session.SelectPrev()
	case key.Matches(msg, m.keys.Down):
		m.session = m.session.SelectNext()
	case key.Matches(msg, m.keys.Left):
		m = m.nudgeActive(-positionStep)
	case key.Matches(msg, m.keys.Right):
		m = m.nudgeActive(positionStep)
	case key.Matches(msg, m.keys.BigLeft):
		m = m.nudgeActive(-positionStep * bigStepFactor)
	case key.Matches(msg, m.keys.BigRight):
		m = m.nudgeActive(positionStep * bigStepFactor)
	case key.Matches(msg, m.keys.OpacityDown):
		m = m.adjustOpacity(-opacityStep)
	case key.Matches(msg, m.keys.OpacityUp):
		m = m.adjustOpacity(opacityStep)
	case key.Matches(msg, m.keys.Random):
		m.session = m.session.UpdateActive(gradient.SetColor(color.RandomColor()))
	case key.Matches(msg, m.keys.RemoveStop):
		if len(m.session.State.ColorStops) <= gradient.MinStops {
			m.status = fmt.Sprintf("A gradient needs at least %d stops", gradient.MinStops)
			return m, nil
		}
		m.session = m.session.RemoveStop(m.session.ActiveID)
	case key.Matches(msg, m.keys.EditHex):
		active, ok := m.session.Active()
		if !ok {
			return m, nil
		}
		m.editingHex = true
		m.status = ""
		m.hexInput.SetValue(active.Color)
		m.hexInput.CursorEnd()
		return m, m.hexInput.Focus()
	}
	return m, nil
}

func (m Model) handleHexKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editingHex = false
		m.hexInput.Blur()
		value := strings.TrimSpace(m.hexInput.Value())
		if !strings.HasPrefix(value, "#") {
			value = "#" + value
		}
		rgb, err := color.ParseHex(value)
		if err != nil {
			m.status = fmt.Sprintf("Invalid color %q: use #rrggbb", m.hexInput.Value())
			return m, nil
		}
		m.session = m.session.UpdateActive(gradient.SetColor(rgb.Hex()))
		return m, nil
	case tea.KeyEsc:
		m.editingHex = false
		m.hexInput.Blur()
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)
	return m, cmd
}

func (m Model) handleControlKeys(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.control = Control((int(m.control) + controlCount - 1) % controlCount)
	case key.Matches(msg, m.keys.Down):
		m.control = Control((int(m.control) + 1) % controlCount)
	case key.Matches(msg, m.keys.Left):
		m = m.adjustControl(-1, false)
	case key.Matches(msg, m.keys.Right):
		m = m.adjustControl(1, false)
	case key.Matches(msg, m.keys.BigLeft):
		m = m.adjustControl(-1, true)
	case key.Matches(msg, m.keys.BigRight):
		m = m.adjustControl(1, true)
	}
	return m
}

func (m Model) handlePresetKeys(msg tea.KeyMsg) Model {
	if len(m.presets) == 0 {
		return m
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.presetCursor = max(0, m.presetCursor-1)
	case key.Matches(msg, m.keys.Down):
		m.presetCursor = min(len(m.presets)-1, m.presetCursor+1)
	case key.Matches(msg, m.keys.Apply):
		p := m.presets[m.presetCursor]
		m.session = m.session.Replace(presets.Apply(p))
		m.status = fmt.Sprintf("Applied preset %s", p.Name)
		m.log.With("preset", p.ID).Debug("preset applied")
	}
	return m
}

func (m Model) handleExportKeys(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.format = cycle(export.Formats, m.format, -1)
	case key.Matches(msg, m.keys.Right):
		m.format = cycle(export.Formats, m.format, 1)
	}
	return m
}

func (m Model) addStop() Model {
	if len(m.session.State.ColorStops) >= gradient.MaxStops {
		m.status = fmt.Sprintf("A gradient holds at most %d stops", gradient.MaxStops)
		return m
	}
	m.session = m.session.AddSuggestedStop()
	m.status = ""
	return m
}

func (m Model) nudgeActive(delta float64) Model {
	active, ok := m.session.Active()
	if !ok {
		return m
	}
	position := gradient.ClampDragPosition(m.session.State, active.ID, active.Position+delta)
	m.session = m.session.UpdateActive(gradient.SetPosition(position))
	return m
}

func (m Model) adjustOpacity(delta float64) Model {
	active, ok := m.session.Active()
	if !ok {
		return m
	}
	opacity := math.Round((active.Opacity+delta)*10) / 10
	opacity = math.Max(0, math.Min(1, opacity))
	m.session = m.session.UpdateActive(gradient.SetOpacity(opacity))
	return m
}

func (m Model) adjustControl(delta int, big bool) Model {
	step := delta
	if big {
		step *= bigStepFactor
	}

	control := m.control
	m.session = m.session.Update(func(s gradient.State) gradient.State {
		switch control {
		case ControlType:
			return s.WithType(cycle(gradient.Types, s.Type, delta))
		case ControlDirection:
			return s.WithDirection(cycle(gradient.Directions, s.Direction, delta))
		case ControlAngle:
			return s.WithAngle(clampInt(s.Angle+step*angleStep, 0, gradient.MaxAngle))
		case ControlEasing:
			return s.WithEasing(cycle(gradient.Easings, s.Easing, delta))
		case ControlSaturation:
			return s.WithSaturation(clampInt(s.SaturationAdjustment+step*saturationStep, gradient.MinSaturation, gradient.MaxSaturation))
		default:
			return s
		}
	})
	return m
}

func (m Model) copyCode() (tea.Model, tea.Cmd) {
	code, err := export.Generate(m.format, m.session.State)
	if err == nil {
		if m.clipboard == nil {
			err = prismerrors.NewClipboardError("", errNoClipboard)
		} else {
			err = m.clipboard.Write(code)
		}
	}

	now := m.now()
	if err != nil {
		m.log.Warn(err, "copy to clipboard failed")
		m.session = m.session.MarkCopyFailed(now, err)
	} else {
		m.log.With("format", string(m.format)).Debug("export code copied")
		m.session = m.session.MarkCopied(now)
	}

	m.copySeq++
	seq := m.copySeq
	return m, tea.Tick(editor.CopyFeedbackDelay, func(time.Time) tea.Msg {
		return copyResetMsg{seq: seq}
	})
}

// cycle returns the value delta places after current in values, wrapping
// around. Unknown values restart at the first entry.
func cycle[T comparable](values []T, current T, delta int) T {
	i := slices.Index(values, current)
	if i < 0 {
		return values[0]
	}
	n := len(values)
	return values[((i+delta)%n+n)%n]
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
