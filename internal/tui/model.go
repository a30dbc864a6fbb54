// Package tui implements the interactive gradient editor.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/prism/internal/clipboard"
	"github.com/alexisbeaulieu97/prism/internal/editor"
	"github.com/alexisbeaulieu97/prism/internal/export"
	"github.com/alexisbeaulieu97/prism/internal/gradient"
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/presets"
)

// Pane identifies the section of the editor receiving keys.
type Pane int

const (
	PaneStops Pane = iota
	PaneControls
	PanePresets
	PaneExport
)

var paneCount = int(PaneExport) + 1

func (p Pane) String() string {
	switch p {
	case PaneStops:
		return "Color stops"
	case PaneControls:
		return "Controls"
	case PanePresets:
		return "Presets"
	case PaneExport:
		return "Export"
	default:
		return "Unknown"
	}
}

// Control is a row of the controls pane.
type Control int

const (
	ControlType Control = iota
	ControlDirection
	ControlAngle
	ControlEasing
	ControlSaturation
)

var controlCount = int(ControlSaturation) + 1

const (
	defaultWidth   = 72
	minBarWidth    = 10
	presetWindow   = 8
	angleStep      = 1
	saturationStep = 1
	positionStep   = 1
	opacityStep    = 0.1
	bigStepFactor  = 10
)

// Options configures a new editor model.
type Options struct {
	State     gradient.State
	Theme     editor.Theme
	Format    export.Format
	Clipboard clipboard.Writer
	Logger    *logger.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the bubbletea model of the gradient editor.
type Model struct {
	session   editor.Session
	clipboard clipboard.Writer
	log       *logger.Logger
	now       func() time.Time

	keys     keyMap
	help     help.Model
	hexInput textinput.Model

	focus        Pane
	control      Control
	presets      []presets.Preset
	presetCursor int
	format       export.Format
	editingHex   bool
	copySeq      int
	status       string
	width        int
	quitting     bool
}

// New builds the editor model.
func New(opts Options) Model {
	state := opts.State
	if len(state.ColorStops) == 0 {
		state = gradient.Default()
	}

	session := editor.New(state)
	if opts.Theme == editor.ThemeLight {
		session = session.ToggleTheme()
	}

	format := opts.Format
	if format == "" {
		format = export.FormatCSS
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	input := textinput.New()
	input.Placeholder = "#rrggbb"
	input.CharLimit = 7
	input.Prompt = "hex: "

	return Model{
		session:   session,
		clipboard: opts.Clipboard,
		log:       log.With("component", "tui"),
		now:       now,
		keys:      defaultKeyMap(),
		help:      help.New(),
		hexInput:  input,
		presets:   presets.All(),
		format:    format,
		width:     defaultWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Session returns the current editing session.
func (m Model) Session() editor.Session {
	return m.session
}

// State returns the gradient being edited.
func (m Model) State() gradient.State {
	return m.session.State
}

// Focus returns the pane receiving keys.
func (m Model) Focus() Pane {
	return m.focus
}

// Format returns the selected export format.
func (m Model) Format() export.Format {
	return m.format
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) barWidth() int {
	w := m.width - 4
	if w < minBarWidth {
		return minBarWidth
	}
	return w
}
