package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/color"
	"github.com/alexisbeaulieu97/prism/internal/editor"
	"github.com/alexisbeaulieu97/prism/internal/export"
	"github.com/alexisbeaulieu97/prism/internal/gradient"
	"github.com/alexisbeaulieu97/prism/internal/preview"
	"github.com/alexisbeaulieu97/prism/internal/render"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := stylesFor(m.session.Theme)
	state := m.session.State
	width := m.barWidth()

	bar := preview.BarOver(state, width, st.backdrop)
	sections := []string{
		st.title.Render(fmt.Sprintf("prism • %s gradient", state.Type)),
		bar,
		bar,
		preview.StopMarkers(state, width, m.session.ActiveID),
		st.muted.Render(render.GradientCSS(state)),
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPane(st, PaneStops, m.stopsView(st)),
		" ",
		m.renderPane(st, PaneControls, m.controlsView(st)),
	)
	sections = append(sections, top,
		m.renderPane(st, PanePresets, m.presetsView(st)),
		m.renderPane(st, PaneExport, m.exportView(st)),
	)

	if status := m.statusLine(st); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderPane(st styles, pane Pane, body string) string {
	box := st.pane
	if m.focus == pane {
		box = st.focused
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, st.section.Render(pane.String()), body))
}

func (m Model) stopsView(st styles) string {
	var lines []string
	for _, stop := range m.session.State.ColorStops {
		line := fmt.Sprintf("%s %-8s %5s%%  α %s",
			preview.Swatch(stop.Color),
			stop.Color,
			color.FormatNumber(stop.Position),
			color.FormatNumber(stop.Opacity),
		)
		if stop.ID == m.session.ActiveID {
			lines = append(lines, st.active.Render("▸ "+line))
		} else {
			lines = append(lines, "  "+line)
		}
	}

	if m.editingHex {
		lines = append(lines, "", m.hexInput.View())
	} else if active, ok := m.session.Active(); ok {
		lines = append(lines, "", st.muted.Render(describeColor(active.Color)))
	}

	return strings.Join(lines, "\n")
}

// describeColor lists the RGB and HSL forms shown next to the hex value.
func describeColor(hex string) string {
	rgb, err := color.ParseHex(hex)
	if err != nil {
		return hex
	}
	return fmt.Sprintf("%s  %s", rgb, color.RGBToHSL(rgb))
}

func (m Model) controlsView(st styles) string {
	state := m.session.State

	angle := fmt.Sprintf("%d°", state.Angle)
	if !state.UsesAngle() {
		angle = st.muted.Render(angle + " (unused)")
	}

	rows := []struct {
		control Control
		label   string
		value   string
	}{
		{ControlType, "Type", string(state.Type)},
		{ControlDirection, "Direction", string(state.Direction)},
		{ControlAngle, "Angle", angle},
		{ControlEasing, "Easing", string(state.Easing)},
		{ControlSaturation, "Saturation", fmt.Sprintf("%+d", state.SaturationAdjustment)},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		line := fmt.Sprintf("%-11s %s", row.label, row.value)
		if row.control == m.control {
			lines = append(lines, st.active.Render("▸ "+line))
		} else {
			lines = append(lines, "  "+line)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) presetsView(st styles) string {
	if len(m.presets) == 0 {
		return st.muted.Render("no presets")
	}

	start := max(0, m.presetCursor-presetWindow/2)
	end := min(len(m.presets), start+presetWindow)
	start = max(0, end-presetWindow)

	var lines []string
	for i := start; i < end; i++ {
		p := m.presets[i]
		line := fmt.Sprintf("%s %-12s %s", preview.Bar(p.Gradient, 8), p.Name, st.muted.Render(p.Category))
		if i == m.presetCursor {
			lines = append(lines, st.active.Render("▸ ")+line)
		} else {
			lines = append(lines, "  "+line)
		}
	}
	lines = append(lines, st.muted.Render(fmt.Sprintf("%d/%d", m.presetCursor+1, len(m.presets))))
	return strings.Join(lines, "\n")
}

func (m Model) exportView(st styles) string {
	tabs := make([]string, 0, len(export.Formats))
	for _, f := range export.Formats {
		if f == m.format {
			tabs = append(tabs, st.active.Render("["+f.Label()+"]"))
		} else {
			tabs = append(tabs, st.muted.Render(" "+f.Label()+" "))
		}
	}

	code, err := export.Generate(m.format, m.session.State)
	if err != nil {
		code = err.Error()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(tabs, " "),
		st.code.Render(code),
		st.muted.Render(m.format.Description()),
	)
}

func (m Model) statusLine(st styles) string {
	var parts []string
	switch m.session.CopyStatus(m.now()) {
	case editor.CopyCopied:
		parts = append(parts, st.success.Render("✓ Copied to clipboard"))
	case editor.CopyFailed:
		parts = append(parts, st.failure.Render("✗ Copy failed"))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	if n := len(m.session.State.ColorStops); n >= gradient.MaxStops {
		parts = append(parts, st.muted.Render(fmt.Sprintf("%d/%d stops", n, gradient.MaxStops)))
	}
	return strings.Join(parts, "  ")
}
