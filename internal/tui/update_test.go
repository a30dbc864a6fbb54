package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/clipboard"
	"github.com/alexisbeaulieu97/prism/internal/editor"
	"github.com/alexisbeaulieu97/prism/internal/export"
	"github.com/alexisbeaulieu97/prism/internal/gradient"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestModel(cb clipboard.Writer) Model {
	return New(Options{
		State:     gradient.Default(),
		Clipboard: cb,
		Now:       func() time.Time { return fixedNow },
	})
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(nil)

	require.Equal(t, PaneStops, m.Focus())
	require.Equal(t, export.FormatCSS, m.Format())
	require.Len(t, m.State().ColorStops, 2)
	require.Equal(t, m.State().ColorStops[0].ID, m.Session().ActiveID)
	require.Nil(t, m.Init())
}

func TestPaneCycling(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(t, m, "tab")
	require.Equal(t, PaneControls, m.Focus())
	m, _ = press(t, m, "tab", "tab", "tab")
	require.Equal(t, PaneStops, m.Focus())
	m, _ = press(t, m, "shift+tab")
	require.Equal(t, PaneExport, m.Focus())
}

func TestStopEditing(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(t, m, "a")
	require.Len(t, m.State().ColorStops, 3)
	active, ok := m.Session().Active()
	require.True(t, ok)
	require.Equal(t, 50.0, active.Position)

	m, _ = press(t, m, "up")
	active, _ = m.Session().Active()
	require.Equal(t, 0.0, active.Position)

	m, _ = press(t, m, "right", "L")
	active, _ = m.Session().Active()
	require.Equal(t, 11.0, active.Position)

	m, _ = press(t, m, "[", "[")
	active, _ = m.Session().Active()
	require.Equal(t, 0.8, active.Opacity)

	m, _ = press(t, m, "]", "]", "]", "]")
	active, _ = m.Session().Active()
	require.Equal(t, 1.0, active.Opacity)

	m, _ = press(t, m, "d")
	require.Len(t, m.State().ColorStops, 2)
	require.Equal(t, m.State().ColorStops[0].ID, m.Session().ActiveID)

	m, _ = press(t, m, "d")
	require.Len(t, m.State().ColorStops, 2)
	require.Contains(t, m.status, "at least 2")
}

func TestNudgeStaysBetweenNeighbours(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(t, m, "a", "L", "L", "L", "L", "L", "L")
	active, _ := m.Session().Active()
	require.Equal(t, 100.0, active.Position)
	require.Equal(t, 1, m.State().IndexOf(active.ID))
}

func TestAddStopLimit(t *testing.T) {
	m := newTestModel(nil)

	for range gradient.MaxStops {
		m, _ = press(t, m, "a")
	}
	require.Len(t, m.State().ColorStops, gradient.MaxStops)
	require.Contains(t, m.status, "at most 10")
}

func TestHexInput(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(t, m, "e")
	require.True(t, m.editingHex)
	require.Equal(t, "#ff5f6d", m.hexInput.Value())

	m.hexInput.SetValue("00FF00")
	m, _ = press(t, m, "enter")
	require.False(t, m.editingHex)
	active, _ := m.Session().Active()
	require.Equal(t, "#00ff00", active.Color)

	m, _ = press(t, m, "e")
	m.hexInput.SetValue("#zzz")
	m, _ = press(t, m, "enter")
	active, _ = m.Session().Active()
	require.Equal(t, "#00ff00", active.Color)
	require.Contains(t, m.status, "Invalid color")

	m, _ = press(t, m, "e")
	m.hexInput.SetValue("#123456")
	m, _ = press(t, m, "esc")
	active, _ = m.Session().Active()
	require.Equal(t, "#00ff00", active.Color)
}

func TestHexInputSwallowsShortcuts(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(t, m, "e", "q")
	require.True(t, m.editingHex)
	require.False(t, m.Quitting())
}

func TestControls(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(t, m, "tab", "right")
	require.Equal(t, gradient.TypeRadial, m.State().Type)
	m, _ = press(t, m, "left", "left")
	require.Equal(t, gradient.TypeConic, m.State().Type)

	m, _ = press(t, m, "down", "right")
	require.Equal(t, gradient.DirectionBottomRight, m.State().Direction)

	m, _ = press(t, m, "down", "L", "right")
	require.Equal(t, 101, m.State().Angle)
	for range 30 {
		m, _ = press(t, m, "L")
	}
	require.Equal(t, gradient.MaxAngle, m.State().Angle)

	m, _ = press(t, m, "down", "right")
	require.Equal(t, gradient.EasingEaseIn, m.State().Easing)

	m, _ = press(t, m, "down", "H", "left")
	require.Equal(t, -11, m.State().SaturationAdjustment)
	for range 10 {
		m, _ = press(t, m, "H")
	}
	require.Equal(t, gradient.MinSaturation, m.State().SaturationAdjustment)

	m, _ = press(t, m, "down")
	require.Equal(t, ControlType, m.control)
}

func TestApplyPreset(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(t, m, "tab", "tab", "down", "enter")
	require.Len(t, m.State().ColorStops, 3)
	require.Equal(t, "#FF512F", m.State().ColorStops[0].Color)
	require.Equal(t, m.State().ColorStops[0].ID, m.Session().ActiveID)
	require.Contains(t, m.status, "Sunset")

	m, _ = press(t, m, "R")
	require.Equal(t, "#ff5f6d", m.State().ColorStops[0].Color)
}

func TestCopyWritesExportCode(t *testing.T) {
	var copied []string
	m := newTestModel(clipboard.Func(func(text string) error {
		copied = append(copied, text)
		return nil
	}))

	m, cmd := press(t, m, "f", "c")
	require.NotNil(t, cmd)
	require.Equal(t, export.FormatReact, m.Format())
	require.Equal(t, []string{export.ReactCode(m.State())}, copied)
	require.Equal(t, editor.CopyCopied, m.Session().CopyStatus(fixedNow))
	require.Contains(t, m.View(), "Copied to clipboard")

	updated, _ := m.Update(copyResetMsg{seq: 1})
	m = updated.(Model)
	require.Equal(t, editor.CopyIdle, m.Session().CopyStatus(fixedNow))
}

func TestStaleCopyResetIsIgnored(t *testing.T) {
	m := newTestModel(clipboard.Func(func(string) error { return nil }))

	m, _ = press(t, m, "c", "c")
	updated, _ := m.Update(copyResetMsg{seq: 1})
	m = updated.(Model)
	require.Equal(t, editor.CopyCopied, m.Session().CopyStatus(fixedNow))

	updated, _ = m.Update(copyResetMsg{seq: 2})
	m = updated.(Model)
	require.Equal(t, editor.CopyIdle, m.Session().CopyStatus(fixedNow))
}

func TestCopyFailure(t *testing.T) {
	failure := errors.New("terminal gone")
	m := newTestModel(clipboard.Func(func(string) error { return failure }))

	m, cmd := press(t, m, "c")
	require.NotNil(t, cmd)
	require.Equal(t, editor.CopyFailed, m.Session().CopyStatus(fixedNow))
	require.ErrorIs(t, m.Session().CopyError(), failure)
	require.Contains(t, m.View(), "Copy failed")

	noClipboard := newTestModel(nil)
	noClipboard, _ = press(t, noClipboard, "c")
	require.Equal(t, editor.CopyFailed, noClipboard.Session().CopyStatus(fixedNow))
}

func TestExportPaneFormatCycling(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(t, m, "shift+tab", "left")
	require.Equal(t, export.FormatSVG, m.Format())
	m, _ = press(t, m, "right", "right")
	require.Equal(t, export.FormatReact, m.Format())
}

func TestThemeHelpAndQuit(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(t, m, "t")
	require.Equal(t, editor.ThemeLight, m.Session().Theme)

	m, _ = press(t, m, "?")
	require.True(t, m.help.ShowAll)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	require.Equal(t, 116, m.barWidth())

	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	require.True(t, m.Quitting())
	require.Empty(t, m.View())
}
