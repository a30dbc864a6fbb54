package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/editor"
	"github.com/alexisbeaulieu97/prism/internal/gradient"
)

func TestViewShowsPanes(t *testing.T) {
	m := newTestModel(nil)
	view := m.View()

	require.Contains(t, view, "prism • linear gradient")
	require.Contains(t, view, "Color stops")
	require.Contains(t, view, "Controls")
	require.Contains(t, view, "Presets")
	require.Contains(t, view, "Export")
	require.Contains(t, view, "#ff5f6d")
	require.Contains(t, view, ".gradient-element")
	require.Contains(t, view, "rgb(255, 95, 109)")
	require.Contains(t, view, "(unused)")
}

func TestViewShowsAngleForConic(t *testing.T) {
	m := New(Options{State: gradient.Default().WithType(gradient.TypeConic), Theme: editor.ThemeLight})

	view := m.View()
	require.Contains(t, view, "prism • conic gradient")
	require.NotContains(t, view, "(unused)")
	require.Equal(t, editor.ThemeLight, m.Session().Theme)
}

func TestDescribeColor(t *testing.T) {
	require.Equal(t, "rgb(0, 128, 0)  hsl(120, 100%, 25%)", describeColor("#008000"))
	require.Equal(t, "oops", describeColor("oops"))
}

func TestCycleHelpers(t *testing.T) {
	require.Equal(t, gradient.TypeLinear, cycle(gradient.Types, gradient.TypeConic, 1))
	require.Equal(t, gradient.TypeConic, cycle(gradient.Types, gradient.TypeLinear, -1))
	require.Equal(t, gradient.TypeLinear, cycle(gradient.Types, gradient.Type("bogus"), 1))
	require.Equal(t, 5, clampInt(9, 0, 5))
	require.Equal(t, 0, clampInt(-3, 0, 5))
}
