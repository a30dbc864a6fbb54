package presets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/gradient"
	"github.com/alexisbeaulieu97/prism/internal/render"
)

func TestCatalogLoads(t *testing.T) {
	t.Parallel()

	all := All()
	require.Len(t, all, 46)
	for _, p := range all {
		require.NoError(t, gradient.Validate(p.Gradient), p.ID)
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{
		"Nature", "Neon", "Pastel", "Retro", "Modern", "Warm", "Cool", "Metallic", "Abstract",
	}, Categories())
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	nature := ByCategory("nature")
	require.Len(t, nature, 5)
	require.Equal(t, "forest", nature[0].ID)

	require.Len(t, ByCategory("Neon"), 7)
	require.Empty(t, ByCategory("Unknown"))
}

func TestByIDAppliesOverrides(t *testing.T) {
	t.Parallel()

	sunset, ok := ByID("sunset")
	require.True(t, ok)
	require.Equal(t, "Sunset", sunset.Name)
	require.Equal(t, gradient.TypeLinear, sunset.Gradient.Type)
	require.Equal(t, gradient.DirectionRight, sunset.Gradient.Direction)
	require.Len(t, sunset.Gradient.ColorStops, 3)
	require.Equal(t, "#FF512F", sunset.Gradient.ColorStops[0].Color)
	require.Equal(t, 1.0, sunset.Gradient.ColorStops[0].Opacity)

	electric, ok := ByID("electric")
	require.True(t, ok)
	require.Equal(t, 45, electric.Gradient.Angle)

	vintage, ok := ByID("vintage")
	require.True(t, ok)
	require.Equal(t, -30, vintage.Gradient.SaturationAdjustment)
	require.Equal(t,
		"linear-gradient(to right, rgba(206,206,206,1) 0%, rgba(170,174,184,1) 100%)",
		render.GradientCSS(vintage.Gradient))

	_, ok = ByID("nope")
	require.False(t, ok)
}

func TestPresetsAreIndependentCopies(t *testing.T) {
	t.Parallel()

	first, _ := ByID("ocean")
	second, _ := ByID("ocean")
	require.NotEqual(t, first.Gradient.ColorStops[0].ID, second.Gradient.ColorStops[0].ID)

	first.Gradient.ColorStops[0].Color = "#000000"
	again, _ := ByID("ocean")
	require.Equal(t, "#1A2980", again.Gradient.ColorStops[0].Color)

	applied := Apply(second)
	require.Equal(t, second.Gradient.ColorStops[0].Color, applied.ColorStops[0].Color)
	require.NotEqual(t, second.Gradient.ColorStops[0].ID, applied.ColorStops[0].ID)
	applied.ColorStops[1].Color = "#ffffff"
	require.Equal(t, "#26D0CE", second.Gradient.ColorStops[1].Color)
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	t.Parallel()

	_, err := parse([]byte("- id: a\n  name: A\n"))
	require.Error(t, err)

	dup := `- id: a
  name: A
  category: X
  gradient: {}
- id: a
  name: B
  category: X
  gradient: {}
`
	_, err = parse([]byte(dup))
	require.ErrorContains(t, err, "duplicate")

	bad := `- id: a
  name: A
  category: X
  gradient:
    colorStops:
      - { color: "#zzzzzz", position: 0 }
      - { color: "#000000", position: 100 }
`
	_, err = parse([]byte(bad))
	require.ErrorContains(t, err, "preset a")
}
