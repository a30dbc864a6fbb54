package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/gradient"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	partial := `name: Ocean
colorStops:
  - color: "#2E3192"
    position: 100
  - color: "#1BFFFF"
    position: 0
    opacity: 0.5
`

	badSyntax := `type: linear
angle: [1, 2]
`

	badType := `type: diamond
`

	badColor := `colorStops:
  - color: "#fff"
    position: 0
  - color: "#000000"
    position: 100
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc Document, err error)
	}{
		{
			name:     "omitted fields take defaults",
			contents: partial,
			assert: func(t *testing.T, doc Document, err error) {
				require.NoError(t, err)
				require.Equal(t, "Ocean", doc.Name)
				require.Equal(t, "linear", doc.Type)
				require.Equal(t, "to right", doc.Direction)
				require.Equal(t, 90, doc.Angle)
				require.Equal(t, "none", doc.Easing)
				require.Len(t, doc.ColorStops, 2)
				require.Equal(t, 1.0, doc.ColorStops[0].Opacity)
				require.Equal(t, 0.5, doc.ColorStops[1].Opacity)

				state := doc.State()
				require.Equal(t, "#1BFFFF", state.ColorStops[0].Color)
				require.Equal(t, "#2E3192", state.ColorStops[1].Color)
				require.NotEmpty(t, state.ColorStops[0].ID)
			},
		},
		{
			name:     "syntax error reports the line",
			contents: badSyntax,
			assert: func(t *testing.T, _ Document, err error) {
				var pe *prismerrors.ParseError
				require.True(t, errors.As(err, &pe))
				require.Equal(t, 2, pe.Line)
			},
		},
		{
			name:     "unknown type is a validation error",
			contents: badType,
			assert: func(t *testing.T, _ Document, err error) {
				var ve *prismerrors.ValidationError
				require.True(t, errors.As(err, &ve))
				require.Equal(t, "type", ve.Field)
			},
		},
		{
			name:     "short hex is rejected",
			contents: badColor,
			assert: func(t *testing.T, _ Document, err error) {
				var ve *prismerrors.ValidationError
				require.True(t, errors.As(err, &ve))
				require.Equal(t, "colorStops[0].color", ve.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "gradient.yaml", tc.contents)
			doc, err := LoadDocument(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := LoadDocument(path)

	var pe *prismerrors.ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, path, pe.Path)
	require.Zero(t, pe.Line)
}

func TestSaveDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	state := gradient.Default().
		WithType(gradient.TypeConic).
		WithAngle(45).
		WithEasing(gradient.EasingEaseInOut).
		WithSaturation(-20)
	state = gradient.AddColorStop(state, 40, "#123456")
	state = gradient.UpdateColorStop(state, state.ColorStops[1].ID, gradient.SetOpacity(0.25))

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, SaveDocument(path, FromState("Saved", state)))

	_, err := os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))

	loaded, err := LoadState(path)
	require.NoError(t, err)
	require.Equal(t, state.Type, loaded.Type)
	require.Equal(t, state.Angle, loaded.Angle)
	require.Equal(t, state.Easing, loaded.Easing)
	require.Equal(t, state.SaturationAdjustment, loaded.SaturationAdjustment)
	require.Len(t, loaded.ColorStops, 3)
	for i, stop := range state.ColorStops {
		require.Equal(t, stop.Color, loaded.ColorStops[i].Color)
		require.Equal(t, stop.Position, loaded.ColorStops[i].Position)
		require.Equal(t, stop.Opacity, loaded.ColorStops[i].Opacity)
		require.NotEqual(t, stop.ID, loaded.ColorStops[i].ID)
	}
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 0, extractLine(errors.New("no position")))
	require.Equal(t, 12, extractLine(errors.New("yaml: line 12: did not find expected key")))
}
