package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/gradient"
)

func TestGradientCSSDefault(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"linear-gradient(to right, rgba(255,95,109,1) 0%, rgba(255,195,113,1) 100%)",
		GradientCSS(gradient.Default()),
	)
}

func TestGradientCSSByType(t *testing.T) {
	t.Parallel()

	base := gradient.Default()
	cases := []struct {
		name  string
		state gradient.State
		want  string
	}{
		{
			name:  "radial ignores direction and angle",
			state: base.WithType(gradient.TypeRadial).WithDirection(gradient.DirectionCustom).WithAngle(33),
			want:  "radial-gradient(circle, rgba(255,95,109,1) 0%, rgba(255,195,113,1) 100%)",
		},
		{
			name:  "conic uses angle",
			state: base.WithType(gradient.TypeConic).WithAngle(45),
			want:  "conic-gradient(from 45deg, rgba(255,95,109,1) 0%, rgba(255,195,113,1) 100%)",
		},
		{
			name:  "linear custom direction uses angle",
			state: base.WithDirection(gradient.DirectionCustom).WithAngle(135),
			want:  "linear-gradient(135deg, rgba(255,95,109,1) 0%, rgba(255,195,113,1) 100%)",
		},
		{
			name:  "linear named direction ignores angle",
			state: base.WithDirection(gradient.DirectionBottomLeft).WithAngle(135),
			want:  "linear-gradient(to bottom left, rgba(255,95,109,1) 0%, rgba(255,195,113,1) 100%)",
		},
		{
			name:  "unknown type falls back to linear to right",
			state: base.WithType("diamond").WithDirection(gradient.DirectionTop),
			want:  "linear-gradient(to right, rgba(255,95,109,1) 0%, rgba(255,195,113,1) 100%)",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, GradientCSS(tc.state))
		})
	}
}

func TestGradientCSSAppliesOpacityAndSaturation(t *testing.T) {
	t.Parallel()

	s := gradient.Default()
	s = gradient.UpdateColorStop(s, s.ColorStops[1].ID, gradient.SetOpacity(0.5))
	s = s.WithSaturation(-30)

	require.Equal(t,
		"linear-gradient(to right, rgba(231,119,129,1) 0%, rgba(234,192,134,0.5) 100%)",
		GradientCSS(s),
	)
	require.Equal(t, "#ff5f6d", s.ColorStops[0].Color, "state colors are never rewritten")
}

func TestGradientCSSEasedPositions(t *testing.T) {
	t.Parallel()

	s := gradient.AddColorStop(gradient.Default(), 50, "#000000")
	s = s.WithEasing(gradient.EasingEaseIn)

	require.Equal(t,
		"linear-gradient(to right, rgba(255,95,109,1) 0%, rgba(0,0,0,1) 25%, rgba(255,195,113,1) 100%)",
		GradientCSS(s),
	)
	require.Equal(t, 50.0, s.ColorStops[1].Position)
}

func TestGradientCSSIsIdempotent(t *testing.T) {
	t.Parallel()

	s := gradient.AddColorStop(gradient.Default(), 30, "#123456").WithEasing(gradient.EasingEaseInOut).WithSaturation(12)
	require.Equal(t, GradientCSS(s), GradientCSS(s))
}

func TestEasedStopsNoneLeavesPositions(t *testing.T) {
	t.Parallel()

	s := gradient.Default()
	for _, p := range []float64{3, 17.5, 33, 50, 66.6, 99} {
		s = gradient.AddColorStop(s, p, "#abcdef")
	}
	eased := EasedStops(s)
	for i := range eased {
		require.Equal(t, s.ColorStops[i].Position, eased[i].Position)
	}
}

func TestAdjustedStopsZeroKeepsColorsVerbatim(t *testing.T) {
	t.Parallel()

	s := gradient.Default()
	s = gradient.UpdateColorStop(s, s.ColorStops[0].ID, gradient.SetColor("#FF5F6D"))
	adjusted := AdjustedStops(s)
	require.Equal(t, "#FF5F6D", adjusted[0].Color)
}

func TestApplyOpacity(t *testing.T) {
	t.Parallel()

	s := gradient.Default()
	s = gradient.UpdateColorStop(s, s.ColorStops[0].ID, gradient.SetOpacity(0.25))
	out := ApplyOpacity(s.ColorStops)
	require.Equal(t, "rgba(255,95,109,0.25)", out[0].Color)
	require.Equal(t, "rgba(255,195,113,1)", out[1].Color)
	require.Equal(t, "#ff5f6d", s.ColorStops[0].Color)
}
