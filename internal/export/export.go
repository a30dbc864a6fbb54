// Package export wraps the render pipeline output into text targets a user can
// paste into a project: a CSS rule, a styled-components snippet and an SVG
// document.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"math"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/prism/internal/color"
	"github.com/alexisbeaulieu97/prism/internal/gradient"
	"github.com/alexisbeaulieu97/prism/internal/render"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// Format names an export target.
type Format string

const (
	FormatCSS   Format = "css"
	FormatReact Format = "react"
	FormatSVG   Format = "svg"
)

// Formats lists the export targets in the order the editor tabs through them.
var Formats = []Format{FormatCSS, FormatReact, FormatSVG}

// vendorPrefixes are repeated as extra background lines. Only the value is
// prefixed; this mirrors what editors emit, not real prefixed syntax.
var vendorPrefixes = []string{"-webkit-", "-moz-"}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("export").
		Funcs(template.FuncMap{"num": color.FormatNumber}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// ParseFormat resolves a user supplied format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", prismerrors.NewValidationError("format", fmt.Sprintf("unknown export format %q (want css, react or svg)", name), nil)
}

// Extension returns the file extension conventionally used for the format.
func (f Format) Extension() string {
	switch f {
	case FormatReact:
		return ".jsx"
	case FormatSVG:
		return ".svg"
	default:
		return ".css"
	}
}

// Label is the tab title of the format.
func (f Format) Label() string {
	switch f {
	case FormatCSS:
		return "CSS"
	case FormatReact:
		return "React"
	case FormatSVG:
		return "SVG"
	default:
		return string(f)
	}
}

// Description is the hint shown under exported code.
func (f Format) Description() string {
	switch f {
	case FormatCSS:
		return "CSS code includes vendor prefixes for better browser compatibility."
	case FormatReact:
		return "React code uses styled-components. You can easily adapt it to other CSS-in-JS libraries."
	case FormatSVG:
		return "SVG code can be used directly in your HTML or saved as a separate file."
	default:
		return ""
	}
}

// Generate dispatches to the generator for format.
func Generate(format Format, s gradient.State) (string, error) {
	switch format {
	case FormatCSS:
		return CSSCode(s), nil
	case FormatReact:
		return ReactCode(s), nil
	case FormatSVG:
		return SVGCode(s), nil
	default:
		return "", prismerrors.NewValidationError("format", fmt.Sprintf("unknown export format %q", format), nil)
	}
}

// CSSCode renders a .gradient-element rule for s.
func CSSCode(s gradient.State) string {
	return execute("css.tmpl", struct {
		CSS      string
		Prefixes []string
	}{CSS: render.GradientCSS(s), Prefixes: vendorPrefixes})
}

// ReactCode renders a styled-components module whose background is the
// pipeline CSS.
func ReactCode(s gradient.State) string {
	return execute("react.tmpl", struct {
		CSS       string
		Component string
	}{CSS: render.GradientCSS(s), Component: "GradientElement"})
}

// SVGCode renders a standalone SVG document. It reads the stops as stored,
// without easing or saturation adjustment, so it can differ from the CSS
// output for the same state. Conic gradients fall back to a CSS @property
// rule because SVG has no conic paint server. Unknown types yield "".
func SVGCode(s gradient.State) string {
	switch s.Type {
	case gradient.TypeLinear:
		x1, y1, x2, y2 := LinearEndpoints(s.Angle)
		return execute("svg_linear.tmpl", struct {
			X1, Y1, X2, Y2 float64
			Stops          []gradient.ColorStop
		}{x1, y1, x2, y2, s.ColorStops})
	case gradient.TypeRadial:
		return execute("svg_radial.tmpl", struct {
			Stops []gradient.ColorStop
		}{s.ColorStops})
	case gradient.TypeConic:
		return execute("svg_conic.tmpl", struct {
			Angle int
			Stops []gradient.ColorStop
		}{s.Angle, s.ColorStops})
	default:
		return ""
	}
}

// LinearEndpoints maps an angle in degrees to the x1,y1,x2,y2 percentages of
// an SVG gradient line crossing a 100x100 viewport through its center.
func LinearEndpoints(angle int) (x1, y1, x2, y2 float64) {
	theta := float64(angle) * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	return 50 - 50*cos, 50 - 50*sin, 50 + 50*cos, 50 + 50*sin
}

func execute(name string, data any) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		// Templates are embedded and exercised by tests; a failure here is a
		// programming error.
		panic(fmt.Sprintf("export: render %s: %v", name, err))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
