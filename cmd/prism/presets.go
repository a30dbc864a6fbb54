package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/export"
	"github.com/alexisbeaulieu97/prism/internal/presets"
	"github.com/alexisbeaulieu97/prism/internal/preview"
	"github.com/alexisbeaulieu97/prism/internal/render"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

const swatchWidth = 16

type presetsListOptions struct {
	category   string
	jsonOutput bool
}

func newPresetsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Browse the built-in gradient presets",
	}

	cmd.AddCommand(newPresetsListCmd())
	cmd.AddCommand(newPresetsShowCmd(root))
	cmd.AddCommand(newPresetsCategoriesCmd())

	return cmd
}

func newPresetsListCmd() *cobra.Command {
	opts := &presetsListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresetsList(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Only list presets in this category")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPresetsList(cmd *cobra.Command, opts *presetsListOptions) error {
	list := presets.All()
	if opts.category != "" {
		list = presets.ByCategory(opts.category)
		if len(list) == 0 {
			return prismerrors.NewValidationError("category", fmt.Sprintf("unknown category %q (see 'prism presets categories')", opts.category), nil)
		}
	}

	if opts.jsonOutput {
		return renderPresetsJSON(cmd, list)
	}

	useColor := isTerminal(cmd.OutOrStdout())
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tCATEGORY\tSTOPS\tPREVIEW")
	for _, p := range list {
		swatch := ""
		if useColor {
			swatch = preview.Bar(p.Gradient, swatchWidth)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Category, len(p.Gradient.ColorStops), swatch)
	}
	return writer.Flush()
}

type presetJSON struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	CSS      string          `json:"css"`
	Gradient config.Document `json:"gradient"`
}

type presetsJSONPayload struct {
	Count   int          `json:"count"`
	Presets []presetJSON `json:"presets"`
}

func renderPresetsJSON(cmd *cobra.Command, list []presets.Preset) error {
	payload := presetsJSONPayload{
		Count:   len(list),
		Presets: make([]presetJSON, len(list)),
	}
	for i, p := range list {
		payload.Presets[i] = presetJSON{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			CSS:      render.GradientCSS(p.Gradient),
			Gradient: config.FromState(p.Name, p.Gradient),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func newPresetsShowCmd(root *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a preset's code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookupPreset(args[0])
			if err != nil {
				return err
			}

			name := format
			if name == "" {
				name = appFrom(root).Settings.Format
			}
			f, err := export.ParseFormat(name)
			if err != nil {
				return err
			}

			code, err := export.Generate(f, p.Gradient)
			if err != nil {
				return prismerrors.NewExportError(string(f), err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", p.Name, p.Category)
			if isTerminal(out) {
				fmt.Fprintln(out, preview.Bar(p.Gradient, swatchWidth*3))
			}
			fmt.Fprintf(out, "\n%s\n", code)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Export format: css, react or svg")

	return cmd
}

func newPresetsCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List preset categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range presets.Categories() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", c, len(presets.ByCategory(c)))
			}
			return nil
		},
	}
}
