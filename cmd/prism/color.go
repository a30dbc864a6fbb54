package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/color"
	"github.com/alexisbeaulieu97/prism/internal/gradient"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

const (
	wcagAA  = 4.5
	wcagAAA = 7.0
)

func newColorCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Color conversion and inspection helpers",
	}

	cmd.AddCommand(newColorConvertCmd())
	cmd.AddCommand(newColorContrastCmd())
	cmd.AddCommand(newColorRandomCmd(root))
	cmd.AddCommand(newColorSaturateCmd())

	return cmd
}

func parseColorArg(field, value string) (color.RGB, error) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	rgb, err := color.ParseHex(v)
	if err != nil {
		return color.RGB{}, prismerrors.NewValidationError(field, fmt.Sprintf("%q is not a #rrggbb color", value), err)
	}
	return rgb, nil
}

func newColorConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <hex>",
		Short: "Show a color as hex, rgb, rgba and hsl",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := parseColorArg("color", args[0])
			if err != nil {
				return err
			}

			hex := rgb.Hex()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hex:  %s\n", hex)
			fmt.Fprintf(out, "rgb:  %s\n", rgb)
			fmt.Fprintf(out, "rgba: %s\n", color.HexToRGBA(hex, 1))
			fmt.Fprintf(out, "hsl:  %s\n", color.RGBToHSL(rgb))
			fmt.Fprintf(out, "text: %s\n", color.TextColor(hex))
			return nil
		},
	}
}

func newColorContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := parseColorArg("foreground", args[0])
			if err != nil {
				return err
			}
			bg, err := parseColorArg("background", args[1])
			if err != nil {
				return err
			}

			ratio := color.ContrastRatio(fg.Hex(), bg.Hex())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ratio: %s:1\n", color.FormatNumber(ratio))
			fmt.Fprintf(out, "AA:    %s\n", verdict(ratio >= wcagAA))
			fmt.Fprintf(out, "AAA:   %s\n", verdict(ratio >= wcagAAA))
			return nil
		},
	}
}

func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}

func newColorRandomCmd(root *rootFlags) *cobra.Command {
	var (
		count int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print random colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > gradient.MaxStops*10 {
				return prismerrors.NewValidationError("count", fmt.Sprintf("count must be between 1 and %d", gradient.MaxStops*10), nil)
			}

			next := color.RandomColor
			if cmd.Flags().Changed("seed") {
				r := rand.New(rand.NewPCG(seed, seed))
				next = func() string { return color.RandomColorFrom(r) }
			}

			for range count {
				fmt.Fprintln(cmd.OutOrStdout(), next())
			}
			appFrom(root).Logger.With("count", count).Debug("generated random colors")
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of colors to print")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible sequence")

	return cmd
}

func newColorSaturateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saturate <hex> <adjustment>",
		Short: "Shift a color's HSL saturation by an amount in percentage points",
		Example: `  prism color saturate "#ff5f6d" -30
  prism color saturate 704214 20`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := parseColorArg("color", args[0])
			if err != nil {
				return err
			}
			adjustment, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return prismerrors.NewValidationError("adjustment", fmt.Sprintf("%q is not a number", args[1]), err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.AdjustSaturation(rgb.Hex(), adjustment))
			return nil
		},
	}

	// Negative adjustments must not be read as flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
