package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/config"
)

type newOptions struct {
	preset string
	name   string
	output string
	force  bool
}

func newNewCmd(root *rootFlags) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Write a new gradient document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Start from this preset instead of the default gradient")
	cmd.Flags().StringVar(&opts.name, "name", "", "Name stored in the document")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Path of the document to write")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runNew(cmd *cobra.Command, root *rootFlags, opts *newOptions) error {
	app := appFrom(root)

	if strings.TrimSpace(opts.output) == "" {
		return fmt.Errorf("--output is required")
	}
	if _, err := os.Stat(opts.output); err == nil && !opts.force {
		return newCommandError("create gradient", "writing "+opts.output, fmt.Errorf("file already exists"), "Pass --force to overwrite it.")
	}

	source := gradientSource{preset: opts.preset}
	if opts.preset == "" {
		source.preset = app.Settings.Preset
	}
	state, label, err := source.load(app.Settings)
	if err != nil {
		return err
	}

	name := opts.name
	if name == "" && source.preset != "" {
		if p, err := lookupPreset(source.preset); err == nil {
			name = p.Name
		}
	}

	if err := config.SaveDocument(opts.output, config.FromState(name, state)); err != nil {
		return newCommandError("create gradient", "writing "+opts.output, err, "Check that the directory exists and is writable.")
	}

	app.Logger.With("source", label).With("output", opts.output).Info("gradient document written")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.output)
	return nil
}
