package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/export"
	"github.com/alexisbeaulieu97/prism/pkg/diff"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

type exportOptions struct {
	source gradientSource
	format string
	output string
	watch  bool
	check  bool
}

func newExportCmd(root *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:     "export",
		Aliases: []string{"css"},
		Short:   "Write gradient code as CSS, React or SVG",
		Long: `Write gradient code as CSS, React (styled-components) or SVG.

Code goes to stdout unless --output is given. With --watch, the gradient
document given by --file is re-exported every time it changes. With --check,
nothing is written; the command fails and prints a diff when --output is out
of date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "Export format: css, react or svg (default from settings, else css)")
	cmd.Flags().StringVarP(&opts.source.file, "file", "f", "", "Gradient document to export")
	cmd.Flags().StringVarP(&opts.source.preset, "preset", "p", "", "Preset to export")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write code to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-export whenever --file changes")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail when --output differs from the generated code")

	return cmd
}

func validateExportOptions(opts *exportOptions) error {
	if err := opts.source.validate(); err != nil {
		return err
	}
	if opts.watch && strings.TrimSpace(opts.source.file) == "" {
		return fmt.Errorf("--watch requires --file")
	}
	if opts.check && strings.TrimSpace(opts.output) == "" {
		return fmt.Errorf("--check requires --output")
	}
	if opts.watch && opts.check {
		return fmt.Errorf("--watch and --check are mutually exclusive")
	}
	return nil
}

func runExport(cmd *cobra.Command, root *rootFlags, opts *exportOptions) error {
	app := appFrom(root)
	log := app.Logger.With("command", "export")

	if err := validateExportOptions(opts); err != nil {
		return err
	}

	name := opts.format
	if name == "" {
		name = app.Settings.Format
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}
	log = log.With("format", string(format))

	if opts.check {
		return checkExport(cmd, app, opts, format)
	}

	if err := exportOnce(cmd, app, opts, format); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	watcher, err := config.NewWatcher(opts.source.file, config.DefaultWatchDebounce)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", opts.source.file, err)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	log.With("file", opts.source.file).Info("watching for changes")
	err = watcher.Run(ctx, func() error {
		log.Debug("gradient document changed")
		return exportOnce(cmd, app, opts, format)
	}, func(err error) {
		log.Warn(err, "re-export failed")
	})
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func exportOnce(cmd *cobra.Command, app *AppContext, opts *exportOptions, format export.Format) error {
	code, err := generate(app, opts, format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	}

	if err := os.WriteFile(opts.output, []byte(code+"\n"), 0o644); err != nil {
		return prismerrors.NewExportError(string(format), fmt.Errorf("write %s: %w", opts.output, err))
	}
	app.Logger.With("output", opts.output).Info("exported gradient")
	return nil
}

func checkExport(cmd *cobra.Command, app *AppContext, opts *exportOptions, format export.Format) error {
	code, err := generate(app, opts, format)
	if err != nil {
		return err
	}

	current, err := os.ReadFile(opts.output)
	if err != nil && !os.IsNotExist(err) {
		return prismerrors.NewExportError(string(format), err)
	}

	d := diff.Unified(current, []byte(code+"\n"), opts.output, "generated")
	if d == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", opts.output)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), d)
	return prismerrors.NewExportError(string(format), fmt.Errorf("%s is out of date", opts.output))
}

func generate(app *AppContext, opts *exportOptions, format export.Format) (string, error) {
	state, _, err := opts.source.load(app.Settings)
	if err != nil {
		return "", err
	}
	code, err := export.Generate(format, state)
	if err != nil {
		return "", prismerrors.NewExportError(string(format), err)
	}
	return code, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
