package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/prism/internal/clipboard"
	"github.com/alexisbeaulieu97/prism/internal/editor"
	"github.com/alexisbeaulieu97/prism/internal/export"
	"github.com/alexisbeaulieu97/prism/internal/tui"
)

type editOptions struct {
	source gradientSource
}

// editRunner runs the editor program. Tests replace it to avoid a terminal.
var editRunner = func(m tui.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// interactive reports whether stdin and stdout are terminals.
var interactive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newEditCmd(root *rootFlags) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive gradient editor",
		Long: `Open the interactive gradient editor.

The editor starts from the gradient document given with --file, the preset
given with --preset, the preset named in the settings file, or the default
gradient, in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source.file, "file", "f", "", "Gradient document to open")
	cmd.Flags().StringVarP(&opts.source.preset, "preset", "p", "", "Preset to start from")

	return cmd
}

func runEdit(cmd *cobra.Command, root *rootFlags, opts *editOptions) error {
	app := appFrom(root)
	log := app.Logger.With("command", "edit")

	if !interactive() {
		return newCommandError("edit", "starting the editor", fmt.Errorf("not an interactive terminal"), "Use 'prism export' in scripts and pipelines.")
	}

	state, label, err := opts.source.load(app.Settings)
	if err != nil {
		return newCommandError("edit", "loading the gradient", err, "Check the document with 'prism export --file'.")
	}

	format, err := export.ParseFormat(app.Settings.Format)
	if err != nil {
		format = export.FormatCSS
	}

	m := tui.New(tui.Options{
		State:     state,
		Theme:     editor.Theme(app.Settings.Theme),
		Format:    format,
		Clipboard: clipboard.NewOSC52(os.Stdout, clipboard.DetectMode(os.Getenv)),
		Logger:    log,
	})

	log.With("source", label).Info("launching editor")
	if err := editRunner(m); err != nil {
		log.Error(err, "editor failed")
		return fmt.Errorf("failed to run editor: %w", err)
	}
	log.Debug("editor closed")
	return nil
}
