package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string

	app *AppContext
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "prism",
		Short:         "Prism designs CSS gradients and exports them as CSS, React or SVG",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			flags.app = app
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the editor on the default gradient.
			if len(args) == 0 {
				return runEdit(cmd, flags, &editOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the settings file (default ~/.config/prism/settings.yaml)")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newPresetsCmd(flags))
	cmd.AddCommand(newColorCmd(flags))
	cmd.AddCommand(newNewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
