package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/logger"
)

// AppContext bundles what every command needs once flags are parsed.
type AppContext struct {
	Settings config.Settings
	Logger   *logger.Logger
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	path := flags.configPath
	if path == "" {
		defaultPath, err := config.DefaultSettingsPath()
		if err != nil {
			return nil, newCommandError("start", "determining settings path", err, "Pass --config or set HOME/XDG_CONFIG_HOME.")
		}
		path = defaultPath
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, newCommandError("start", "loading settings", err, "Fix or remove "+path+".")
	}

	level := settings.LogLevel
	if flags.verbose {
		level = "debug"
	}

	errOut := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: isTerminal(errOut),
		Writer:        errOut,
		Component:     "cli",
	})
	if err != nil {
		return nil, err
	}

	log.With("settings", path).Debug("settings loaded")
	return &AppContext{Settings: settings, Logger: log}, nil
}

// appFrom returns the context built by the root command, or a default one for
// commands executed without it.
func appFrom(flags *rootFlags) *AppContext {
	if flags != nil && flags.app != nil {
		return flags.app
	}
	return &AppContext{Settings: config.DefaultSettings(), Logger: logger.Nop()}
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
