package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/logging"
)

// app carries state shared by subcommands once the root pre-run has loaded it.
type app struct {
	settings config.Settings
	log      zerolog.Logger
	engine   *calculation.ProjectionEngine

	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "invcalc",
		Short:         "Compare T-Bills, dividend stocks and a mixed portfolio",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides INVCALC_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: console or json (overrides INVCALC_LOG_FORMAT)")

	root.AddCommand(
		newProjectCmd(a),
		newRunCmd(a),
		newExampleConfigCmd(a),
		newServeCmd(a),
		newFormatsCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	s, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		s.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		s.LogFormat = a.logFormat
	}
	a.settings = s
	a.log = logging.New("invcalc", logging.ProfileRuntime, logging.Options{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Out:    cmd.ErrOrStderr(),
	})
	a.engine = calculation.NewProjectionEngineWithMemo(s.MemoSize)
	a.engine.SetLogger(logging.Adapter{L: a.log})
	return nil
}
