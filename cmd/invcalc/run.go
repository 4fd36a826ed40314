package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/output"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		configPath string
		render     renderOptions
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Project every scenario in a YAML, JSON or TOML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}
			a.log.Debug().Str("config", configPath).Int("scenarios", len(file.Scenarios)).Msg("loaded scenarios")
			report := output.BuildReport(a.engine, file.Currency, file.Scenarios)
			return a.emit(cmd, report, render)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "scenario file")
	_ = cmd.MarkFlagRequired("config")
	render.bind(cmd, "console")
	return cmd
}

func newExampleConfigCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write an example scenario file (.yaml, .json or .toml)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveScenarioFile(file, out); err != nil {
				return err
			}
			a.log.Info().Str("path", out).Msg("example configuration written")
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "example_config.yaml", "destination file")
	return cmd
}
