package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/output"
)

// renderOptions are the output flags shared by project and run.
type renderOptions struct {
	format string
	outDir string
	write  bool
}

func (o *renderOptions) bind(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringVarP(&o.format, "format", "f", defaultFormat, "output format (see 'invcalc formats'), or 'all' with --write")
	cmd.Flags().StringVar(&o.outDir, "out-dir", "", "directory for written reports (default INVCALC_OUTPUT_DIR)")
	cmd.Flags().BoolVarP(&o.write, "write", "w", false, "write a timestamped report file instead of printing")
}

// emit prints the report or writes it to disk.
func (a *app) emit(cmd *cobra.Command, report *domain.Report, o renderOptions) error {
	if o.write || output.NormalizeFormatName(o.format) == "all" {
		dir := o.outDir
		if dir == "" {
			dir = a.settings.OutputDir
		}
		paths, err := output.GenerateReport(report, o.format, dir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			a.log.Info().Str("path", p).Msg("report written")
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	}

	f := output.GetFormatterByName(o.format)
	if f == nil {
		return output.UnsupportedFormatError(o.format)
	}
	f = output.WithConsoleStyle(f, a.settings.GlamourStyle)
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func newProjectCmd(a *app) *cobra.Command {
	in := domain.DefaultInputs()
	var (
		name       string
		currency   string
		noValidate bool
		render     renderOptions
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single set of inputs",
		Example: `  invcalc project --principal 2000000 --years 10 --split 30
  invcalc project -f html --write --out-dir reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !noValidate {
				if err := config.ValidateInputs(in); err != nil {
					return err
				}
			}
			if currency == "" {
				currency = a.settings.Currency
			}
			report := output.BuildReport(a.engine, currency, []domain.Scenario{{Name: name, Inputs: in}})
			return a.emit(cmd, report, render)
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&in.Principal, "principal", in.Principal, "initial investment")
	flags.Float64Var(&in.TBillYieldPct, "tbill-yield", in.TBillYieldPct, "T-Bill annual yield, percent")
	flags.Float64Var(&in.DividendYieldPct, "dividend-yield", in.DividendYieldPct, "dividend annual yield, percent")
	flags.Float64Var(&in.StockAppreciationPct, "appreciation", in.StockAppreciationPct, "stock price appreciation per year, percent")
	flags.IntVar(&in.Years, "years", in.Years, "investment horizon in years")
	flags.Float64Var(&in.PortfolioSplitPct, "split", in.PortfolioSplitPct, "share of the mixed portfolio held in T-Bills, percent")
	flags.StringVar(&name, "name", "Projection", "scenario name shown in the report")
	flags.StringVar(&currency, "currency", "", "currency code for amounts (default INVCALC_CURRENCY)")
	flags.BoolVar(&noValidate, "no-validate", false, "skip input range checks")
	render.bind(cmd, "console")
	return cmd
}
