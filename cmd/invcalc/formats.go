package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/output"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %s (.%s)\n", name, output.Extension(name))
			}
			fmt.Fprintln(w, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(w, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			return nil
		},
	}
}
