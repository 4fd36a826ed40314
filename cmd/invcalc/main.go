// Command invcalc projects T-Bill, dividend stock and mixed portfolio
// investments and renders comparison reports.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
