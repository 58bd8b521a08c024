// askdb – natural-language-to-SQL query tool.
//
// Entry point: initializes the Cobra root command and launches
// the interactive Bubble Tea ask loop by default (no subcommand required).
package main

import (
	"os"

	"github.com/askdb/askdb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
