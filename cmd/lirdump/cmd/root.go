package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lirdump",
	Short: "LIR instruction stream dumper",
	Long: `lirdump builds a small hand-written x86-32/SSE LIR instruction stream,
runs a fixture register assignment over it, and prints it through the
back-end printer. It exists as a living example of the printer's wiring,
not as a bytecode compiler front-end.`,
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "program",
		Title: "Programs",
	})

	rootCmd.AddCommand(programCmd)
}
