package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	fixtureName string
	outPath     string
)

var programCmd = &cobra.Command{
	Use:     "program",
	GroupID: "program",
	Short:   "Dump a named fixture's instruction stream",
	Long: `program assembles one of the built-in hand-written instruction
streams, assigns it physical registers with the fixture allocator, and
prints it through the LIR printer.`,
	RunE: func(c *cobra.Command, args []string) error {
		dump, err := renderFixture(fixtureName)
		if err != nil {
			return err
		}

		if outPath == "" {
			_, err := fmt.Fprint(c.OutOrStdout(), dump)
			return err
		}
		return os.WriteFile(outPath, []byte(dump), 0o644)
	},
}

func init() {
	programCmd.Flags().StringVar(&fixtureName, "fixture", "basic", "name of the built-in fixture to dump")
	programCmd.Flags().StringVar(&outPath, "out", "", "write the dump to this path instead of stdout")
}
