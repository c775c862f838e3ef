package cli

import (
	"github.com/spf13/cobra"
)

// newCalcCmd creates the calc command group with one subcommand per
// calculation variant.
func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "calc", Short: "Calculation commands"}
	cmd.AddCommand(
		newCalcNameCmd(), newCalcLineageCmd(), newCalcPhraseCmd(),
		newCalcQuranCmd(), newCalcDhikrCmd(), newCalcTextCmd(),
		newCalcBatchCmd(),
	)
	return cmd
}
