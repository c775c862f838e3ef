package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/engine"
)

// newCalcPhraseCmd creates the calc phrase command.
func newCalcPhraseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "phrase <arabic-phrase>",
		Short:   "Calculate a multi-word phrase with word and letter breakdowns",
		Example: `  huruf calc phrase "بسم الله الرحمن الرحيم"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			return rt.runCalculation(cmd, engine.CalculationRequest{
				Type:   engine.TypePhrase,
				Phrase: strings.Join(args, " "),
			})
		},
	}
}
