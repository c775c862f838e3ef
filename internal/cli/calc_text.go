package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/engine"
)

// newCalcTextCmd creates the calc text command for free-form input.
func newCalcTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "text <arabic-text>",
		Short:   "Calculate arbitrary Arabic text",
		Example: `  huruf calc text "نور على نور"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			return rt.runCalculation(cmd, engine.CalculationRequest{
				Type: engine.TypeGeneral,
				Text: strings.Join(args, " "),
			})
		},
	}
}
