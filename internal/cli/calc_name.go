package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/engine"
)

// newCalcNameCmd creates the calc name command.
func newCalcNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <arabic-name>",
		Short: "Calculate the letter values of a single name",
		Example: `  huruf calc name "محمد"
  huruf calc name "فاطمة" --system mashriqi --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			return rt.runCalculation(cmd, engine.CalculationRequest{
				Type: engine.TypeName,
				Name: strings.Join(args, " "),
			})
		},
	}
}
