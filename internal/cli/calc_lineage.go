package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/engine"
)

// newCalcLineageCmd creates the calc lineage command.
func newCalcLineageCmd() *cobra.Command {
	var (
		yourName   string
		motherName string
	)

	cmd := &cobra.Command{
		Use:   "lineage",
		Short: "Calculate a name together with the mother's name",
		Example: `  huruf calc lineage --name "محمد" --mother "آمنة"
  huruf calc lineage --name "علي" --mother "فاطمة" --system mashriqi`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if yourName == "" || motherName == "" {
				return errors.New("both --name and --mother are required")
			}
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			return rt.runCalculation(cmd, engine.CalculationRequest{
				Type:       engine.TypeLineage,
				YourName:   yourName,
				MotherName: motherName,
			})
		},
	}

	cmd.Flags().StringVar(&yourName, "name", "", "your name in Arabic")
	cmd.Flags().StringVar(&motherName, "mother", "", "your mother's name in Arabic")

	return cmd
}
