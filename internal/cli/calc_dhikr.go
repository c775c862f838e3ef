package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/engine"
)

// newCalcDhikrCmd creates the calc dhikr command.
func newCalcDhikrCmd() *cobra.Command {
	var number int

	cmd := &cobra.Command{
		Use:   "dhikr [divine-name]",
		Short: "Calculate a Divine Name with recitation counts",
		Long: `Calculates the letter values of one of the ninety-nine Divine Names,
selected by its traditional number or given as text. Free text that is
not one of the ninety-nine is calculated without the name metadata.`,
		Example: `  huruf calc dhikr --number 30
  huruf calc dhikr "يا لطيف"
  huruf calc dhikr الرحمن`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if number == 0 && len(args) == 0 {
				return errors.New("give a Divine Name as text or select one with --number")
			}
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			return rt.runCalculation(cmd, engine.CalculationRequest{
				Type:             engine.TypeDhikr,
				DivineNameNumber: number,
				DivineNameText:   strings.Join(args, " "),
			})
		},
	}

	cmd.Flags().IntVarP(&number, "number", "n", 0, "Divine Name number (1-99)")

	return cmd
}
