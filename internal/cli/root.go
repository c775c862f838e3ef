// Package cli implements the huruf command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the huruf CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "huruf",
		Short:   "Abjad numerology calculator",
		Long:    "Huruf: Abjad letter-value calculations, elemental analysis, and Divine-Name resonance for Arabic text",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file path (default ~/.huruf/config.yaml)")
	cmd.PersistentFlags().StringP("system", "s", "", "letter-value system: maghribi or mashriqi")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table or json")
	cmd.PersistentFlags().Bool("no-history", false, "do not record this calculation in history")

	cmd.AddCommand(newCalcCmd(), newHistoryCmd(), newNamesCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Calculate a name's values with the default (maghribi) system
  huruf calc name "محمد"

  # Name plus mother's name, eastern letter values
  huruf calc lineage --name "محمد" --mother "آمنة" --system mashriqi

  # A Quranic verse, fetching the text by reference
  huruf calc quran 112:1

  # A Divine Name by its traditional number
  huruf calc dhikr --number 30

  # One calculation per line from a file, as JSON
  huruf calc batch names.txt --output json

  # Browse past calculations interactively
  huruf history list --interactive

  # Search the ninety-nine Divine Names
  huruf names search لطيف

  # Initialize configuration
  huruf config init`
