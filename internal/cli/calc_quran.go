package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/engine"
)

// newCalcQuranCmd creates the calc quran command.
func newCalcQuranCmd() *cobra.Command {
	var verseText string

	cmd := &cobra.Command{
		Use:   "quran <surah:ayah>",
		Short: "Calculate a Quranic verse by reference",
		Long: `Calculates the letter values of a Quranic verse. The verse text is
fetched from the configured provider, or supplied directly with --text
to work offline.`,
		Example: `  huruf calc quran 112:1
  huruf calc quran 1:1 --text "بسم الله الرحمن الرحيم"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			surah, ayah, err := parseVerseRef(args[0])
			if err != nil {
				return err
			}
			rt, runtimeErr := newRuntime(cmd)
			if runtimeErr != nil {
				return runtimeErr
			}
			return rt.runCalculation(cmd, engine.CalculationRequest{
				Type:        engine.TypeQuran,
				SurahNumber: surah,
				AyahNumber:  ayah,
				VerseText:   verseText,
			})
		},
	}

	cmd.Flags().StringVar(&verseText, "text", "", "verse text to use instead of fetching")

	return cmd
}

// parseVerseRef parses a "surah:ayah" reference.
func parseVerseRef(ref string) (surah, ayah int, err error) {
	parts := strings.SplitN(ref, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid verse reference %q (want surah:ayah, e.g. 112:1)", ref)
	}
	surah, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid surah number %q", parts[0])
	}
	ayah, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ayah number %q", parts[1])
	}
	return surah, ayah, nil
}
