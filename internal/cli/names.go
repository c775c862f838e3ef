package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/resonance"
)

// newNamesCmd creates the names command group for browsing the ninety-nine
// Divine Names.
func newNamesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "names", Short: "Divine Names reference commands"}
	cmd.AddCommand(newNamesListCmd(), newNamesSearchCmd())
	return cmd
}

// newNamesListCmd creates the names list command.
func newNamesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the ninety-nine Divine Names with their values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}

			names := resonance.Names()
			if rt.format == "json" {
				return renderJSON(cmd.OutOrStdout(), names)
			}
			for _, name := range names {
				printName(cmd, name)
			}
			return nil
		},
	}
}

// newNamesSearchCmd creates the names search command.
func newNamesSearchCmd() *cobra.Command {
	var tolerance int

	cmd := &cobra.Command{
		Use:   "search <text-or-value>",
		Short: "Find Divine Names by text or numeric value",
		Long: `Searches the ninety-nine Divine Names. Arabic text matches against the
names themselves (vocative and article prefixes are ignored); a number
matches names by value, within --tolerance.`,
		Example: `  huruf names search لطيف
  huruf names search 129
  huruf names search 130 --tolerance 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}

			query := strings.TrimSpace(args[0])
			matches := searchNames(query, tolerance)
			if len(matches) == 0 {
				return fmt.Errorf("no Divine Name matches %q", query)
			}

			if rt.format == "json" {
				return renderJSON(cmd.OutOrStdout(), matches)
			}
			for _, name := range matches {
				printName(cmd, name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&tolerance, "tolerance", 0, "allowed distance for value searches")

	return cmd
}

// searchNames resolves a query against the Divine Names table.
func searchNames(query string, tolerance int) []resonance.DivineName {
	var value int
	if _, err := fmt.Sscanf(query, "%d", &value); err == nil && fmt.Sprintf("%d", value) == query {
		return resonance.FindNamesByValue(value, tolerance)
	}
	if name, ok := resonance.FindNameByText(query); ok {
		return []resonance.DivineName{name}
	}
	return nil
}

// printName writes one Divine Name line.
func printName(cmd *cobra.Command, name resonance.DivineName) {
	cmd.Printf("%2d  %-14s %-18s value %-5d %s\n",
		name.Number, name.Arabic, name.Translit, name.Value, name.Meaning)
}
