package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/engine"
	"github.com/hurufapp/huruf/internal/tui"
)

// newHistoryCmd creates the history command group.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "history", Short: "Past calculation commands"}
	cmd.AddCommand(newHistoryListCmd(), newHistoryShowCmd(), newHistoryClearCmd())
	return cmd
}

// newHistoryListCmd creates the history list command.
func newHistoryListCmd() *cobra.Command {
	var (
		limit       int
		typeFilter  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past calculations",
		Example: `  huruf history list
  huruf history list --type name --limit 10
  huruf history list --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			if loadErr := rt.store.Load(); loadErr != nil {
				return loadErr
			}

			var entries []engine.Result
			if typeFilter != "" {
				calcType := engine.CalculationType(typeFilter)
				if !calcType.Valid() {
					return fmt.Errorf("unknown calculation type %q", typeFilter)
				}
				entries = rt.store.ListByType(calcType, limit)
			} else {
				entries = rt.store.List(limit)
			}

			if interactive {
				if !isTerminal(os.Stdout) {
					return errors.New("--interactive requires a terminal")
				}
				return tui.BrowseHistory(cmd.Context(), entries, rt.narrator)
			}

			if rt.format == "json" {
				return renderJSON(cmd.OutOrStdout(), entries)
			}
			renderHistoryList(cmd, entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum entries to show (0 = all)")
	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "only show one calculation type")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse history in a full-screen list")

	return cmd
}

// renderHistoryList writes a compact one-line-per-entry table.
func renderHistoryList(cmd *cobra.Command, entries []engine.Result) {
	if len(entries) == 0 {
		cmd.Println("No calculations recorded yet.")
		return
	}
	for _, entry := range entries {
		cmd.Printf("%s  %-8s %-10s kabir %-6d %s\n",
			entry.Timestamp.Format("2006-01-02 15:04"),
			shortID(entry.ID), entry.Type, entry.Core.Kabir, entry.Input.Normalized)
	}
}

// shortID returns the display prefix of a result ID.
func shortID(id string) string {
	const displayLen = 8
	if len(id) <= displayLen {
		return id
	}
	return id[:displayLen]
}

// newHistoryShowCmd creates the history show command.
func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one past calculation in full",
		Long:  "Shows a stored calculation by its ID. A unique ID prefix of at least four characters also works.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			if loadErr := rt.store.Load(); loadErr != nil {
				return loadErr
			}

			entry, getErr := rt.store.Get(args[0])
			if getErr != nil {
				return getErr
			}
			return renderResult(cmd, &entry, rt.narrator, rt.format)
		},
	}
}

// newHistoryClearCmd creates the history clear command.
func newHistoryClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded calculations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				return errors.New("refusing to clear history without --force")
			}
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			if loadErr := rt.store.Load(); loadErr != nil {
				return loadErr
			}

			count := rt.store.Count()
			rt.store.Clear()
			if saveErr := rt.store.Save(); saveErr != nil {
				return saveErr
			}
			cmd.Printf("Cleared %d entries.\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm deletion")

	return cmd
}
