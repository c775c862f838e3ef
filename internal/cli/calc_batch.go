package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/engine"
	"github.com/hurufapp/huruf/internal/engine/batch"
)

// newCalcBatchCmd creates the calc batch command: one calculation per
// non-empty input line.
func newCalcBatchCmd() *cobra.Command {
	var (
		calcType    string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Calculate every line of a file",
		Long: `Reads one input per line (blank lines and # comments are skipped) and
runs the selected calculation type over each. Failed lines are reported
and do not stop the batch.`,
		Example: `  huruf calc batch names.txt
  huruf calc batch names.txt --type name --concurrency 8 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestType := engine.CalculationType(calcType)
			if !requestType.Valid() {
				return fmt.Errorf("unknown calculation type %q", calcType)
			}
			if requestType == engine.TypeLineage || requestType == engine.TypeQuran {
				return fmt.Errorf("type %q is not supported in batch mode", calcType)
			}

			items, err := readBatchItems(args[0], requestType)
			if err != nil {
				return err
			}

			rt, runtimeErr := newRuntime(cmd)
			if runtimeErr != nil {
				return runtimeErr
			}

			runner, runnerErr := batch.NewRunner(rt.eng, concurrency)
			if runnerErr != nil {
				return runnerErr
			}

			outcomes, runErr := runner.Run(cmd.Context(), items)
			if runErr != nil {
				return runErr
			}

			return renderBatch(cmd, rt, outcomes)
		},
	}

	cmd.Flags().StringVarP(&calcType, "type", "t", string(engine.TypeGeneral),
		"calculation type for each line: name, phrase, dhikr, or general")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", batch.DefaultConcurrency,
		"number of calculations in flight")

	return cmd
}

// readBatchItems parses an input file into batch items, skipping blank
// lines and # comments.
func readBatchItems(path string, requestType engine.CalculationType) ([]batch.Item, error) {
	f, err := os.Open(path) //nolint:gosec // Path is user-supplied by design.
	if err != nil {
		return nil, fmt.Errorf("opening batch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var items []batch.Item
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, batch.Item{
			Line:    lineNo,
			Request: batchRequest(requestType, line),
		})
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("reading batch file: %w", scanErr)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no inputs found in %s", path)
	}
	return items, nil
}

// batchRequest builds the request for one input line.
func batchRequest(requestType engine.CalculationType, line string) engine.CalculationRequest {
	req := engine.CalculationRequest{Type: requestType}
	switch requestType {
	case engine.TypeName:
		req.Name = line
	case engine.TypePhrase:
		req.Phrase = line
	case engine.TypeDhikr:
		req.DivineNameText = line
	default:
		req.Text = line
	}
	return req
}

// renderBatch writes all outcomes and records the successes.
func renderBatch(cmd *cobra.Command, rt *runtime, outcomes []batch.Outcome) error {
	if rt.format == "json" {
		return renderJSON(cmd.OutOrStdout(), batchJSON(rt, cmd, outcomes))
	}

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			cmd.PrintErrf("line %d: %v\n", outcome.Line, outcome.Err)
			continue
		}
		rt.record(outcome.Result)
		if err := renderResult(cmd, outcome.Result, rt.narrator, rt.format); err != nil {
			return err
		}
		cmd.Println()
	}

	if failed := batch.FailedCount(outcomes); failed > 0 {
		cmd.PrintErrf("%d of %d lines failed\n", failed, len(outcomes))
	}
	return nil
}

// batchOutcomeJSON is one line's JSON form.
type batchOutcomeJSON struct {
	Line      int            `json:"line"`
	Error     string         `json:"error,omitempty"`
	Result    *engine.Result `json:"result,omitempty"`
	Narrative string         `json:"narrative,omitempty"`
}

func batchJSON(rt *runtime, cmd *cobra.Command, outcomes []batch.Outcome) []batchOutcomeJSON {
	out := make([]batchOutcomeJSON, len(outcomes))
	for i, outcome := range outcomes {
		entry := batchOutcomeJSON{Line: outcome.Line}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		} else {
			rt.record(outcome.Result)
			entry.Result = outcome.Result
			if prose, err := rt.narrator.Compose(cmd.Context(), outcome.Result); err == nil {
				entry.Narrative = prose
			}
		}
		out[i] = entry
	}
	return out
}
