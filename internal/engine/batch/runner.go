// Package batch runs many calculations through the engine with bounded
// concurrency, preserving input order in the outcomes.
package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hurufapp/huruf/internal/engine"
	"github.com/hurufapp/huruf/internal/logging"
)

const (
	// DefaultConcurrency is the default number of in-flight calculations.
	DefaultConcurrency = 4

	// MaxConcurrency caps the in-flight limit.
	MaxConcurrency = 64
)

// Common batch errors.
var (
	ErrInvalidConcurrency = errors.New("concurrency must be between 1 and 64")
	ErrEmptyItems         = errors.New("items slice cannot be empty")
)

// Item is a single queued calculation, tagged with its 1-based input line.
type Item struct {
	Line    int
	Request engine.CalculationRequest
}

// Outcome is the result of one item. Exactly one of Result and Err is set;
// a per-item failure does not abort the run.
type Outcome struct {
	Line   int
	Result *engine.Result
	Err    error
}

// ProgressFunc is an optional callback invoked after each item completes.
type ProgressFunc func(snapshot ProgressSnapshot)

// Runner executes batches against one engine.
type Runner struct {
	engine      *engine.Engine
	concurrency int
	onProgress  ProgressFunc
}

// NewRunner creates a Runner with the given in-flight limit.
func NewRunner(eng *engine.Engine, concurrency int) (*Runner, error) {
	if concurrency < 1 || concurrency > MaxConcurrency {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, concurrency)
	}
	return &Runner{engine: eng, concurrency: concurrency}, nil
}

// NewRunnerWithDefaults creates a Runner with the default in-flight limit.
func NewRunnerWithDefaults(eng *engine.Engine) *Runner {
	return &Runner{engine: eng, concurrency: DefaultConcurrency}
}

// WithProgress sets a progress callback.
func (r *Runner) WithProgress(fn ProgressFunc) *Runner {
	r.onProgress = fn
	return r
}

// Run calculates every item and returns outcomes in item order. Item-level
// failures (empty text, unresolvable references) are recorded in the
// corresponding Outcome; only context cancellation aborts the whole run.
func (r *Runner) Run(ctx context.Context, items []Item) ([]Outcome, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	log := logging.FromContext(ctx)
	start := time.Now()

	outcomes := make([]Outcome, len(items))
	progress := newProgress(len(items))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)

	for i, item := range items {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := r.engine.Calculate(ctx, item.Request)
			outcomes[i] = Outcome{Line: item.Line, Result: result, Err: err}

			progress.addDone(err != nil)
			if r.onProgress != nil {
				r.onProgress(progress.Snapshot())
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Str("component", "batch").
		Str("operation", "run").
		Int("items", len(items)).
		Int("failed", progress.Snapshot().Failed).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("batch complete")

	return outcomes, nil
}

// FailedCount returns how many outcomes carry an error.
func FailedCount(outcomes []Outcome) int {
	count := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			count++
		}
	}
	return count
}
