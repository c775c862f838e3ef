package batch

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hurufapp/huruf/internal/engine"
)

func makeItems(names ...string) []Item {
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{
			Line:    i + 1,
			Request: engine.CalculationRequest{Type: engine.TypeGeneral, Text: name},
		}
	}
	return items
}

func TestNewRunner(t *testing.T) {
	eng := engine.New(nil)

	tests := []struct {
		name        string
		concurrency int
		wantErr     bool
	}{
		{name: "minimum", concurrency: 1},
		{name: "typical", concurrency: 8},
		{name: "maximum", concurrency: MaxConcurrency},
		{name: "zero", concurrency: 0, wantErr: true},
		{name: "too large", concurrency: MaxConcurrency + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, err := NewRunner(eng, tt.concurrency)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConcurrency)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, runner)
		})
	}
}

func TestRunPreservesOrder(t *testing.T) {
	runner := NewRunnerWithDefaults(engine.New(nil))
	items := makeItems("محمد", "علي", "فاطمة", "حسن", "حسين")

	outcomes, err := runner.Run(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, outcomes, len(items))

	for i, outcome := range outcomes {
		assert.Equal(t, i+1, outcome.Line)
		require.NoError(t, outcome.Err)
		require.NotNil(t, outcome.Result)
		assert.Equal(t, items[i].Request.Text, outcome.Result.Input.Raw)
	}
	assert.Zero(t, FailedCount(outcomes))
}

func TestRunRecordsItemFailures(t *testing.T) {
	runner := NewRunnerWithDefaults(engine.New(nil))
	items := makeItems("محمد", "   ", "علي")

	outcomes, err := runner.Run(context.Background(), items)
	require.NoError(t, err)

	assert.NoError(t, outcomes[0].Err)
	assert.ErrorIs(t, outcomes[1].Err, engine.ErrEmptySourceText)
	assert.Nil(t, outcomes[1].Result)
	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, 1, FailedCount(outcomes))
}

func TestRunEmptyItems(t *testing.T) {
	runner := NewRunnerWithDefaults(engine.New(nil))

	_, err := runner.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyItems)
}

func TestRunCancelledContext(t *testing.T) {
	runner := NewRunnerWithDefaults(engine.New(nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, makeItems("محمد"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunProgress(t *testing.T) {
	var mu sync.Mutex
	var snapshots []ProgressSnapshot

	runner, err := NewRunner(engine.New(nil), 2)
	require.NoError(t, err)
	runner.WithProgress(func(snapshot ProgressSnapshot) {
		mu.Lock()
		defer mu.Unlock()
		snapshots = append(snapshots, snapshot)
	})

	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("محمد %d", i)
	}

	outcomes, err := runner.Run(context.Background(), makeItems(names...))
	require.NoError(t, err)
	require.Len(t, outcomes, 10)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, snapshots, 10)

	// Callbacks may interleave under concurrency; the most advanced
	// snapshot must cover the full batch.
	var furthest ProgressSnapshot
	for _, snapshot := range snapshots {
		if snapshot.Done > furthest.Done {
			furthest = snapshot
		}
	}
	assert.True(t, furthest.IsComplete())
	assert.Equal(t, 10, furthest.Total)
	assert.InDelta(t, 100.0, furthest.PercentComplete, 0.001)
}
