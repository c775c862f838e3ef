package batch

import (
	"sync"
	"time"
)

const percentMultiplier = 100

// progress tracks a running batch. Thread-safe.
type progress struct {
	mu sync.Mutex

	total     int
	done      int
	failed    int
	startTime time.Time
}

func newProgress(total int) *progress {
	return &progress{total: total, startTime: time.Now()}
}

func (p *progress) addDone(failed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	if failed {
		p.failed++
	}
}

// Snapshot returns an immutable copy of the current state.
func (p *progress) Snapshot() ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := ProgressSnapshot{
		Total:   p.total,
		Done:    p.done,
		Failed:  p.failed,
		Elapsed: time.Since(p.startTime),
	}
	if p.total > 0 {
		snapshot.PercentComplete = float64(p.done) / float64(p.total) * percentMultiplier
	}
	return snapshot
}

// ProgressSnapshot is a point-in-time view of a running batch.
type ProgressSnapshot struct {
	Total           int
	Done            int
	Failed          int
	PercentComplete float64
	Elapsed         time.Duration
}

// IsComplete reports whether every item has finished.
func (s ProgressSnapshot) IsComplete() bool {
	return s.Done >= s.Total
}
