package pipeline

import (
	"context"
	"sync"
	"time"
)

type timingKey struct{}

type timingInfo struct {
	operation string
	start     time.Time
}

// TimingStats summarises the recorded durations of one operation.
type TimingStats struct {
	Count   int
	Total   time.Duration
	Average time.Duration
	Last    time.Duration
}

// Tracker records how long each pipeline operation takes.
type Tracker struct {
	mu      sync.RWMutex
	timings map[string][]time.Duration
	limit   int
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		limit:   100,
	}
}

func (t *Tracker) StartTiming(operation string) context.Context {
	return context.WithValue(context.Background(), timingKey{}, timingInfo{
		operation: operation,
		start:     time.Now(),
	})
}

// EndTiming records and returns the elapsed time for the operation started with ctx.
func (t *Tracker) EndTiming(ctx context.Context) time.Duration {
	info, ok := ctx.Value(timingKey{}).(timingInfo)
	if !ok {
		return 0
	}
	elapsed := time.Since(info.start)

	t.mu.Lock()
	defer t.mu.Unlock()
	samples := append(t.timings[info.operation], elapsed)
	if len(samples) > t.limit {
		samples = samples[len(samples)-t.limit:]
	}
	t.timings[info.operation] = samples
	return elapsed
}

func (t *Tracker) Stats(operation string) TimingStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	samples := t.timings[operation]
	if len(samples) == 0 {
		return TimingStats{}
	}

	var total time.Duration
	for _, d := range samples {
		total += d
	}
	return TimingStats{
		Count:   len(samples),
		Total:   total,
		Average: total / time.Duration(len(samples)),
		Last:    samples[len(samples)-1],
	}
}

// Operations returns the names of all operations with recorded timings.
func (t *Tracker) Operations() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ops := make([]string, 0, len(t.timings))
	for op := range t.timings {
		ops = append(ops, op)
	}
	return ops
}
