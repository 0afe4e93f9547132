package dispatch

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

const (
	// MinLimit is the floor for the concurrency limit.
	MinLimit = 1
	// MaxLimit bounds resource usage no matter what the caller asks for.
	MaxLimit = 16
)

// Outcome holds the result of one task. Err is set when the task failed;
// the batch as a whole never fails because one task did.
type Outcome[T any] struct {
	Index int
	Value T
	Err   error
}

// Clamp confines limit to [MinLimit, MaxLimit].
func Clamp(limit int) int {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Map runs fn over items with at most Clamp(limit) invocations in flight.
// Each item is submitted exactly once. Outcomes are positioned by submission
// order regardless of completion order, so downstream aggregation can be
// position-sensitive. A failing or panicking task records its error in its
// own Outcome and does not cancel siblings already in flight.
func Map[T any](ctx context.Context, items []string, limit int, fn func(ctx context.Context, item string) (T, error)) []Outcome[T] {
	outcomes := make([]Outcome[T], len(items))
	sem := semaphore.NewWeighted(int64(Clamp(limit)))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(i int, item string) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				outcomes[i] = Outcome[T]{Index: i, Err: fmt.Errorf("task not started: %w", err)}
				return
			}
			defer sem.Release(1)
			outcomes[i] = run(ctx, i, item, fn)
		}(i, item)
	}

	wg.Wait()
	return outcomes
}

// run executes a single task, converting a panic into an error outcome.
func run[T any](ctx context.Context, i int, item string, fn func(ctx context.Context, item string) (T, error)) (out Outcome[T]) {
	out.Index = i
	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("task %d panicked: %v", i, r)
		}
	}()
	out.Value, out.Err = fn(ctx, item)
	return out
}
