package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, MinLimit, Clamp(0))
	assert.Equal(t, MinLimit, Clamp(-3))
	assert.Equal(t, 4, Clamp(4))
	assert.Equal(t, MaxLimit, Clamp(1000))
}

func TestMap_PreservesSubmissionOrder(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	outcomes := Map(context.Background(), items, 3, func(_ context.Context, item string) (string, error) {
		// Finish later items faster to scramble completion order.
		if item == "a" {
			time.Sleep(30 * time.Millisecond)
		}
		return "saw:" + item, nil
	})

	require.Len(t, outcomes, 5)
	for i, out := range outcomes {
		assert.Equal(t, i, out.Index)
		assert.Equal(t, "saw:"+items[i], out.Value)
		assert.NoError(t, out.Err)
	}
}

func TestMap_ConcurrencyNeverExceedsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	items := []string{"0", "1", "2", "3", "4"}

	Map(context.Background(), items, 2, func(_ context.Context, _ string) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(2), "more than 2 tasks ran at once")
	assert.GreaterOrEqual(t, peak.Load(), int32(1))
}

func TestMap_FailureDoesNotAbortSiblings(t *testing.T) {
	items := []string{"0", "1", "2", "3", "4"}
	boom := errors.New("boom")

	outcomes := Map(context.Background(), items, 2, func(_ context.Context, item string) (string, error) {
		if item == "2" {
			return "", boom
		}
		return "ok:" + item, nil
	})

	require.Len(t, outcomes, 5)
	for i, out := range outcomes {
		if i == 2 {
			assert.ErrorIs(t, out.Err, boom)
			continue
		}
		require.NoError(t, out.Err, "task %d should have completed", i)
		assert.Equal(t, fmt.Sprintf("ok:%d", i), out.Value)
	}
}

func TestMap_PanicBecomesError(t *testing.T) {
	outcomes := Map(context.Background(), []string{"a", "b"}, 1, func(_ context.Context, item string) (int, error) {
		if item == "a" {
			panic("unexpected")
		}
		return 42, nil
	})

	require.Error(t, outcomes[0].Err)
	assert.Contains(t, outcomes[0].Err.Error(), "panicked")
	assert.Equal(t, 42, outcomes[1].Value)
}

func TestMap_EachItemRunsOnce(t *testing.T) {
	var calls atomic.Int32
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	Map(context.Background(), items, 100, func(_ context.Context, _ string) (struct{}, error) {
		calls.Add(1)
		return struct{}{}, nil
	})

	assert.Equal(t, int32(len(items)), calls.Load())
}

func TestMap_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := Map(ctx, []string{"a"}, 1, func(ctx context.Context, _ string) (string, error) {
		return "", ctx.Err()
	})

	// With a dead context the task either never starts or observes the
	// cancellation itself; either way the outcome carries an error.
	require.Len(t, outcomes, 1)
	assert.Error(t, outcomes[0].Err)
}

func TestMap_EmptyInput(t *testing.T) {
	outcomes := Map(context.Background(), nil, 4, func(_ context.Context, _ string) (int, error) {
		t.Fatal("task should never run")
		return 0, nil
	})
	assert.Empty(t, outcomes)
}
