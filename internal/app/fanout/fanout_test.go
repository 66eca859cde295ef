package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/contractor-portal/internal/app/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 3, []string{}, func(_ context.Context, _ string) (string, error) {
		t.Fatal("fn should not be called for empty items")
		return "", nil
	})

	if results == nil || len(results) != 0 {
		t.Fatalf("results = %v, want empty non-nil slice", results)
	}
}

func TestRun_PreservesOrderWithPartialFailure(t *testing.T) {
	t.Parallel()

	errJobs := errors.New("jobs unavailable")
	sections := []string{"clients", "estimates", "jobs"}

	results := fanout.Run(context.Background(), 3, sections, func(_ context.Context, s string) (string, error) {
		if s == "jobs" {
			return "", errJobs
		}
		// Later items finish first.
		if s == "clients" {
			time.Sleep(20 * time.Millisecond)
		}
		return s + ":ok", nil
	})

	got := []string{results[0].Value, results[1].Value}
	if diff := cmp.Diff([]string{"clients:ok", "estimates:ok"}, got); diff != "" {
		t.Errorf("values not in input order (-want +got):\n%s", diff)
	}
	if results[0].Err != nil || results[1].Err != nil {
		t.Errorf("errs = %v, %v; want nil for healthy sections", results[0].Err, results[1].Err)
	}
	if !errors.Is(results[2].Err, errJobs) {
		t.Errorf("results[2].Err = %v, want %v", results[2].Err, errJobs)
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 2
	var running, peak atomic.Int32

	items := make([]int, 8)
	fanout.Run(context.Background(), maxWorkers, items, func(_ context.Context, _ int) (struct{}, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		running.Add(-1)
		return struct{}{}, nil
	})

	if got := peak.Load(); got > maxWorkers {
		t.Errorf("peak concurrency = %d, want <= %d", got, maxWorkers)
	}
}

func TestRun_CanceledContextSkipsWork(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 2, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		return n, nil
	})

	if calls.Load() != 0 {
		t.Errorf("fn called %d times, want 0", calls.Load())
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestRun_CancellationDuringExecution(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	results := fanout.Run(ctx, 1, []int{1}, func(ctx context.Context, _ int) (int, error) {
		cancel()
		<-ctx.Done()
		return 0, ctx.Err()
	})

	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("results[0].Err = %v, want context.Canceled", results[0].Err)
	}
}
