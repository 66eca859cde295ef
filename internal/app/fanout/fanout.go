// Package fanout runs a function across a slice of items with bounded
// concurrency and reports one result per item, in input order. A failed item
// never cancels its siblings, which is what the dashboard needs: each section
// loads or fails on its own.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines and blocks until every call returns.
//
// Items not yet started when ctx is canceled record ctx.Err() without
// calling fn. Calls already running are expected to watch ctx themselves.
// maxWorkers < 1 means no limit.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	// A plain Group, not WithContext: one item's error must not cancel the rest.
	var g errgroup.Group
	if maxWorkers > 0 {
		g.SetLimit(maxWorkers)
	}

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
