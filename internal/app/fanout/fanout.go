// Package fanout runs a function across a slice of items with bounded
// concurrency, preserving input order in the results. The actuator service
// uses it to query every registered probe in parallel on the direct read path.
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
// goroutines and returns the results in input order.
//
// Items that have not started when ctx is canceled record ctx.Err() without
// calling fn. Calls already running complete; fn should watch ctx itself.
// An error from one item never cancels the others.
//
// A maxWorkers below 1 means no limit. Run blocks until every item is done
// and returns an empty non-nil slice for empty input.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	if maxWorkers > 0 {
		g.SetLimit(maxWorkers)
	}

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err}
			continue
		}
		// Go blocks while maxWorkers items are running.
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
