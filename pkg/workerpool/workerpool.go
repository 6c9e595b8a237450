// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Result holds the outcome for a single item.
type Result[R any] struct {
	Value R
	Err   error
}

// Map runs fn over items using at most workerCount goroutines and returns the results
// in input order. An item failing does not stop the others. Items not yet dispatched
// when ctx is canceled report ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	tasks := make(chan int, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if err := ctx.Err(); err != nil {
					results[idx].Err = err
					continue
				}
				v, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: v, Err: err}
			}
		}()
	}

	for idx := range items {
		if err := ctx.Err(); err != nil {
			results[idx].Err = err
			continue
		}
		tasks <- idx
	}
	close(tasks)
	wg.Wait()

	return results
}
