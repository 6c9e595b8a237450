// Package clock runs timed work that can be stopped from inside or outside.
package clock

import (
	"context"
	"time"
)

// Task is a repeating job started by Every.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops the task. It is safe to call from inside the task's own callback and more than once.
func (t *Task) Cancel() {
	t.cancel()
}

// Done is closed once the task has stopped and its callback will not run again.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Every waits d, runs fn, and repeats until ctx is canceled or the task is canceled.
// Runs never overlap: the next wait starts only after fn returns.
func Every(ctx context.Context, d time.Duration, fn func(context.Context, *Task)) *Task {
	return every(ctx, d, fn, wait)
}

// wait blocks for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func every(
	ctx context.Context,
	d time.Duration,
	fn func(context.Context, *Task),
	sleep func(context.Context, time.Duration) error,
) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()
		for {
			if err := sleep(ctx, d); err != nil {
				return
			}
			fn(ctx, t)
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return t
}
