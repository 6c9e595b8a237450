// Package eventloop provides the viewer's single UI thread. Every piece of view state is
// touched only from tasks run by the loop; blocking work runs elsewhere and posts its
// result back as a task.
package eventloop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrStopped is returned when posting to a loop that has finished.
var ErrStopped = errors.New("event loop stopped")

// Dispatcher schedules work relative to the UI thread.
type Dispatcher interface {
	// Post queues task to run on the UI thread. It reports false if the task was dropped.
	Post(task func()) bool
	// Go runs blocking work off the UI thread.
	Go(work func())
}

// Loop runs posted tasks one at a time, in order, on the goroutine that called Run.
type Loop struct {
	logger *zap.Logger

	mu      sync.Mutex
	queue   []func()
	stopped bool
	wake    chan struct{}
}

// New returns a loop that is ready to accept tasks.
func New(logger *zap.Logger) *Loop {
	return &Loop{
		logger: logger,
		wake:   make(chan struct{}, 1),
	}
}

// Post implements Dispatcher. Tasks posted from a running task run after it returns.
func (l *Loop) Post(task func()) bool {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Go implements Dispatcher.
func (l *Loop) Go(work func()) {
	go work()
}

// Do posts task and waits for it to finish.
func (l *Loop) Do(ctx context.Context, task func()) error {
	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		task()
	}) {
		return ErrStopped
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Run drains the queue until ctx is canceled. Tasks still queued at that point are dropped.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		l.mu.Lock()
		l.stopped = true
		l.queue = nil
		l.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}

		for {
			l.mu.Lock()
			batch := l.queue
			l.queue = nil
			l.mu.Unlock()
			if len(batch) == 0 {
				break
			}
			for _, task := range batch {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				l.run(task)
			}
		}
	}
}

func (l *Loop) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("task panicked", zap.Error(fmt.Errorf("%v", r)))
		}
	}()
	task()
}

// Immediate runs everything inline on the caller's goroutine. It suits tests and
// callers that already serialize access themselves.
type Immediate struct{}

// Post implements Dispatcher.
func (Immediate) Post(task func()) bool {
	task()
	return true
}

// Go implements Dispatcher.
func (Immediate) Go(work func()) {
	work()
}
