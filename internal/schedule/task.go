package schedule

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrInvalidInterval is returned when a task is built with a non-positive period.
var ErrInvalidInterval = errors.New("schedule: interval must be positive")

// TickerFunc creates a tick source and the function that releases it.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

// RealTicker is the default TickerFunc backed by time.Ticker.
func RealTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Task runs fn once per interval between Start and Stop.
// Start is idempotent; Stop blocks until the goroutine has exited.
type Task struct {
	interval time.Duration
	fn       func(time.Time)
	ticker   TickerFunc

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped *atomic.Bool
	onExit  func()
}

// New builds a stopped Task.
func New(interval time.Duration, fn func(time.Time), ticker TickerFunc) (*Task, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if ticker == nil {
		ticker = RealTicker
	}
	return &Task{interval: interval, fn: fn, ticker: ticker}, nil
}

// Interval returns the configured period.
func (t *Task) Interval() time.Duration {
	return t.interval
}

// OnExit registers fn to run after the goroutine ends without Stop, e.g.
// because the Start context was cancelled. Call it before Start.
func (t *Task) OnExit(fn func()) {
	t.mu.Lock()
	t.onExit = fn
	t.mu.Unlock()
}

// Start launches the task. It returns false when the task is already running.
// The task also stops when ctx is cancelled.
func (t *Task) Start(ctx context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.runningLocked() {
		return false
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	stopped := new(atomic.Bool)
	onExit := t.onExit
	ticks, release := t.ticker(t.interval)
	t.cancel, t.done, t.stopped = cancel, done, stopped

	go func() {
		defer func() {
			if onExit != nil && !stopped.Load() {
				onExit()
			}
		}()
		defer close(done)
		defer release()
		for {
			select {
			case <-runCtx.Done():
				return
			case ts, ok := <-ticks:
				if !ok {
					return
				}
				// Both cases can be ready at once; never fire after cancellation.
				if runCtx.Err() != nil {
					return
				}
				t.fn(ts)
			}
		}
	}()
	return true
}

// Stop cancels the task and waits for it to exit. It returns false when the
// task was not running.
func (t *Task) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.runningLocked() {
		t.cancel, t.done, t.stopped = nil, nil, nil
		return false
	}
	t.stopped.Store(true)
	t.cancel()
	<-t.done
	t.cancel, t.done, t.stopped = nil, nil, nil
	return true
}

// Running reports whether the task goroutine is alive.
func (t *Task) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runningLocked()
}

func (t *Task) runningLocked() bool {
	if t.done == nil {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}
