package sim

import (
	"context"
	"sync"
	"time"
)

// Task runs step on a fixed period until step returns false, the context
// is cancelled or Stop is called. A stopped task can be started again.
type Task struct {
	period time.Duration
	step   func() bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewTask(period time.Duration, step func() bool) *Task {
	return &Task{period: period, step: step}
}

// Start begins the periodic loop and returns immediately. It is a no-op
// while the loop is already running.
func (t *Task) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.runningLocked() {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done
	go t.run(ctx, done)
}

// Stop cancels the loop and waits for it to exit. It must not be called
// from inside step.
func (t *Task) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the loop goroutine is still alive.
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

func (t *Task) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !t.step() {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
