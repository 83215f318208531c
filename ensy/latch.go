package ensy

import (
	"context"
	"sync"
)

// Latch is a boolean condition that can be awaited. Setting an already set
// latch, or clearing an already cleared one, is a no-op.
type Latch struct {
	mu  sync.Mutex
	set bool
	ch  chan struct{}
}

func NewLatch() *Latch {
	return &Latch{ch: make(chan struct{})}
}

func (l *Latch) Set() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.set {
		l.set = true
		close(l.ch)
	}
}

func (l *Latch) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.set {
		l.set = false
		l.ch = make(chan struct{})
	}
}

func (l *Latch) IsSet() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.set
}

// Wait blocks until the latch is set or the context is done, in which case
// the context's error is returned.
func (l *Latch) Wait(ctx context.Context) error {
	l.mu.Lock()
	ch := l.ch
	l.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
