package lock

import (
	"context"
	"sync"
	"time"
)

// MemoryLocker holds allocation locks in process memory. It is only correct
// when a single server instance is running.
type MemoryLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
	wait  time.Duration
}

// NewMemoryLocker creates a keyed in-process locker. A positive wait bounds
// how long Acquire blocks before failing with ErrLockTimeout.
func NewMemoryLocker(wait time.Duration) *MemoryLocker {
	return &MemoryLocker{
		slots: make(map[string]chan struct{}),
		wait:  wait,
	}
}

func (l *MemoryLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

// Acquire takes every key in sorted order
func (l *MemoryLocker) Acquire(ctx context.Context, keys ...string) (Release, error) {
	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	held := make([]chan struct{}, 0, len(keys))
	releaseHeld := func() {
		for i := len(held) - 1; i >= 0; i-- {
			<-held[i]
		}
	}

	for _, key := range normalizeKeys(keys) {
		ch := l.slot(key)
		select {
		case ch <- struct{}{}:
			held = append(held, ch)
		case <-ctx.Done():
			releaseHeld()
			return nil, waitError(ctx)
		}
	}

	var once sync.Once
	return func() { once.Do(releaseHeld) }, nil
}
