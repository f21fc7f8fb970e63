package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "cleaning-scheduler-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamKeys(t *testing.T) {
	assert.Equal(t, "team:7", TeamKey(7))
	assert.Equal(t, []string{"team:1", "team:2"}, TeamKeys([]uint{1, 2}))
}

func TestNormalizeKeys(t *testing.T) {
	assert.Equal(t, []string{"team:1", "team:2", "team:3"}, normalizeKeys([]string{"team:3", "team:1", "team:3", "team:2", "team:1"}))
	assert.Empty(t, normalizeKeys(nil))
}

func TestMemoryLockerExclusive(t *testing.T) {
	locker := NewMemoryLocker(50 * time.Millisecond)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "team:1", "team:2")
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, "team:2")
	assert.ErrorIs(t, err, apperrors.ErrLockTimeout)

	release()
	release()

	release, err = locker.Acquire(ctx, "team:2", "team:1")
	require.NoError(t, err)
	release()
}

func TestMemoryLockerDisjointKeys(t *testing.T) {
	locker := NewMemoryLocker(50 * time.Millisecond)
	ctx := context.Background()

	first, err := locker.Acquire(ctx, "team:1")
	require.NoError(t, err)
	defer first()

	second, err := locker.Acquire(ctx, "team:2")
	require.NoError(t, err)
	second()
}

func TestMemoryLockerPartialAcquireIsRolledBack(t *testing.T) {
	locker := NewMemoryLocker(30 * time.Millisecond)
	ctx := context.Background()

	blocker, err := locker.Acquire(ctx, "team:2")
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, "team:1", "team:2")
	require.Error(t, err)

	// team:1 must have been released by the failed attempt
	release, err := locker.Acquire(ctx, "team:1")
	require.NoError(t, err)
	release()
	blocker()
}

func TestMemoryLockerHonoursCancellation(t *testing.T) {
	locker := NewMemoryLocker(0)

	release, err := locker.Acquire(context.Background(), "team:1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = locker.Acquire(ctx, "team:1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryLockerSerializesConcurrentHolders(t *testing.T) {
	locker := NewMemoryLocker(5 * time.Second)
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys := []string{"team:1", "team:2"}
			if i%2 == 0 {
				keys = []string{"team:2", "team:1"}
			}
			release, err := locker.Acquire(ctx, keys...)
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
}
