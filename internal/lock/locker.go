package lock

import (
	"context"
	"errors"
	"fmt"
	"sort"

	apperrors "cleaning-scheduler-backend/internal/errors"
)

// Release frees every key taken by a successful Acquire. It is safe to call
// more than once.
type Release func()

// Locker serializes allocation decisions. Acquire blocks until all keys are
// held or ctx is done; keys are always taken in sorted order.
type Locker interface {
	Acquire(ctx context.Context, keys ...string) (Release, error)
}

// TeamKey is the lock key guarding the crew of one team
func TeamKey(teamID uint) string {
	return fmt.Sprintf("team:%d", teamID)
}

// TeamKeys builds the lock keys for a set of teams
func TeamKeys(teamIDs []uint) []string {
	keys := make([]string, len(teamIDs))
	for i, id := range teamIDs {
		keys[i] = TeamKey(id)
	}
	return keys
}

// normalizeKeys sorts and de-duplicates keys
func normalizeKeys(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	sort.Strings(out)

	j := 0
	for i, k := range out {
		if i > 0 && k == out[j-1] {
			continue
		}
		out[j] = k
		j++
	}
	return out[:j]
}

// waitError maps a finished wait context to the error returned to callers
func waitError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.ErrLockTimeout
	}
	return ctx.Err()
}
