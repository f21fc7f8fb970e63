package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cleaning-scheduler-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix     = "cleaning:lock:"
	defaultRetryInterval = 50 * time.Millisecond
	releaseTimeout       = 2 * time.Second
)

// releaseScript deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker holds allocation locks in Redis so that several server
// instances serialize on the same keys. Each key is SET NX with a TTL, so a
// crashed holder cannot block allocation for longer than the TTL.
type RedisLocker struct {
	client        *redis.Client
	prefix        string
	ttl           time.Duration
	wait          time.Duration
	retryInterval time.Duration
}

// NewRedisClient connects to Redis and checks the connection with a ping
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// NewRedisLocker creates a Redis backed locker
func NewRedisLocker(client *redis.Client, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{
		client:        client,
		prefix:        defaultKeyPrefix,
		ttl:           ttl,
		wait:          wait,
		retryInterval: defaultRetryInterval,
	}
}

// Acquire takes every key in sorted order, polling until each is free
func (l *RedisLocker) Acquire(ctx context.Context, keys ...string) (Release, error) {
	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	token := uuid.NewString()
	held := make([]string, 0, len(keys))

	for _, key := range normalizeKeys(keys) {
		redisKey := l.prefix + key
		if err := l.acquireOne(ctx, redisKey, token); err != nil {
			l.release(held, token)
			return nil, err
		}
		held = append(held, redisKey)
	}

	var once sync.Once
	return func() { once.Do(func() { l.release(held, token) }) }, nil
}

func (l *RedisLocker) acquireOne(ctx context.Context, redisKey, token string) error {
	ticker := time.NewTicker(l.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return waitError(ctx)
			}
			return fmt.Errorf("failed to acquire lock %s: %w", redisKey, err)
		}
		if ok {
			return nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return waitError(ctx)
		}
	}
}

func (l *RedisLocker) release(redisKeys []string, token string) {
	// the caller's context may already be cancelled
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	for i := len(redisKeys) - 1; i >= 0; i-- {
		if err := releaseScript.Run(ctx, l.client, []string{redisKeys[i]}, token).Err(); err != nil {
			logger.New().WithField("lock_key", redisKeys[i]).WithError(err).Warn("failed to release allocation lock")
		}
	}
}
