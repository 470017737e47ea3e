package events

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ledger deduplicates webhook deliveries by event id at the dispatcher
// boundary. Reserve returns true exactly once per id; a reservation is
// released when the handler fails so the provider's retry can land.
type Ledger interface {
	Reserve(ctx context.Context, eventID string) (bool, error)
	Release(ctx context.Context, eventID string) error
}

// MemoryLedger is a process-local ledger. It only protects a single
// instance; multi-instance deployments should use the Redis ledger.
type MemoryLedger struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{seen: make(map[string]struct{})}
}

func (l *MemoryLedger) Reserve(ctx context.Context, eventID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.seen[eventID]; ok {
		return false, nil
	}
	l.seen[eventID] = struct{}{}
	return true, nil
}

func (l *MemoryLedger) Release(ctx context.Context, eventID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.seen, eventID)
	return nil
}

// RedisLedger reserves event ids with SET NX under a TTL, which bounds the
// ledger's size to the provider's retry window.
type RedisLedger struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLedger(client *redis.Client, ttl time.Duration) *RedisLedger {
	return &RedisLedger{client: client, ttl: ttl}
}

func (l *RedisLedger) key(eventID string) string {
	return "webhook:event:" + eventID
}

func (l *RedisLedger) Reserve(ctx context.Context, eventID string) (bool, error) {
	return l.client.SetNX(ctx, l.key(eventID), 1, l.ttl).Result()
}

func (l *RedisLedger) Release(ctx context.Context, eventID string) error {
	return l.client.Del(ctx, l.key(eventID)).Err()
}
