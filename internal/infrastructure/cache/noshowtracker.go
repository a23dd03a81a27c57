package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// noShowKeyPrefix is the prefix for all no-show tracking keys
	noShowKeyPrefix = "no_show:"
	// DefaultNoShowTTLDays is the default rolling window for no-show counts
	DefaultNoShowTTLDays = 30
)

// NoShowTracker keeps a rolling count of no-shows per customer ref.
// Counts expire after the configured window so old misses stop
// counting against a customer. The count is advisory; booking is
// never blocked on Redis being unavailable.
type NoShowTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNoShowTracker creates a NoShowTracker with the given rolling window.
// A non-positive ttlDays falls back to DefaultNoShowTTLDays.
func NewNoShowTracker(client *redis.Client, ttlDays int) *NoShowTracker {
	if ttlDays <= 0 {
		ttlDays = DefaultNoShowTTLDays
	}

	return &NoShowTracker{
		client: client,
		ttl:    time.Duration(ttlDays) * 24 * time.Hour,
	}
}

// buildKey builds the Redis key for a customer's no-show count
// Format: no_show:{customer_ref}
func (t *NoShowTracker) buildKey(customerRef string) string {
	return noShowKeyPrefix + customerRef
}

// Record increments the customer's no-show count and refreshes the
// rolling window. The window restarts on every miss, so "recent"
// means within ttl of the latest no-show.
func (t *NoShowTracker) Record(ctx context.Context, customerRef string) error {
	if customerRef == "" {
		return nil
	}

	key := t.buildKey(customerRef)

	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record no-show: %w", err)
	}

	return nil
}

// Count returns the customer's no-show count within the rolling window.
// Returns 0 for customers with no recent no-shows.
func (t *NoShowTracker) Count(ctx context.Context, customerRef string) (int64, error) {
	if customerRef == "" {
		return 0, nil
	}

	count, err := t.client.Get(ctx, t.buildKey(customerRef)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get no-show count: %w", err)
	}

	return count, nil
}

// Clear drops the customer's no-show count, forgiving past misses.
func (t *NoShowTracker) Clear(ctx context.Context, customerRef string) error {
	if customerRef == "" {
		return nil
	}

	if err := t.client.Del(ctx, t.buildKey(customerRef)).Err(); err != nil {
		return fmt.Errorf("failed to clear no-show count: %w", err)
	}

	return nil
}
