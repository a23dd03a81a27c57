package ratelimit

import (
	"context"
	"time"
)

// Config holds the per-window limits applied to one key. A zero limit
// disables that window.
type Config struct {
	PerMinute int
	PerHour   int
	PerDay    int
}

// Limiter throttles booking and other write endpoints per client key.
type Limiter interface {
	Allow(ctx context.Context, key string, config Config) (bool, error)
	Remaining(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
