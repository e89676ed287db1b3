// Package cache is the JSON read cache behind the admin endpoints. Entries
// carry a short TTL and are dropped whenever a new report is persisted, so
// the dashboard never serves a stale listing for long.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
