package cache

import (
	"context"
	"time"
)

// Cache is a best-effort TTL byte cache for backend reference data. A miss
// and a broken cache look the same to callers: they fall through to the
// backend.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type nopCache struct{}

// NewNop returns a cache that never hits; used when redis is not configured.
func NewNop() Cache {
	return nopCache{}
}

func (nopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (nopCache) Set(context.Context, string, []byte, time.Duration) {}
