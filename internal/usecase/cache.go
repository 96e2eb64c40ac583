package usecase

import (
	"context"
	"log"
	"time"
)

type EngineCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// computeOrCache is the single check-cache-else-compute-then-store point for
// every expensive engine operation. The read-compute-write sequence is
// deliberately non-atomic: concurrent misses may duplicate work, which is an
// accepted trade-off for this analytics-class workload. Cache failures are
// never surfaced; the thunk always wins.
func computeOrCache[T any](
	ctx context.Context,
	cache EngineCache,
	logger *log.Logger,
	key string,
	ttl time.Duration,
	compute func() (T, error),
) (T, error) {
	if cache != nil {
		var cached T
		hit, err := cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			if logger != nil {
				logger.Printf("[Engine] Cache HIT: %s", key)
			}
			return cached, nil
		}
		if logger != nil {
			logger.Printf("[Engine] Cache MISS: %s", key)
		}
	}

	out, err := compute()
	if err != nil {
		return out, err
	}

	if cache != nil {
		if err := cache.SetJSON(ctx, key, out, ttl); err == nil && logger != nil {
			logger.Printf("[Engine] Cache SET: %s", key)
		}
	}
	return out, nil
}
