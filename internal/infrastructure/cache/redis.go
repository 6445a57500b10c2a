package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"gigconnect/internal/config"
)

// Redis backs the API rate limiter. When the server is unreachable the
// limiter degrades to a no-op rather than taking requests down with it.
type Redis struct {
	client *redis.Client
	logger zerolog.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger zerolog.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
		_ = client.Close()
		return &Redis{client: nil, logger: logger}
	}

	return &Redis{client: client, logger: logger}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || err == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn().Err(err).Msg("redis error, bypassing")
	}
}

// IncrWindow increments the counter for key inside a fixed window and
// returns the count after the increment. Returns (0, false) when redis is
// unavailable, which callers treat as "do not limit".
func (r *Redis) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, bool) {
	if r.isUnavailable() {
		return 0, false
	}

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// NX keeps the TTL from the first increment, so the window is fixed.
	// A plain EXPIRE here would reset it on every request and never let the
	// counter expire under steady traffic.
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		r.warnUnavailableOnce(err)
		return 0, false
	}
	return incr.Val(), true
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}
