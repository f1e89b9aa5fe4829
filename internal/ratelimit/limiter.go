package ratelimit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rwa-market/asset-catalog/internal/adapter"
	"github.com/rwa-market/asset-catalog/internal/logger"
)

const (
	DefaultKeyPrefix       = "asset-catalog:limiter:"
	DefaultMaxWait         = 10 * time.Second
	DefaultRedisRetryAfter = 30 * time.Second
)

// ProviderConfig is the request budget of one upstream API
type ProviderConfig struct {
	RequestsPerMinute int
	Burst             int           // defaults to RequestsPerMinute
	MaxWait           time.Duration // how long Wait may block before giving up
}

// Config holds the limiter configuration
type Config struct {
	KeyPrefix string
	// RedisRetryAfter is how long the local limiter is used after a Redis error
	RedisRetryAfter time.Duration
	Providers       map[string]ProviderConfig
}

// Limiter throttles calls to upstream APIs
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Wait blocks until a token for provider is available, the context ends or MaxWait elapses
	Wait(ctx context.Context, provider string) error

	// Close releases the Redis connection
	Close() error
}

type providerLimiter struct {
	name   string
	config ProviderConfig
	local  *rate.Limiter
}

type limiter struct {
	config      Config
	redis       adapter.RedisClient
	distributed adapter.RedisRateLimiter
	clock       adapter.Clock
	providers   map[string]*providerLimiter

	// unix nanos until which Redis is skipped, 0 when healthy
	redisDownUntil atomic.Int64
}

// NewLimiter creates a limiter. With a nil RedisClient every replica keeps its own budget,
// otherwise the budget is shared through Redis and the local limiter only covers Redis outages.
func NewLimiter(cfg Config, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l := &limiter{
		config:    cfg,
		redis:     rc,
		clock:     clock,
		providers: make(map[string]*providerLimiter, len(cfg.Providers)),
	}

	for name, pc := range cfg.Providers {
		perSecond := float64(pc.RequestsPerMinute) / 60
		l.providers[name] = &providerLimiter{
			name:   name,
			config: pc,
			local:  rate.NewLimiter(rate.Limit(perSecond), pc.Burst),
		}
	}

	if rc != nil {
		l.distributed = rc.NewRateLimiter()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rc.Ping(ctx); err != nil {
			l.markRedisDown(err)
		}
	}

	logger.Info("Rate limiter initialized",
		zap.Int("providers", len(cfg.Providers)),
		zap.Bool("distributed", rc != nil),
	)

	return l, nil
}

func (l *limiter) Wait(ctx context.Context, provider string) error {
	pl, ok := l.providers[provider]
	if !ok {
		return fmt.Errorf("provider '%s' not configured", provider)
	}

	ctx, cancel := context.WithTimeout(ctx, pl.config.MaxWait)
	defer cancel()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !l.redisUsable() {
			return pl.local.Wait(ctx)
		}

		res, err := l.distributed.Allow(ctx, l.config.KeyPrefix+pl.name, redis_rate.Limit{
			Rate:   pl.config.RequestsPerMinute,
			Burst:  pl.config.Burst,
			Period: time.Minute,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.markRedisDown(err)
			continue
		}
		if res.Allowed > 0 {
			return nil
		}

		logger.Debug("Rate limit token unavailable, waiting",
			zap.String("provider", pl.name),
			zap.Duration("retry_after", res.RetryAfter),
		)

		// 50-150% of retryAfter so replicas don't retry in lockstep
		jitter := time.Duration(float64(res.RetryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(jitter):
		}
	}
}

func (l *limiter) redisUsable() bool {
	if l.distributed == nil {
		return false
	}
	until := l.redisDownUntil.Load()
	if until == 0 {
		return true
	}
	if l.clock.Now().UnixNano() < until {
		return false
	}
	l.redisDownUntil.CompareAndSwap(until, 0)
	logger.Info("Retrying Redis rate limiter")
	return true
}

func (l *limiter) markRedisDown(err error) {
	l.redisDownUntil.Store(l.clock.Now().Add(l.config.RedisRetryAfter).UnixNano())
	logger.Warn("Redis rate limiter unavailable, using local limiter",
		zap.Error(err),
		zap.Duration("retry_after", l.config.RedisRetryAfter),
	)
}

func (l *limiter) Close() error {
	if l.redis == nil {
		return nil
	}
	if err := l.redis.Close(); err != nil {
		return fmt.Errorf("failed to close redis: %w", err)
	}
	return nil
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *Config) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	providers := make(map[string]ProviderConfig, len(cfg.Providers))
	for name, pc := range cfg.Providers {
		if pc.RequestsPerMinute <= 0 {
			return fmt.Errorf("provider %s: requests per minute must be positive", name)
		}
		if pc.Burst <= 0 {
			pc.Burst = pc.RequestsPerMinute
		}
		if pc.MaxWait <= 0 {
			pc.MaxWait = DefaultMaxWait
		}
		providers[name] = pc
	}
	cfg.Providers = providers

	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultKeyPrefix
	}
	if cfg.RedisRetryAfter <= 0 {
		cfg.RedisRetryAfter = DefaultRedisRetryAfter
	}

	return nil
}
