package adapter

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisOptions holds the connection settings of the shared Redis instance
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// RedisClient defines the Redis operations the rate limiter needs
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient,RedisRateLimiter=MockRedisRateLimiter
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error

	// NewRateLimiter creates a GCRA limiter backed by this client
	NewRateLimiter() RedisRateLimiter

	// Close closes the Redis connection
	Close() error
}

type realRedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client. The connection is established lazily.
func NewRedisClient(opts RedisOptions) RedisClient {
	return &realRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
	}
}

func (r *realRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *realRedisClient) NewRateLimiter() RedisRateLimiter {
	return &realRateLimiter{limiter: redis_rate.NewLimiter(r.client)}
}

func (r *realRedisClient) Close() error {
	return r.client.Close()
}

// RedisRateLimiter is a distributed limiter shared by every API replica
type RedisRateLimiter interface {
	// Allow takes one token for key, reporting how long to wait when none is left
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type realRateLimiter struct {
	limiter *redis_rate.Limiter
}

func (r *realRateLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	return r.limiter.Allow(ctx, key, limit)
}
