package probes

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/go-actuator/internal/platform/config"
)

// OpenRedis creates the client used by the Redis probe. The client connects
// on first use.
func OpenRedis(cfg config.RedisProbeConfig) redis.UniversalClient {
	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:       []string{cfg.Addr},
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.Timeout,
		ReadTimeout: cfg.Timeout,
	})
}

// NewRedis returns a probe named "redis" that issues PING through client. A
// nil client, including a nil *redis.Client, reports ErrNotConfigured.
func NewRedis(client redis.UniversalClient, opts ...Option) *PingProbe {
	if c, ok := client.(*redis.Client); ok && c == nil {
		client = nil
	}
	return NewPing("redis", func(ctx context.Context) error {
		if client == nil {
			return ErrNotConfigured
		}
		return client.Ping(ctx).Err()
	}, opts...)
}
