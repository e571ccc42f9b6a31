package probes

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/go-actuator/internal/platform/config"
)

// Pinger is implemented by clients with a context-aware Ping, such as
// *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// OpenPostgres creates a connection pool for the PostgreSQL probe.
// Connections are established lazily, so an unreachable database is reported
// by the probe rather than failing startup.
func OpenPostgres(ctx context.Context, cfg config.PostgresProbeConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.Timeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.Timeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	return pool, nil
}

// NewPostgres returns a probe named "postgres" that pings pool. A nil pool,
// including a nil *pgxpool.Pool, reports ErrNotConfigured.
func NewPostgres(pool Pinger, opts ...Option) *PingProbe {
	if p, ok := pool.(*pgxpool.Pool); ok && p == nil {
		pool = nil
	}
	return NewPing("postgres", func(ctx context.Context) error {
		if pool == nil {
			return ErrNotConfigured
		}
		return pool.Ping(ctx)
	}, opts...)
}
