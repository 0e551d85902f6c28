package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"usersvc/internal/config"
	"usersvc/internal/domain"
	"usersvc/internal/metrics"
)

// maxConnIdleTime is the inactivity threshold after which an idle
// connection is recycled by the pool's background health check.
const maxConnIdleTime = 5 * time.Minute

// Pool owns the bounded set of database connections. It wraps pgxpool with
// the service's acquisition contract: a caller-independent acquire timeout
// and a scoped borrow/release guard.
type Pool struct {
	inner          *pgxpool.Pool
	acquireTimeout time.Duration
	commandTimeout time.Duration
	closeOnce      sync.Once
}

// NewPool establishes the connection pool and verifies the database is
// reachable. A connect or ping failure is a domain.ErrConnectionSetup and
// is fatal to process startup.
func NewPool(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.PoolMinSize)
	poolCfg.MaxConns = int32(cfg.PoolMaxSize)
	poolCfg.MaxConnIdleTime = maxConnIdleTime
	poolCfg.ConnConfig.Tracer = &MetricsTracer{}

	inner, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnectionSetup, err)
	}

	if err := inner.Ping(ctx); err != nil {
		inner.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrConnectionSetup, err)
	}

	slog.Info("Database connected",
		"min_conns", poolCfg.MinConns,
		"max_conns", poolCfg.MaxConns,
		"acquire_timeout", cfg.AcquireTimeout,
		"command_timeout", cfg.CommandTimeout)

	return &Pool{
		inner:          inner,
		acquireTimeout: cfg.AcquireTimeout,
		commandTimeout: cfg.CommandTimeout,
	}, nil
}

// Acquire borrows one idle connection, creating a new one if the pool is
// below capacity. When the pool is exhausted the caller blocks until a
// connection is released or the acquire timeout elapses, in which case the
// error is domain.ErrPoolBusy. A connection granted after the caller gave
// up is returned to the idle set by pgxpool, never leaked.
func (p *Pool) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	timer := prometheus.NewTimer(metrics.PoolAcquireDuration)
	conn, err := p.inner.Acquire(acquireCtx)
	timer.ObserveDuration()

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			metrics.PoolAcquireTimeouts.Inc()
			return nil, fmt.Errorf("%w: no connection available within %s", domain.ErrPoolBusy, p.acquireTimeout)
		}
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	return conn, nil
}

// WithConn runs fn on a borrowed connection and releases it on every exit
// path, including panics and caller cancellation. The context passed to fn
// carries the command timeout.
func (p *Pool) WithConn(ctx context.Context, fn func(ctx context.Context, conn *pgxpool.Conn) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	queryCtx, cancel := context.WithTimeout(ctx, p.commandTimeout)
	defer cancel()

	return fn(queryCtx, conn)
}

// Ping verifies a round-trip to the database on a pooled connection.
func (p *Pool) Ping(ctx context.Context) error {
	return p.inner.Ping(ctx)
}

// Stat returns a snapshot of the pool's idle/in-use accounting.
func (p *Pool) Stat() *pgxpool.Stat {
	return p.inner.Stat()
}

// Close waits for borrowed connections to be released, then closes all idle
// connections. Closing an already-closed pool is a no-op.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.inner.Close()
		slog.Info("Database pool closed")
	})
}
