package database

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"usersvc/internal/metrics"
)

const statsSampleInterval = 10 * time.Second

// StatsCollector periodically exports the pool's idle/in-use accounting as
// Prometheus gauges. It is the pool's only background bookkeeping besides
// pgxpool's own health checks and never blocks request handling.
type StatsCollector struct {
	pool     *Pool
	clock    clockwork.Clock
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewStatsCollector(pool *Pool, clock clockwork.Clock) *StatsCollector {
	return &StatsCollector{
		pool:   pool,
		clock:  clock,
		stopCh: make(chan struct{}),
	}
}

// Start launches the sampling loop. Call Stop to terminate it.
func (c *StatsCollector) Start() {
	ticker := c.clock.NewTicker(statsSampleInterval)
	go func() {
		for {
			select {
			case <-ticker.Chan():
				c.sample()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
	slog.Info("Pool stats collector started", "interval", statsSampleInterval)
}

func (c *StatsCollector) sample() {
	stat := c.pool.Stat()
	metrics.PoolConnections.WithLabelValues("idle").Set(float64(stat.IdleConns()))
	metrics.PoolConnections.WithLabelValues("in_use").Set(float64(stat.AcquiredConns()))
	metrics.PoolConnections.WithLabelValues("max").Set(float64(stat.MaxConns()))
}

// Stop terminates the sampling loop. Safe to call more than once.
func (c *StatsCollector) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}
