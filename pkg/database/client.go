package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"bus-booking/pkg/utils"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Client is the connectivity shim repositories go through. The pool is
// established lazily: the first caller triggers it, concurrent callers
// join the same in-flight attempt, and a failed pool is dropped so the
// next caller starts from scratch.
type Client struct {
	cfg     utils.DatabaseConfig
	log     *zap.Logger
	connect func(utils.DatabaseConfig) (Querier, error)

	mu   sync.RWMutex
	pool Querier

	sf singleflight.Group

	maxAttempts int
	opTimeout   time.Duration
	baseDelay   time.Duration
}

func NewClient(cfg utils.DatabaseConfig, log *zap.Logger) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 3
	}
	opTimeout := cfg.OpTimeout
	if opTimeout <= 0 {
		opTimeout = 10 * time.Second
	}

	return &Client{
		cfg:         cfg,
		log:         log.With(zap.String("component", "database")),
		connect:     InitDB,
		maxAttempts: maxAttempts,
		opTimeout:   opTimeout,
		baseDelay:   500 * time.Millisecond,
	}
}

// Connect returns the live pool, establishing it on first use.
// Concurrent callers coalesce into a single establishment attempt.
func (c *Client) Connect(ctx context.Context) (Querier, error) {
	c.mu.RLock()
	pool := c.pool
	c.mu.RUnlock()
	if pool != nil {
		return pool, nil
	}

	v, err, _ := c.sf.Do("connect", func() (any, error) {
		// Someone may have finished while we queued for the flight
		c.mu.RLock()
		pool := c.pool
		c.mu.RUnlock()
		if pool != nil {
			return pool, nil
		}

		c.log.Info("Establishing database connection")
		pool, err := c.connect(c.cfg)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.pool = pool
		c.mu.Unlock()

		c.log.Info("Database connection established")
		return pool, nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return v.(Querier), nil
}

// Invalidate drops the cached pool so the next caller reconnects.
func (c *Client) Invalidate() {
	c.mu.Lock()
	pool := c.pool
	c.pool = nil
	c.mu.Unlock()

	if pool != nil {
		pool.Close()
		c.log.Warn("Database connection invalidated")
	}
}

// WithConn runs op against the database with a per-attempt timeout and
// bounded exponential-backoff retry. A transient failure invalidates the
// cached pool before the next attempt; once attempts are exhausted the
// error carries the attempt count.
func (c *Client) WithConn(ctx context.Context, op func(ctx context.Context, q Querier) error) error {
	var attempts int

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.baseDelay

	err := backoff.Retry(func() error {
		attempts++

		pool, err := c.Connect(ctx)
		if err != nil {
			if IsTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}

		opCtx, cancel := context.WithTimeout(ctx, c.opTimeout)
		defer cancel()

		if err := op(opCtx, pool); err != nil {
			if IsTransient(err) {
				c.log.Warn("Transient database failure, retrying",
					zap.Int("attempt", attempts),
					zap.Error(err))
				c.Invalidate()
				return err
			}
			return backoff.Permanent(err)
		}

		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.maxAttempts-1)), ctx))

	if err != nil {
		if attempts > 1 {
			return fmt.Errorf("database operation failed after %d attempts: %w", attempts, err)
		}
		return err
	}

	return nil
}

// Health pings the database and reports a snapshot.
type Health struct {
	Status    string `json:"status"`
	Connected bool   `json:"connected"`
	LatencyMS int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

func (c *Client) Health(ctx context.Context) Health {
	start := time.Now()

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	pool, err := c.Connect(pingCtx)
	if err == nil {
		err = pool.Ping(pingCtx)
	}

	latency := time.Since(start).Milliseconds()
	if err != nil {
		return Health{
			Status:    "down",
			Connected: false,
			LatencyMS: latency,
			Error:     err.Error(),
		}
	}

	return Health{
		Status:    "up",
		Connected: true,
		LatencyMS: latency,
	}
}

// Close releases the pool if one was established.
func (c *Client) Close() {
	c.mu.Lock()
	pool := c.pool
	c.pool = nil
	c.mu.Unlock()

	if pool != nil {
		pool.Close()
	}
}

// IsTransient classifies connectivity failures worth a retry: network
// errors, timeouts, and anything pgconn marks safe to retry.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return pgconn.Timeout(err) || pgconn.SafeToRetry(err)
}
