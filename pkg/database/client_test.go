package database

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bus-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type fakePool struct {
	pingErr error
	closed  atomic.Bool
}

func (f *fakePool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (f *fakePool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (f *fakePool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (f *fakePool) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakePool) Close()                         { f.closed.Store(true) }

type netError struct{}

func (netError) Error() string   { return "connection reset by peer" }
func (netError) Timeout() bool   { return false }
func (netError) Temporary() bool { return true }

func newTestClient(connect func(utils.DatabaseConfig) (Querier, error)) *Client {
	return &Client{
		log:         zap.NewNop(),
		connect:     connect,
		maxAttempts: 3,
		opTimeout:   time.Second,
		baseDelay:   time.Millisecond,
	}
}

func TestConnectSingleFlight(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(func(utils.DatabaseConfig) (Querier, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return &fakePool{}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Connect(context.Background()); err != nil {
				t.Errorf("connect: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single establishment attempt, got %d", got)
	}
}

func TestConnectFailureIsNotCached(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(func(utils.DatabaseConfig) (Querier, error) {
		if calls.Add(1) == 1 {
			return nil, netError{}
		}
		return &fakePool{}, nil
	})

	if _, err := c.Connect(context.Background()); err == nil {
		t.Fatalf("first connect should fail")
	}
	if _, err := c.Connect(context.Background()); err != nil {
		t.Fatalf("second connect should retry from scratch, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 establishment attempts, got %d", got)
	}
}

func TestWithConnRetriesTransientFailures(t *testing.T) {
	c := newTestClient(func(utils.DatabaseConfig) (Querier, error) {
		return &fakePool{}, nil
	})

	var opCalls int
	err := c.WithConn(context.Background(), func(ctx context.Context, q Querier) error {
		opCalls++
		if opCalls < 3 {
			return netError{}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if opCalls != 3 {
		t.Fatalf("expected 3 attempts, got %d", opCalls)
	}
}

func TestWithConnDoesNotRetryPermanentFailures(t *testing.T) {
	c := newTestClient(func(utils.DatabaseConfig) (Querier, error) {
		return &fakePool{}, nil
	})

	boom := errors.New("unique constraint violation")
	var opCalls int
	err := c.WithConn(context.Background(), func(ctx context.Context, q Querier) error {
		opCalls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the original error, got %v", err)
	}
	if opCalls != 1 {
		t.Fatalf("permanent failure should not be retried, got %d attempts", opCalls)
	}
}

func TestWithConnExhaustionReportsAttempts(t *testing.T) {
	c := newTestClient(func(utils.DatabaseConfig) (Querier, error) {
		return &fakePool{}, nil
	})

	err := c.WithConn(context.Background(), func(ctx context.Context, q Querier) error {
		return netError{}
	})
	if err == nil {
		t.Fatalf("expected failure after exhausting retries")
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Fatalf("error should embed the attempt count, got %q", err.Error())
	}
}

func TestInvalidateClosesPool(t *testing.T) {
	pool := &fakePool{}
	c := newTestClient(func(utils.DatabaseConfig) (Querier, error) {
		return pool, nil
	})

	if _, err := c.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	c.Invalidate()

	if !pool.closed.Load() {
		t.Fatalf("invalidate should close the cached pool")
	}
}

func TestHealthReportsDown(t *testing.T) {
	c := newTestClient(func(utils.DatabaseConfig) (Querier, error) {
		return nil, netError{}
	})

	h := c.Health(context.Background())
	if h.Connected || h.Status != "down" {
		t.Fatalf("expected down snapshot, got %+v", h)
	}
	if h.Error == "" {
		t.Fatalf("down snapshot should carry the error message")
	}
}
