package monitors

import (
	"context"
	"fmt"
	"time"
)

const defaultTimeout = 5 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Result struct {
	Up      bool
	Latency time.Duration
	Err     error
}

// CheckStore pings the backing store with a bounded timeout.
func CheckStore(ctx context.Context, p Pinger, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := p.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		return Result{Up: false, Latency: latency, Err: fmt.Errorf("failed to ping store: %w", err)}
	}

	return Result{Up: true, Latency: latency}
}
