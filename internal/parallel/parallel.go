// Package parallel runs independent jobs on a bounded number of goroutines.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Upper bound on concurrently running jobs.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

func (c Config) limit() int {
	if !c.Enabled || c.NumWorkers < 1 {
		return 1
	}
	return c.NumWorkers
}

// Map calls f(ctx, i) for i in [0, n) and returns the results in index order.
//
// At most cfg.NumWorkers calls run at once; a disabled config runs them one
// at a time. The first error cancels the context passed to the remaining
// calls, no new calls are started, and that error is returned.
func Map[T any](ctx context.Context, n int, cfg Config, f func(ctx context.Context, i int) (T, error)) ([]T, error) {
	out := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.limit())

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			v, err := f(gctx, i)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always done after Wait; only the caller's context matters here.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
