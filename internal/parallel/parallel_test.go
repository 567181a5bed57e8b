package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Sequential(t *testing.T) {
	var running, peak int64
	got, err := Map(context.Background(), 100, Config{Enabled: false},
		func(_ context.Context, i int) (int, error) {
			cur := atomic.AddInt64(&running, 1)
			if cur > atomic.LoadInt64(&peak) {
				atomic.StoreInt64(&peak, cur)
			}
			atomic.AddInt64(&running, -1)
			return i, nil
		})
	require.NoError(t, err)
	assert.Len(t, got, 100)
	assert.Equal(t, int64(1), peak)
}

func TestMap_Order(t *testing.T) {
	got, err := Map(context.Background(), 50, Config{Enabled: true, NumWorkers: 4},
		func(_ context.Context, i int) (int, error) {
			return i * i, nil
		})
	require.NoError(t, err)
	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i*i, v)
	}
}

func TestMap_Limit(t *testing.T) {
	var running, peak int64
	_, err := Map(context.Background(), 64, Config{Enabled: true, NumWorkers: 3},
		func(_ context.Context, _ int) (struct{}, error) {
			cur := atomic.AddInt64(&running, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if cur <= p || atomic.CompareAndSwapInt64(&peak, p, cur) {
					break
				}
			}
			atomic.AddInt64(&running, -1)
			return struct{}{}, nil
		})
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(3))
}

func TestMap_Error(t *testing.T) {
	boom := errors.New("boom")
	got, err := Map(context.Background(), 20, Config{Enabled: false},
		func(_ context.Context, i int) (int, error) {
			if i == 5 {
				return 0, boom
			}
			return i, nil
		})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestMap_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int64
	_, err := Map(ctx, 10, DefaultConfig(), func(_ context.Context, _ int) (int, error) {
		atomic.AddInt64(&calls, 1)
		return 0, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestMap_Empty(t *testing.T) {
	got, err := Map(context.Background(), 0, DefaultConfig(), func(_ context.Context, i int) (int, error) {
		return i, nil
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func BenchmarkMap(b *testing.B) {
	n := 10000
	square := func(_ context.Context, i int) (int, error) { return i * i, nil }

	b.Run("parallel", func(b *testing.B) {
		cfg := DefaultConfig()
		for i := 0; i < b.N; i++ {
			_, _ = Map(context.Background(), n, cfg, square)
		}
	})
	b.Run("sequential", func(b *testing.B) {
		seq := Config{Enabled: false}
		for i := 0; i < b.N; i++ {
			_, _ = Map(context.Background(), n, seq, square)
		}
	})
}
