package batch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingFactory returns a factory whose jobs record how many times the
// factory was invoked and which job indices ran.
func countingFactory(calls *int32) func() Job[int] {
	return func() Job[int] {
		n := atomic.AddInt32(calls, 1)
		return func(ctx context.Context) (int, error) {
			return int(n), nil
		}
	}
}

func TestRunProducesAllResults(t *testing.T) {
	var calls int32
	results, err := Run(context.Background(), 4, 10, countingFactory(&calls), nil)
	require.NoError(t, err)

	assert.Equal(t, int32(10), calls, "the factory is called exactly quantity times")
	require.Len(t, results, 10)

	sort.Ints(results)
	for i, got := range results {
		assert.Equal(t, i+1, got)
	}
}

func TestRunSkipsFailedJobs(t *testing.T) {
	var calls int32
	factory := func() Job[int] {
		n := atomic.AddInt32(&calls, 1)
		return func(ctx context.Context) (int, error) {
			if n == 3 || n == 7 {
				return 0, fmt.Errorf("job %d exploded", n)
			}
			return int(n), nil
		}
	}

	results, err := Run(context.Background(), 3, 10, factory, nil)
	require.NoError(t, err, "individual failures do not fail the batch")
	assert.Len(t, results, 8)

	sort.Ints(results)
	assert.NotContains(t, results, 3)
	assert.NotContains(t, results, 7)
}

func TestRunWorkerCountDoesNotChangeResults(t *testing.T) {
	run := func(workers int) []int {
		var calls int32
		results, err := Run(context.Background(), workers, 20, countingFactory(&calls), nil)
		require.NoError(t, err)
		sort.Ints(results)
		return results
	}

	assert.Equal(t, run(1), run(5))
}

func TestRunBoundsConcurrency(t *testing.T) {
	const workers = 3

	var inFlight, peak int32
	factory := func() Job[struct{}] {
		return func(ctx context.Context) (struct{}, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				old := atomic.LoadInt32(&peak)
				if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return struct{}{}, nil
		}
	}

	_, err := Run(context.Background(), workers, 12, factory, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak, int32(workers))
}

func TestRunInvalidArguments(t *testing.T) {
	factory := func() Job[int] {
		return func(ctx context.Context) (int, error) { return 0, nil }
	}

	t.Run("ZeroWorkers", func(t *testing.T) {
		_, err := Run(context.Background(), 0, 5, factory, nil)
		assert.ErrorIs(t, err, ErrInvalidWorkerCount)
	})

	t.Run("NegativeWorkers", func(t *testing.T) {
		_, err := Run(context.Background(), -2, 5, factory, nil)
		assert.ErrorIs(t, err, ErrInvalidWorkerCount)
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		_, err := Run(context.Background(), 1, -1, factory, nil)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("ZeroQuantityIsEmpty", func(t *testing.T) {
		results, err := Run(context.Background(), 4, 0, factory, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestRunCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var started int32
	release := make(chan struct{})
	var once sync.Once

	factory := func() Job[int] {
		return func(ctx context.Context) (int, error) {
			n := atomic.AddInt32(&started, 1)
			if n == 1 {
				// Cancel while the first job is in flight, then let it
				// finish so its result is still collected.
				cancel()
				once.Do(func() { close(release) })
			}
			<-release
			return int(n), nil
		}
	}

	results, err := Run(ctx, 1, 50, factory, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 1, "the in-flight job completes, queued jobs are abandoned")
	assert.Equal(t, int32(1), started)
}

func TestRunFactoryRunsBeforeWorkersStart(t *testing.T) {
	// Every factory call happens during seeding, so a factory that records
	// timestamps sees all calls precede the first job execution.
	var factoryDone int32
	var jobsAfterSeeding int32

	factory := func() Job[int] {
		atomic.AddInt32(&factoryDone, 1)
		return func(ctx context.Context) (int, error) {
			if atomic.LoadInt32(&factoryDone) == 5 {
				atomic.AddInt32(&jobsAfterSeeding, 1)
			}
			return 0, nil
		}
	}

	_, err := Run(context.Background(), 2, 5, factory, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(5), jobsAfterSeeding, "all jobs execute after the queue is fully seeded")
}

func TestRunAllJobsFail(t *testing.T) {
	factory := func() Job[int] {
		return func(ctx context.Context) (int, error) {
			return 0, errors.New("nope")
		}
	}

	results, err := Run(context.Background(), 2, 5, factory, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
