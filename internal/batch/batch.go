// Package batch runs a fixed number of independent jobs under a bounded
// worker count, collecting successful results and continuing past individual
// failures.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Dispatch errors
var (
	// ErrInvalidWorkerCount is returned when the worker count is below one.
	ErrInvalidWorkerCount = errors.New("worker count must be at least 1")

	// ErrInvalidQuantity is returned when the job quantity is negative.
	ErrInvalidQuantity = errors.New("job quantity cannot be negative")
)

// Job is one deferred unit of work. It is constructed by a factory and
// executed exactly once by exactly one worker.
type Job[T any] func(ctx context.Context) (T, error)

// Run executes quantity jobs with at most workers concurrently in flight.
//
// The factory is called exactly quantity times, each call producing a fresh
// job; every job is seeded onto the queue before workers start consuming, so
// submission order is fixed even though completion order is not. A job that
// returns an error is logged and discarded without affecting its siblings, so
// the returned slice holds between 0 and quantity results, in completion
// order. Run returns once every job has been attempted and all workers have
// exited; if ctx is cancelled, workers stop taking new jobs and Run returns
// the results collected so far along with the context error.
func Run[T any](
	ctx context.Context,
	workers, quantity int,
	factory func() Job[T],
	logger *slog.Logger,
) ([]T, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, workers)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if logger == nil {
		logger = slog.Default()
	}

	jobs := make(chan Job[T], quantity)
	for i := 0; i < quantity; i++ {
		jobs <- factory()
	}
	close(jobs)

	var (
		mu      sync.Mutex
		results = make([]T, 0, quantity)
		wg      sync.WaitGroup
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				result, err := job(ctx)
				if err != nil {
					logger.Error("batch job failed",
						"worker_id", workerID,
						"error", err)
					continue
				}

				mu.Lock()
				results = append(results, result)
				mu.Unlock()
			}
		}(w)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}
