package retry

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/jon-zu/exponential-backoff/backoff"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Func is an operation run by a Retrier.
type Func func(ctx context.Context) error

// Retrier runs operations against a backoff schedule.
// It is safe for concurrent use.
type Retrier struct {
	schedule backoff.Backoff
	limiter  *rate.Limiter
	logger   *zap.Logger
	onRetry  func(uint32, time.Duration, error)
	newRand  func() backoff.Rand
}

// New creates a Retrier over schedule.
func New(schedule backoff.Backoff, opts ...Option) *Retrier {
	r := &Retrier{
		schedule: schedule,
		logger:   zap.NewNop(),
		newRand:  backoff.NewRand,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Schedule returns the backoff schedule r walks.
func (r *Retrier) Schedule() backoff.Backoff {
	return r.schedule
}

// Do runs fn until it succeeds, returns a non-retryable error, the schedule
// runs out, or ctx is done. No wait follows the final attempt.
func (r *Retrier) Do(ctx context.Context, fn Func) error {
	it := r.schedule.IterWithRand(r.newRand())

	var attempt uint32
	for {
		delay, ok := it.Next()
		if !ok {
			return fmt.Errorf("%w: schedule has no attempts left", ErrExhausted)
		}
		attempt++

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("retry cancelled before attempt %d: %w", attempt, err)
		}

		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return fmt.Errorf("retry: rate limit wait before attempt %d: %w", attempt, err)
			}
		}

		err := r.call(ctx, fn)
		if err == nil {
			if attempt > 1 {
				r.logger.Debug("operation succeeded after retries", zap.Uint32("attempt", attempt))
			}
			return nil
		}

		if IsNonRetryable(err) {
			r.logger.Debug("operation failed with non-retryable error",
				zap.Uint32("attempt", attempt), zap.Error(err))
			return err
		}

		if it.Done() {
			r.logger.Warn("operation failed, retries exhausted",
				zap.Uint32("attempts", attempt), zap.Error(err))
			return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempt, err)
		}

		if r.onRetry != nil {
			r.onRetry(attempt, delay, err)
		}

		r.logger.Debug("operation failed, backing off",
			zap.Uint32("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		if err := SleepContext(ctx, delay); err != nil {
			return fmt.Errorf("retry cancelled during backoff after attempt %d: %w", attempt, err)
		}
	}
}

// call runs fn, converting a panic into an error with a stack trace.
func (r *Retrier) call(ctx context.Context, fn Func) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("operation panic: %v\nstack trace:\n%s", rec, buf[:n])
		}
	}()

	return fn(ctx)
}

// DoValue is Do for operations that produce a value. On failure the value
// from the last attempt is returned alongside the error.
func DoValue[T any](ctx context.Context, r *Retrier, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := r.Do(ctx, func(ctx context.Context) error {
		var innerErr error
		result, innerErr = fn(ctx)
		return innerErr
	})
	return result, err
}

// DoAll runs every fn concurrently, each with its own cursor over r's
// schedule. The first error cancels the context passed to the others and is
// returned once all of them have stopped.
func DoAll(ctx context.Context, r *Retrier, fns ...Func) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, fn := range fns {
		g.Go(func() error {
			return r.Do(ctx, fn)
		})
	}

	return g.Wait()
}
