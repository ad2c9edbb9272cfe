package retry

import (
	"time"

	"github.com/jon-zu/exponential-backoff/backoff"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Option is a functional option for configuring a Retrier.
type Option func(*Retrier)

// WithLogger sets the logger attempts are reported to.
// If not specified, nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Retrier) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRateLimit caps how often attempts start, across every Do call sharing
// the Retrier. attemptsPerSecond is the sustained rate and burst the number of
// attempts allowed back to back.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 attempts/sec with burst of 5
func WithRateLimit(attemptsPerSecond float64, burst int) Option {
	return func(r *Retrier) {
		if attemptsPerSecond > 0 && burst > 0 {
			r.limiter = rate.NewLimiter(rate.Limit(attemptsPerSecond), burst)
		}
	}
}

// WithOnRetry registers a hook fired after a failed attempt, before waiting.
// attempt is 1-based; delay is the wait about to happen.
func WithOnRetry(fn func(attempt uint32, delay time.Duration, err error)) Option {
	return func(r *Retrier) {
		r.onRetry = fn
	}
}

// WithRand sets the factory for each Do call's randomness source.
func WithRand(newRand func() backoff.Rand) Option {
	return func(r *Retrier) {
		if newRand != nil {
			r.newRand = newRand
		}
	}
}

// WithSeed makes every Do call draw the same jitter sequence.
func WithSeed(seed uint64) Option {
	return WithRand(func() backoff.Rand {
		return backoff.NewSeededRand(seed)
	})
}

// Default returns a schedule suited to ordinary operations: 3 retries, 100ms-5s.
func Default() backoff.Backoff {
	return backoff.New(3, 100*time.Millisecond, 5*time.Second)
}

// Quick returns a schedule for fast retries during startup: 10 retries, 50ms-1s.
func Quick() backoff.Backoff {
	return backoff.New(10, 50*time.Millisecond, time.Second)
}

// Persistent returns a schedule for long-running retries against critical
// resources: 30 retries, 200ms-10s.
func Persistent() backoff.Backoff {
	return backoff.New(30, 200*time.Millisecond, 10*time.Second)
}
