package backoff

import (
	"fmt"
	"time"
)

const (
	// DefaultFactor is the growth factor used by New.
	DefaultFactor uint32 = 2
	// DefaultJitter is the jitter fraction used by New.
	DefaultJitter float32 = 0.3
)

// Backoff describes an exponential backoff schedule.
//
// A Backoff is a small value type. Options and With return modified copies,
// so a schedule never changes underneath a running cursor.
type Backoff struct {
	retries uint32
	min     time.Duration
	max     time.Duration
	hasMax  bool
	factor  uint32
	jitter  float32
}

// Option is a functional option for configuring a Backoff.
type Option func(*Backoff)

// New creates a schedule allowing retries retries after the first attempt.
// Every delay is at least minDelay. A positive maxDelay caps every delay;
// zero or a negative maxDelay leaves the schedule unbounded.
//
// Values are not validated. Degenerate inputs such as a zero factor or a zero
// minimum yield degenerate delays, never a panic.
func New(retries uint32, minDelay, maxDelay time.Duration, opts ...Option) Backoff {
	b := Backoff{
		retries: retries,
		min:     minDelay,
		factor:  DefaultFactor,
		jitter:  DefaultJitter,
	}

	if maxDelay > 0 {
		b.max = maxDelay
		b.hasMax = true
	}

	for _, opt := range opts {
		opt(&b)
	}

	return b
}

// WithFactor sets the exponential growth factor.
func WithFactor(factor uint32) Option {
	return func(b *Backoff) {
		b.factor = factor
	}
}

// WithJitter sets the jitter fraction. Values are expected in [0, 1];
// 0 disables jitter entirely.
func WithJitter(jitter float32) Option {
	return func(b *Backoff) {
		b.jitter = jitter
	}
}

// WithMax sets the upper bound. Unlike New, any value is taken as given.
func WithMax(maxDelay time.Duration) Option {
	return func(b *Backoff) {
		b.max = maxDelay
		b.hasMax = true
	}
}

// WithoutMax removes the upper bound.
func WithoutMax() Option {
	return func(b *Backoff) {
		b.max = 0
		b.hasMax = false
	}
}

// WithMin sets the lower bound and growth base.
func WithMin(minDelay time.Duration) Option {
	return func(b *Backoff) {
		b.min = minDelay
	}
}

// WithRetries sets the number of retries after the first attempt.
func WithRetries(retries uint32) Option {
	return func(b *Backoff) {
		b.retries = retries
	}
}

// With returns a copy of b with opts applied.
func (b Backoff) With(opts ...Option) Backoff {
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Retries returns the number of retries after the first attempt.
func (b Backoff) Retries() uint32 { return b.retries }

// Min returns the lower bound.
func (b Backoff) Min() time.Duration { return b.min }

// Max returns the upper bound and whether one is set.
func (b Backoff) Max() (time.Duration, bool) { return b.max, b.hasMax }

// Factor returns the growth factor.
func (b Backoff) Factor() uint32 { return b.factor }

// Jitter returns the jitter fraction.
func (b Backoff) Jitter() float32 { return b.jitter }

func (b Backoff) String() string {
	maxStr := "none"
	if b.hasMax {
		maxStr = b.max.String()
	}
	return fmt.Sprintf("backoff{retries=%d min=%s max=%s factor=%d jitter=%.2f}",
		b.retries, b.min, maxStr, b.factor, b.jitter)
}
