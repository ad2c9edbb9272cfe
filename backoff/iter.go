package backoff

import (
	"iter"
	"time"

	"github.com/jon-zu/exponential-backoff/internal/algorithms"
)

// Iter is a cursor over the delays of a Backoff.
//
// An Iter is not safe for concurrent use and cannot be restarted. It holds a
// copy of the schedule, its own retry index and its own randomness source.
type Iter struct {
	cfg        Backoff
	rng        Rand
	retryCount uint32
}

// Iter returns a cursor starting at retry 0 with a fresh randomness source.
func (b Backoff) Iter() *Iter {
	return b.IterFrom(0, nil)
}

// IterWithRand returns a cursor starting at retry 0 that draws jitter from r.
// A nil r gets a fresh source from NewRand.
func (b Backoff) IterWithRand(r Rand) *Iter {
	return b.IterFrom(0, r)
}

// IterFrom returns a cursor resuming at retryCount. A retryCount at or past
// the end of the schedule yields an exhausted cursor.
func (b Backoff) IterFrom(retryCount uint32, r Rand) *Iter {
	if r == nil {
		r = NewRand()
	}
	return &Iter{
		cfg:        b,
		rng:        r,
		retryCount: retryCount,
	}
}

// All returns a sequence over a fresh cursor. Every range statement over the
// returned sequence starts again from retry 0.
func (b Backoff) All() iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		b.Iter().All()(yield)
	}
}

// end is the retry index at which the cursor is exhausted.
func (it *Iter) end() uint32 {
	return algorithms.SatAddU32(it.cfg.retries, 1)
}

// Done reports whether the schedule is exhausted.
func (it *Iter) Done() bool {
	return it.retryCount >= it.end()
}

// RetryCount returns the index of the next delay Next will produce.
func (it *Iter) RetryCount() uint32 {
	return it.retryCount
}

// Next returns the delay for the current retry and advances the cursor.
// Once the schedule is exhausted Next keeps returning (0, false).
func (it *Iter) Next() (time.Duration, bool) {
	if it.Done() {
		return 0, false
	}

	delay := algorithms.ExponentialDelay(it.cfg.min, it.cfg.factor, it.retryCount)
	it.retryCount++

	if jf := algorithms.JitterFactor(it.cfg.jitter); jf > 0 {
		delay = algorithms.ApplyJitter(delay, jf, algorithms.Draw(it.rng, jf))
	}

	return algorithms.Clamp(delay, it.cfg.min, it.cfg.max, it.cfg.hasMax), true
}

// All returns a sequence over the delays remaining in it. Ranging consumes
// the cursor; breaking out early leaves the rest for a later Next or All.
func (it *Iter) All() iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		for {
			delay, ok := it.Next()
			if !ok || !yield(delay) {
				return
			}
		}
	}
}
