// Package backoff generates bounded sequences of retry delays that grow
// exponentially and carry randomized jitter.
//
// The primary type is Backoff, an immutable description of the schedule:
// how many retries are allowed, the minimum and optional maximum delay, the
// growth factor and the jitter fraction. Iterating a Backoff yields exactly
// retries+1 delays, one per attempt, after which the sequence is exhausted.
//
// # Basic Usage
//
//	b := backoff.New(8, 10*time.Millisecond, 20*time.Millisecond)
//	for delay := range b.All() {
//	    if err := doWork(); err == nil {
//	        break
//	    }
//	    time.Sleep(delay)
//	}
//
// # Cursors
//
// Each call to Iter, IterWithRand or IterFrom creates an independent cursor
// holding its own retry index and randomness source. A cursor cannot be
// rewound; create a new one to start over. The Backoff value itself is never
// modified by iteration and may be shared by any number of goroutines, each
// with its own cursor.
//
//	it := b.Iter()
//	for {
//	    delay, ok := it.Next()
//	    if !ok {
//	        break // exhausted
//	    }
//	    // ...
//	}
//
// # Delay Calculation
//
// For retry index i the delay is min * factor^i. A random sample r is drawn
// from [0, 2*j) where j is the jitter fraction in whole percent. Samples below
// j shorten the delay by r percent; the rest lengthen it by r/2 percent. The
// result is clamped to max when one is set and then raised to at least min.
//
// All arithmetic saturates at the bounds of time.Duration, so extreme
// configurations produce clamped delays instead of overflowing or panicking.
//
// # Reproducible Sequences
//
// Pass a seeded source to get the same delays on every run:
//
//	it := b.IterWithRand(backoff.NewSeededRand(42))
//
// # Configuration Options
//
//   - WithFactor(n): Growth factor per retry (default: 2)
//   - WithJitter(f): Jitter fraction in [0, 1] (default: 0.3, 0 disables jitter)
//   - WithMax(d) / WithoutMax(): Set or clear the upper bound
//   - WithMin(d): Replace the lower bound
//   - WithRetries(n): Replace the retry budget
//
// The package never sleeps and never runs the retried operation; see the
// retry package for a harness that does.
package backoff
