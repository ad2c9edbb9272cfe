// Package benchmarks measures the cost of generating backoff delays under
// representative and pathological schedules.
package benchmarks

import (
	"math"
	"time"

	"github.com/jon-zu/exponential-backoff/backoff"
	"github.com/jon-zu/exponential-backoff/internal/algorithms"
)

// Scenario is a named schedule exercised by the benchmarks.
type Scenario struct {
	Name     string
	Schedule backoff.Backoff
}

// Scenarios covers the schedules worth comparing: typical network retries,
// jitter disabled, wide jitter and saturating inputs.
func Scenarios() []Scenario {
	return []Scenario{
		{"Typical", backoff.New(8, 10*time.Millisecond, 20*time.Second)},
		{"NoJitter", backoff.New(8, 10*time.Millisecond, 20*time.Second, backoff.WithJitter(0))},
		{"FullJitter", backoff.New(8, 10*time.Millisecond, 0, backoff.WithJitter(1))},
		{"LargeFactor", backoff.New(32, time.Microsecond, 0, backoff.WithFactor(1000))},
		{"Saturated", backoff.New(math.MaxUint32, time.Duration(math.MaxInt64), 0)},
	}
}

// Drain pulls up to limit delays from it and returns their saturating sum,
// which keeps the compiler from discarding the work.
func Drain(it *backoff.Iter, limit int) time.Duration {
	var sum time.Duration
	for range limit {
		d, ok := it.Next()
		if !ok {
			break
		}
		sum = algorithms.AddDuration(sum, d)
	}
	return sum
}
