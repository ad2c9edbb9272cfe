package algorithms

import (
	"math"
	"time"
)

const (
	// jitterScale turns the jitter fraction and durations into integers so no
	// float math touches a duration.
	jitterScale = 100

	// maxJitterFactor keeps 2*jitterFactor inside uint32.
	maxJitterFactor = math.MaxUint32 / 2
)

// ExponentialDelay returns min * factor^attempt with every step saturating.
//
// Example with min=100ms, factor=2:
// Attempt 0: 100ms
// Attempt 1: 200ms
// Attempt 2: 400ms
// ...until the duration range is exhausted, where it stays at the maximum.
func ExponentialDelay(min time.Duration, factor, attempt uint32) time.Duration {
	return MulDuration(min, uint64(SatPowU32(factor, attempt)))
}

// JitterFactor converts a jitter fraction into whole percent, truncating.
// 0.25 becomes 25. Zero, negative and NaN fractions all mean no jitter.
func JitterFactor(jitter float32) uint32 {
	if !(jitter > 0) {
		return 0
	}

	scaled := jitter * jitterScale
	if scaled >= float32(maxJitterFactor) {
		return maxJitterFactor
	}
	return uint32(scaled)
}

// ApplyJitter perturbs delay by a random sample drawn from [0, 2*jitterFactor).
//
// Samples below jitterFactor shorten the delay by random percent. The rest
// lengthen it by random/2 percent, so the upward swing is roughly half as
// wide as the downward one. The delay is scaled by 100 first and divided back
// at the end.
func ApplyJitter(delay time.Duration, jitterFactor, random uint32) time.Duration {
	scaled := MulDuration(delay, jitterScale)

	if random < jitterFactor {
		jitter := MulDuration(scaled, uint64(random)) / jitterScale
		scaled = SubDuration(scaled, jitter)
		if scaled < 0 && delay >= 0 {
			scaled = 0
		}
	} else {
		jitter := MulDuration(scaled, uint64(random/2)) / jitterScale
		scaled = AddDuration(scaled, jitter)
	}

	return scaled / jitterScale
}

// Clamp bounds delay by max (when hasMax is set) and then by min.
// The floor is applied last, so min wins when max < min.
func Clamp(delay, min, max time.Duration, hasMax bool) time.Duration {
	if hasMax && delay > max {
		delay = max
	}
	if delay < min {
		delay = min
	}
	return delay
}
