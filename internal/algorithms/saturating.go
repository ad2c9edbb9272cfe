package algorithms

import (
	"math"
	"math/bits"
	"time"
)

const (
	maxDuration = time.Duration(math.MaxInt64)
	minDuration = time.Duration(math.MinInt64)
)

// SatAddU32 returns a+b, clamped to math.MaxUint32.
func SatAddU32(a, b uint32) uint32 {
	sum := a + b
	if sum < a {
		return math.MaxUint32
	}
	return sum
}

// SatPowU32 returns base^exp, clamped to math.MaxUint32.
// Uses square-and-multiply so large exponents cost O(log exp).
func SatPowU32(base, exp uint32) uint32 {
	result := uint64(1)
	b := uint64(base)

	for exp > 0 {
		if exp&1 == 1 {
			result *= b
			if result > math.MaxUint32 {
				return math.MaxUint32
			}
		}

		exp >>= 1
		if exp == 0 {
			break
		}

		b *= b
		if b > math.MaxUint32 {
			// A higher bit is still set, so b will be multiplied in and base >= 2.
			return math.MaxUint32
		}
	}

	return uint32(result)
}

// MulDuration returns d*n, clamped to the representable duration range.
func MulDuration(d time.Duration, n uint64) time.Duration {
	if d == 0 || n == 0 {
		return 0
	}

	if d > 0 {
		hi, lo := bits.Mul64(uint64(d), n)
		if hi != 0 || lo > math.MaxInt64 {
			return maxDuration
		}
		return time.Duration(lo)
	}

	// -(d+1)+1 avoids negating math.MinInt64.
	abs := uint64(-(d + 1)) + 1
	hi, lo := bits.Mul64(abs, n)
	if hi != 0 || lo > 1<<63 {
		return minDuration
	}
	return time.Duration(-int64(lo))
}

// AddDuration returns a+b, clamped to the representable duration range.
func AddDuration(a, b time.Duration) time.Duration {
	sum := a + b
	switch {
	case b > 0 && sum < a:
		return maxDuration
	case b < 0 && sum > a:
		return minDuration
	}
	return sum
}

// SubDuration returns a-b, clamped to the representable duration range.
func SubDuration(a, b time.Duration) time.Duration {
	diff := a - b
	switch {
	case b > 0 && diff > a:
		return minDuration
	case b < 0 && diff < a:
		return maxDuration
	}
	return diff
}
