package algorithms

// Source draws uniformly distributed integers for jitter.
//
// Uint32N returns a value in the half-open range [0, n). Callers never pass n == 0.
// *math/rand/v2.Rand satisfies this interface.
type Source interface {
	Uint32N(n uint32) uint32
}

// Draw picks the jitter sample for an integer jitter factor.
// The range is [0, 2*jitterFactor); a zero factor draws nothing and returns 0.
func Draw(src Source, jitterFactor uint32) uint32 {
	if jitterFactor == 0 {
		return 0
	}
	return src.Uint32N(jitterFactor * 2)
}
