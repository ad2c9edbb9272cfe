package backoff

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/jon-zu/exponential-backoff/internal/algorithms"
)

// Rand is the randomness capability a cursor draws jitter from.
//
// Uint32N must return a uniformly distributed value in [0, n); it is never
// called with n == 0. *math/rand/v2.Rand satisfies Rand.
type Rand = algorithms.Source

// goldenGamma decorrelates the two PCG words when only one seed is available.
const goldenGamma = 0x9e3779b97f4a7c15

// NewRand returns a PCG source seeded from crypto/rand. If the system entropy
// source fails it falls back to a time-based seed, so it never blocks or fails.
func NewRand() Rand {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now^goldenGamma)) // #nosec G404 -- crypto rand not needed for backoff jitter
	}

	return rand.New(rand.NewPCG( // #nosec G404 -- crypto rand not needed for backoff jitter
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}

// NewSeededRand returns a deterministic source. Two cursors over the same
// Backoff with sources built from the same seed produce identical delays.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^goldenGamma)) // #nosec G404 -- reproducible jitter is the point
}
