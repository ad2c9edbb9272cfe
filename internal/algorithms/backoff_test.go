package algorithms

import (
	"math"
	"testing"
	"time"
)

func TestExponentialDelay(t *testing.T) {
	tests := []struct {
		name    string
		min     time.Duration
		factor  uint32
		attempt uint32
		want    time.Duration
	}{
		{"attempt 0 returns min", 100 * time.Millisecond, 2, 0, 100 * time.Millisecond},
		{"attempt 1 doubles", 100 * time.Millisecond, 2, 1, 200 * time.Millisecond},
		{"attempt 3 is 8x", 100 * time.Millisecond, 2, 3, 800 * time.Millisecond},
		{"factor 3", 10 * time.Millisecond, 3, 2, 90 * time.Millisecond},
		{"factor 0 collapses after attempt 0", time.Second, 0, 4, 0},
		{"factor 1 stays flat", time.Second, 1, 40, time.Second},
		{"zero min stays zero", 0, 2, 10, 0},
		{"huge attempt saturates", time.Hour, 2, math.MaxUint32, maxDuration},
		{"max min saturates", maxDuration, 2, 1, maxDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExponentialDelay(tt.min, tt.factor, tt.attempt)
			if got != tt.want {
				t.Errorf("ExponentialDelay(%v, %d, %d) = %v, want %v", tt.min, tt.factor, tt.attempt, got, tt.want)
			}
		})
	}
}

func TestJitterFactor(t *testing.T) {
	tests := []struct {
		name   string
		jitter float32
		want   uint32
	}{
		{"quarter", 0.25, 25},
		{"half", 0.5, 50},
		{"full", 1, 100},
		{"zero", 0, 0},
		{"negative", -0.5, 0},
		{"nan", float32(math.NaN()), 0},
		{"truncates", 0.259, 25},
		{"huge is clamped", 1e30, maxJitterFactor},
		{"infinity is clamped", float32(math.Inf(1)), maxJitterFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JitterFactor(tt.jitter); got != tt.want {
				t.Errorf("JitterFactor(%v) = %d, want %d", tt.jitter, got, tt.want)
			}
		})
	}
}

func TestApplyJitter(t *testing.T) {
	base := time.Second

	tests := []struct {
		name   string
		factor uint32
		random uint32
		want   time.Duration
	}{
		{"random 0 subtracts nothing", 30, 0, time.Second},
		{"below factor subtracts random percent", 30, 10, 900 * time.Millisecond},
		{"just below factor", 30, 29, 710 * time.Millisecond},
		{"at factor adds half", 30, 30, 1150 * time.Millisecond},
		{"top of range adds half", 30, 59, 1290 * time.Millisecond},
		{"zero factor adds half of random", 0, 0, time.Second},
		{"over 100 percent floors at zero", 200, 150, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyJitter(base, tt.factor, tt.random)
			if got != tt.want {
				t.Errorf("ApplyJitter(%v, %d, %d) = %v, want %v", base, tt.factor, tt.random, got, tt.want)
			}
		})
	}
}

func TestApplyJitter_Saturation(t *testing.T) {
	// Scaling by 100 saturates, so precision is lost but nothing wraps.
	for random := uint32(0); random < 60; random++ {
		got := ApplyJitter(maxDuration, 30, random)
		if got <= 0 {
			t.Fatalf("ApplyJitter(max, 30, %d) = %v, want positive", random, got)
		}
		if got > maxDuration/jitterScale {
			t.Fatalf("ApplyJitter(max, 30, %d) = %v, want <= %v", random, got, maxDuration/jitterScale)
		}
	}
}

func TestClamp(t *testing.T) {
	lo, hi := 10*time.Millisecond, 20*time.Millisecond

	tests := []struct {
		name   string
		delay  time.Duration
		hasMax bool
		want   time.Duration
	}{
		{"within bounds", 15 * time.Millisecond, true, 15 * time.Millisecond},
		{"above max", time.Second, true, hi},
		{"above max without max", time.Second, false, time.Second},
		{"below min", time.Millisecond, true, lo},
		{"below min without max", 0, false, lo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.delay, lo, hi, tt.hasMax); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.delay, got, tt.want)
			}
		})
	}

	t.Run("min wins over smaller max", func(t *testing.T) {
		if got := Clamp(time.Second, hi, lo, true); got != hi {
			t.Errorf("Clamp() = %v, want %v", got, hi)
		}
	})
}

type fixedSource struct {
	value uint32
	calls int
	lastN uint32
}

func (f *fixedSource) Uint32N(n uint32) uint32 {
	f.calls++
	f.lastN = n
	return f.value % n
}

func TestDraw(t *testing.T) {
	src := &fixedSource{value: 41}

	if got := Draw(src, 0); got != 0 || src.calls != 0 {
		t.Errorf("Draw(src, 0) = %d with %d calls, want 0 with no calls", got, src.calls)
	}

	if got := Draw(src, 30); got != 41 {
		t.Errorf("Draw(src, 30) = %d, want 41", got)
	}
	if src.lastN != 60 {
		t.Errorf("Draw(src, 30) asked for range %d, want 60", src.lastN)
	}
}
