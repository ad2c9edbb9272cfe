package benchmarks

import (
	"sync"
	"testing"
	"time"

	"github.com/jon-zu/exponential-backoff/backoff"
)

var sink time.Duration

func BenchmarkIterNext(b *testing.B) {
	for _, sc := range Scenarios() {
		b.Run(sc.Name, func(b *testing.B) {
			rng := backoff.NewSeededRand(1)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				it := sc.Schedule.IterWithRand(rng)
				sink = Drain(it, 33)
			}
		})
	}
}

func BenchmarkRangeAll(b *testing.B) {
	schedule := backoff.New(8, 10*time.Millisecond, 20*time.Second)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		for d := range schedule.All() {
			sink += d
		}
	}
}

// BenchmarkSharedSchedule has many goroutines walking their own cursors over
// one schedule value.
func BenchmarkSharedSchedule(b *testing.B) {
	schedule := backoff.New(16, time.Millisecond, time.Minute)

	b.RunParallel(func(pb *testing.PB) {
		rng := backoff.NewRand()
		var local time.Duration
		for pb.Next() {
			local += Drain(schedule.IterWithRand(rng), 17)
		}
		_ = local
	})
}

func TestScenariosTerminate(t *testing.T) {
	var wg sync.WaitGroup
	for _, sc := range Scenarios() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			it := sc.Schedule.IterWithRand(backoff.NewSeededRand(3))
			if sum := Drain(it, 64); sum < 0 {
				t.Errorf("%s: negative total %v", sc.Name, sum)
			}
		}()
	}
	wg.Wait()
}
