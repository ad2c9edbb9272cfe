// Package retry runs an operation until it succeeds, sleeping between
// attempts according to a backoff.Backoff schedule.
//
// A schedule with n retries allows at most n+1 attempts. Each call to Do
// walks its own cursor over the schedule, so one Retrier can serve many
// goroutines at once.
//
// # Usage
//
//	r := retry.New(backoff.New(5, 50*time.Millisecond, 2*time.Second),
//	    retry.WithLogger(logger),
//	)
//	err := r.Do(ctx, func(ctx context.Context) error {
//	    return client.Ping(ctx)
//	})
//
// Results are returned with DoValue:
//
//	conn, err := retry.DoValue(ctx, r, func(ctx context.Context) (*Conn, error) {
//	    return dial(ctx, addr)
//	})
//
// # Error Policy
//
//   - Errors wrapped with NonRetryable stop the loop immediately.
//   - Running out of schedule returns an error matching ErrExhausted that
//     also wraps the last operation error.
//   - Cancelling ctx stops the loop during a wait and returns ctx.Err() wrapped.
//   - A panic in the operation is recovered and treated as a failed attempt.
//
// # Presets
//
//   - Default(): 3 retries, 100ms-5s
//   - Quick(): 10 retries, 50ms-1s (startup probes)
//   - Persistent(): 30 retries, 200ms-10s (critical dependencies)
package retry
