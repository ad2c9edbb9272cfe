package retry

import (
	"context"
	"fmt"
	"time"
)

// SleepContext waits for d or until ctx is done, whichever comes first.
// Zero and negative durations return immediately without checking ctx.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context done: %w", ctx.Err())
	}
}
