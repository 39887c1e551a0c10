package common

import (
	"context"
	"time"
)

// Sleep blocks for d or until the context is cancelled, whichever comes
// first, returning ctx.Err() in the latter case. A non-positive duration
// returns immediately. Used to simulate remote-call latency.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
