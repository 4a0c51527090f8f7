package driven

import (
	"context"
	"time"
)

// Latency is the async boundary in front of assistant and quiz replies.
// Production waits; tests inject a zero implementation.
type Latency interface {
	// Wait blocks for d or until ctx is done.
	Wait(ctx context.Context, d time.Duration) error
}
