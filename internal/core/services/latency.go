package services

import (
	"context"
	"time"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
)

var (
	_ driven.Latency = TimerLatency{}
	_ driven.Latency = NoLatency{}
)

// TimerLatency waits for real time.
type TimerLatency struct{}

// Wait blocks for d or until ctx is done.
func (TimerLatency) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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

// NoLatency resolves immediately. Used by tests and the MCP server.
type NoLatency struct{}

// Wait returns at once unless ctx is already done.
func (NoLatency) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
