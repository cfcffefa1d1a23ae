package app

import (
	"context"
	"os/signal"
	"syscall"
)

// SetupSignals creates a context that is canceled when the process receives
// SIGINT or SIGTERM. A canceled run stops between stages and writes nothing.
//
// Returns:
//   - context.Context: A context canceled on signal receipt.
//   - context.CancelFunc: Stops listening for signals (should be deferred).
func SetupSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
