package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded events. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards events with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Notify logs and discards a single event.
func (n *NoOpNotifier) Notify(_ context.Context, ev *Event) error {
	n.log.Debug("notification discarded (no backend configured)",
		"kind", ev.Kind,
		"order_id", ev.OrderID,
		"state", ev.State,
	)
	return nil
}

// NotifyBatch logs and discards a batch of events.
func (n *NoOpNotifier) NotifyBatch(_ context.Context, events []Event, summary string) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"summary", summary,
		"count", len(events),
	)
	return nil
}
