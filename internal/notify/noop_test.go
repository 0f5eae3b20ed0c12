package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier_Notify(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := n.Notify(context.Background(), &Event{
		Kind:    EventDisputeOpened,
		OrderID: "order-1",
	})
	require.NoError(t, err)
}

func TestNoOpNotifier_NotifyBatch(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	events := []Event{
		{Kind: EventOrderCompleted, OrderID: "o1"},
		{Kind: EventDisputeResolved, OrderID: "o2"},
	}

	require.NoError(t, n.NotifyBatch(context.Background(), events, "window sweep"))
	require.NoError(t, n.NotifyBatch(context.Background(), nil, "empty"))
}

// compile-time interface check.
var _ Notifier = (*NoOpNotifier)(nil)
