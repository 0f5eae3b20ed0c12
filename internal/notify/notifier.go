// Package notify defines the participant notification interface and its
// implementations.
package notify

import (
	"context"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// EventKind names an order lifecycle event worth telling participants about.
type EventKind string

// Event kinds.
const (
	EventOrderAccepted   EventKind = "order_accepted"
	EventOrderCancelled  EventKind = "order_cancelled"
	EventOrderCompleted  EventKind = "order_completed"
	EventDisputeOpened   EventKind = "dispute_opened"
	EventDisputeCounter  EventKind = "dispute_countered"
	EventDisputeResolved EventKind = "dispute_resolved"
)

// Event carries the data needed to describe an order event.
type Event struct {
	Kind     EventKind
	OrderID  string
	BuyerID  string
	SellerID string
	Amount   int64
	State    domain.OrderState
	Decision domain.Party
	Detail   string
}

// EventFor builds an Event from an order snapshot.
func EventFor(kind EventKind, o *domain.Order) Event {
	ev := Event{
		Kind:     kind,
		OrderID:  o.ID,
		BuyerID:  o.BuyerID,
		SellerID: o.SellerID,
		Amount:   o.Amount,
		State:    o.State,
	}
	if o.Resolution != nil {
		ev.Decision = o.Resolution.Decision
		ev.Detail = string(o.Resolution.Source)
	}
	return ev
}

// Notifier defines the interface for sending order notifications.
type Notifier interface {
	Notify(ctx context.Context, ev *Event) error
	NotifyBatch(ctx context.Context, events []Event, summary string) error
}
