package domain

import (
	"fmt"
	"slices"
)

// OrderState is the lifecycle state of an order.
type OrderState string

// Order state constants.
const (
	StateCreated   OrderState = "CREATED"
	StateConfirmed OrderState = "CONFIRMED"
	StateAccepted  OrderState = "ACCEPTED"
	StateDisputed  OrderState = "DISPUTED"
	StateCountered OrderState = "COUNTERED"
	StateCompleted OrderState = "COMPLETED"
	StateResolved  OrderState = "RESOLVED"
	StateCancelled OrderState = "CANCELLED"
)

// ParseOrderState converts a boundary string into an OrderState.
func ParseOrderState(s string) (OrderState, error) {
	st := OrderState(s)
	if !slices.Contains(AllStates, st) {
		return "", fmt.Errorf("%w: unknown order state %q", ErrInvalidInput, s)
	}
	return st, nil
}

// Action is an event that moves an order between states.
type Action string

// Action constants. ActionExpire covers both window timeouts: an elapsed
// dispute window completes an ACCEPTED order and an elapsed counter window
// resolves a DISPUTED order for the buyer.
const (
	ActionConfirm    Action = "confirm"
	ActionAccept     Action = "accept"
	ActionCancel     Action = "cancel"
	ActionComplete   Action = "complete"
	ActionDispute    Action = "dispute"
	ActionCounter    Action = "counter"
	ActionAdjudicate Action = "adjudicate"
	ActionExpire     Action = "expire"
)

type edge struct {
	from   OrderState
	action Action
}

var transitions = map[edge]OrderState{
	{StateCreated, ActionConfirm}:      StateConfirmed,
	{StateCreated, ActionCancel}:       StateCancelled,
	{StateConfirmed, ActionAccept}:     StateAccepted,
	{StateConfirmed, ActionCancel}:     StateCancelled,
	{StateAccepted, ActionComplete}:    StateCompleted,
	{StateAccepted, ActionExpire}:      StateCompleted,
	{StateAccepted, ActionDispute}:     StateDisputed,
	{StateDisputed, ActionCounter}:     StateCountered,
	{StateDisputed, ActionAdjudicate}:  StateResolved,
	{StateDisputed, ActionExpire}:      StateResolved,
	{StateCountered, ActionAdjudicate}: StateResolved,
}

// Next returns the state reached by applying action in state s, or
// ErrInvalidTransition when the table has no such edge.
func Next(s OrderState, action Action) (OrderState, error) {
	next, ok := transitions[edge{s, action}]
	if !ok {
		return s, fmt.Errorf("%w: cannot %s order in state %s", ErrInvalidTransition, action, s)
	}
	return next, nil
}

// Terminal reports whether no action leaves s.
func (s OrderState) Terminal() bool {
	for e := range transitions {
		if e.from == s {
			return false
		}
	}
	return true
}

// Reviewable reports whether a review may be submitted for an order in s.
func (s OrderState) Reviewable() bool {
	return s == StateCompleted || s == StateResolved
}

// Open reports whether units are still reserved for an order in s.
func (s OrderState) Open() bool {
	return !s.Terminal()
}

// AllStates lists every order state.
var AllStates = []OrderState{
	StateCreated, StateConfirmed, StateAccepted, StateDisputed,
	StateCountered, StateCompleted, StateResolved, StateCancelled,
}

// AllActions lists every action.
var AllActions = []Action{
	ActionConfirm, ActionAccept, ActionCancel, ActionComplete,
	ActionDispute, ActionCounter, ActionAdjudicate, ActionExpire,
}
