package domain

import "errors"

var (
	// ErrInvalidTransition is returned when an order status change violates the
	// forward delivery progression.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrOrderTerminal is returned when mutating an order that is DELIVERED or CANCELLED.
	ErrOrderTerminal = errors.New("order is in a terminal state")
)
