package models

import "time"

// OrderStatus is the closed order status enumeration.
type OrderStatus string

const (
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPreparing, StatusReady, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is a legal forward
// transition. Only Preparing -> Ready and Ready -> Completed are allowed;
// Completed is terminal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case StatusPreparing:
		return next == StatusReady
	case StatusReady:
		return next == StatusCompleted
	}
	return false
}

// Next returns the status the admin UI proposes from s, if any.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusCompleted, true
	}
	return s, false
}

// Order is an immutable-on-creation snapshot of a submitted cart. Only the
// status field changes after creation; the total is derived at placement and
// never edited independently. The order number is a 4-digit display code and
// is not guaranteed unique; lookups always go through ID.
type Order struct {
	ID          string      `json:"id"`
	OrderNumber int         `json:"order_number"`
	Items       []CartLine  `json:"items"`
	Total       int64       `json:"total"`
	Status      OrderStatus `json:"status"`
	Timestamp   time.Time   `json:"timestamp"`
}

// Pending reports whether the order still needs kitchen attention.
func (o Order) Pending() bool {
	return o.Status != StatusCompleted
}
