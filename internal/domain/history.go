package domain

import "time"

// OrderStatusHistory is the append-only audit row written for every
// successful transition. Rows are never updated or deleted.
type OrderStatusHistory struct {
	ID             int64
	OrderID        int64
	PreviousStatus OrderStatus
	NewStatus      OrderStatus
	ChangedBy      int64
	ChangedByRole  ActorRole
	Notes          string
	CreatedAt      time.Time
}
