package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type PaymentOutcome string

const (
	PaymentSucceeded PaymentOutcome = "succeeded"
	PaymentInFlight  PaymentOutcome = "pending"
	PaymentDeclined  PaymentOutcome = "failed"
)

type PaymentResult struct {
	Outcome   PaymentOutcome
	Reference string
	Message   string
}

// PaymentGateway is the payment collaborator. phoneOrCard carries a
// mobile-money number or a card reference depending on the provider.
// Initiate blocks with a bounded timeout; a retried call always
// carries a fresh reference.
type PaymentGateway interface {
	Initiate(ctx context.Context, provider, phoneOrCard string, amount decimal.Decimal) (*PaymentResult, error)
	Payout(ctx context.Context, provider, phoneOrCard string, amount decimal.Decimal) (*PaymentResult, error)
}

type Notification struct {
	UserID int64
	Type   string
	Title  string
	Body   string
	Data   map[string]any
}

// NotificationDispatcher is fire-and-forget from the core's point of
// view: a failed Send is logged by the caller and never rolls anything
// back.
type NotificationDispatcher interface {
	Send(ctx context.Context, notification Notification) error
}

// JobEvent is published to the deliverer pool. PickupCode stays empty
// until the order is ready for pickup.
type JobEvent struct {
	DeliveryID      int64           `json:"delivery_id"`
	OrderID         int64           `json:"order_id"`
	Status          DeliveryStatus  `json:"status"`
	PickupAddress   string          `json:"pickup_address"`
	DeliveryAddress string          `json:"delivery_address"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	PickupCode      string          `json:"pickup_code,omitempty"`
}

// PoolBroadcaster publishes job-available and status-change events for
// deliverer-facing clients. No acknowledgement is awaited.
type PoolBroadcaster interface {
	BroadcastJobAvailable(ctx context.Context, event JobEvent) error
	BroadcastJobStatus(ctx context.Context, event JobEvent) error
}
