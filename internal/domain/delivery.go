package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryPickedUp  DeliveryStatus = "picked_up"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

// DeliveryOrder is the delivery job created when an order reaches paid.
// One job per order. DelivererID stays nil until exactly one deliverer
// wins the claim; once set it never changes.
type DeliveryOrder struct {
	ID              int64
	OrderID         int64
	PickupAddress   string
	DeliveryAddress string
	PickupLat       *float64
	PickupLng       *float64
	DeliveryLat     *float64
	DeliveryLng     *float64
	CurrentLat      *float64
	CurrentLng      *float64
	DeliveryFee     decimal.Decimal
	Status          DeliveryStatus
	DelivererID     *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (d *DeliveryOrder) AssignedTo(delivererID int64) bool {
	return d.DelivererID != nil && *d.DelivererID == delivererID
}

// AvailableDelivery is a pending job joined with the public order data a
// deliverer needs before claiming. Verification codes never appear here.
type AvailableDelivery struct {
	DeliveryOrder
	OrderTotal    decimal.Decimal
	CustomerName  string
	CustomerPhone string
}
