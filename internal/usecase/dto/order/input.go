package orderdto

import (
	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderItemInput struct {
	ProductID   string
	ProductName string
	ImageURL    string
	Price       decimal.Decimal
	Quantity    int32
	SellerID    int64
	SellerName  string
}

type CreateOrderInput struct {
	BuyerID         int64
	Items           []OrderItemInput
	DeliveryAddress string
	// PickupAddress is the collection point for the delivery job,
	// resolved by the caller from the seller's shop profile.
	PickupAddress string
	DeliveryFee   decimal.Decimal
	PaymentMethod domain.PaymentMethod
	// PayNow settles payment synchronously at checkout, so the caller
	// gets the order back already paid.
	PayNow      bool
	Provider    string
	PhoneOrCard string
}

type PayOrderInput struct {
	OrderID     int64
	BuyerID     int64
	Provider    string
	PhoneOrCard string
}
