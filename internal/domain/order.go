package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPaid       OrderStatus = "paid"
	StatusProcessing OrderStatus = "processing"
	StatusReady      OrderStatus = "ready"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodWallet      PaymentMethod = "wallet"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
)

type Order struct {
	ID               int64
	BuyerID          int64
	Items            []OrderItem
	DeliveryAddress  string
	PickupAddress    string
	DeliveryFee      decimal.Decimal
	TotalAmount      decimal.Decimal
	PaymentMethod    PaymentMethod
	PaymentStatus    PaymentStatus
	Status           OrderStatus
	PickupCode       string
	DeliveryCode     string
	DeliveryMethodID *int64
	ProcessingAt     *time.Time
	ReadyAt          *time.Time
	ShippedAt        *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   string
	ProductName string
	ImageURL    string
	Price       decimal.Decimal
	Quantity    int32
	SellerID    int64
	SellerName  string
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt32(i.Quantity))
}

// ItemsTotal is the sum of item subtotals, excluding the delivery fee.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// SellerIDs returns the distinct sellers represented among the line items.
func (o *Order) SellerIDs() []int64 {
	seen := make(map[int64]bool, len(o.Items))
	ids := make([]int64, 0, len(o.Items))
	for _, item := range o.Items {
		if !seen[item.SellerID] {
			seen[item.SellerID] = true
			ids = append(ids, item.SellerID)
		}
	}
	return ids
}

// SoldEntirelyBy reports whether every line item belongs to the given seller.
func (o *Order) SoldEntirelyBy(sellerID int64) bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, item := range o.Items {
		if item.SellerID != sellerID {
			return false
		}
	}
	return true
}

func (o *Order) IsTerminal() bool {
	return o.Status == StatusDelivered || o.Status == StatusCancelled
}
