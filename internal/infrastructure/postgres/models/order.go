package models

import (
	"time"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderModel struct {
	ID               int64              `gorm:"primaryKey;autoIncrement"`
	UserID           int64              `gorm:"index;not null"`
	TotalAmount      decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	DeliveryAddress  string             ``
	PickupAddress    string             ``
	DeliveryFee      decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0"`
	PaymentMethod    string             `gorm:"not null"`
	PaymentStatus    string             `gorm:"not null;default:'pending'"`
	Status           domain.OrderStatus `gorm:"index;not null;default:'pending'"`
	PickupCode       string             ``
	DeliveryCode     string             ``
	DeliveryMethodID *int64             ``
	Items            []OrderItemModel   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ProcessingAt     *time.Time         ``
	ReadyAt          *time.Time         ``
	ShippedAt        *time.Time         ``
	DeliveredAt      *time.Time         ``
	CreatedAt        time.Time          `gorm:"index;autoCreateTime"`
	UpdatedAt        time.Time          `gorm:"autoUpdateTime"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	OrderID         int64           `gorm:"index;not null"`
	ProductID       string          `gorm:"not null"`
	ProductName     string          `gorm:"not null"`
	ProductImageURL string          ``
	ProductPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity        int32           `gorm:"not null"`
	SellerID        int64           `gorm:"index;not null"`
	SellerName      string          ``
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
