package models

import (
	"time"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/shopspring/decimal"
)

type DeliveryOrderModel struct {
	ID              int64                 `gorm:"primaryKey;autoIncrement"`
	OrderID         int64                 `gorm:"uniqueIndex;not null"`
	Order           OrderModel            `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	PickupAddress   string                ``
	DeliveryAddress string                ``
	PickupLat       *float64              ``
	PickupLng       *float64              ``
	DeliveryLat     *float64              ``
	DeliveryLng     *float64              ``
	CurrentLat      *float64              ``
	CurrentLng      *float64              ``
	DeliveryFee     decimal.Decimal       `gorm:"type:numeric(12,2);not null;default:0"`
	Status          domain.DeliveryStatus `gorm:"index;not null;default:'pending'"`
	DelivererID     *int64                `gorm:"index"`
	CreatedAt       time.Time             `gorm:"index;autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"autoUpdateTime"`
}

func (DeliveryOrderModel) TableName() string {
	return "delivery_orders"
}
