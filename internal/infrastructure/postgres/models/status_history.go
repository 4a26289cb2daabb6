package models

import (
	"time"

	"github.com/olimarket/marketplace-service/internal/domain"
)

// Append-only. No UpdatedAt on purpose: rows are written once per
// transition and never touched again.
type OrderStatusHistoryModel struct {
	ID             int64              `gorm:"primaryKey;autoIncrement"`
	OrderID        int64              `gorm:"index;not null"`
	PreviousStatus domain.OrderStatus `gorm:"not null"`
	NewStatus      domain.OrderStatus `gorm:"not null"`
	ChangedBy      int64              ``
	ChangedByRole  domain.ActorRole   `gorm:"not null"`
	Notes          string             ``
	CreatedAt      time.Time          `gorm:"autoCreateTime"`
}

func (OrderStatusHistoryModel) TableName() string {
	return "order_status_history"
}
