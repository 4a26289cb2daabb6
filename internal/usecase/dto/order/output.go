package orderdto

import "github.com/olimarket/marketplace-service/internal/domain"

type OrderOutput struct {
	Order *domain.Order
	// Message surfaces the gateway message when a mobile-money payment
	// is still awaiting confirmation and the order stayed pending.
	Message string
}

type TrackingOutput struct {
	Order              *domain.Order
	History            []*domain.OrderStatusHistory
	AllowedTransitions []domain.OrderStatus
}

type SellerOrdersOutput struct {
	Orders       []*domain.Order
	StatusCounts map[domain.OrderStatus]int64
}
