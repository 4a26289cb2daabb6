package usecase

import (
	"context"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/infrastructure/kafka"
	"github.com/olimarket/marketplace-service/internal/infrastructure/metrics"
	orderdto "github.com/olimarket/marketplace-service/internal/usecase/dto/order"
	"github.com/olimarket/marketplace-service/internal/verification"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error)
	PayOrder(ctx context.Context, input *orderdto.PayOrderInput) (*orderdto.OrderOutput, error)

	MarkProcessing(ctx context.Context, orderID, actorID int64, role domain.ActorRole) (*domain.Order, error)
	MarkReady(ctx context.Context, orderID, actorID int64, role domain.ActorRole) (*domain.Order, error)
	SellerUpdateStatus(ctx context.Context, orderID, sellerID int64, target domain.OrderStatus, notes string) (*domain.Order, error)
	VerifyPickup(ctx context.Context, orderID, delivererID int64, code string) (*domain.Order, error)
	VerifyDelivery(ctx context.Context, orderID, buyerID int64, code string) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID, actorID int64, role domain.ActorRole) (*domain.Order, error)

	GetOrderByID(ctx context.Context, orderID, buyerID int64) (*domain.Order, error)
	GetBuyerOrders(ctx context.Context, buyerID int64) ([]*domain.Order, error)
	GetSellerOrders(ctx context.Context, sellerID int64, status domain.OrderStatus) (*orderdto.SellerOrdersOutput, error)
	GetTracking(ctx context.Context, orderID, actorID int64, role domain.ActorRole) (*orderdto.TrackingOutput, error)
}

// EventPublisher is the order-events side channel; failures are logged,
// never propagated. Satisfied by kafka.DefaultPublisher.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event kafka.OrderEvent) error
}

type DefaultOrderUsecase struct {
	Store    domain.Store
	Gateway  domain.PaymentGateway
	Notifier domain.NotificationDispatcher
	Pool     domain.PoolBroadcaster
	Events   EventPublisher
	Metrics  *metrics.MarketplaceMetrics

	newCode func() string
}

func NewDefaultOrderUsecase(
	store domain.Store,
	gateway domain.PaymentGateway,
	notifier domain.NotificationDispatcher,
	pool domain.PoolBroadcaster,
	events EventPublisher,
	orderMetrics *metrics.MarketplaceMetrics,
) (*DefaultOrderUsecase, error) {
	codeGenerator, err := verification.NewGenerator()
	if err != nil {
		return nil, err
	}

	return &DefaultOrderUsecase{
		Store:    store,
		Gateway:  gateway,
		Notifier: notifier,
		Pool:     pool,
		Events:   events,
		Metrics:  orderMetrics,
		newCode:  codeGenerator,
	}, nil
}
