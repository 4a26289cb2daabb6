package usecase

import (
	"context"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/infrastructure/metrics"
)

type DeliveryUsecase interface {
	ListAvailable(ctx context.Context) ([]*domain.AvailableDelivery, error)
	Accept(ctx context.Context, deliveryID, delivererID int64) (*domain.DeliveryOrder, error)
	UpdateStatus(ctx context.Context, deliveryID, delivererID int64, status domain.DeliveryStatus, lat, lng *float64) (*domain.DeliveryOrder, error)
	MyDeliveries(ctx context.Context, delivererID int64) ([]*domain.DeliveryOrder, error)
	VerifyPickup(ctx context.Context, deliveryID, delivererID int64, code string) (*domain.DeliveryOrder, error)
	VerifyDelivery(ctx context.Context, deliveryID, buyerID int64, code string) (*domain.DeliveryOrder, error)
}

// OrderVerifier is the slice of the order usecase the delivery side
// needs: the code-checked transitions stay owned by the order state
// machine, these are entry points keyed by delivery id instead.
type OrderVerifier interface {
	VerifyPickup(ctx context.Context, orderID, delivererID int64, code string) (*domain.Order, error)
	VerifyDelivery(ctx context.Context, orderID, buyerID int64, code string) (*domain.Order, error)
}

type DefaultDeliveryUsecase struct {
	Store   domain.Store
	Orders  OrderVerifier
	Pool    domain.PoolBroadcaster
	Metrics *metrics.MarketplaceMetrics
}

func NewDefaultDeliveryUsecase(
	store domain.Store,
	orders OrderVerifier,
	pool domain.PoolBroadcaster,
	deliveryMetrics *metrics.MarketplaceMetrics,
) *DefaultDeliveryUsecase {
	return &DefaultDeliveryUsecase{
		Store:   store,
		Orders:  orders,
		Pool:    pool,
		Metrics: deliveryMetrics,
	}
}

func (uc *DefaultDeliveryUsecase) ListAvailable(ctx context.Context) ([]*domain.AvailableDelivery, error) {
	return uc.Store.Deliveries().FindAvailable(ctx)
}

func (uc *DefaultDeliveryUsecase) MyDeliveries(ctx context.Context, delivererID int64) ([]*domain.DeliveryOrder, error) {
	return uc.Store.Deliveries().FindByDeliverer(ctx, delivererID)
}
