package usecase

import (
	"context"

	"github.com/olimarket/marketplace-service/internal/domain"
)

// VerifyPickup resolves the job and hands off to the order state
// machine, which owns the code check and the shipped transition.
func (uc *DefaultDeliveryUsecase) VerifyPickup(ctx context.Context, deliveryID, delivererID int64, code string) (*domain.DeliveryOrder, error) {
	delivery, err := uc.Store.Deliveries().GetByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.Orders.VerifyPickup(ctx, delivery.OrderID, delivererID, code); err != nil {
		return nil, err
	}
	return uc.Store.Deliveries().GetByID(ctx, deliveryID)
}

func (uc *DefaultDeliveryUsecase) VerifyDelivery(ctx context.Context, deliveryID, buyerID int64, code string) (*domain.DeliveryOrder, error) {
	delivery, err := uc.Store.Deliveries().GetByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.Orders.VerifyDelivery(ctx, delivery.OrderID, buyerID, code); err != nil {
		return nil, err
	}
	return uc.Store.Deliveries().GetByID(ctx, deliveryID)
}
