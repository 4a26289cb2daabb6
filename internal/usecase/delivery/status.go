package usecase

import (
	"context"
	"fmt"

	"github.com/olimarket/marketplace-service/internal/domain"
)

// UpdateStatus records deliverer progress and GPS position. It is
// informational and must agree with the order's state: in_transit is
// only reportable once the order actually shipped, and delivered goes
// through the code-checked verification only. A deliverer may cancel
// their own job at any point before it is delivered.
func (uc *DefaultDeliveryUsecase) UpdateStatus(ctx context.Context, deliveryID, delivererID int64, status domain.DeliveryStatus, lat, lng *float64) (*domain.DeliveryOrder, error) {
	delivery, err := uc.Store.Deliveries().GetByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if !delivery.AssignedTo(delivererID) {
		return nil, domain.ErrUnauthorized
	}

	switch status {
	case delivery.Status:
		// GPS-only refresh, no status change.
	case domain.DeliveryPickedUp, domain.DeliveryInTransit:
		order, err := uc.Store.Orders().GetOrderByID(ctx, delivery.OrderID)
		if err != nil {
			return nil, err
		}
		if order.Status != domain.StatusShipped {
			return nil, fmt.Errorf("order #%d is %s, not shipped: %w",
				order.ID, order.Status, domain.ErrStatusConflict)
		}
	case domain.DeliveryCancelled:
		if delivery.Status == domain.DeliveryDelivered {
			return nil, fmt.Errorf("delivery #%d is already delivered: %w",
				delivery.ID, domain.ErrStatusConflict)
		}
	default:
		return nil, fmt.Errorf("deliverer may not set status %q: %w", status, domain.ErrUnauthorized)
	}

	if err := uc.Store.Deliveries().UpdateStatus(ctx, deliveryID, status, lat, lng); err != nil {
		return nil, err
	}
	return uc.Store.Deliveries().GetByID(ctx, deliveryID)
}
