package usecase

import (
	"context"
	"fmt"

	"github.com/olimarket/marketplace-service/internal/domain"
)

// SellerUpdateStatus is the generic seller transition endpoint, kept
// for sellers who ship through an external carrier: it covers the
// legacy processing -> shipped jump that bypasses the pickup-code
// handoff. The lifecycle table still gates every move.
func (uc *DefaultOrderUsecase) SellerUpdateStatus(ctx context.Context, orderID, sellerID int64, target domain.OrderStatus, notes string) (*domain.Order, error) {
	order, err := uc.Store.Orders().GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeSeller(order, sellerID, domain.RoleSeller); err != nil {
		return nil, err
	}

	update := domain.StatusUpdate{Status: target}
	err = uc.applyTransition(ctx, order, update, sellerID, domain.RoleSeller, notes, func(tx domain.Repositories) error {
		// A carrier shipment makes the pool job moot.
		if target != domain.StatusShipped {
			return nil
		}
		delivery, err := tx.Deliveries().GetByOrderID(ctx, order.ID)
		if err != nil || delivery.DelivererID != nil {
			return nil
		}
		return tx.Deliveries().UpdateStatus(ctx, delivery.ID, domain.DeliveryCancelled, nil, nil)
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, domain.Notification{
		UserID: order.BuyerID,
		Type:   "order_" + string(target),
		Title:  "Order update",
		Body:   fmt.Sprintf("Order #%d is now %s.", order.ID, target),
		Data:   map[string]any{"order_id": order.ID, "status": string(target)},
	})

	updated, err := uc.reload(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	uc.publishEvent(ctx, updated)
	return updated, nil
}
