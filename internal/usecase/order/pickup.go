package usecase

import (
	"context"
	"fmt"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/verification"
)

// VerifyPickup is the physical handoff from seller to deliverer. The
// deliverer assigned to the job presents the pickup code; on a match
// the order ships and its delivery job goes in transit together. The
// buyer receives the delivery code at this point and not before.
func (uc *DefaultOrderUsecase) VerifyPickup(ctx context.Context, orderID, delivererID int64, code string) (*domain.Order, error) {
	order, err := uc.Store.Orders().GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	delivery, err := uc.Store.Deliveries().GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !delivery.AssignedTo(delivererID) {
		return nil, domain.ErrUnauthorized
	}

	// The state check comes before the code check so a premature
	// attempt reports the real problem, not a misleading mismatch.
	if !domain.CanTransition(order.Status, domain.StatusShipped, domain.RoleDeliverer) {
		uc.Metrics.TransitionsRejected.
			WithLabelValues(string(order.Status), string(domain.StatusShipped), string(domain.RoleDeliverer)).Inc()
		return nil, domain.NewInvalidTransitionError(order.Status, domain.StatusShipped, domain.RoleDeliverer)
	}

	if !verification.Match(order.PickupCode, code) {
		uc.Metrics.CodeMismatchTotal.WithLabelValues("pickup").Inc()
		return nil, domain.ErrCodeMismatch
	}

	update := domain.StatusUpdate{Status: domain.StatusShipped}
	err = uc.applyTransition(ctx, order, update, delivererID, domain.RoleDeliverer, "pickup code verified", func(tx domain.Repositories) error {
		return tx.Deliveries().UpdateStatus(ctx, delivery.ID, domain.DeliveryInTransit, nil, nil)
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, domain.Notification{
		UserID: order.BuyerID,
		Type:   "order_shipped",
		Title:  "Order on its way",
		Body: fmt.Sprintf("Order #%d has been picked up. Give code %s to the deliverer on arrival.",
			order.ID, order.DeliveryCode),
		Data: map[string]any{"order_id": order.ID, "delivery_code": order.DeliveryCode},
	})
	delivery.Status = domain.DeliveryInTransit
	uc.broadcastJob(ctx, delivery, "", false)

	updated, err := uc.reload(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	uc.publishEvent(ctx, updated)
	return updated, nil
}
