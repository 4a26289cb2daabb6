package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/olimarket/marketplace-service/internal/domain"
)

// CancelOrder cancels a not-yet-shipped order. No compensating wallet
// movement happens here; refunds for settled payments are handled by
// the payment provider lifecycle outside this service.
func (uc *DefaultOrderUsecase) CancelOrder(ctx context.Context, orderID, actorID int64, role domain.ActorRole) (*domain.Order, error) {
	order, err := uc.Store.Orders().GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleBuyer && order.BuyerID != actorID {
		return nil, domain.ErrUnauthorized
	}
	if order.ShippedAt != nil {
		return nil, domain.NewInvalidTransitionError(order.Status, domain.StatusCancelled, role)
	}

	update := domain.StatusUpdate{Status: domain.StatusCancelled}
	err = uc.applyTransition(ctx, order, update, actorID, role, "", func(tx domain.Repositories) error {
		delivery, err := tx.Deliveries().GetByOrderID(ctx, order.ID)
		if err != nil {
			// Orders cancelled before payment never had a delivery job.
			if errors.Is(err, domain.ErrDeliveryNotFound) {
				return nil
			}
			return err
		}
		return tx.Deliveries().UpdateStatus(ctx, delivery.ID, domain.DeliveryCancelled, nil, nil)
	})
	if err != nil {
		return nil, err
	}
	uc.Metrics.OrdersCancelledTotal.Inc()

	uc.notify(ctx, domain.Notification{
		UserID: order.BuyerID,
		Type:   "order_cancelled",
		Title:  "Order cancelled",
		Body:   fmt.Sprintf("Order #%d has been cancelled.", order.ID),
		Data:   map[string]any{"order_id": order.ID},
	})
	if order.Status != domain.StatusPending {
		uc.notifySellers(ctx, order, "order_cancelled",
			"Order cancelled",
			fmt.Sprintf("Order #%d was cancelled before shipment.", order.ID))
	}

	updated, err := uc.reload(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	uc.publishEvent(ctx, updated)
	return updated, nil
}
