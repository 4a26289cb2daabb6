package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olimarket/marketplace-service/internal/domain"
)

// MarkReady announces the order is packed and waiting for pickup. The
// pool broadcast carries the pickup code for the first time; until now
// deliverers have never seen it.
func (uc *DefaultOrderUsecase) MarkReady(ctx context.Context, orderID, actorID int64, role domain.ActorRole) (*domain.Order, error) {
	order, err := uc.Store.Orders().GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeSeller(order, actorID, role); err != nil {
		return nil, err
	}

	update := domain.StatusUpdate{Status: domain.StatusReady}
	if err := uc.applyTransition(ctx, order, update, actorID, role, "", nil); err != nil {
		return nil, err
	}

	uc.notify(ctx, domain.Notification{
		UserID: order.BuyerID,
		Type:   "order_ready",
		Title:  "Order ready for pickup",
		Body:   fmt.Sprintf("Order #%d is packed and waiting for a deliverer.", order.ID),
		Data:   map[string]any{"order_id": order.ID},
	})

	delivery, err := uc.Store.Deliveries().GetByOrderID(ctx, order.ID)
	if err != nil {
		slog.Error("failed to load delivery job for pool broadcast", "order_id", order.ID, "error", err.Error())
	} else {
		uc.broadcastJob(ctx, delivery, order.PickupCode, false)
	}

	updated, err := uc.reload(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	uc.publishEvent(ctx, updated)
	return updated, nil
}
