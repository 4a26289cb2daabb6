package usecase

import (
	"context"
	"fmt"

	"github.com/olimarket/marketplace-service/internal/domain"
)

// MarkProcessing moves a paid order into preparation. Sellers may only
// touch orders that contain their own items; admins may touch any.
func (uc *DefaultOrderUsecase) MarkProcessing(ctx context.Context, orderID, actorID int64, role domain.ActorRole) (*domain.Order, error) {
	order, err := uc.Store.Orders().GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeSeller(order, actorID, role); err != nil {
		return nil, err
	}

	update := domain.StatusUpdate{Status: domain.StatusProcessing}
	if err := uc.applyTransition(ctx, order, update, actorID, role, "", nil); err != nil {
		return nil, err
	}

	uc.notify(ctx, domain.Notification{
		UserID: order.BuyerID,
		Type:   "order_processing",
		Title:  "Order in preparation",
		Body:   fmt.Sprintf("Order #%d is being prepared by the seller.", order.ID),
		Data:   map[string]any{"order_id": order.ID},
	})

	updated, err := uc.reload(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	uc.publishEvent(ctx, updated)
	return updated, nil
}

// authorizeSeller gates seller transitions: every line item of the
// order must belong to the acting seller. Mixed-seller orders need an
// admin, which passes unconditionally.
func authorizeSeller(order *domain.Order, actorID int64, role domain.ActorRole) error {
	if role == domain.RoleAdmin {
		return nil
	}
	if role != domain.RoleSeller || !order.SoldEntirelyBy(actorID) {
		return domain.ErrUnauthorized
	}
	return nil
}
