package usecase

import (
	"context"

	"github.com/olimarket/marketplace-service/internal/domain"
	orderdto "github.com/olimarket/marketplace-service/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID, buyerID int64) (*domain.Order, error) {
	order, err := uc.Store.Orders().GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerID {
		return nil, domain.ErrUnauthorized
	}
	return order, nil
}

func (uc *DefaultOrderUsecase) GetBuyerOrders(ctx context.Context, buyerID int64) ([]*domain.Order, error) {
	return uc.Store.Orders().GetOrdersByBuyerID(ctx, buyerID)
}

// GetSellerOrders lists a seller's orders, optionally filtered by
// status, together with the per-status counts for the dashboard tabs.
func (uc *DefaultOrderUsecase) GetSellerOrders(ctx context.Context, sellerID int64, status domain.OrderStatus) (*orderdto.SellerOrdersOutput, error) {
	orders, err := uc.Store.Orders().GetOrdersBySellerID(ctx, sellerID, status)
	if err != nil {
		return nil, err
	}
	counts, err := uc.Store.Orders().CountSellerOrdersByStatus(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return &orderdto.SellerOrdersOutput{Orders: orders, StatusCounts: counts}, nil
}

// GetTracking returns the order, its status timeline and the moves the
// caller's role may make next. Buyers only see their own orders;
// sellers only orders carrying their items.
func (uc *DefaultOrderUsecase) GetTracking(ctx context.Context, orderID, actorID int64, role domain.ActorRole) (*orderdto.TrackingOutput, error) {
	order, err := uc.Store.Orders().GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeTracking(order, actorID, role); err != nil {
		return nil, err
	}

	history, err := uc.Store.Orders().GetHistory(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &orderdto.TrackingOutput{
		Order:              order,
		History:            history,
		AllowedTransitions: domain.AllowedTransitions(order.Status, role),
	}, nil
}

func authorizeTracking(order *domain.Order, actorID int64, role domain.ActorRole) error {
	switch role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleBuyer:
		if order.BuyerID == actorID {
			return nil
		}
	case domain.RoleSeller:
		for _, item := range order.Items {
			if item.SellerID == actorID {
				return nil
			}
		}
	}
	return domain.ErrUnauthorized
}
