package usecase

import (
	"context"
	"fmt"

	"github.com/olimarket/marketplace-service/internal/domain"
	orderdto "github.com/olimarket/marketplace-service/internal/usecase/dto/order"
)

// CreateOrder inserts a pending order with the total fixed from the
// item subtotals plus the delivery fee. With PayNow set it settles
// immediately, so the caller gets the order back already paid.
func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	if input.DeliveryAddress == "" {
		return nil, fmt.Errorf("delivery address is required")
	}
	if input.DeliveryFee.Sign() < 0 {
		return nil, fmt.Errorf("delivery fee must not be negative")
	}
	switch input.PaymentMethod {
	case domain.PaymentMethodWallet, domain.PaymentMethodMobileMoney:
	default:
		return nil, fmt.Errorf("unsupported payment method %q", input.PaymentMethod)
	}

	order := &domain.Order{
		BuyerID:         input.BuyerID,
		Items:           make([]domain.OrderItem, 0, len(input.Items)),
		DeliveryAddress: input.DeliveryAddress,
		PickupAddress:   input.PickupAddress,
		DeliveryFee:     input.DeliveryFee,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   domain.PaymentPending,
		Status:          domain.StatusPending,
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item %s has non-positive quantity", item.ProductID)
		}
		if item.Price.Sign() < 0 {
			return nil, fmt.Errorf("item %s has negative price", item.ProductID)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ImageURL:    item.ImageURL,
			Price:       item.Price,
			Quantity:    item.Quantity,
			SellerID:    item.SellerID,
			SellerName:  item.SellerName,
		})
	}
	order.TotalAmount = order.ItemsTotal().Add(order.DeliveryFee)

	if err := uc.Store.Orders().CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	uc.Metrics.OrdersCreatedTotal.Inc()
	uc.publishEvent(ctx, order)

	if !input.PayNow {
		return &orderdto.OrderOutput{Order: order}, nil
	}

	return uc.PayOrder(ctx, &orderdto.PayOrderInput{
		OrderID:     order.ID,
		BuyerID:     input.BuyerID,
		Provider:    input.Provider,
		PhoneOrCard: input.PhoneOrCard,
	})
}
