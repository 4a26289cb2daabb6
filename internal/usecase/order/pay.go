package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/olimarket/marketplace-service/internal/domain"
	orderdto "github.com/olimarket/marketplace-service/internal/usecase/dto/order"
	walletledger "github.com/olimarket/marketplace-service/internal/usecase/wallet"
)

// PayOrder settles a pending order. Wallet payments debit the buyer in
// the same transaction that flips the order to paid; mobile-money
// payments call the gateway first and only settle on a succeeded
// outcome. Settlement generates both verification codes and creates
// the delivery job, all committed together.
func (uc *DefaultOrderUsecase) PayOrder(ctx context.Context, input *orderdto.PayOrderInput) (*orderdto.OrderOutput, error) {
	order, err := uc.Store.Orders().GetOrderByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != input.BuyerID {
		return nil, domain.ErrUnauthorized
	}

	reference := uuid.NewString()
	if order.PaymentMethod == domain.PaymentMethodMobileMoney {
		result, err := uc.Gateway.Initiate(ctx, input.Provider, input.PhoneOrCard, order.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("payment gateway unreachable: %w", err)
		}
		uc.Metrics.GatewayOutcomesTotal.
			WithLabelValues(input.Provider, string(result.Outcome)).Inc()

		switch result.Outcome {
		case domain.PaymentDeclined:
			return nil, fmt.Errorf("%s: %w", result.Message, domain.ErrPaymentFailed)
		case domain.PaymentInFlight:
			return &orderdto.OrderOutput{Order: order, Message: result.Message}, nil
		}
		reference = result.Reference
	}

	if err := uc.settle(ctx, order, input.Provider, reference); err != nil {
		return nil, err
	}

	paid, err := uc.reload(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &orderdto.OrderOutput{Order: paid}, nil
}

// settle performs the pending -> paid transition with all its side
// effects: wallet debit (wallet method only), code generation and the
// delivery job, in one transaction. Post-commit it fans out the
// notifications and the pool broadcast.
func (uc *DefaultOrderUsecase) settle(ctx context.Context, order *domain.Order, provider, reference string) error {
	update := domain.StatusUpdate{
		Status:        domain.StatusPaid,
		PaymentStatus: domain.PaymentCompleted,
		PickupCode:    uc.newCode(),
		DeliveryCode:  uc.newCode(),
	}

	delivery := &domain.DeliveryOrder{
		OrderID:         order.ID,
		PickupAddress:   order.PickupAddress,
		DeliveryAddress: order.DeliveryAddress,
		DeliveryFee:     order.DeliveryFee,
		Status:          domain.DeliveryPending,
	}
	orderID := order.ID

	err := uc.applyTransition(ctx, order, update, order.BuyerID, domain.RoleSystem, "payment settled", func(tx domain.Repositories) error {
		if order.PaymentMethod == domain.PaymentMethodWallet {
			_, err := walletledger.Debit(ctx, tx, walletledger.DebitParams{
				UserID:      order.BuyerID,
				Amount:      order.TotalAmount,
				Type:        domain.TransactionPayment,
				Provider:    provider,
				Reference:   reference,
				Description: fmt.Sprintf("payment for order #%d", orderID),
				OrderID:     &orderID,
			})
			if err != nil {
				return err
			}
		}
		return tx.Deliveries().Create(ctx, delivery)
	})
	if err != nil {
		if domain.IsInsufficientFunds(err) {
			uc.Metrics.InsufficientFundsTotal.Inc()
		}
		return err
	}

	uc.Metrics.OrdersPaidTotal.WithLabelValues(string(order.PaymentMethod)).Inc()
	order.Status = domain.StatusPaid

	uc.notify(ctx, domain.Notification{
		UserID: order.BuyerID,
		Type:   "order_paid",
		Title:  "Payment confirmed",
		Body:   fmt.Sprintf("Your order #%d has been paid.", order.ID),
		Data:   map[string]any{"order_id": order.ID},
	})
	uc.notifySellers(ctx, order, "new_order",
		"New order received",
		fmt.Sprintf("Order #%d is paid and awaiting preparation.", order.ID))
	uc.broadcastJob(ctx, delivery, "", true)
	uc.publishEvent(ctx, order)
	return nil
}
