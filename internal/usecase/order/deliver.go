package usecase

import (
	"context"
	"fmt"

	"github.com/olimarket/marketplace-service/internal/domain"
	walletledger "github.com/olimarket/marketplace-service/internal/usecase/wallet"
	"github.com/olimarket/marketplace-service/internal/verification"
	"github.com/shopspring/decimal"
)

// VerifyDelivery closes the order: the buyer presents the delivery
// code, and on a match the order and its job reach delivered while the
// deliverer is credited the fee and each seller their item subtotal.
// The conditional status update makes the payout exactly-once: a
// concurrent or repeated attempt loses the shipped -> delivered race
// and credits nothing.
func (uc *DefaultOrderUsecase) VerifyDelivery(ctx context.Context, orderID, buyerID int64, code string) (*domain.Order, error) {
	order, err := uc.Store.Orders().GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerID {
		return nil, domain.ErrUnauthorized
	}
	delivery, err := uc.Store.Deliveries().GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(order.Status, domain.StatusDelivered, domain.RoleBuyer) {
		uc.Metrics.TransitionsRejected.
			WithLabelValues(string(order.Status), string(domain.StatusDelivered), string(domain.RoleBuyer)).Inc()
		return nil, domain.NewInvalidTransitionError(order.Status, domain.StatusDelivered, domain.RoleBuyer)
	}

	if !verification.Match(order.DeliveryCode, code) {
		uc.Metrics.CodeMismatchTotal.WithLabelValues("delivery").Inc()
		return nil, domain.ErrCodeMismatch
	}

	update := domain.StatusUpdate{Status: domain.StatusDelivered}
	err = uc.applyTransition(ctx, order, update, buyerID, domain.RoleBuyer, "delivery code verified", func(tx domain.Repositories) error {
		if err := tx.Deliveries().UpdateStatus(ctx, delivery.ID, domain.DeliveryDelivered, nil, nil); err != nil {
			return err
		}
		return uc.creditPayouts(ctx, tx, order, delivery)
	})
	if err != nil {
		return nil, err
	}

	uc.Metrics.OrdersCompletedTotal.Inc()

	uc.notify(ctx, domain.Notification{
		UserID: order.BuyerID,
		Type:   "order_delivered",
		Title:  "Order delivered",
		Body:   fmt.Sprintf("Order #%d has been delivered. Thank you!", order.ID),
		Data:   map[string]any{"order_id": order.ID},
	})
	if delivery.DelivererID != nil {
		uc.notify(ctx, domain.Notification{
			UserID: *delivery.DelivererID,
			Type:   "delivery_completed",
			Title:  "Delivery completed",
			Body:   fmt.Sprintf("Delivery fee for order #%d credited to your wallet.", order.ID),
			Data:   map[string]any{"order_id": order.ID},
		})
	}
	uc.notifySellers(ctx, order, "order_delivered",
		"Order delivered",
		fmt.Sprintf("Order #%d reached the buyer. Your sales were credited.", order.ID))
	delivery.Status = domain.DeliveryDelivered
	uc.broadcastJob(ctx, delivery, "", false)

	updated, err := uc.reload(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	uc.publishEvent(ctx, updated)
	return updated, nil
}

// creditPayouts runs inside the delivered transaction: the deliverer
// gets the delivery fee, each seller the subtotal of their own items.
func (uc *DefaultOrderUsecase) creditPayouts(ctx context.Context, tx domain.Repositories, order *domain.Order, delivery *domain.DeliveryOrder) error {
	orderID := order.ID

	if delivery.DelivererID != nil && delivery.DeliveryFee.Sign() > 0 {
		_, err := walletledger.Credit(ctx, tx, walletledger.CreditParams{
			UserID:      *delivery.DelivererID,
			Amount:      delivery.DeliveryFee,
			Type:        domain.TransactionCredit,
			Description: fmt.Sprintf("delivery fee for order #%d", orderID),
			OrderID:     &orderID,
		})
		if err != nil {
			return err
		}
	}

	subtotals := make(map[int64]decimal.Decimal)
	for _, item := range order.Items {
		subtotals[item.SellerID] = subtotals[item.SellerID].Add(item.Subtotal())
	}
	for _, sellerID := range order.SellerIDs() {
		amount := subtotals[sellerID]
		if amount.Sign() <= 0 {
			continue
		}
		_, err := walletledger.Credit(ctx, tx, walletledger.CreditParams{
			UserID:      sellerID,
			Amount:      amount,
			Type:        domain.TransactionCredit,
			Description: fmt.Sprintf("sales for order #%d", orderID),
			OrderID:     &orderID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
