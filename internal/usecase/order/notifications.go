package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/infrastructure/kafka"
)

// notify dispatches after commit, detached from the request context. A
// failed send is counted and logged, never surfaced.
func (uc *DefaultOrderUsecase) notify(ctx context.Context, notifications ...domain.Notification) {
	detached := context.WithoutCancel(ctx)
	go func() {
		for _, n := range notifications {
			if err := uc.Notifier.Send(detached, n); err != nil {
				uc.Metrics.NotificationErrorsTotal.Inc()
				slog.Error("failed to send notification",
					"user_id", n.UserID, "type", n.Type, "error", err)
			}
		}
	}()
}

func (uc *DefaultOrderUsecase) publishEvent(ctx context.Context, order *domain.Order) {
	detached := context.WithoutCancel(ctx)
	go func() {
		event := kafka.OrderEvent{
			OrderID:     order.ID,
			BuyerID:     order.BuyerID,
			Status:      order.Status,
			TotalAmount: order.TotalAmount.String(),
			OccurredAt:  time.Now(),
		}
		if err := uc.Events.PublishOrderEvent(detached, event); err != nil {
			slog.Error("failed to publish order event",
				"order_id", order.ID, "status", order.Status, "error", err)
		}
	}()
}

// broadcastJob pushes a delivery-job event to the deliverer pool. The
// pickup code rides along only when the caller explicitly attaches it.
func (uc *DefaultOrderUsecase) broadcastJob(ctx context.Context, delivery *domain.DeliveryOrder, pickupCode string, available bool) {
	detached := context.WithoutCancel(ctx)
	go func() {
		event := domain.JobEvent{
			DeliveryID:      delivery.ID,
			OrderID:         delivery.OrderID,
			Status:          delivery.Status,
			PickupAddress:   delivery.PickupAddress,
			DeliveryAddress: delivery.DeliveryAddress,
			DeliveryFee:     delivery.DeliveryFee,
			PickupCode:      pickupCode,
		}
		var err error
		if available {
			err = uc.Pool.BroadcastJobAvailable(detached, event)
		} else {
			err = uc.Pool.BroadcastJobStatus(detached, event)
		}
		if err != nil {
			slog.Error("failed to broadcast delivery job",
				"delivery_id", delivery.ID, "order_id", delivery.OrderID, "error", err)
		}
	}()
}

func (uc *DefaultOrderUsecase) notifySellers(ctx context.Context, order *domain.Order, kind, title, body string) {
	notifications := make([]domain.Notification, 0, len(order.Items))
	for _, sellerID := range order.SellerIDs() {
		notifications = append(notifications, domain.Notification{
			UserID: sellerID,
			Type:   kind,
			Title:  title,
			Body:   body,
			Data:   map[string]any{"order_id": order.ID},
		})
	}
	uc.notify(ctx, notifications...)
}
