package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/olimarket/marketplace-service/internal/domain"
)

// Accept races for the job. Exactly one concurrent caller wins; every
// other gets ErrJobUnavailable, which is an expected outcome, not a
// failure.
func (uc *DefaultDeliveryUsecase) Accept(ctx context.Context, deliveryID, delivererID int64) (*domain.DeliveryOrder, error) {
	delivery, err := uc.Store.Deliveries().Claim(ctx, deliveryID, delivererID)
	if err != nil {
		if errors.Is(err, domain.ErrJobUnavailable) {
			uc.Metrics.ClaimsLostTotal.Inc()
		}
		return nil, err
	}
	uc.Metrics.ClaimsWonTotal.Inc()

	detached := context.WithoutCancel(ctx)
	go func() {
		event := domain.JobEvent{
			DeliveryID:      delivery.ID,
			OrderID:         delivery.OrderID,
			Status:          delivery.Status,
			PickupAddress:   delivery.PickupAddress,
			DeliveryAddress: delivery.DeliveryAddress,
			DeliveryFee:     delivery.DeliveryFee,
		}
		if err := uc.Pool.BroadcastJobStatus(detached, event); err != nil {
			slog.Error("failed to broadcast claim",
				"delivery_id", delivery.ID, "error", err)
		}
	}()
	return delivery, nil
}
