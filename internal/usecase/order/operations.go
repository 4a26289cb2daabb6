package usecase

import (
	"context"
	"time"

	"github.com/olimarket/marketplace-service/internal/domain"
)

// applyTransition is the one path every status change goes through: the
// lifecycle table gates the move, then the status update (guarded on
// the previous status), the history row and any side effects commit in
// a single transaction.
func (uc *DefaultOrderUsecase) applyTransition(
	ctx context.Context,
	order *domain.Order,
	update domain.StatusUpdate,
	actorID int64,
	role domain.ActorRole,
	notes string,
	side func(tx domain.Repositories) error,
) error {
	from := order.Status
	if !domain.CanTransition(from, update.Status, role) {
		uc.Metrics.TransitionsRejected.
			WithLabelValues(string(from), string(update.Status), string(role)).Inc()
		return domain.NewInvalidTransitionError(from, update.Status, role)
	}

	update.Previous = from
	started := time.Now()

	err := uc.Store.RunInTransaction(ctx, func(tx domain.Repositories) error {
		if err := tx.Orders().UpdateStatus(ctx, order.ID, update); err != nil {
			return err
		}
		if err := tx.Orders().AppendHistory(ctx, &domain.OrderStatusHistory{
			OrderID:        order.ID,
			PreviousStatus: from,
			NewStatus:      update.Status,
			ChangedBy:      actorID,
			ChangedByRole:  role,
			Notes:          notes,
		}); err != nil {
			return err
		}
		if side != nil {
			return side(tx)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.Metrics.TransitionsTotal.
		WithLabelValues(string(from), string(update.Status)).Inc()
	uc.Metrics.TransitionDuration.
		WithLabelValues(string(update.Status)).
		Observe(time.Since(started).Seconds())
	return nil
}

// reload fetches the order after a committed transition so callers get
// the stamped timestamps and generated codes back.
func (uc *DefaultOrderUsecase) reload(ctx context.Context, orderID int64) (*domain.Order, error) {
	return uc.Store.Orders().GetOrderByID(ctx, orderID)
}
