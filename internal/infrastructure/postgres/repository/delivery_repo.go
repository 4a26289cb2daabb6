package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultDeliveryRepository struct {
	DB *gorm.DB
}

func NewDefaultDeliveryRepository(db *gorm.DB) *DefaultDeliveryRepository {
	return &DefaultDeliveryRepository{DB: db}
}

func (r *DefaultDeliveryRepository) Create(ctx context.Context, delivery *domain.DeliveryOrder) error {
	deliveryModel := mappers.ToGORMDelivery(delivery)
	if err := r.DB.WithContext(ctx).Omit("Order").Create(deliveryModel).Error; err != nil {
		return fmt.Errorf("create delivery order: %w", err)
	}
	delivery.ID = deliveryModel.ID
	delivery.CreatedAt = deliveryModel.CreatedAt
	delivery.UpdatedAt = deliveryModel.UpdatedAt
	return nil
}

func (r *DefaultDeliveryRepository) GetByID(ctx context.Context, deliveryID int64) (*domain.DeliveryOrder, error) {
	var deliveryModel models.DeliveryOrderModel
	err := r.DB.WithContext(ctx).First(&deliveryModel, "id = ?", deliveryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDeliveryNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDelivery(&deliveryModel), nil
}

func (r *DefaultDeliveryRepository) GetByOrderID(ctx context.Context, orderID int64) (*domain.DeliveryOrder, error) {
	var deliveryModel models.DeliveryOrderModel
	err := r.DB.WithContext(ctx).First(&deliveryModel, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDeliveryNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDelivery(&deliveryModel), nil
}

func (r *DefaultDeliveryRepository) FindAvailable(ctx context.Context) ([]*domain.AvailableDelivery, error) {
	type availableRow struct {
		models.DeliveryOrderModel
		TotalAmount   decimal.Decimal
		CustomerName  string
		CustomerPhone string
	}

	var rows []availableRow
	err := r.DB.WithContext(ctx).
		Model(&models.DeliveryOrderModel{}).
		Select("delivery_orders.*, orders.total_amount, users.name AS customer_name, users.phone AS customer_phone").
		Joins("JOIN orders ON orders.id = delivery_orders.order_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("delivery_orders.status = ?", domain.DeliveryPending).
		Order("delivery_orders.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find available deliveries: %w", err)
	}

	available := make([]*domain.AvailableDelivery, len(rows))
	for i := range rows {
		available[i] = &domain.AvailableDelivery{
			DeliveryOrder: *mappers.ToDomainDelivery(&rows[i].DeliveryOrderModel),
			OrderTotal:    rows[i].TotalAmount,
			CustomerName:  rows[i].CustomerName,
			CustomerPhone: rows[i].CustomerPhone,
		}
	}
	return available, nil
}

func (r *DefaultDeliveryRepository) FindByDeliverer(ctx context.Context, delivererID int64) ([]*domain.DeliveryOrder, error) {
	var deliveryModels []models.DeliveryOrderModel
	err := r.DB.WithContext(ctx).
		Where("deliverer_id = ?", delivererID).
		Where("status NOT IN ?", []domain.DeliveryStatus{domain.DeliveryDelivered, domain.DeliveryCancelled}).
		Order("updated_at DESC").
		Find(&deliveryModels).Error
	if err != nil {
		return nil, fmt.Errorf("find deliverer jobs: %w", err)
	}

	deliveries := make([]*domain.DeliveryOrder, len(deliveryModels))
	for i := range deliveryModels {
		deliveries[i] = mappers.ToDomainDelivery(&deliveryModels[i])
	}
	return deliveries, nil
}

// Claim is the race-critical assignment. FOR UPDATE SKIP LOCKED makes a
// concurrent claimant's row invisible instead of blocking on it, so the
// loser sees "no row" immediately. The pending re-check runs under the
// lock; the winner's status flip commits with the lock still held.
func (r *DefaultDeliveryRepository) Claim(ctx context.Context, deliveryID, delivererID int64) (*domain.DeliveryOrder, error) {
	var claimed *domain.DeliveryOrder

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var deliveryModel models.DeliveryOrderModel
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("id = ? AND status = ?", deliveryID, domain.DeliveryPending).
			First(&deliveryModel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrJobUnavailable
			}
			return fmt.Errorf("lock delivery job: %w", err)
		}

		updates := map[string]any{
			"deliverer_id": delivererID,
			"status":       domain.DeliveryAssigned,
			"updated_at":   time.Now(),
		}
		if err := tx.Model(&deliveryModel).Updates(updates).Error; err != nil {
			return fmt.Errorf("assign delivery job: %w", err)
		}

		deliveryModel.DelivererID = &delivererID
		deliveryModel.Status = domain.DeliveryAssigned
		claimed = mappers.ToDomainDelivery(&deliveryModel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

func (r *DefaultDeliveryRepository) UpdateStatus(ctx context.Context, deliveryID int64, status domain.DeliveryStatus, lat, lng *float64) error {
	values := map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	}
	if lat != nil {
		values["current_lat"] = *lat
	}
	if lng != nil {
		values["current_lng"] = *lng
	}

	result := r.DB.WithContext(ctx).
		Model(&models.DeliveryOrderModel{}).
		Where("id = ?", deliveryID).
		Updates(values)
	if result.Error != nil {
		return fmt.Errorf("update delivery status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDeliveryNotFound
	}
	return nil
}
