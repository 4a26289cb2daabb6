package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.WithContext(ctx).Create(orderModel).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	order.ID = orderModel.ID
	for i := range orderModel.Items {
		order.Items[i].ID = orderModel.Items[i].ID
		order.Items[i].OrderID = orderModel.ID
	}
	order.CreatedAt = orderModel.CreatedAt
	order.UpdatedAt = orderModel.UpdatedAt
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	var orderModel models.OrderModel
	err := r.DB.WithContext(ctx).Preload("Items").First(&orderModel, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) GetOrdersByBuyerID(ctx context.Context, buyerID int64) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, fmt.Errorf("find buyer orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, nil
}

func (r *DefaultOrderRepository) GetOrdersBySellerID(ctx context.Context, sellerID int64, status domain.OrderStatus) ([]*domain.Order, error) {
	query := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Preload("Items").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("order_items.seller_id = ?", sellerID).
		Distinct("orders.*")

	if status != "" {
		query = query.Where("orders.status = ?", status)
	}

	var orderModels []models.OrderModel
	if err := query.Order("orders.created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("find seller orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, nil
}

func (r *DefaultOrderRepository) CountSellerOrdersByStatus(ctx context.Context, sellerID int64) (map[domain.OrderStatus]int64, error) {
	type statusCount struct {
		Status domain.OrderStatus
		Count  int64
	}

	var rows []statusCount
	err := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("orders.status AS status, COUNT(DISTINCT orders.id) AS count").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("order_items.seller_id = ?", sellerID).
		Group("orders.status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count seller orders: %w", err)
	}

	counts := make(map[domain.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// UpdateStatus flips the status and stamps the timestamp column that
// belongs to the target status. Codes and payment status are written
// only when the update carries them.
func (r *DefaultOrderRepository) UpdateStatus(ctx context.Context, orderID int64, update domain.StatusUpdate) error {
	now := time.Now()
	values := map[string]any{
		"status":     update.Status,
		"updated_at": now,
	}

	switch update.Status {
	case domain.StatusProcessing:
		values["processing_at"] = now
	case domain.StatusReady:
		values["ready_at"] = now
	case domain.StatusShipped:
		values["shipped_at"] = now
	case domain.StatusDelivered:
		values["delivered_at"] = now
	}

	if update.PaymentStatus != "" {
		values["payment_status"] = update.PaymentStatus
	}
	if update.PickupCode != "" {
		values["pickup_code"] = update.PickupCode
	}
	if update.DeliveryCode != "" {
		values["delivery_code"] = update.DeliveryCode
	}

	query := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID)
	if update.Previous != "" {
		query = query.Where("status = ?", update.Previous)
	}

	result := query.Updates(values)
	if result.Error != nil {
		return fmt.Errorf("update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		if update.Previous != "" {
			return domain.ErrStatusConflict
		}
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) AppendHistory(ctx context.Context, entry *domain.OrderStatusHistory) error {
	historyModel := mappers.ToGORMHistory(entry)
	if err := r.DB.WithContext(ctx).Create(historyModel).Error; err != nil {
		return fmt.Errorf("append status history: %w", err)
	}
	entry.ID = historyModel.ID
	entry.CreatedAt = historyModel.CreatedAt
	return nil
}

func (r *DefaultOrderRepository) GetHistory(ctx context.Context, orderID int64) ([]*domain.OrderStatusHistory, error) {
	var historyModels []models.OrderStatusHistoryModel
	err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&historyModels).Error
	if err != nil {
		return nil, fmt.Errorf("load status history: %w", err)
	}

	history := make([]*domain.OrderStatusHistory, len(historyModels))
	for i := range historyModels {
		history[i] = mappers.ToDomainHistory(&historyModels[i])
	}
	return history, nil
}
