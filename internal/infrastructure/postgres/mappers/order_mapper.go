package mappers

import (
	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	items := make([]domain.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = domain.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ImageURL:    item.ProductImageURL,
			Price:       item.ProductPrice,
			Quantity:    item.Quantity,
			SellerID:    item.SellerID,
			SellerName:  item.SellerName,
		}
	}

	return &domain.Order{
		ID:               model.ID,
		BuyerID:          model.UserID,
		Items:            items,
		DeliveryAddress:  model.DeliveryAddress,
		PickupAddress:    model.PickupAddress,
		DeliveryFee:      model.DeliveryFee,
		TotalAmount:      model.TotalAmount,
		PaymentMethod:    domain.PaymentMethod(model.PaymentMethod),
		PaymentStatus:    domain.PaymentStatus(model.PaymentStatus),
		Status:           model.Status,
		PickupCode:       model.PickupCode,
		DeliveryCode:     model.DeliveryCode,
		DeliveryMethodID: model.DeliveryMethodID,
		ProcessingAt:     model.ProcessingAt,
		ReadyAt:          model.ReadyAt,
		ShippedAt:        model.ShippedAt,
		DeliveredAt:      model.DeliveredAt,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	items := make([]models.OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		items[i] = models.OrderItemModel{
			ID:              item.ID,
			OrderID:         item.OrderID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ProductImageURL: item.ImageURL,
			ProductPrice:    item.Price,
			Quantity:        item.Quantity,
			SellerID:        item.SellerID,
			SellerName:      item.SellerName,
		}
	}

	return &models.OrderModel{
		ID:               order.ID,
		UserID:           order.BuyerID,
		Items:            items,
		DeliveryAddress:  order.DeliveryAddress,
		PickupAddress:    order.PickupAddress,
		DeliveryFee:      order.DeliveryFee,
		TotalAmount:      order.TotalAmount,
		PaymentMethod:    string(order.PaymentMethod),
		PaymentStatus:    string(order.PaymentStatus),
		Status:           order.Status,
		PickupCode:       order.PickupCode,
		DeliveryCode:     order.DeliveryCode,
		DeliveryMethodID: order.DeliveryMethodID,
		ProcessingAt:     order.ProcessingAt,
		ReadyAt:          order.ReadyAt,
		ShippedAt:        order.ShippedAt,
		DeliveredAt:      order.DeliveredAt,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

func ToDomainHistory(model *models.OrderStatusHistoryModel) *domain.OrderStatusHistory {
	return &domain.OrderStatusHistory{
		ID:             model.ID,
		OrderID:        model.OrderID,
		PreviousStatus: model.PreviousStatus,
		NewStatus:      model.NewStatus,
		ChangedBy:      model.ChangedBy,
		ChangedByRole:  model.ChangedByRole,
		Notes:          model.Notes,
		CreatedAt:      model.CreatedAt,
	}
}

func ToGORMHistory(entry *domain.OrderStatusHistory) *models.OrderStatusHistoryModel {
	return &models.OrderStatusHistoryModel{
		ID:             entry.ID,
		OrderID:        entry.OrderID,
		PreviousStatus: entry.PreviousStatus,
		NewStatus:      entry.NewStatus,
		ChangedBy:      entry.ChangedBy,
		ChangedByRole:  entry.ChangedByRole,
		Notes:          entry.Notes,
		CreatedAt:      entry.CreatedAt,
	}
}
