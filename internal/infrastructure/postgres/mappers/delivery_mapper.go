package mappers

import (
	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainDelivery(model *models.DeliveryOrderModel) *domain.DeliveryOrder {
	return &domain.DeliveryOrder{
		ID:              model.ID,
		OrderID:         model.OrderID,
		PickupAddress:   model.PickupAddress,
		DeliveryAddress: model.DeliveryAddress,
		PickupLat:       model.PickupLat,
		PickupLng:       model.PickupLng,
		DeliveryLat:     model.DeliveryLat,
		DeliveryLng:     model.DeliveryLng,
		CurrentLat:      model.CurrentLat,
		CurrentLng:      model.CurrentLng,
		DeliveryFee:     model.DeliveryFee,
		Status:          model.Status,
		DelivererID:     model.DelivererID,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMDelivery(delivery *domain.DeliveryOrder) *models.DeliveryOrderModel {
	return &models.DeliveryOrderModel{
		ID:              delivery.ID,
		OrderID:         delivery.OrderID,
		PickupAddress:   delivery.PickupAddress,
		DeliveryAddress: delivery.DeliveryAddress,
		PickupLat:       delivery.PickupLat,
		PickupLng:       delivery.PickupLng,
		DeliveryLat:     delivery.DeliveryLat,
		DeliveryLng:     delivery.DeliveryLng,
		CurrentLat:      delivery.CurrentLat,
		CurrentLng:      delivery.CurrentLng,
		DeliveryFee:     delivery.DeliveryFee,
		Status:          delivery.Status,
		DelivererID:     delivery.DelivererID,
		CreatedAt:       delivery.CreatedAt,
		UpdatedAt:       delivery.UpdatedAt,
	}
}
