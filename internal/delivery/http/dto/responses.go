package dto

import (
	"time"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error   string   `json:"error"`
	Allowed []string `json:"allowed_transitions,omitempty"`
}

type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ImageURL    string          `json:"image_url,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity"`
	SellerID    int64           `json:"seller_id"`
	SellerName  string          `json:"seller_name,omitempty"`
}

type OrderResponse struct {
	ID              int64               `json:"id"`
	BuyerID         int64               `json:"buyer_id"`
	Items           []OrderItemResponse `json:"items"`
	DeliveryAddress string              `json:"delivery_address"`
	DeliveryFee     decimal.Decimal     `json:"delivery_fee"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	PaymentMethod   string              `json:"payment_method"`
	PaymentStatus   string              `json:"payment_status"`
	Status          string              `json:"status"`
	PickupCode      string              `json:"pickup_code,omitempty"`
	DeliveryCode    string              `json:"delivery_code,omitempty"`
	ProcessingAt    *time.Time          `json:"processing_at,omitempty"`
	ReadyAt         *time.Time          `json:"ready_at,omitempty"`
	ShippedAt       *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	Message         string              `json:"message,omitempty"`
}

// NewOrderResponse renders an order for the given viewer role. Codes
// leak on a need-to-know basis: the seller sees the pickup code to
// print on the package, the buyer sees the delivery code only once the
// order has shipped, admins see both. Deliverers get codes through the
// pool broadcast, never through this endpoint.
func NewOrderResponse(order *domain.Order, role domain.ActorRole) *OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ImageURL:    item.ImageURL,
			Price:       item.Price,
			Quantity:    item.Quantity,
			SellerID:    item.SellerID,
			SellerName:  item.SellerName,
		}
	}

	resp := &OrderResponse{
		ID:              order.ID,
		BuyerID:         order.BuyerID,
		Items:           items,
		DeliveryAddress: order.DeliveryAddress,
		DeliveryFee:     order.DeliveryFee,
		TotalAmount:     order.TotalAmount,
		PaymentMethod:   string(order.PaymentMethod),
		PaymentStatus:   string(order.PaymentStatus),
		Status:          string(order.Status),
		ProcessingAt:    order.ProcessingAt,
		ReadyAt:         order.ReadyAt,
		ShippedAt:       order.ShippedAt,
		DeliveredAt:     order.DeliveredAt,
		CreatedAt:       order.CreatedAt,
	}

	switch role {
	case domain.RoleAdmin:
		resp.PickupCode = order.PickupCode
		resp.DeliveryCode = order.DeliveryCode
	case domain.RoleSeller:
		resp.PickupCode = order.PickupCode
	case domain.RoleBuyer:
		if order.ShippedAt != nil {
			resp.DeliveryCode = order.DeliveryCode
		}
	}
	return resp
}

func NewOrderListResponse(orders []*domain.Order, role domain.ActorRole) []*OrderResponse {
	out := make([]*OrderResponse, len(orders))
	for i, order := range orders {
		out[i] = NewOrderResponse(order, role)
	}
	return out
}

type HistoryEntryResponse struct {
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ChangedByRole  string    `json:"changed_by_role"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type TrackingResponse struct {
	Order              *OrderResponse         `json:"order"`
	History            []HistoryEntryResponse `json:"history"`
	AllowedTransitions []string               `json:"allowed_transitions"`
}

type SellerOrdersResponse struct {
	Orders       []*OrderResponse `json:"orders"`
	StatusCounts map[string]int64 `json:"status_counts"`
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type WalletOperationResponse struct {
	TransactionID int64           `json:"transaction_id"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Reference     string          `json:"reference,omitempty"`
	Message       string          `json:"message,omitempty"`
}

type TransactionResponse struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Provider     string          `json:"provider,omitempty"`
	Reference    string          `json:"reference,omitempty"`
	Status       string          `json:"status"`
	Description  string          `json:"description,omitempty"`
	OrderID      *int64          `json:"order_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func NewTransactionResponses(transactions []*domain.WalletTransaction) []TransactionResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, tr := range transactions {
		out[i] = TransactionResponse{
			ID:           tr.ID,
			Type:         string(tr.Type),
			Amount:       tr.Amount,
			BalanceAfter: tr.BalanceAfter,
			Provider:     tr.Provider,
			Reference:    tr.Reference,
			Status:       string(tr.Status),
			Description:  tr.Description,
			OrderID:      tr.OrderID,
			CreatedAt:    tr.CreatedAt,
		}
	}
	return out
}

type DeliveryResponse struct {
	ID              int64           `json:"id"`
	OrderID         int64           `json:"order_id"`
	PickupAddress   string          `json:"pickup_address"`
	DeliveryAddress string          `json:"delivery_address"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	Status          string          `json:"status"`
	DelivererID     *int64          `json:"deliverer_id,omitempty"`
	CurrentLat      *float64        `json:"current_lat,omitempty"`
	CurrentLng      *float64        `json:"current_lng,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func NewDeliveryResponse(delivery *domain.DeliveryOrder) *DeliveryResponse {
	return &DeliveryResponse{
		ID:              delivery.ID,
		OrderID:         delivery.OrderID,
		PickupAddress:   delivery.PickupAddress,
		DeliveryAddress: delivery.DeliveryAddress,
		DeliveryFee:     delivery.DeliveryFee,
		Status:          string(delivery.Status),
		DelivererID:     delivery.DelivererID,
		CurrentLat:      delivery.CurrentLat,
		CurrentLng:      delivery.CurrentLng,
		CreatedAt:       delivery.CreatedAt,
	}
}

type AvailableDeliveryResponse struct {
	DeliveryResponse
	OrderTotal    decimal.Decimal `json:"order_total"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
}

func NewAvailableDeliveryResponses(deliveries []*domain.AvailableDelivery) []AvailableDeliveryResponse {
	out := make([]AvailableDeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		out[i] = AvailableDeliveryResponse{
			DeliveryResponse: *NewDeliveryResponse(&d.DeliveryOrder),
			OrderTotal:       d.OrderTotal,
			CustomerName:     d.CustomerName,
			CustomerPhone:    d.CustomerPhone,
		}
	}
	return out
}
