package dto

import "github.com/shopspring/decimal"

type OrderItemRequest struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ImageURL    string          `json:"image_url"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity"`
	SellerID    int64           `json:"seller_id"`
	SellerName  string          `json:"seller_name"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	DeliveryAddress string             `json:"delivery_address"`
	PickupAddress   string             `json:"pickup_address"`
	DeliveryFee     decimal.Decimal    `json:"delivery_fee"`
	PaymentMethod   string             `json:"payment_method"`
	PayNow          bool               `json:"pay_now"`
	Provider        string             `json:"provider"`
	PhoneNumber     string             `json:"phone_number"`
	CardNumber      string             `json:"card_number"`
}

// PhoneOrCard selects the payment instrument: the card number when one
// is supplied, the mobile-money number otherwise.
func (r *CreateOrderRequest) PhoneOrCard() string {
	return phoneOrCard(r.PhoneNumber, r.CardNumber)
}

type PayOrderRequest struct {
	Provider    string `json:"provider"`
	PhoneNumber string `json:"phone_number"`
	CardNumber  string `json:"card_number"`
}

func (r *PayOrderRequest) PhoneOrCard() string {
	return phoneOrCard(r.PhoneNumber, r.CardNumber)
}

func phoneOrCard(phone, card string) string {
	if card != "" {
		return card
	}
	return phone
}

type SellerStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type VerifyCodeRequest struct {
	Code string `json:"code"`
}

type WalletOperationRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Provider    string          `json:"provider"`
	PhoneNumber string          `json:"phone_number"`
	CardNumber  string          `json:"card_number"`
}

func (r *WalletOperationRequest) PhoneOrCard() string {
	return phoneOrCard(r.PhoneNumber, r.CardNumber)
}

type DeliveryStatusRequest struct {
	Status string   `json:"status"`
	Lat    *float64 `json:"lat"`
	Lng    *float64 `json:"lng"`
}
