package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olimarket/marketplace-service/internal/domain"
	orderdto "github.com/olimarket/marketplace-service/internal/usecase/dto/order"
)

func TestCreateOrder_TotalFixedAtCreation(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	var created *domain.Order
	store.orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.Order) }).
		Return(nil)

	output, err := uc.CreateOrder(context.Background(), &orderdto.CreateOrderInput{
		BuyerID: 1,
		Items: []orderdto.OrderItemInput{
			{ProductID: "p-1", Price: decimal.NewFromInt(25), Quantity: 2, SellerID: 3},
			{ProductID: "p-2", Price: decimal.RequireFromString("7.50"), Quantity: 1, SellerID: 4},
		},
		DeliveryAddress: "12 Rue des Jardins",
		DeliveryFee:     decimal.NewFromInt(5),
		PaymentMethod:   domain.PaymentMethodWallet,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.True(t, created.TotalAmount.Equal(decimal.RequireFromString("62.50")))
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, domain.PaymentPending, created.PaymentStatus)
	assert.Empty(t, created.PickupCode)
	assert.Empty(t, created.DeliveryCode)
	assert.Equal(t, output.Order, created)

	// Without pay_now no money moves and no job exists yet.
	store.wallets.AssertNotCalled(t, "LockBalance", mock.Anything, mock.Anything)
	store.deliveries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_Validation(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	cases := []struct {
		name  string
		input orderdto.CreateOrderInput
	}{
		{
			name: "no items",
			input: orderdto.CreateOrderInput{
				BuyerID:         1,
				DeliveryAddress: "somewhere",
				PaymentMethod:   domain.PaymentMethodWallet,
			},
		},
		{
			name: "missing address",
			input: orderdto.CreateOrderInput{
				BuyerID:       1,
				Items:         []orderdto.OrderItemInput{{ProductID: "p-1", Price: decimal.NewFromInt(1), Quantity: 1}},
				PaymentMethod: domain.PaymentMethodWallet,
			},
		},
		{
			name: "unknown payment method",
			input: orderdto.CreateOrderInput{
				BuyerID:         1,
				Items:           []orderdto.OrderItemInput{{ProductID: "p-1", Price: decimal.NewFromInt(1), Quantity: 1}},
				DeliveryAddress: "somewhere",
				PaymentMethod:   "cheque",
			},
		},
		{
			name: "zero quantity item",
			input: orderdto.CreateOrderInput{
				BuyerID:         1,
				Items:           []orderdto.OrderItemInput{{ProductID: "p-1", Price: decimal.NewFromInt(1)}},
				DeliveryAddress: "somewhere",
				PaymentMethod:   domain.PaymentMethodWallet,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateOrder(context.Background(), &tc.input)
			assert.Error(t, err)
		})
	}

	store.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_PayNowSettlesImmediately(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	var created *domain.Order
	store.orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Order)
			created.ID = 7
		}).
		Return(nil)
	store.orders.On("GetOrderByID", mock.Anything, int64(7)).
		Return(func() *domain.Order { return created }, nil)
	store.orders.On("UpdateStatus", mock.Anything, int64(7), mock.Anything).Return(nil)
	store.orders.On("AppendHistory", mock.Anything, mock.Anything).Return(nil)
	store.wallets.On("LockBalance", mock.Anything, int64(1)).Return(decimal.NewFromInt(100), nil)
	store.wallets.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)
	store.wallets.On("SetBalance", mock.Anything, int64(1), mock.Anything).Return(nil)
	store.deliveries.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.CreateOrder(context.Background(), &orderdto.CreateOrderInput{
		BuyerID: 1,
		Items: []orderdto.OrderItemInput{
			{ProductID: "p-1", Price: decimal.NewFromInt(25), Quantity: 2, SellerID: 3},
		},
		DeliveryAddress: "12 Rue des Jardins",
		DeliveryFee:     decimal.NewFromInt(5),
		PaymentMethod:   domain.PaymentMethodWallet,
		PayNow:          true,
	})
	require.NoError(t, err)
	store.wallets.AssertCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	store.deliveries.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}
