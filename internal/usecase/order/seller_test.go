package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olimarket/marketplace-service/internal/domain"
)

func TestMarkProcessing(t *testing.T) {
	t.Run("seller owning the whole order", func(t *testing.T) {
		store := newMockStore()
		uc, _ := newTestUsecase(store)

		order := pendingOrder(domain.PaymentMethodWallet)
		order.Status = domain.StatusPaid
		processing := pendingOrder(domain.PaymentMethodWallet)
		processing.Status = domain.StatusProcessing

		store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(order, nil).Once()
		store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(processing, nil).Once()

		var update domain.StatusUpdate
		store.orders.On("UpdateStatus", mock.Anything, int64(7), mock.AnythingOfType("domain.StatusUpdate")).
			Run(func(args mock.Arguments) { update = args.Get(2).(domain.StatusUpdate) }).
			Return(nil)
		store.orders.On("AppendHistory", mock.Anything, mock.Anything).Return(nil)

		result, err := uc.MarkProcessing(context.Background(), 7, 3, domain.RoleSeller)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusProcessing, result.Status)
		assert.Equal(t, domain.StatusPaid, update.Previous)
	})

	t.Run("mixed-seller order needs admin", func(t *testing.T) {
		store := newMockStore()
		uc, _ := newTestUsecase(store)

		order := pendingOrder(domain.PaymentMethodWallet)
		order.Status = domain.StatusPaid
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: "p-2", Price: decimal.NewFromInt(3), Quantity: 1, SellerID: 4,
		})
		store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(order, nil)

		_, err := uc.MarkProcessing(context.Background(), 7, 3, domain.RoleSeller)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("not yet paid", func(t *testing.T) {
		store := newMockStore()
		uc, _ := newTestUsecase(store)

		store.orders.On("GetOrderByID", mock.Anything, int64(7)).
			Return(pendingOrder(domain.PaymentMethodWallet), nil)

		_, err := uc.MarkProcessing(context.Background(), 7, 3, domain.RoleSeller)
		require.Error(t, err)
		assert.True(t, domain.IsInvalidTransition(err))
	})
}

func TestMarkReady(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	order := pendingOrder(domain.PaymentMethodWallet)
	order.Status = domain.StatusProcessing
	order.PickupCode = "ABC234"
	ready := pendingOrder(domain.PaymentMethodWallet)
	ready.Status = domain.StatusReady

	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(order, nil).Once()
	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(ready, nil).Once()
	store.orders.On("UpdateStatus", mock.Anything, int64(7), mock.Anything).Return(nil)
	store.orders.On("AppendHistory", mock.Anything, mock.Anything).Return(nil)
	store.deliveries.On("GetByOrderID", mock.Anything, int64(7)).
		Return(&domain.DeliveryOrder{ID: 11, OrderID: 7, Status: domain.DeliveryPending}, nil)

	result, err := uc.MarkReady(context.Background(), 7, 3, domain.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, result.Status)
}

func TestMarkReady_BroadcastSkippedWhenJobMissing(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	order := pendingOrder(domain.PaymentMethodWallet)
	order.Status = domain.StatusProcessing
	order.PickupCode = "ABC234"
	ready := pendingOrder(domain.PaymentMethodWallet)
	ready.Status = domain.StatusReady

	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(order, nil).Once()
	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(ready, nil).Once()
	store.orders.On("UpdateStatus", mock.Anything, int64(7), mock.Anything).Return(nil)
	store.orders.On("AppendHistory", mock.Anything, mock.Anything).Return(nil)
	store.deliveries.On("GetByOrderID", mock.Anything, int64(7)).
		Return(nil, domain.ErrDeliveryNotFound)

	result, err := uc.MarkReady(context.Background(), 7, 3, domain.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, result.Status)
	uc.Pool.(*mockPool).AssertNotCalled(t, "BroadcastJobStatus", mock.Anything, mock.Anything)
}

func TestSellerUpdateStatus_LegacyDirectShip(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	order := pendingOrder(domain.PaymentMethodWallet)
	order.Status = domain.StatusProcessing
	shipped := pendingOrder(domain.PaymentMethodWallet)
	shipped.Status = domain.StatusShipped

	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(order, nil).Once()
	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(shipped, nil).Once()
	store.orders.On("UpdateStatus", mock.Anything, int64(7), mock.Anything).Return(nil)
	store.orders.On("AppendHistory", mock.Anything, mock.Anything).Return(nil)
	// The unclaimed pool job is withdrawn when the seller ships directly.
	store.deliveries.On("GetByOrderID", mock.Anything, int64(7)).
		Return(&domain.DeliveryOrder{ID: 11, OrderID: 7, Status: domain.DeliveryPending}, nil)
	store.deliveries.On("UpdateStatus", mock.Anything, int64(11), domain.DeliveryCancelled, (*float64)(nil), (*float64)(nil)).Return(nil)

	result, err := uc.SellerUpdateStatus(context.Background(), 7, 3, domain.StatusShipped, "shipped via carrier")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, result.Status)
	store.assertExpectations(t)
}

func TestSellerUpdateStatus_ForbiddenJump(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	order := pendingOrder(domain.PaymentMethodWallet)
	order.Status = domain.StatusPaid
	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(order, nil)

	_, err := uc.SellerUpdateStatus(context.Background(), 7, 3, domain.StatusDelivered, "")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidTransition(err))

	var transitionErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Contains(t, transitionErr.Allowed, domain.StatusProcessing)
	assert.NotContains(t, transitionErr.Allowed, domain.StatusDelivered)
}
