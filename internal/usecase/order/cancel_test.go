package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olimarket/marketplace-service/internal/domain"
)

func TestCancelOrder_PendingByBuyer(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	order := pendingOrder(domain.PaymentMethodWallet)
	cancelled := pendingOrder(domain.PaymentMethodWallet)
	cancelled.Status = domain.StatusCancelled

	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(order, nil).Once()
	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(cancelled, nil).Once()
	store.orders.On("UpdateStatus", mock.Anything, int64(7), mock.Anything).Return(nil)
	store.orders.On("AppendHistory", mock.Anything, mock.Anything).Return(nil)
	// Unpaid orders have no delivery job yet.
	store.deliveries.On("GetByOrderID", mock.Anything, int64(7)).Return(nil, domain.ErrDeliveryNotFound)

	result, err := uc.CancelOrder(context.Background(), 7, 1, domain.RoleBuyer)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, result.Status)
}

func TestCancelOrder_PaidCancelsDeliveryJob(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	order := pendingOrder(domain.PaymentMethodWallet)
	order.Status = domain.StatusPaid
	cancelled := pendingOrder(domain.PaymentMethodWallet)
	cancelled.Status = domain.StatusCancelled

	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(order, nil).Once()
	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(cancelled, nil).Once()
	store.orders.On("UpdateStatus", mock.Anything, int64(7), mock.Anything).Return(nil)
	store.orders.On("AppendHistory", mock.Anything, mock.Anything).Return(nil)
	store.deliveries.On("GetByOrderID", mock.Anything, int64(7)).
		Return(&domain.DeliveryOrder{ID: 11, OrderID: 7, Status: domain.DeliveryPending}, nil)
	store.deliveries.On("UpdateStatus", mock.Anything, int64(11), domain.DeliveryCancelled, (*float64)(nil), (*float64)(nil)).Return(nil)

	_, err := uc.CancelOrder(context.Background(), 7, 1, domain.RoleBuyer)
	require.NoError(t, err)
	store.assertExpectations(t)
}

func TestCancelOrder_AfterShipment(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	order := pendingOrder(domain.PaymentMethodWallet)
	order.Status = domain.StatusShipped
	now := time.Now()
	order.ShippedAt = &now
	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(order, nil)

	_, err := uc.CancelOrder(context.Background(), 7, 1, domain.RoleBuyer)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidTransition(err))
	store.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelOrder_ForeignBuyer(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(pendingOrder(domain.PaymentMethodWallet), nil)

	_, err := uc.CancelOrder(context.Background(), 7, 42, domain.RoleBuyer)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
