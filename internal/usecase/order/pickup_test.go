package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olimarket/marketplace-service/internal/domain"
)

func readyOrder() *domain.Order {
	order := pendingOrder(domain.PaymentMethodWallet)
	order.Status = domain.StatusReady
	order.PaymentStatus = domain.PaymentCompleted
	order.PickupCode = "ABC234"
	order.DeliveryCode = "XYZ789"
	return order
}

func assignedDelivery(delivererID int64) *domain.DeliveryOrder {
	return &domain.DeliveryOrder{
		ID:          11,
		OrderID:     7,
		Status:      domain.DeliveryAssigned,
		DelivererID: &delivererID,
	}
}

func TestVerifyPickup_CaseInsensitiveMatch(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	order := readyOrder()
	shipped := readyOrder()
	shipped.Status = domain.StatusShipped

	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(order, nil).Once()
	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(shipped, nil).Once()
	store.deliveries.On("GetByOrderID", mock.Anything, int64(7)).Return(assignedDelivery(9), nil)

	var update domain.StatusUpdate
	store.orders.On("UpdateStatus", mock.Anything, int64(7), mock.AnythingOfType("domain.StatusUpdate")).
		Run(func(args mock.Arguments) { update = args.Get(2).(domain.StatusUpdate) }).
		Return(nil)
	store.orders.On("AppendHistory", mock.Anything, mock.AnythingOfType("*domain.OrderStatusHistory")).Return(nil)
	store.deliveries.On("UpdateStatus", mock.Anything, int64(11), domain.DeliveryInTransit, (*float64)(nil), (*float64)(nil)).Return(nil)

	result, err := uc.VerifyPickup(context.Background(), 7, 9, "abc234")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, result.Status)
	assert.Equal(t, domain.StatusReady, update.Previous)
	assert.Equal(t, domain.StatusShipped, update.Status)

	store.assertExpectations(t)
}

func TestVerifyPickup_WrongCode(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(readyOrder(), nil)
	store.deliveries.On("GetByOrderID", mock.Anything, int64(7)).Return(assignedDelivery(9), nil)

	_, err := uc.VerifyPickup(context.Background(), 7, 9, "ABC235")
	assert.ErrorIs(t, err, domain.ErrCodeMismatch)
	store.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	store.deliveries.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPickup_PrematureAttempt(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	order := readyOrder()
	order.Status = domain.StatusProcessing
	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(order, nil)
	store.deliveries.On("GetByOrderID", mock.Anything, int64(7)).Return(assignedDelivery(9), nil)

	// The correct code must not save a transition the table forbids.
	_, err := uc.VerifyPickup(context.Background(), 7, 9, "ABC234")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidTransition(err))

	var transitionErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, domain.StatusProcessing, transitionErr.From)
	assert.Equal(t, domain.StatusShipped, transitionErr.To)
}

func TestVerifyPickup_NotAssignedDeliverer(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(readyOrder(), nil)
	store.deliveries.On("GetByOrderID", mock.Anything, int64(7)).Return(assignedDelivery(9), nil)

	_, err := uc.VerifyPickup(context.Background(), 7, 13, "ABC234")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyPickup_UnclaimedJob(t *testing.T) {
	store := newMockStore()
	uc, _ := newTestUsecase(store)

	delivery := assignedDelivery(9)
	delivery.Status = domain.DeliveryPending
	delivery.DelivererID = nil

	store.orders.On("GetOrderByID", mock.Anything, int64(7)).Return(readyOrder(), nil)
	store.deliveries.On("GetByOrderID", mock.Anything, int64(7)).Return(delivery, nil)

	_, err := uc.VerifyPickup(context.Background(), 7, 9, "ABC234")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
