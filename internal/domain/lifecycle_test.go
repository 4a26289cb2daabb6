package domain_test

import (
	"testing"

	"github.com/olimarket/marketplace-service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("happy path edges", func(t *testing.T) {
		assert.True(t, domain.CanTransition(domain.StatusPending, domain.StatusPaid, domain.RoleSystem))
		assert.True(t, domain.CanTransition(domain.StatusPaid, domain.StatusProcessing, domain.RoleSeller))
		assert.True(t, domain.CanTransition(domain.StatusProcessing, domain.StatusReady, domain.RoleSeller))
		assert.True(t, domain.CanTransition(domain.StatusReady, domain.StatusShipped, domain.RoleDeliverer))
		assert.True(t, domain.CanTransition(domain.StatusShipped, domain.StatusDelivered, domain.RoleBuyer))
	})

	t.Run("legacy seller direct-ship edge", func(t *testing.T) {
		assert.True(t, domain.CanTransition(domain.StatusProcessing, domain.StatusShipped, domain.RoleSeller))
	})

	t.Run("buyer cancel only before shipment", func(t *testing.T) {
		for _, from := range []domain.OrderStatus{domain.StatusPending, domain.StatusPaid, domain.StatusProcessing} {
			assert.True(t, domain.CanTransition(from, domain.StatusCancelled, domain.RoleBuyer), "from %s", from)
		}
		assert.False(t, domain.CanTransition(domain.StatusReady, domain.StatusCancelled, domain.RoleBuyer))
		assert.False(t, domain.CanTransition(domain.StatusShipped, domain.StatusCancelled, domain.RoleBuyer))
		assert.False(t, domain.CanTransition(domain.StatusDelivered, domain.StatusCancelled, domain.RoleBuyer))
	})

	t.Run("actor role is part of the edge", func(t *testing.T) {
		assert.False(t, domain.CanTransition(domain.StatusPending, domain.StatusPaid, domain.RoleBuyer))
		assert.False(t, domain.CanTransition(domain.StatusReady, domain.StatusShipped, domain.RoleSeller))
		assert.False(t, domain.CanTransition(domain.StatusShipped, domain.StatusDelivered, domain.RoleDeliverer))
	})

	t.Run("no skipping states", func(t *testing.T) {
		assert.False(t, domain.CanTransition(domain.StatusProcessing, domain.StatusDelivered, domain.RoleBuyer))
		assert.False(t, domain.CanTransition(domain.StatusPaid, domain.StatusShipped, domain.RoleSeller))
		assert.False(t, domain.CanTransition(domain.StatusPending, domain.StatusReady, domain.RoleSeller))
	})

	t.Run("terminal states have no exits", func(t *testing.T) {
		for _, role := range []domain.ActorRole{domain.RoleBuyer, domain.RoleSeller, domain.RoleDeliverer, domain.RoleSystem, domain.RoleAdmin} {
			assert.Empty(t, domain.AllowedTransitions(domain.StatusDelivered, role))
			assert.Empty(t, domain.AllowedTransitions(domain.StatusCancelled, role))
		}
	})
}

func TestAllowedTransitions(t *testing.T) {
	t.Run("seller at processing may mark ready or ship", func(t *testing.T) {
		allowed := domain.AllowedTransitions(domain.StatusProcessing, domain.RoleSeller)
		assert.ElementsMatch(t, []domain.OrderStatus{domain.StatusReady, domain.StatusShipped}, allowed)
	})

	t.Run("deliverer at ready may only ship", func(t *testing.T) {
		allowed := domain.AllowedTransitions(domain.StatusReady, domain.RoleDeliverer)
		assert.Equal(t, []domain.OrderStatus{domain.StatusShipped}, allowed)
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := domain.NewInvalidTransitionError(domain.StatusProcessing, domain.StatusDelivered, domain.RoleSeller)

	assert.True(t, domain.IsInvalidTransition(err))
	assert.ElementsMatch(t, []domain.OrderStatus{domain.StatusReady, domain.StatusShipped}, err.Allowed)
	assert.Contains(t, err.Error(), "processing")
	assert.Contains(t, err.Error(), "delivered")
}

func TestOrderTotals(t *testing.T) {
	order := &domain.Order{
		DeliveryFee: decimal.RequireFromString("5.00"),
		Items: []domain.OrderItem{
			{SellerID: 10, Price: decimal.RequireFromString("12.50"), Quantity: 2},
			{SellerID: 11, Price: decimal.RequireFromString("25.00"), Quantity: 1},
			{SellerID: 10, Price: decimal.RequireFromString("0.99"), Quantity: 3},
		},
	}

	t.Run("items total sums price times quantity", func(t *testing.T) {
		assert.True(t, order.ItemsTotal().Equal(decimal.RequireFromString("52.97")))
	})

	t.Run("seller ids are distinct", func(t *testing.T) {
		assert.ElementsMatch(t, []int64{10, 11}, order.SellerIDs())
	})

	t.Run("sold entirely by one seller", func(t *testing.T) {
		assert.False(t, order.SoldEntirelyBy(10))

		solo := &domain.Order{Items: []domain.OrderItem{{SellerID: 7, Price: decimal.New(1, 0), Quantity: 1}}}
		assert.True(t, solo.SoldEntirelyBy(7))
		assert.False(t, solo.SoldEntirelyBy(8))
	})

	t.Run("empty order is sold by nobody", func(t *testing.T) {
		empty := &domain.Order{}
		assert.False(t, empty.SoldEntirelyBy(7))
	})
}

func TestInsufficientFundsError(t *testing.T) {
	err := &domain.InsufficientFundsError{
		UserID:    1,
		Balance:   decimal.RequireFromString("10.00"),
		Requested: decimal.RequireFromString("7.00"),
	}

	assert.True(t, domain.IsInsufficientFunds(err))
	assert.Contains(t, err.Error(), "10")
	assert.Contains(t, err.Error(), "7")
}
