package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olimarket/marketplace-service/internal/domain"
	walletusecase "github.com/olimarket/marketplace-service/internal/usecase/wallet"
)

func TestDebit_RejectsNonPositiveAmounts(t *testing.T) {
	store := &mockStore{wallets: &mockWalletRepo{}}

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := walletusecase.Debit(context.Background(), store, walletusecase.DebitParams{
			UserID: 1, Amount: amount, Type: domain.TransactionPayment,
		})
		assert.Error(t, err)
	}
	store.wallets.AssertNotCalled(t, "LockBalance", mock.Anything, mock.Anything)
}

func TestDebit_ExactBalanceSucceeds(t *testing.T) {
	store := &mockStore{wallets: &mockWalletRepo{}}
	store.wallets.On("LockBalance", mock.Anything, int64(1)).Return(decimal.NewFromInt(55), nil)
	store.wallets.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)
	store.wallets.On("SetBalance", mock.Anything, int64(1), decimal.NewFromInt(0)).Return(nil)

	row, err := walletusecase.Debit(context.Background(), store, walletusecase.DebitParams{
		UserID: 1, Amount: decimal.NewFromInt(55), Type: domain.TransactionPayment,
	})
	require.NoError(t, err)
	assert.True(t, row.BalanceAfter.IsZero(), "debit down to exactly zero is allowed")
}

func TestCredit_SnapshotsBalanceAfter(t *testing.T) {
	store := &mockStore{wallets: &mockWalletRepo{}}
	store.wallets.On("LockBalance", mock.Anything, int64(3)).Return(decimal.RequireFromString("10.25"), nil)
	store.wallets.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)
	store.wallets.On("SetBalance", mock.Anything, int64(3), decimal.RequireFromString("15.25")).Return(nil)

	row, err := walletusecase.Credit(context.Background(), store, walletusecase.CreditParams{
		UserID: 3, Amount: decimal.NewFromInt(5), Type: domain.TransactionCredit,
	})
	require.NoError(t, err)
	assert.True(t, row.Amount.Equal(decimal.NewFromInt(5)))
	assert.True(t, row.BalanceAfter.Equal(decimal.RequireFromString("15.25")))
	store.wallets.AssertExpectations(t)
}
