package usecase

import (
	"context"
	"fmt"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/shopspring/decimal"
)

// DebitParams describes one ledger debit. Amount is positive; the
// ledger row is written with the negated value.
type DebitParams struct {
	UserID      int64
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Provider    string
	Reference   string
	Description string
	OrderID     *int64
}

type CreditParams struct {
	UserID      int64
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Provider    string
	Reference   string
	Description string
	OrderID     *int64
}

// Debit moves money out of a user's wallet inside the caller's
// transaction: lock the balance row, re-read under the lock, reject on
// insufficient funds, then write the ledger row and the new balance
// together. The balance is never computed from a read taken outside
// the lock.
func Debit(ctx context.Context, tx domain.Repositories, params DebitParams) (*domain.WalletTransaction, error) {
	if params.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("debit amount must be positive, got %s", params.Amount)
	}

	balance, err := tx.Wallets().LockBalance(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	if balance.LessThan(params.Amount) {
		return nil, &domain.InsufficientFundsError{
			UserID:    params.UserID,
			Balance:   balance,
			Requested: params.Amount,
		}
	}

	balanceAfter := balance.Sub(params.Amount)
	transaction := &domain.WalletTransaction{
		UserID:       params.UserID,
		Type:         params.Type,
		Amount:       params.Amount.Neg(),
		BalanceAfter: balanceAfter,
		Provider:     params.Provider,
		Reference:    params.Reference,
		Status:       domain.TransactionCompleted,
		Description:  params.Description,
		OrderID:      params.OrderID,
	}

	if err := tx.Wallets().SaveTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	if err := tx.Wallets().SetBalance(ctx, params.UserID, balanceAfter); err != nil {
		return nil, err
	}
	return transaction, nil
}

// Credit moves money into a user's wallet inside the caller's
// transaction. Deposits have no funds precondition but still lock the
// row so concurrent mutations serialize.
func Credit(ctx context.Context, tx domain.Repositories, params CreditParams) (*domain.WalletTransaction, error) {
	if params.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("credit amount must be positive, got %s", params.Amount)
	}

	balance, err := tx.Wallets().LockBalance(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	balanceAfter := balance.Add(params.Amount)
	transaction := &domain.WalletTransaction{
		UserID:       params.UserID,
		Type:         params.Type,
		Amount:       params.Amount,
		BalanceAfter: balanceAfter,
		Provider:     params.Provider,
		Reference:    params.Reference,
		Status:       domain.TransactionCompleted,
		Description:  params.Description,
		OrderID:      params.OrderID,
	}

	if err := tx.Wallets().SaveTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	if err := tx.Wallets().SetBalance(ctx, params.UserID, balanceAfter); err != nil {
		return nil, err
	}
	return transaction, nil
}
