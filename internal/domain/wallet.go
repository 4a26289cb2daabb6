package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionPayment    TransactionType = "payment"
	TransactionCredit     TransactionType = "credit"
)

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPendingSt TransactionStatus = "pending"
	TransactionFailed    TransactionStatus = "failed"
)

// WalletTransaction is one append-only ledger row. Amount is signed:
// deposits and credits are positive, withdrawals and payments negative.
// BalanceAfter snapshots the balance resulting from this row, so the
// ledger replays to the current balance by cumulative sum.
type WalletTransaction struct {
	ID           int64
	UserID       int64
	Type         TransactionType
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Provider     string
	Reference    string
	Status       TransactionStatus
	Description  string
	OrderID      *int64
	CreatedAt    time.Time
}
