package walletdto

import "github.com/shopspring/decimal"

type OperationOutput struct {
	TransactionID int64
	BalanceAfter  decimal.Decimal
	Reference     string
}
