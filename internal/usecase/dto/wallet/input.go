package walletdto

import "github.com/shopspring/decimal"

type DepositInput struct {
	UserID      int64
	Amount      decimal.Decimal
	Provider    string
	PhoneOrCard string
}

type WithdrawInput struct {
	UserID      int64
	Amount      decimal.Decimal
	Provider    string
	PhoneOrCard string
}
