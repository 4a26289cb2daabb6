package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserModel carries only what the ledger core touches. Wallet is the
// materialized cache of the wallet_transactions sum; it is written only
// in the same transaction as its ledger row, under a FOR UPDATE lock.
type UserModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          ``
	Phone     string          ``
	Wallet    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

type WalletTransactionModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	UserID       int64           `gorm:"index;not null"`
	Type         string          `gorm:"not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	BalanceAfter decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Provider     string          ``
	Reference    string          `gorm:"index"`
	Status       string          `gorm:"not null;default:'completed'"`
	Description  string          ``
	OrderID      *int64          `gorm:"index"`
	CreatedAt    time.Time       `gorm:"index;autoCreateTime"`
}

func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}
