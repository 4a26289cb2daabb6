package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultWalletRepository struct {
	DB *gorm.DB
}

func NewDefaultWalletRepository(db *gorm.DB) *DefaultWalletRepository {
	return &DefaultWalletRepository{DB: db}
}

func (r *DefaultWalletRepository) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var user models.UserModel
	err := r.DB.WithContext(ctx).Select("id", "wallet").First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, domain.ErrUserNotFound
		}
		return decimal.Zero, err
	}
	return user.Wallet, nil
}

// LockBalance takes SELECT ... FOR UPDATE on the user row. Every
// balance mutation must go through this inside a transaction, so two
// concurrent debits against the same user serialize instead of both
// reading the stale balance.
func (r *DefaultWalletRepository) LockBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var user models.UserModel
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "wallet").
		First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, domain.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("lock balance: %w", err)
	}
	return user.Wallet, nil
}

func (r *DefaultWalletRepository) SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) error {
	result := r.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", userID).
		Update("wallet", balance)
	if result.Error != nil {
		return fmt.Errorf("set balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *DefaultWalletRepository) SaveTransaction(ctx context.Context, transaction *domain.WalletTransaction) error {
	transactionModel := mappers.ToGORMWalletTransaction(transaction)
	if err := r.DB.WithContext(ctx).Create(transactionModel).Error; err != nil {
		return fmt.Errorf("save wallet transaction: %w", err)
	}
	transaction.ID = transactionModel.ID
	transaction.CreatedAt = transactionModel.CreatedAt
	return nil
}

func (r *DefaultWalletRepository) GetTransactions(ctx context.Context, userID int64, limit int) ([]*domain.WalletTransaction, error) {
	if limit <= 0 {
		limit = 20
	}

	var transactionModels []models.WalletTransactionModel
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactionModels).Error
	if err != nil {
		return nil, fmt.Errorf("load wallet transactions: %w", err)
	}

	transactions := make([]*domain.WalletTransaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = mappers.ToDomainWalletTransaction(&transactionModels[i])
	}
	return transactions, nil
}
