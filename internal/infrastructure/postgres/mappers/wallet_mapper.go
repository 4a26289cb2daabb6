package mappers

import (
	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainWalletTransaction(model *models.WalletTransactionModel) *domain.WalletTransaction {
	return &domain.WalletTransaction{
		ID:           model.ID,
		UserID:       model.UserID,
		Type:         domain.TransactionType(model.Type),
		Amount:       model.Amount,
		BalanceAfter: model.BalanceAfter,
		Provider:     model.Provider,
		Reference:    model.Reference,
		Status:       domain.TransactionStatus(model.Status),
		Description:  model.Description,
		OrderID:      model.OrderID,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMWalletTransaction(transaction *domain.WalletTransaction) *models.WalletTransactionModel {
	return &models.WalletTransactionModel{
		ID:           transaction.ID,
		UserID:       transaction.UserID,
		Type:         string(transaction.Type),
		Amount:       transaction.Amount,
		BalanceAfter: transaction.BalanceAfter,
		Provider:     transaction.Provider,
		Reference:    transaction.Reference,
		Status:       string(transaction.Status),
		Description:  transaction.Description,
		OrderID:      transaction.OrderID,
		CreatedAt:    transaction.CreatedAt,
	}
}
