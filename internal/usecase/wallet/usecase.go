package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/infrastructure/metrics"
	walletdto "github.com/olimarket/marketplace-service/internal/usecase/dto/wallet"
	"github.com/shopspring/decimal"
)

type WalletUsecase interface {
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	GetHistory(ctx context.Context, userID int64, limit int) ([]*domain.WalletTransaction, error)
	Deposit(ctx context.Context, input *walletdto.DepositInput) (*walletdto.OperationOutput, error)
	Withdraw(ctx context.Context, input *walletdto.WithdrawInput) (*walletdto.OperationOutput, error)
}

type DefaultWalletUsecase struct {
	Store    domain.Store
	Gateway  domain.PaymentGateway
	Notifier domain.NotificationDispatcher
	Metrics  *metrics.MarketplaceMetrics
}

func NewDefaultWalletUsecase(
	store domain.Store,
	gateway domain.PaymentGateway,
	notifier domain.NotificationDispatcher,
	walletMetrics *metrics.MarketplaceMetrics,
) *DefaultWalletUsecase {
	return &DefaultWalletUsecase{
		Store:    store,
		Gateway:  gateway,
		Notifier: notifier,
		Metrics:  walletMetrics,
	}
}

func (uc *DefaultWalletUsecase) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return uc.Store.Wallets().GetBalance(ctx, userID)
}

func (uc *DefaultWalletUsecase) GetHistory(ctx context.Context, userID int64, limit int) ([]*domain.WalletTransaction, error) {
	return uc.Store.Wallets().GetTransactions(ctx, userID, limit)
}

// Deposit charges the user's mobile-money account and credits the
// wallet once the gateway confirms. A pending or declined gateway
// outcome leaves the ledger untouched.
func (uc *DefaultWalletUsecase) Deposit(ctx context.Context, input *walletdto.DepositInput) (*walletdto.OperationOutput, error) {
	result, err := uc.Gateway.Initiate(ctx, input.Provider, input.PhoneOrCard, input.Amount)
	if err != nil {
		return nil, err
	}
	uc.Metrics.GatewayOutcomesTotal.WithLabelValues(input.Provider, string(result.Outcome)).Inc()

	switch result.Outcome {
	case domain.PaymentDeclined:
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentFailed, result.Message)
	case domain.PaymentInFlight:
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentPending, result.Message)
	}

	var transaction *domain.WalletTransaction
	err = uc.Store.RunInTransaction(ctx, func(tx domain.Repositories) error {
		transaction, err = Credit(ctx, tx, CreditParams{
			UserID:      input.UserID,
			Amount:      input.Amount,
			Type:        domain.TransactionDeposit,
			Provider:    input.Provider,
			Reference:   result.Reference,
			Description: fmt.Sprintf("Deposit via %s", input.Provider),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.Metrics.WalletOperationsTotal.WithLabelValues(string(domain.TransactionDeposit)).Inc()
	uc.notify(input.UserID, "wallet_deposit", "Deposit received",
		fmt.Sprintf("Your wallet was credited %s", input.Amount.StringFixed(2)),
		map[string]any{"transaction_id": transaction.ID})

	return &walletdto.OperationOutput{
		TransactionID: transaction.ID,
		BalanceAfter:  transaction.BalanceAfter,
		Reference:     transaction.Reference,
	}, nil
}

// Withdraw debits the wallet and pays out to mobile money. The funds
// check, the gateway payout and the ledger write share one transaction:
// a payout that fails rolls the debit back, and a debit that fails
// never reaches the gateway.
func (uc *DefaultWalletUsecase) Withdraw(ctx context.Context, input *walletdto.WithdrawInput) (*walletdto.OperationOutput, error) {
	var transaction *domain.WalletTransaction

	err := uc.Store.RunInTransaction(ctx, func(tx domain.Repositories) error {
		balance, err := tx.Wallets().LockBalance(ctx, input.UserID)
		if err != nil {
			return err
		}
		if balance.LessThan(input.Amount) {
			return &domain.InsufficientFundsError{
				UserID:    input.UserID,
				Balance:   balance,
				Requested: input.Amount,
			}
		}

		result, err := uc.Gateway.Payout(ctx, input.Provider, input.PhoneOrCard, input.Amount)
		if err != nil {
			return err
		}
		uc.Metrics.GatewayOutcomesTotal.WithLabelValues(input.Provider, string(result.Outcome)).Inc()
		if result.Outcome != domain.PaymentSucceeded {
			return fmt.Errorf("%w: %s", domain.ErrPaymentFailed, result.Message)
		}

		balanceAfter := balance.Sub(input.Amount)
		transaction = &domain.WalletTransaction{
			UserID:       input.UserID,
			Type:         domain.TransactionWithdrawal,
			Amount:       input.Amount.Neg(),
			BalanceAfter: balanceAfter,
			Provider:     input.Provider,
			Reference:    result.Reference,
			Status:       domain.TransactionCompleted,
			Description:  fmt.Sprintf("Withdrawal to %s", input.Provider),
		}
		if err := tx.Wallets().SaveTransaction(ctx, transaction); err != nil {
			return err
		}
		return tx.Wallets().SetBalance(ctx, input.UserID, balanceAfter)
	})
	if err != nil {
		if domain.IsInsufficientFunds(err) {
			uc.Metrics.InsufficientFundsTotal.Inc()
		}
		return nil, err
	}

	uc.Metrics.WalletOperationsTotal.WithLabelValues(string(domain.TransactionWithdrawal)).Inc()
	uc.notify(input.UserID, "wallet_withdrawal", "Withdrawal sent",
		fmt.Sprintf("Your withdrawal of %s is on its way", input.Amount.StringFixed(2)),
		map[string]any{"transaction_id": transaction.ID})

	return &walletdto.OperationOutput{
		TransactionID: transaction.ID,
		BalanceAfter:  transaction.BalanceAfter,
		Reference:     transaction.Reference,
	}, nil
}

func (uc *DefaultWalletUsecase) notify(userID int64, kind, title, body string, data map[string]any) {
	go func() {
		if err := uc.Notifier.Send(context.Background(), domain.Notification{
			UserID: userID,
			Type:   kind,
			Title:  title,
			Body:   body,
			Data:   data,
		}); err != nil {
			uc.Metrics.NotificationErrorsTotal.Inc()
			slog.Error("failed to send wallet notification", "type", kind, "user_id", userID, "error", err.Error())
		}
	}()
}
