package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/olimarket/marketplace-service/internal/delivery/http/dto"
	walletdto "github.com/olimarket/marketplace-service/internal/usecase/dto/wallet"
	walletusecase "github.com/olimarket/marketplace-service/internal/usecase/wallet"
)

const defaultHistoryLimit = 50

type WalletHandler struct {
	wallets walletusecase.WalletUsecase
}

func NewWalletHandler(wallets walletusecase.WalletUsecase) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

// Balance handles GET /wallet/balance.
func (h *WalletHandler) Balance(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	balance, err := h.wallets.GetBalance(c.Request().Context(), actorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// Transactions handles GET /wallet/transactions.
func (h *WalletHandler) Transactions(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return badRequest(c, "invalid limit query parameter")
		}
		limit = parsed
	}

	transactions, err := h.wallets.GetHistory(c.Request().Context(), actorID, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewTransactionResponses(transactions))
}

// Deposit handles POST /wallet/deposit.
func (h *WalletHandler) Deposit(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.WalletOperationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Amount.Sign() <= 0 {
		return badRequest(c, "amount must be positive")
	}

	output, err := h.wallets.Deposit(c.Request().Context(), &walletdto.DepositInput{
		UserID:      actorID,
		Amount:      req.Amount,
		Provider:    req.Provider,
		PhoneOrCard: req.PhoneOrCard(),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.WalletOperationResponse{
		TransactionID: output.TransactionID,
		BalanceAfter:  output.BalanceAfter,
		Reference:     output.Reference,
	})
}

// Withdraw handles POST /wallet/withdraw.
func (h *WalletHandler) Withdraw(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.WalletOperationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Amount.Sign() <= 0 {
		return badRequest(c, "amount must be positive")
	}

	output, err := h.wallets.Withdraw(c.Request().Context(), &walletdto.WithdrawInput{
		UserID:      actorID,
		Amount:      req.Amount,
		Provider:    req.Provider,
		PhoneOrCard: req.PhoneOrCard(),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.WalletOperationResponse{
		TransactionID: output.TransactionID,
		BalanceAfter:  output.BalanceAfter,
		Reference:     output.Reference,
	})
}
