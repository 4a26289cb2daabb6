package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrCodeMismatch     = errors.New("verification code mismatch")
	ErrJobUnavailable   = errors.New("delivery job no longer available")
	ErrUnauthorized     = errors.New("actor not tied to this resource")
	ErrStatusConflict   = errors.New("order status changed concurrently")
	ErrPaymentFailed    = errors.New("payment failed")
	ErrPaymentPending   = errors.New("payment pending confirmation")
)

// InvalidTransitionError carries the context a client needs to recover:
// the status the order is actually in and the moves its role may make.
type InvalidTransitionError struct {
	From    OrderStatus
	To      OrderStatus
	Role    ActorRole
	Allowed []OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s for role %s (allowed: %v)", e.From, e.To, e.Role, e.Allowed)
}

func NewInvalidTransitionError(from, to OrderStatus, role ActorRole) *InvalidTransitionError {
	return &InvalidTransitionError{
		From:    from,
		To:      to,
		Role:    role,
		Allowed: AllowedTransitions(from, role),
	}
}

// InsufficientFundsError reports the balance alongside the rejected debit.
type InsufficientFundsError struct {
	UserID    int64
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, requested %s", e.Balance, e.Requested)
}

func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}

func IsInsufficientFunds(err error) bool {
	var ife *InsufficientFundsError
	return errors.As(err, &ife)
}
