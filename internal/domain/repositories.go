package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repositories groups the persistence ports. A Store hands out either
// plain repositories or transaction-bound ones via RunInTransaction.
type Repositories interface {
	Orders() OrderRepository
	Wallets() WalletRepository
	Deliveries() DeliveryRepository
}

// Store is the transactional boundary. Everything mutated inside fn
// commits together or rolls back together.
type Store interface {
	Repositories
	RunInTransaction(ctx context.Context, fn func(tx Repositories) error) error
}

// StatusUpdate describes the columns touched when an order moves to a
// new status. The repository stamps the timestamp column matching the
// target status. Empty optional fields are left unchanged. Previous,
// when set, makes the update conditional on the order still being in
// that status, so a concurrent transition fails with ErrStatusConflict
// instead of silently overwriting it.
type StatusUpdate struct {
	Previous      OrderStatus
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PickupCode    string
	DeliveryCode  string
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID int64) (*Order, error)
	GetOrdersByBuyerID(ctx context.Context, buyerID int64) ([]*Order, error)
	GetOrdersBySellerID(ctx context.Context, sellerID int64, status OrderStatus) ([]*Order, error)
	CountSellerOrdersByStatus(ctx context.Context, sellerID int64) (map[OrderStatus]int64, error)
	UpdateStatus(ctx context.Context, orderID int64, update StatusUpdate) error
	AppendHistory(ctx context.Context, entry *OrderStatusHistory) error
	GetHistory(ctx context.Context, orderID int64) ([]*OrderStatusHistory, error)
}

type WalletRepository interface {
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	// LockBalance reads the balance under an exclusive row lock. Only
	// meaningful inside RunInTransaction; the lock holds until commit.
	LockBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) error
	SaveTransaction(ctx context.Context, transaction *WalletTransaction) error
	GetTransactions(ctx context.Context, userID int64, limit int) ([]*WalletTransaction, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *DeliveryOrder) error
	GetByID(ctx context.Context, deliveryID int64) (*DeliveryOrder, error)
	GetByOrderID(ctx context.Context, orderID int64) (*DeliveryOrder, error)
	FindAvailable(ctx context.Context) ([]*AvailableDelivery, error)
	FindByDeliverer(ctx context.Context, delivererID int64) ([]*DeliveryOrder, error)
	// Claim takes an exclusive non-blocking lock on the job, re-checks
	// it is still pending and assigns it. Returns ErrJobUnavailable when
	// the job is gone or a concurrent claim holds the lock.
	Claim(ctx context.Context, deliveryID, delivererID int64) (*DeliveryOrder, error)
	UpdateStatus(ctx context.Context, deliveryID int64, status DeliveryStatus, lat, lng *float64) error
}
