package repository

import (
	"context"

	"github.com/olimarket/marketplace-service/internal/domain"
	"gorm.io/gorm"
)

// Store bundles the repositories over one gorm handle and implements
// the domain transaction boundary: RunInTransaction yields a Store
// bound to the transaction, so every repository call inside fn shares
// it and commits or rolls back as a unit.
type Store struct {
	db         *gorm.DB
	orders     *DefaultOrderRepository
	wallets    *DefaultWalletRepository
	deliveries *DefaultDeliveryRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		orders:     NewDefaultOrderRepository(db),
		wallets:    NewDefaultWalletRepository(db),
		deliveries: NewDefaultDeliveryRepository(db),
	}
}

func (s *Store) Orders() domain.OrderRepository {
	return s.orders
}

func (s *Store) Wallets() domain.WalletRepository {
	return s.wallets
}

func (s *Store) Deliveries() domain.DeliveryRepository {
	return s.deliveries
}

func (s *Store) RunInTransaction(ctx context.Context, fn func(tx domain.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
