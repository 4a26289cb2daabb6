package usecase_test

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/olimarket/marketplace-service/internal/infrastructure/kafka"
	"github.com/olimarket/marketplace-service/internal/infrastructure/metrics"
	orderusecase "github.com/olimarket/marketplace-service/internal/usecase/order"
)

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	switch v := args.Get(0).(type) {
	case nil:
		return nil, args.Error(1)
	case func() *domain.Order:
		// Lets a test return an order that only exists after an
		// earlier mocked call ran.
		return v(), args.Error(1)
	default:
		return v.(*domain.Order), args.Error(1)
	}
}

func (m *mockOrderRepo) GetOrdersByBuyerID(ctx context.Context, buyerID int64) ([]*domain.Order, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *mockOrderRepo) GetOrdersBySellerID(ctx context.Context, sellerID int64, status domain.OrderStatus) ([]*domain.Order, error) {
	args := m.Called(ctx, sellerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *mockOrderRepo) CountSellerOrdersByStatus(ctx context.Context, sellerID int64) (map[domain.OrderStatus]int64, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.OrderStatus]int64), args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, orderID int64, update domain.StatusUpdate) error {
	return m.Called(ctx, orderID, update).Error(0)
}

func (m *mockOrderRepo) AppendHistory(ctx context.Context, entry *domain.OrderStatusHistory) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockOrderRepo) GetHistory(ctx context.Context, orderID int64) ([]*domain.OrderStatusHistory, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OrderStatusHistory), args.Error(1)
}

type mockWalletRepo struct{ mock.Mock }

func (m *mockWalletRepo) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockWalletRepo) LockBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockWalletRepo) SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) error {
	return m.Called(ctx, userID, balance).Error(0)
}

func (m *mockWalletRepo) SaveTransaction(ctx context.Context, transaction *domain.WalletTransaction) error {
	return m.Called(ctx, transaction).Error(0)
}

func (m *mockWalletRepo) GetTransactions(ctx context.Context, userID int64, limit int) ([]*domain.WalletTransaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WalletTransaction), args.Error(1)
}

type mockDeliveryRepo struct{ mock.Mock }

func (m *mockDeliveryRepo) Create(ctx context.Context, delivery *domain.DeliveryOrder) error {
	return m.Called(ctx, delivery).Error(0)
}

func (m *mockDeliveryRepo) GetByID(ctx context.Context, deliveryID int64) (*domain.DeliveryOrder, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryOrder), args.Error(1)
}

func (m *mockDeliveryRepo) GetByOrderID(ctx context.Context, orderID int64) (*domain.DeliveryOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryOrder), args.Error(1)
}

func (m *mockDeliveryRepo) FindAvailable(ctx context.Context) ([]*domain.AvailableDelivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AvailableDelivery), args.Error(1)
}

func (m *mockDeliveryRepo) FindByDeliverer(ctx context.Context, delivererID int64) ([]*domain.DeliveryOrder, error) {
	args := m.Called(ctx, delivererID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DeliveryOrder), args.Error(1)
}

func (m *mockDeliveryRepo) Claim(ctx context.Context, deliveryID, delivererID int64) (*domain.DeliveryOrder, error) {
	args := m.Called(ctx, deliveryID, delivererID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryOrder), args.Error(1)
}

func (m *mockDeliveryRepo) UpdateStatus(ctx context.Context, deliveryID int64, status domain.DeliveryStatus, lat, lng *float64) error {
	return m.Called(ctx, deliveryID, status, lat, lng).Error(0)
}

// mockStore runs the transaction callback against itself, so tests see
// the same repositories inside and outside RunInTransaction.
type mockStore struct {
	orders     *mockOrderRepo
	wallets    *mockWalletRepo
	deliveries *mockDeliveryRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		orders:     &mockOrderRepo{},
		wallets:    &mockWalletRepo{},
		deliveries: &mockDeliveryRepo{},
	}
}

func (s *mockStore) Orders() domain.OrderRepository        { return s.orders }
func (s *mockStore) Wallets() domain.WalletRepository      { return s.wallets }
func (s *mockStore) Deliveries() domain.DeliveryRepository { return s.deliveries }

func (s *mockStore) RunInTransaction(ctx context.Context, fn func(tx domain.Repositories) error) error {
	return fn(s)
}

func (s *mockStore) assertExpectations(t mock.TestingT) {
	s.orders.AssertExpectations(t)
	s.wallets.AssertExpectations(t)
	s.deliveries.AssertExpectations(t)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) Initiate(ctx context.Context, provider, phoneOrCard string, amount decimal.Decimal) (*domain.PaymentResult, error) {
	args := m.Called(ctx, provider, phoneOrCard, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentResult), args.Error(1)
}

func (m *mockGateway) Payout(ctx context.Context, provider, phoneOrCard string, amount decimal.Decimal) (*domain.PaymentResult, error) {
	args := m.Called(ctx, provider, phoneOrCard, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentResult), args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Send(ctx context.Context, notification domain.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

type mockPool struct{ mock.Mock }

func (m *mockPool) BroadcastJobAvailable(ctx context.Context, event domain.JobEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockPool) BroadcastJobStatus(ctx context.Context, event domain.JobEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockEvents struct{ mock.Mock }

func (m *mockEvents) PublishOrderEvent(ctx context.Context, event kafka.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

// newTestUsecase wires a usecase over fresh mocks. Notifications, pool
// broadcasts and kafka events run in goroutines after commit, so their
// expectations are registered permissively up front.
func newTestUsecase(store *mockStore) (*orderusecase.DefaultOrderUsecase, *mockGateway) {
	gateway := &mockGateway{}
	notifier := &mockNotifier{}
	pool := &mockPool{}
	events := &mockEvents{}

	notifier.On("Send", mock.Anything, mock.Anything).Return(nil).Maybe()
	pool.On("BroadcastJobAvailable", mock.Anything, mock.Anything).Return(nil).Maybe()
	pool.On("BroadcastJobStatus", mock.Anything, mock.Anything).Return(nil).Maybe()
	events.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Maybe()

	uc, err := orderusecase.NewDefaultOrderUsecase(
		store,
		gateway,
		notifier,
		pool,
		events,
		metrics.NewMarketplaceMetricsWith(prometheus.NewRegistry()),
	)
	if err != nil {
		panic(err)
	}
	return uc, gateway
}
