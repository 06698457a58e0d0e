package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) NextCodeSequence(ctx context.Context, day time.Time) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) PruneCodeSequences(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Upsert(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	args := m.Called(ctx, c)
	if stored, ok := args.Get(0).(*customer.Customer); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) GetByPhone(ctx context.Context, phone kernel.Phone) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]menu.Item, error) {
	args := m.Called(ctx, ids)
	if items, ok := args.Get(0).(map[int64]menu.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMenuRepository) ListVisible(ctx context.Context) ([]menu.Item, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]menu.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) {
	m.Called(ctx, event)
}

type MockOTPStore struct{ mock.Mock }

func (m *MockOTPStore) SaveCode(ctx context.Context, phone kernel.Phone, code string, ttl time.Duration) error {
	args := m.Called(ctx, phone, code, ttl)
	return args.Error(0)
}

func (m *MockOTPStore) ConsumeCode(ctx context.Context, phone kernel.Phone, code string) (bool, error) {
	args := m.Called(ctx, phone, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockOTPStore) MarkVerified(ctx context.Context, phone kernel.Phone, ttl time.Duration) error {
	args := m.Called(ctx, phone, ttl)
	return args.Error(0)
}

func (m *MockOTPStore) IsVerified(ctx context.Context, phone kernel.Phone) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

type MockOTPSender struct{ mock.Mock }

func (m *MockOTPSender) Send(ctx context.Context, phone kernel.Phone, code string) error {
	args := m.Called(ctx, phone, code)
	return args.Error(0)
}

func eventOfKind(kind order.EventKind) any {
	return mock.MatchedBy(func(e ports.OrderEvent) bool { return e.Kind == kind })
}

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func storedOrder(t *testing.T, id order.ID, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine(1, "Koshari", money(t, 100), 2)
	require.NoError(t, err)
	code, err := order.NewCode(fixedNow, int(id))
	require.NoError(t, err)

	var estimatedAt *time.Time
	if status != order.Placed && status != order.Cancelled {
		at := fixedNow.Add(-time.Hour).Add(order.PreparationTime)
		estimatedAt = &at
	}

	created := fixedNow.Add(-time.Hour)
	o, err := order.RestoreOrder(id, code, 1, order.Takeaway, status, money(t, 200), estimatedAt, created, created,
		[]order.Line{line})
	require.NoError(t, err)
	return o
}

func storedCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	phone, err := kernel.NewPhone("+201001234567")
	require.NoError(t, err)
	c, err := customer.RestoreCustomer(1, phone, "Mona", "12 Nile St", true)
	require.NoError(t, err)
	return c
}
