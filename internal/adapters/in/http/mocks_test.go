package http

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.OrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.OrderResult), args.Error(1)
}

type MockOrderTransitioner struct{ mock.Mock }

func (m *MockOrderTransitioner) Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (commands.OrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.OrderResult), args.Error(1)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderResponse), args.Error(1)
}

type MockStatsReader struct{ mock.Mock }

func (m *MockStatsReader) Handle(ctx context.Context, query queries.GetOrderStatsQuery) (services.OrderStats, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(services.OrderStats), args.Error(1)
}

type MockPaymentLinkReader struct{ mock.Mock }

func (m *MockPaymentLinkReader) Handle(ctx context.Context, query queries.GetPaymentLinkQuery) (queries.PaymentLinkResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.PaymentLinkResponse), args.Error(1)
}

type MockMenuLister struct{ mock.Mock }

func (m *MockMenuLister) Handle(ctx context.Context, query queries.ListMenuQuery) ([]menu.Item, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Item), args.Error(1)
}

type MockOTPRequester struct{ mock.Mock }

func (m *MockOTPRequester) Handle(ctx context.Context, cmd commands.RequestOTPCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOTPVerifier struct{ mock.Mock }

func (m *MockOTPVerifier) Handle(ctx context.Context, cmd commands.VerifyOTPCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockProfileCompleter struct{ mock.Mock }

func (m *MockProfileCompleter) Handle(ctx context.Context, cmd commands.CompleteProfileCommand) (*customer.Customer, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type testHandlers struct {
	create     *MockOrderCreator
	transition *MockOrderTransitioner
	list       *MockOrderLister
	stats      *MockStatsReader
	payment    *MockPaymentLinkReader
	menu       *MockMenuLister
	requestOTP *MockOTPRequester
	verifyOTP  *MockOTPVerifier
	profile    *MockProfileCompleter
}

func newTestHandlers() testHandlers {
	return testHandlers{
		create:     new(MockOrderCreator),
		transition: new(MockOrderTransitioner),
		list:       new(MockOrderLister),
		stats:      new(MockStatsReader),
		payment:    new(MockPaymentLinkReader),
		menu:       new(MockMenuLister),
		requestOTP: new(MockOTPRequester),
		verifyOTP:  new(MockOTPVerifier),
		profile:    new(MockProfileCompleter),
	}
}

func (h testHandlers) Handlers() Handlers {
	return Handlers{
		CreateOrder:     h.create,
		TransitionOrder: h.transition,
		ListOrders:      h.list,
		OrderStats:      h.stats,
		PaymentLink:     h.payment,
		ListMenu:        h.menu,
		RequestOTP:      h.requestOTP,
		VerifyOTP:       h.verifyOTP,
		CompleteProfile: h.profile,
	}
}

func (h testHandlers) AssertExpectations(t *testing.T) {
	h.create.AssertExpectations(t)
	h.transition.AssertExpectations(t)
	h.list.AssertExpectations(t)
	h.stats.AssertExpectations(t)
	h.payment.AssertExpectations(t)
	h.menu.AssertExpectations(t)
	h.requestOTP.AssertExpectations(t)
	h.verifyOTP.AssertExpectations(t)
	h.profile.AssertExpectations(t)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	phone, err := kernel.NewPhone("+201001234567")
	require.NoError(t, err)
	c, err := customer.RestoreCustomer(1, phone, "Mona", "12 Nile St", true)
	require.NoError(t, err)
	return c
}

func testOrder(t *testing.T, id order.ID) *order.Order {
	t.Helper()
	line, err := order.NewLine(1, "Koshari", money(t, 180), 2)
	require.NoError(t, err)
	code, err := order.NewCode(now, int(id))
	require.NoError(t, err)
	o, err := order.NewOrder(1, code, order.Delivery, []order.Line{line}, now)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(id))
	o.ClearDomainEvents()
	return o
}
