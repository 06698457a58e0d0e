package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalog(t *testing.T) map[int64]menu.Item {
	t.Helper()
	return map[int64]menu.Item{
		1: {ID: 1, Name: "Koshari", Price: money(t, 180), Visible: true},
		2: {ID: 2, Name: "Hawawshi", Price: money(t, 95.5), Visible: true},
		3: {ID: 3, Name: "Seasonal Feteer", Price: money(t, 120), Visible: false},
	}
}

func newCreateOrderHandler(factory commands.UoWFactory, publisher *MockEventPublisher) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(factory, publisher, fixedClock, discardLogger())
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		commands.CustomerRef{Phone: "+201001234567", Name: "Mona", Address: "12 Nile St"},
		order.Delivery,
		[]services.LineRequest{{MenuItemID: 1, Qty: 2}, {MenuItemID: 2, Qty: 1}},
		nil,
	)
	require.NoError(t, err)
	stored := storedCustomer(t)

	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	items := new(MockMenuRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Upsert", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.Phone() == "+201001234567" && c.Name() == "Mona" && !c.PhoneVerified()
		})).Return(stored, nil).Once(),
		uow.On("MenuRepository").Return(items).Once(),
		items.On("GetByIDs", ctx, []int64{1, 2}).Return(catalog(t), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("NextCodeSequence", ctx, fixedNow).Return(3, nil).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*order.Order)
				require.NoError(t, o.AssignID(11))
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, eventOfKind(order.EventNewOrder)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	result, err := newCreateOrderHandler(factory, publisher).Handle(ctx, cmd)
	require.NoError(t, err)

	o := result.Order
	assert.Equal(t, order.ID(11), o.ID())
	assert.Equal(t, order.Code("AKF-20250314-0003"), o.Code())
	assert.Equal(t, order.Placed, o.Status())
	assert.Equal(t, "455.50", o.Total().String())
	assert.Nil(t, o.EstimatedAt())
	assert.Equal(t, int64(1), o.CustomerID())
	require.Len(t, o.Lines(), 2)
	assert.Equal(t, "Koshari", o.Lines()[0].Name())
	assert.Same(t, stored, result.Customer)

	orders.AssertExpectations(t)
	customers.AssertExpectations(t)
	items.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_TotalMismatch(t *testing.T) {
	ctx := t.Context()
	clientTotal := money(t, 400)
	cmd, err := commands.NewCreateOrderCommand(
		commands.CustomerRef{ID: 1},
		order.Takeaway,
		[]services.LineRequest{{MenuItemID: 1, Qty: 2}},
		&clientTotal,
	)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	items := new(MockMenuRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customers).Once()
	uow.On("MenuRepository").Return(items).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	customers.On("Get", ctx, int64(1)).Return(storedCustomer(t), nil).Once()
	items.On("GetByIDs", ctx, []int64{1}).Return(catalog(t), nil).Once()
	orders.On("NextCodeSequence", ctx, fixedNow).Return(1, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = newCreateOrderHandler(factory, publisher).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_HiddenMenuItem(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		commands.CustomerRef{ID: 1}, order.Takeaway, []services.LineRequest{{MenuItemID: 3, Qty: 1}}, nil)
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	items := new(MockMenuRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customers).Once()
	uow.On("MenuRepository").Return(items).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	customers.On("Get", ctx, int64(1)).Return(storedCustomer(t), nil).Once()
	items.On("GetByIDs", ctx, []int64{3}).Return(catalog(t), nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = newCreateOrderHandler(factory, new(MockEventPublisher)).Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrMenuItemNotOrderable)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		commands.CustomerRef{ID: 42}, order.Takeaway, []services.LineRequest{{MenuItemID: 1, Qty: 1}}, nil)
	require.NoError(t, err)

	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customers).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	customers.On("Get", ctx, int64(42)).Return(nil, errs.NewObjectNotFoundError("customer", 42)).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = newCreateOrderHandler(factory, new(MockEventPublisher)).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(
		commands.CustomerRef{ID: 1}, order.Takeaway, []services.LineRequest{{MenuItemID: 1, Qty: 1}}, nil)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err := newCreateOrderHandler(factory, new(MockEventPublisher)).Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(
		commands.CustomerRef{ID: 1}, order.Takeaway, []services.LineRequest{{MenuItemID: 1, Qty: 1}}, nil)

	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	items := new(MockMenuRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customers).Once()
	uow.On("MenuRepository").Return(items).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	customers.On("Get", ctx, int64(1)).Return(storedCustomer(t), nil).Once()
	items.On("GetByIDs", ctx, []int64{1}).Return(catalog(t), nil).Once()
	orders.On("NextCodeSequence", ctx, fixedNow).Return(1, nil).Once()
	orders.On("Add", ctx, mock.Anything).Return(errs.NewPersistenceFailureError("add order", errors.New("boom"))).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newCreateOrderHandler(factory, publisher).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_DailyCapacityReached(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(
		commands.CustomerRef{ID: 1}, order.Takeaway, []services.LineRequest{{MenuItemID: 1, Qty: 1}}, nil)

	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	items := new(MockMenuRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customers).Once()
	uow.On("MenuRepository").Return(items).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	customers.On("Get", ctx, int64(1)).Return(storedCustomer(t), nil).Once()
	items.On("GetByIDs", ctx, []int64{1}).Return(catalog(t), nil).Once()
	orders.On("NextCodeSequence", ctx, fixedNow).Return(order.MaxDailySequence+1, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newCreateOrderHandler(factory, publisher).Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrDailyOrderCapacityReached)
	assert.NotErrorIs(t, err, errs.ErrValueIsOutOfRange)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
