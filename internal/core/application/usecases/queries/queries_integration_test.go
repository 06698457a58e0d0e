package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/menurepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/testpg"

	"github.com/stretchr/testify/suite"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	pg        *testpg.Database
	orders    *orderrepo.GormOrderRepository
	customers *customerrepo.GormCustomerRepository
	menu      *menurepo.GormMenuRepository
	list      queries.ListOrdersQueryHandler
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	pg, err := testpg.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres_adapter.Migrate(pg.DB))
	suite.orders = orderrepo.NewGormOrderRepository(pg.DB)
	suite.customers = customerrepo.NewGormCustomerRepository(pg.DB)
	suite.menu = menurepo.NewGormMenuRepository(pg.DB)
	suite.list = queries.NewListOrdersQueryHandler(pg.DB)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate(
		"order_lines", "orders", "order_code_sequences", "customers", "menu_items"))
}

func (suite *QueriesIntegrationTestSuite) customer(phone, name string) *customer.Customer {
	p, err := kernel.NewPhone(phone)
	suite.Require().NoError(err)
	c, err := customer.NewCustomer(p, name, "Somewhere 1", true)
	suite.Require().NoError(err)
	stored, err := suite.customers.Upsert(context.Background(), c)
	suite.Require().NoError(err)
	return stored
}

func (suite *QueriesIntegrationTestSuite) order(c *customer.Customer, seq int, at time.Time, price float64, qty int) *order.Order {
	m, err := kernel.NewMoney(price)
	suite.Require().NoError(err)
	line, err := order.NewLine(int64(seq), "Item", m, qty)
	suite.Require().NoError(err)
	code, err := order.NewCode(at, seq)
	suite.Require().NoError(err)
	o, err := order.NewOrder(c.ID(), code, order.Takeaway, []order.Line{line}, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_NewestFirstWithCustomerAndLines() {
	ctx := context.Background()
	base := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	asha := suite.customer("+919876543210", "Asha")
	ravi := suite.customer("+919000000001", "Ravi")

	older := suite.order(asha, 1, base, 100, 1)
	newer := suite.order(ravi, 2, base.Add(time.Hour), 45.5, 2)

	q, _ := queries.NewListOrdersQuery()
	got, err := suite.list.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)

	suite.Equal(newer.ID(), got[0].Order.ID())
	suite.Equal("Ravi", got[0].Customer.Name())
	suite.Equal("91.00", got[0].Order.Total().String())
	suite.Require().Len(got[0].Order.Lines(), 1)
	suite.Equal(2, got[0].Order.Lines()[0].Qty())

	suite.Equal(older.ID(), got[1].Order.ID())
	suite.Equal("Asha", got[1].Customer.Name())
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_StatusFilter() {
	ctx := context.Background()
	at := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	c := suite.customer("+919876543210", "Asha")

	suite.order(c, 1, at, 10, 1)
	accepted := suite.order(c, 2, at, 10, 1)
	suite.Require().NoError(accepted.Accept(at))
	suite.Require().NoError(suite.orders.UpdateStatus(ctx, accepted, order.Placed))

	q, _ := queries.NewListOrdersQuery(order.Accepted)
	got, err := suite.list.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal(accepted.ID(), got[0].Order.ID())
	suite.NotNil(got[0].Order.EstimatedAt())
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_Empty() {
	q, _ := queries.NewListOrdersQuery()
	got, err := suite.list.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderStats_Delivered() {
	ctx := context.Background()
	at := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	c := suite.customer("+919876543210", "Asha")

	o := suite.order(c, 1, at, 120, 1)
	for o.Status() != order.Delivered {
		prev := o.Status()
		suite.Require().NoError(o.Advance(at))
		suite.Require().NoError(suite.orders.UpdateStatus(ctx, o, prev))
	}
	suite.order(c, 2, at, 30, 1)

	stats, err := queries.NewGetOrderStatsQueryHandler(suite.list).Handle(ctx, queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)
	suite.Equal(1, stats.Pending)
	suite.Equal(1, stats.Delivered)
	suite.Equal("120.00", stats.TotalRevenue.String())
}

func (suite *QueriesIntegrationTestSuite) TestListMenu_VisibleOnly() {
	ctx := context.Background()
	price, _ := kernel.NewMoney(55)
	suite.Require().NoError(suite.menu.Add(ctx,
		menu.Item{Name: "Vada", Price: price, Visible: true, Category: "Breakfast", Image: "vada.jpg"},
		menu.Item{Name: "Hidden", Price: price, Visible: false},
	))

	items, err := queries.NewListMenuQueryHandler(suite.pg.DB).Handle(ctx, queries.NewListMenuQuery())
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("Vada", items[0].Name)
	suite.Equal("vada.jpg", items[0].Image)
	suite.Equal("55.00", items[0].Price.String())
	suite.True(items[0].Visible)
}

func (suite *QueriesIntegrationTestSuite) TestGetPaymentLink() {
	ctx := context.Background()
	at := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	c := suite.customer("+919876543210", "Asha")
	o := suite.order(c, 7, at, 227.75, 2)

	links, err := services.NewPaymentLinkBuilder("akshayafoods@ybl", "Akshaya Foods")
	suite.Require().NoError(err)
	handler := queries.NewGetPaymentLinkQueryHandler(suite.pg.DB, links)

	q, err := queries.NewGetPaymentLinkQuery(o.ID())
	suite.Require().NoError(err)
	got, err := handler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Equal(o.ID(), got.OrderID)
	suite.Equal(order.Code("AKF-20250314-0007"), got.Code)
	suite.Equal("455.50", got.Amount.String())
	suite.Equal("upi://pay?pa=akshayafoods%40ybl&pn=Akshaya%20Foods&am=455.50&cu=INR&tn=Order%20AKF-20250314-0007", got.URL)

	missing, err := queries.NewGetPaymentLinkQuery(o.ID() + 1000)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, missing)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
