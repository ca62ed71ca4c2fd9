package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackOrder(*order.Order) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	getOrder  queries.GetOrderQueryHandler
	active    queries.GetActiveOrdersQueryHandler
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.getOrder = queries.NewGetOrderQueryHandler(db)
	suite.active = queries.NewGetActiveOrdersQueryHandler(db)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ReturnsSnapshotWithDerivedTotals() {
	ctx := context.Background()
	o := suite.addOrder(time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
		order.WithDeliveryFee(500), order.WithDiscount(200))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	snapshot, err := suite.getOrder.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.Snapshot(), snapshot)
	suite.Equal(3, snapshot.ItemsQuantity)
	suite.Equal(int64(1000), snapshot.SubtotalInCents)
	suite.Equal(int64(1300), snapshot.TotalInCents)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(order.NewOrderID())
	suite.Require().NoError(err)

	_, err = suite.getOrder.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.active.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_ExcludesFinalStatusesOldestFirst() {
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	newer := suite.addOrder(base.Add(time.Hour))
	older := suite.addOrder(base)
	inTransit := suite.addOrder(base.Add(30 * time.Minute))
	delivered := suite.addOrder(base.Add(-time.Hour))
	canceled := suite.addOrder(base.Add(-2 * time.Hour))

	for o, status := range map[*order.Order]order.Status{
		inTransit: order.InTransit,
		delivered: order.Delivered,
		canceled:  order.Canceled,
	} {
		o.UpdateStatus(status)
		suite.Require().NoError(suite.orderRepo.Update(ctx, o))
	}

	result, err := suite.active.Handle(ctx, queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 3)
	suite.Equal(older.ID().String(), result[0].OrderID)
	suite.Equal(inTransit.ID().String(), result[1].OrderID)
	suite.Equal(newer.ID().String(), result[2].OrderID)
	suite.Equal(order.InTransit, result[1].Status)
	suite.Len(result[0].Items, 2)
}

func (suite *QueryHandlersTestSuite) TestHandlers_NotConstructedQuery() {
	_, err := suite.getOrder.Handle(context.Background(), queries.GetOrderQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)

	_, err = suite.active.Handle(context.Background(), queries.GetActiveOrdersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

// addOrder persists an order with two items created at createdAt.
func (suite *QueryHandlersTestSuite) addOrder(createdAt time.Time, opts ...order.Option) *order.Order {
	first, err := order.NewOrderItem(order.NewOrderItemID(), "Dumplings", 2, 300, nil)
	suite.Require().NoError(err)
	second, err := order.NewOrderItem(order.NewOrderItemID(), "Soup", 1, 400, nil)
	suite.Require().NoError(err)

	opts = append(opts, order.WithClock(kernel.ClockFunc(func() time.Time { return createdAt })))
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.OrderItem{first, second}, opts...)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
