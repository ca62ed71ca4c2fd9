package postgres_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	postgres_adapter "foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockOrderEventPublisher struct {
	mock.Mock
}

func (m *MockOrderEventPublisher) PublishOrderChanged(ctx context.Context, snapshot order.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *MockOrderEventPublisher
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders").Error
	suite.Require().NoError(err)

	suite.publisher = new(MockOrderEventPublisher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, logger)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.publisher.AssertNotCalled(suite.T(), "PublishOrderChanged", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAndPublishes() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := createTestOrder(suite)

	suite.publisher.On("PublishOrderChanged", mock.Anything, mock.MatchedBy(func(s order.Snapshot) bool {
		return s.OrderID == testOrder.ID().String() && s.Status == order.Preparing
	})).Return(nil).Once()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	retrieved.UpdateStatus(order.Preparing)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, retrieved))

	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, stored.Status())

	suite.publisher.AssertExpectations(suite.T())
	suite.publisher.AssertNumberOfCalls(suite.T(), "PublishOrderChanged", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := createTestOrder(suite)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.publisher.AssertNotCalled(suite.T(), "PublishOrderChanged", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishFailureDoesNotFailCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := createTestOrder(suite)

	suite.publisher.On("PublishOrderChanged", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TracksEachOrderOnce() {
	ctx := context.Background()
	uow := suite.factory.Create()
	first := createTestOrder(suite)
	second := createTestOrder(suite)

	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.OrderRepository()
	suite.Require().NoError(repo.Add(ctx, first))
	suite.Require().NoError(repo.Add(ctx, second))
	first.UpdateStatus(order.Canceled)
	suite.Require().NoError(repo.Update(ctx, first))

	tracked := uow.(*postgres_adapter.GormUnitOfWork).TrackedOrders()
	suite.Require().Len(tracked, 2)
	suite.True(tracked[0].IsEqual(first))
	suite.True(tracked[1].IsEqual(second))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_IsolationBetweenInstances() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	testOrder := createTestOrder(suite)

	suite.publisher.On("PublishOrderChanged", mock.Anything, mock.Anything).Return(nil).Once()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, testOrder))

	_, err := uow2.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "uncommitted order must not be visible")

	suite.Require().NoError(uow1.Commit(ctx))

	_, err = uow2.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
}

func createTestOrder(suite *UnitOfWorkIntegrationTestSuite) *order.Order {
	item, err := order.NewOrderItem(order.NewOrderItemID(), "Margherita", 1, 1100, nil)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.OrderItem{item},
		order.WithDeliveryFee(250))
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
