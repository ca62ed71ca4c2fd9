package cmd

import (
	"io"
	"log/slog"

	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/kafka"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/metrics"

	"gorm.io/gorm"
)

const serviceName = "orders"

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	clock      kernel.Clock
	publisher  ports.OrderEventPublisher
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.ServerMetrics
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	publisher := newOrderEventPublisher(config)
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		clock:      kernel.SystemClock(),
		publisher:  publisher,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		metrics:    metrics.NewServerMetrics(serviceName),
	}
}

func newOrderEventPublisher(config Config) ports.OrderEventPublisher {
	brokers := kafka.ParseBrokers(config.KafkaHost)
	if len(brokers) == 0 {
		return kafka.NoopOrderChangedPublisher{}
	}
	return kafka.NewOrderChangedPublisher(brokers, config.KafkaOrderChangedTopic)
}

// TransitionTable returns the status rules status updates are checked against.
func (c *CompositionRoot) TransitionTable() order.TransitionTable {
	if c.config.StrictTransitions {
		return order.LifecycleTransitions()
	}
	return order.UnrestrictedTransitions()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApplyDiscountCommandHandler() commands.ApplyDiscountCommandHandler {
	return commands.NewApplyDiscountCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.TransitionTable())
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	return commands.NewExpirePendingOrdersCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AddOrderItem:      c.CreateAddOrderItemCommandHandler(),
		RemoveOrderItem:   c.CreateRemoveOrderItemCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		ApplyDiscount:     c.CreateApplyDiscountCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetActiveOrders:   c.CreateGetActiveOrdersQueryHandler(),
	}, c.logger)
}

// CreateJobManager wires the background jobs. Pending order expiration is left
// out when PendingTimeout is zero.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var scheduled []jobs.Job

	if c.config.PendingTimeout > 0 {
		expiration, err := jobs.NewPendingOrderExpirationJob(
			c.CreateExpirePendingOrdersCommandHandler(),
			c.config.PendingTimeout,
			c.config.ExpirationSchedule,
			c.logger,
		)
		if err != nil {
			return nil, err
		}
		scheduled = append(scheduled, expiration)
	}

	return jobs.NewJobManager(c.logger, scheduled...), nil
}

func (c *CompositionRoot) Metrics() *metrics.ServerMetrics {
	return c.metrics
}

// Close releases the event publisher's connections.
func (c *CompositionRoot) Close() error {
	if closer, ok := c.publisher.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
