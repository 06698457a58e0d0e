package cmd

import (
	"context"
	"errors"
	"log/slog"

	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/fanout"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/rabbitmq"
	redisout "ordering/internal/adapters/out/redis"
	"ordering/internal/adapters/out/sms"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"
	"ordering/internal/pkg/keylock"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	broker       *fanout.Broker
	publisher    ports.EventPublisher
	mirror       *rabbitmq.Publisher
	redisClient  *redis.Client
	otpStore     *redisout.OTPStore
	orderLocks   *keylock.Locker[order.ID]
	paymentLinks services.PaymentLinkBuilder
	logger       *slog.Logger
}

// NewCompositionRoot wires the adapters. A RabbitMQ mirror is attached only
// when RabbitMQURL is set; connection failures disable it with a warning.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	broker := fanout.NewBroker(config.EventBufferSize, logger)
	redisClient := redisout.NewClient(config.RedisAddr)

	c := &CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		broker:      broker,
		publisher:   broker,
		redisClient: redisClient,
		otpStore:    redisout.NewOTPStore(redisClient),
		orderLocks:  keylock.New[order.ID](),
		logger:      logger,
	}

	links, err := services.NewPaymentLinkBuilder(config.UPIPayee, config.UPIPayeeName)
	if err != nil {
		logger.Warn("Invalid UPI payee, falling back to default", "payee", config.UPIPayee, "error", err)
		links, _ = services.NewPaymentLinkBuilder(DefaultUPIPayee, DefaultUPIPayeeName)
	}
	c.paymentLinks = links

	if config.RabbitMQURL != "" {
		mirror, err := rabbitmq.Dial(config.RabbitMQURL, logger)
		if err != nil {
			logger.Warn("RabbitMQ mirror disabled", "error", err)
		} else {
			c.mirror = mirror
			c.publisher = fanout.MultiPublisher{broker, mirror}
		}
	}

	return c
}

// Ping checks the external stores.
func (c *CompositionRoot) Ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return errors.Join(sqlDB.PingContext(ctx), c.otpStore.Ping(ctx))
}

// Close releases the broker connections.
func (c *CompositionRoot) Close() error {
	var mirrorErr error
	if c.mirror != nil {
		mirrorErr = c.mirror.Close()
	}
	return errors.Join(mirrorErr, c.redisClient.Close())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher, commands.SystemClock, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.publisher, c.orderLocks, commands.SystemClock, c.logger)
}

func (c *CompositionRoot) CreatePruneCodeSequencesCommandHandler() commands.PruneCodeSequencesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPruneCodeSequencesCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestOTPCommandHandler() commands.RequestOTPCommandHandler {
	return commands.NewRequestOTPCommandHandler(c.otpStore, sms.NewLogSender(c.logger), commands.RandomOTPCode, c.logger)
}

func (c *CompositionRoot) CreateVerifyOTPCommandHandler() commands.VerifyOTPCommandHandler {
	return commands.NewVerifyOTPCommandHandler(c.otpStore, c.logger)
}

func (c *CompositionRoot) CreateCompleteProfileCommandHandler() commands.CompleteProfileCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteProfileCommandHandler(c.otpStore, f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.CreateListOrdersQueryHandler())
}

func (c *CompositionRoot) CreateGetPaymentLinkQueryHandler() queries.GetPaymentLinkQueryHandler {
	return queries.NewGetPaymentLinkQueryHandler(c.gormDB, c.paymentLinks)
}

func (c *CompositionRoot) CreateListMenuQueryHandler() queries.ListMenuQueryHandler {
	return queries.NewListMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		TransitionOrder: c.CreateTransitionOrderCommandHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
		OrderStats:      c.CreateGetOrderStatsQueryHandler(),
		PaymentLink:     c.CreateGetPaymentLinkQueryHandler(),
		ListMenu:        c.CreateListMenuQueryHandler(),
		RequestOTP:      c.CreateRequestOTPCommandHandler(),
		VerifyOTP:       c.CreateVerifyOTPCommandHandler(),
		CompleteProfile: c.CreateCompleteProfileCommandHandler(),
	}, c.broker, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePruneCodeSequencesCommandHandler(),
		c.CreateGetOrderStatsQueryHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
