package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/adapters/out/redisqueue"
	"parcelhub/internal/adapters/out/smsgateway"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/notifications"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	validator  services.AcceptanceValidator
	dispatcher *notifications.Dispatcher
	worker     *notifications.Worker
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	queue := redisqueue.NewQueue(redisClient)

	policy := notifications.DefaultPolicy()
	if delay := parseDuration(configs.NotificationDelay); delay > 0 {
		policy.InitialDelay = delay
	}
	if attempts := parseInt(configs.NotificationMaxAttempts); attempts > 0 {
		policy.MaxAttempts = attempts
	}

	gateway := smsgateway.NewClient(
		configs.SMSGatewayURL,
		configs.SMSGatewayAPIKey,
		parseDuration(configs.SMSGatewayTimeout),
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		validator: services.NewAcceptanceValidator(
			parseInt(configs.SignatureMaxBytes),
			splitList(configs.SignatureAllowedTypes),
		),
		dispatcher: notifications.NewDispatcher(queue, policy, logger),
		worker:     notifications.NewWorker(queue, gateway, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.validator)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateResendNotificationCommandHandler() commands.ResendNotificationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResendNotificationCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByURLQueryHandler() queries.GetOrderByURLQueryHandler {
	return queries.NewGetOrderByURLQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByRecipientQueryHandler() queries.GetOrdersByRecipientQueryHandler {
	return queries.NewGetOrdersByRecipientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) CreateJobManager() *notifications.JobManager {
	return notifications.NewJobManager(c.worker, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

func parseDuration(value string) time.Duration {
	if value == "" {
		return 0
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func parseInt(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
