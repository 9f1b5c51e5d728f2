// Package devbackend assembles the development backend: configuration,
// persistence, use cases, HTTP surface and scheduled jobs.
package devbackend

import (
	"context"
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	httpadapter "driverapp/internal/adapters/in/http"
	amqpadapter "driverapp/internal/adapters/out/amqp"
	"driverapp/internal/adapters/out/postgres"
	"driverapp/internal/devbackend/auth"
	"driverapp/internal/devbackend/domain/account"
	"driverapp/internal/devbackend/ports"
	"driverapp/internal/devbackend/usecases/commands"
	"driverapp/internal/devbackend/usecases/queries"
	"driverapp/internal/jobs"
)

// Demo credentials the driver client suggests when the development backend
// rejects a login.
const (
	DemoName     = "Demo Driver"
	DemoEmail    = "demo@email.com"
	DemoPassword = "password"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	tokens     *auth.TokenService
	hasher     auth.BcryptHasher
	publisher  *amqpadapter.Publisher
}

// NewCompositionRoot wires the backend on top of an open database. The event
// publisher is only created when AMQP_URL is set.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ttl, err := cfg.TokenTTL()
	if err != nil {
		return nil, err
	}
	tokens, err := auth.NewTokenService(cfg.JWTSecret, ttl)
	if err != nil {
		return nil, err
	}
	hasher, err := auth.NewBcryptHasher(0)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		cfg:    cfg,
		logger: logger,
		gormDB: gormDB,
		tokens: tokens,
		hasher: hasher,
	}

	var publisher ports.EventPublisher
	if cfg.AMQPURL != "" {
		root.publisher, err = amqpadapter.NewPublisher(cfg.AMQPURL, cfg.OrderChangedQueue, logger)
		if err != nil {
			return nil, err
		}
		publisher = root.publisher
	} else {
		logger.Info("AMQP_URL not set, order status events are not published")
	}
	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)

	return root, nil
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateAuthenticateCommandHandler() commands.AuthenticateCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuthenticateCommandHandler(f, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.tokens)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateListDriverOrdersQueryHandler() queries.ListDriverOrdersQueryHandler {
	return queries.NewListDriverOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateRegisterAccountCommandHandler(),
		c.CreateAuthenticateCommandHandler(),
		c.CreateLogoutCommandHandler(),
		c.CreateAdvanceDeliveryCommandHandler(),
		c.CreateListDriverOrdersQueryHandler(),
	)
}

// CreateEcho builds the HTTP server with every route of the delivery contract.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	level, err := c.cfg.EchoLogLevel()
	if err != nil {
		return nil, err
	}
	return httpadapter.NewEcho(c.CreateServer(), c.tokens, level)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCreateOrderCommandHandler(), c.cfg.SeedSchedule, c.logger)
}

// EnsureDemoAccount registers the demo driver unless it already exists.
func (c *CompositionRoot) EnsureDemoAccount(ctx context.Context) error {
	cmd, err := commands.NewRegisterAccountCommand(DemoName, DemoEmail, DemoPassword, commands.DefaultRole)
	if err != nil {
		return err
	}
	if _, err = c.CreateRegisterAccountCommandHandler().Handle(ctx, cmd); err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			return nil
		}
		return err
	}
	c.logger.InfoContext(ctx, "Demo account created", "email", DemoEmail)
	return nil
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
