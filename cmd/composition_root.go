package cmd

import (
	"context"
	"io"
	"log/slog"

	"driverapp/internal/adapters/in/cli"
	"driverapp/internal/adapters/out/deliveryapi"
	"driverapp/internal/adapters/out/kvstore"
	"driverapp/internal/adapters/out/mapnav"
	"driverapp/internal/core/application/controllers"
	"driverapp/internal/core/application/services"
	"driverapp/internal/core/application/usecases/commands"
	"driverapp/internal/core/application/usecases/queries"
	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/core/ports"
)

// CompositionRoot wires the driver client. Close releases the local store.
type CompositionRoot struct {
	cfg       Config
	logger    *slog.Logger
	kv        ports.KeyValueStore
	closer    io.Closer
	sessions  *kvstore.SessionStore
	resolver  *services.EnvironmentResolver
	api       *deliveryapi.Client
	navigator *mapnav.Navigator
}

func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root := &CompositionRoot{cfg: cfg, logger: logger}
	if err := root.openStore(ctx); err != nil {
		return nil, err
	}

	var err error
	if root.sessions, err = kvstore.NewSessionStore(root.kv); err != nil {
		return nil, root.closeWith(err)
	}
	envStore, err := kvstore.NewEnvironmentStore(root.kv)
	if err != nil {
		return nil, root.closeWith(err)
	}
	fallback, err := environment.Parse(cfg.DefaultEnv)
	if err != nil {
		return nil, root.closeWith(err)
	}
	root.resolver, err = services.NewEnvironmentResolver(envStore, services.BaseURLs{
		Development: cfg.DevBaseURL,
		Production:  cfg.ProdBaseURL,
	}, fallback, logger)
	if err != nil {
		return nil, root.closeWith(err)
	}
	root.api, err = deliveryapi.NewClient(root.resolver, deliveryapi.WithLogger(logger))
	if err != nil {
		return nil, root.closeWith(err)
	}
	root.navigator = mapnav.NewNavigator(mapnav.WithLogger(logger))
	return root, nil
}

func (c *CompositionRoot) openStore(ctx context.Context) error {
	switch c.cfg.Store {
	case StoreRedis:
		client, err := kvstore.NewRedisClient(ctx, kvstore.RedisConfig{
			Addr:     c.cfg.RedisAddr,
			Password: c.cfg.RedisPass,
			DB:       c.cfg.RedisDB,
		})
		if err != nil {
			return err
		}
		store, err := kvstore.NewRedisStore(client, kvstore.DefaultRedisPrefix)
		if err != nil {
			_ = client.Close()
			return err
		}
		c.kv, c.closer = store, store
	default:
		store, err := kvstore.OpenSQLite(c.cfg.StorePath)
		if err != nil {
			return err
		}
		c.kv, c.closer = store, store
	}
	return nil
}

func (c *CompositionRoot) closeWith(err error) error {
	_ = c.Close()
	return err
}

// Close releases the local store.
func (c *CompositionRoot) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.api, c.sessions, c.resolver)
}

func (c *CompositionRoot) CreateSignupCommandHandler() commands.SignupCommandHandler {
	return commands.NewSignupCommandHandler(c.api, c.sessions, c.resolver)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.api, c.sessions)
}

func (c *CompositionRoot) CreateSetEnvironmentCommandHandler() commands.SetEnvironmentCommandHandler {
	return commands.NewSetEnvironmentCommandHandler(c.resolver)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.api, c.sessions)
}

func (c *CompositionRoot) CreateLocateOrderCommandHandler() commands.LocateOrderCommandHandler {
	return commands.NewLocateOrderCommandHandler(c.navigator)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.api, c.sessions)
}

func (c *CompositionRoot) CreateOrderListController() *controllers.OrderListController {
	return controllers.NewOrderListController(c.CreateGetAssignedOrdersQueryHandler(), c.logger)
}

func (c *CompositionRoot) CreateOrderDetailController(o *order.Order) (*controllers.OrderDetailController, error) {
	return controllers.NewOrderDetailController(
		o, c.CreateAdvanceOrderCommandHandler(), c.CreateLocateOrderCommandHandler(), c.logger)
}

// CreateShell builds the terminal shell writing to out.
func (c *CompositionRoot) CreateShell(out io.Writer) (*cli.Shell, error) {
	return cli.NewShell(cli.Config{
		Login:        c.CreateLoginCommandHandler(),
		Signup:       c.CreateSignupCommandHandler(),
		Logout:       c.CreateLogoutCommandHandler(),
		Environment:  c.CreateSetEnvironmentCommandHandler(),
		Sessions:     c.sessions,
		Environments: c.resolver,
		Orders:       c.CreateOrderListController(),
		Detail: func(o *order.Order) (cli.OrderDetail, error) {
			return c.CreateOrderDetailController(o)
		},
		Out:    out,
		Color:  c.cfg.Color,
		Logger: c.logger,
	})
}
