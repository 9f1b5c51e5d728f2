package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/labstack/gommon/color"

	"driverapp/internal/core/application/controllers"
	"driverapp/internal/core/application/usecases/commands"
	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/core/domain/model/session"
	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

type LoginHandler interface {
	Handle(ctx context.Context, command commands.LoginCommand) (session.Session, error)
}

type SignupHandler interface {
	Handle(ctx context.Context, command commands.SignupCommand) (session.Session, error)
}

type LogoutHandler interface {
	Handle(ctx context.Context, command commands.LogoutCommand) error
}

type EnvironmentHandler interface {
	Handle(ctx context.Context, command commands.SetEnvironmentCommand) (environment.Environment, error)
}

// OrderList is the state behind the "Delivery Orders" screen.
type OrderList interface {
	SelectRegion(ctx context.Context, region order.Region) (int, controllers.Signal, error)
	Reload(ctx context.Context) (int, controllers.Signal, error)
	Orders() []*order.Order
	SelectedRegion() order.Region
	Select(index int) (*order.Order, error)
	Reset()
}

// OrderDetail is the state behind the "Order Detail" screen.
type OrderDetail interface {
	Order() *order.Order
	ActionLabel() string
	Advance(ctx context.Context) (controllers.Signal, error)
	Locate(ctx context.Context, stop order.StopKind) error
}

// DetailFactory opens the detail screen state for one order.
type DetailFactory func(o *order.Order) (OrderDetail, error)

// Config wires the shell to the client core.
type Config struct {
	Login        LoginHandler
	Signup       SignupHandler
	Logout       LogoutHandler
	Environment  EnvironmentHandler
	Sessions     ports.SessionStore
	Environments ports.EnvironmentProvider
	Orders       OrderList
	Detail       DetailFactory

	Out    io.Writer
	Color  bool
	Logger *slog.Logger
}

// Shell renders screens and dispatches commands. It is driven by a single
// goroutine; nothing in it is safe for concurrent use.
type Shell struct {
	cfg    Config
	out    io.Writer
	color  *color.Color
	logger *slog.Logger

	screen   Screen
	previous Screen
	session  *session.Session
	detail   OrderDetail
}

func NewShell(cfg Config) (*Shell, error) {
	var missing []error
	require := func(ok bool, name string) {
		if !ok {
			missing = append(missing, errs.NewValueIsRequiredError(name))
		}
	}
	require(cfg.Login != nil, "login handler")
	require(cfg.Signup != nil, "signup handler")
	require(cfg.Logout != nil, "logout handler")
	require(cfg.Environment != nil, "environment handler")
	require(cfg.Sessions != nil, "session store")
	require(cfg.Environments != nil, "environment provider")
	require(cfg.Orders != nil, "order list")
	require(cfg.Detail != nil, "detail factory")
	require(cfg.Out != nil, "output")
	if err := errors.Join(missing...); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := color.New()
	c.SetOutput(cfg.Out)
	if !cfg.Color {
		c.Disable()
	}

	return &Shell{
		cfg:    cfg,
		out:    cfg.Out,
		color:  c,
		logger: logger.With("component", "Shell"),
		screen: ScreenLogin,
	}, nil
}

// Screen returns the screen currently shown.
func (s *Shell) Screen() Screen { return s.screen }

// Start picks the first screen: a stored session goes straight to the order
// list, anything else to the login screen.
func (s *Shell) Start(ctx context.Context) {
	stored, err := s.cfg.Sessions.Load(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "stored session unusable", "error", err)
	}
	if err != nil || stored == nil {
		s.navigate(ctx, ScreenLogin)
		return
	}
	s.session = stored
	s.openList(ctx)
}

// Run starts the shell and reads commands from in until quit, EOF or ctx ends.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.Start(ctx)

	scanner := bufio.NewScanner(in)
	for {
		s.printf("> ")
		if !scanner.Scan() {
			s.printf("\n")
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := s.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the user asked to quit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch name {
	case "quit", "exit":
		return true
	case "help":
		s.printHelp()
	case "login":
		err = s.login(ctx, args)
	case "signup":
		err = s.signup(ctx, args)
	case "env":
		err = s.env(ctx, args)
	case "orders":
		err = s.orders(ctx)
	case "region":
		err = s.region(ctx, args)
	case "open":
		err = s.open(ctx, args)
	case "advance":
		err = s.advance(ctx)
	case "locate":
		err = s.locate(ctx, args)
	case "account":
		err = s.account(ctx)
	case "back":
		s.back(ctx)
	case "logout":
		err = s.logout(ctx)
	default:
		err = fmt.Errorf("unknown command %q, type 'help'", name)
	}
	if err != nil {
		s.printError(err)
	}
	return false
}

func (s *Shell) handleSignal(ctx context.Context, signal controllers.Signal) {
	switch signal {
	case controllers.SignalRedirectToLogin:
		s.session = nil
		s.detail = nil
		s.cfg.Orders.Reset()
		s.navigate(ctx, ScreenLogin)
	case controllers.SignalDeliveryCompleted:
		s.println(s.color.Green("Delivery completed"))
		s.detail = nil
		s.openList(ctx)
	case controllers.SignalNone:
	}
}

func (s *Shell) requireSession() error {
	if s.session == nil {
		return errs.ErrAuthRequired
	}
	return nil
}

func (s *Shell) requireScreen(screen Screen) error {
	if s.screen != screen {
		return fmt.Errorf("not available on %s, open %s first", s.screen, screen)
	}
	return nil
}

func (s *Shell) navigate(ctx context.Context, screen Screen) {
	if screen != s.screen {
		s.previous = s.screen
	}
	s.screen = screen
	s.logger.DebugContext(ctx, "screen", "name", screen.String())
	s.render(ctx)
}

// openList shows the order list and reloads the selected region.
func (s *Shell) openList(ctx context.Context) {
	s.screen = ScreenOrderList
	_, signal, err := s.cfg.Orders.Reload(ctx)
	if err != nil {
		s.printError(err)
		if signal != controllers.SignalNone {
			s.handleSignal(ctx, signal)
			return
		}
	}
	s.render(ctx)
}

func (s *Shell) printHelp() {
	s.println("commands:")
	for _, line := range []string{
		"login <email> <password>",
		"signup <name> <email> <password> <confirm> [role]",
		"env [development|production|toggle]",
		"orders",
		"region <North|South|Central|West|East>",
		"open <n>",
		"advance",
		"locate pickup|delivery",
		"account",
		"back",
		"logout",
		"quit",
	} {
		s.println("  " + line)
	}
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

func (s *Shell) printError(err error) {
	s.println(s.color.Red("error: " + err.Error()))
}
