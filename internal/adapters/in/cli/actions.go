package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"driverapp/internal/core/application/controllers"
	"driverapp/internal/core/application/usecases/commands"
	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/core/domain/model/session"
)

var errAlreadyLoggedIn = errors.New("already logged in, use 'logout' first")

func usageError(usage string) error {
	return fmt.Errorf("usage: %s", usage)
}

func (s *Shell) login(ctx context.Context, args []string) error {
	if s.session != nil {
		return errAlreadyLoggedIn
	}
	if len(args) != 2 {
		return usageError("login <email> <password>")
	}
	command, err := commands.NewLoginCommand(args[0], args[1])
	if err != nil {
		return err
	}
	sess, err := s.cfg.Login.Handle(ctx, command)
	if err != nil {
		return err
	}
	s.welcome(ctx, sess)
	return nil
}

func (s *Shell) signup(ctx context.Context, args []string) error {
	if s.session != nil {
		return errAlreadyLoggedIn
	}
	if len(args) == 0 {
		s.navigate(ctx, ScreenSignup)
		return nil
	}
	if len(args) < 4 || len(args) > 5 {
		return usageError("signup <name> <email> <password> <confirm> [role]")
	}
	role := ""
	if len(args) == 5 {
		role = args[4]
	}
	command, err := commands.NewSignupCommand(args[0], args[1], args[2], args[3], role)
	if err != nil {
		return err
	}
	sess, err := s.cfg.Signup.Handle(ctx, command)
	if err != nil {
		return err
	}
	s.welcome(ctx, sess)
	return nil
}

func (s *Shell) welcome(ctx context.Context, sess session.Session) {
	s.session = &sess
	s.cfg.Orders.Reset()
	s.println(s.color.Green("Welcome, " + sess.Name()))
	s.openList(ctx)
}

func (s *Shell) env(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usageError("env [development|production|toggle]")
	}
	if len(args) == 1 {
		command := commands.NewToggleEnvironmentCommand()
		if args[0] != "toggle" {
			target, err := environment.Parse(args[0])
			if err != nil {
				return err
			}
			if command, err = commands.NewSetEnvironmentCommand(target); err != nil {
				return err
			}
		}
		if _, err := s.cfg.Environment.Handle(ctx, command); err != nil {
			return err
		}
	}
	return s.printEnvironment(ctx)
}

func (s *Shell) printEnvironment(ctx context.Context) error {
	env, err := s.cfg.Environments.Active(ctx)
	if err != nil {
		return err
	}
	base, err := s.cfg.Environments.ActiveBaseURL(ctx)
	if err != nil {
		return err
	}
	s.printf("Environment: %s (%s)\n", env, base)
	return nil
}

func (s *Shell) orders(ctx context.Context) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.detail = nil
	s.openList(ctx)
	return nil
}

func (s *Shell) region(ctx context.Context, args []string) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	if err := s.requireScreen(ScreenOrderList); err != nil {
		return err
	}
	if len(args) != 1 {
		return usageError("region <North|South|Central|West|East>")
	}
	region, err := order.ParseRegion(args[0])
	if err != nil {
		return err
	}
	_, signal, err := s.cfg.Orders.SelectRegion(ctx, region)
	if err != nil {
		s.printError(err)
		s.handleSignal(ctx, signal)
		return nil
	}
	s.render(ctx)
	return nil
}

func (s *Shell) open(ctx context.Context, args []string) error {
	if err := s.requireScreen(ScreenOrderList); err != nil {
		return err
	}
	if len(args) != 1 {
		return usageError("open <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return usageError("open <n>")
	}
	o, err := s.cfg.Orders.Select(n - 1)
	if err != nil {
		return err
	}
	detail, err := s.cfg.Detail(o)
	if err != nil {
		return err
	}
	s.detail = detail
	s.navigate(ctx, ScreenOrderDetail)
	return nil
}

func (s *Shell) advance(ctx context.Context) error {
	if err := s.requireScreen(ScreenOrderDetail); err != nil {
		return err
	}
	signal, err := s.detail.Advance(ctx)
	if err != nil {
		s.printError(err)
		s.handleSignal(ctx, signal)
		return nil
	}
	if signal == controllers.SignalNone {
		s.render(ctx)
		return nil
	}
	s.handleSignal(ctx, signal)
	return nil
}

func (s *Shell) locate(ctx context.Context, args []string) error {
	if err := s.requireScreen(ScreenOrderDetail); err != nil {
		return err
	}
	if len(args) != 1 {
		return usageError("locate pickup|delivery")
	}
	kind, err := order.ParseStopKind(args[0])
	if err != nil {
		return err
	}
	if err := s.detail.Locate(ctx, kind); err != nil {
		return err
	}
	s.printf("Opened %s in the map application\n", kind)
	return nil
}

func (s *Shell) account(ctx context.Context) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.navigate(ctx, ScreenAccount)
	return nil
}

func (s *Shell) back(ctx context.Context) {
	switch s.screen {
	case ScreenSignup:
		s.navigate(ctx, ScreenLogin)
	case ScreenOrderDetail:
		s.detail = nil
		s.navigate(ctx, ScreenOrderList)
	case ScreenAccount:
		if s.previous == ScreenOrderDetail && s.detail != nil {
			s.navigate(ctx, ScreenOrderDetail)
			return
		}
		s.navigate(ctx, ScreenOrderList)
	case ScreenLogin, ScreenOrderList:
		s.render(ctx)
	}
}

// logout always lands on the login screen; local state is gone even when
// the backend call failed.
func (s *Shell) logout(ctx context.Context) error {
	err := s.cfg.Logout.Handle(ctx, commands.NewLogoutCommand())
	s.session = nil
	s.detail = nil
	s.cfg.Orders.Reset()
	s.navigate(ctx, ScreenLogin)
	return err
}
