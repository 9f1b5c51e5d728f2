package cli_test

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"testing"

	"driverapp/internal/adapters/in/cli"
	"driverapp/internal/core/application/controllers"
	"driverapp/internal/core/application/usecases/commands"
	"driverapp/internal/core/application/usecases/queries"
	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/core/domain/model/session"
	"driverapp/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shellFixture struct {
	login    *MockLoginHandler
	signup   *MockSignupHandler
	logout   *MockLogoutHandler
	envCmd   *MockEnvironmentHandler
	sessions *MockSessionStore
	envs     *MockEnvironmentProvider
	list     *MockOrderList
	detail   *MockOrderDetail
	opened   *order.Order
	out      *bytes.Buffer
	shell    *cli.Shell
}

func newShellFixture(t *testing.T) *shellFixture {
	t.Helper()
	return newShellFixtureWithOrders(t, nil)
}

// newShellFixtureWithOrders builds the shell on orders, or on the mocked list
// when orders is nil.
func newShellFixtureWithOrders(t *testing.T, orders cli.OrderList) *shellFixture {
	t.Helper()
	f := &shellFixture{
		login:    &MockLoginHandler{},
		signup:   &MockSignupHandler{},
		logout:   &MockLogoutHandler{},
		envCmd:   &MockEnvironmentHandler{},
		sessions: &MockSessionStore{},
		envs:     &MockEnvironmentProvider{},
		list:     &MockOrderList{},
		detail:   &MockOrderDetail{},
		out:      &bytes.Buffer{},
	}
	f.envs.On("Active", mock.Anything).Return(environment.Production, nil).Maybe()
	f.envs.On("ActiveBaseURL", mock.Anything).Return("https://prod.example.com", nil).Maybe()
	f.list.On("SelectedRegion").Return(order.Central).Maybe()
	f.list.On("Reset").Maybe()
	if orders == nil {
		orders = f.list
	}

	shell, err := cli.NewShell(cli.Config{
		Login:        f.login,
		Signup:       f.signup,
		Logout:       f.logout,
		Environment:  f.envCmd,
		Sessions:     f.sessions,
		Environments: f.envs,
		Orders:       orders,
		Detail: func(o *order.Order) (cli.OrderDetail, error) {
			f.opened = o
			return f.detail, nil
		},
		Out: f.out,
	})
	require.NoError(t, err)
	f.shell = shell
	return f
}

func (f *shellFixture) startLoggedIn(t *testing.T, orders []*order.Order) {
	t.Helper()
	s := driverSession()
	f.sessions.On("Load", mock.Anything).Return(&s, nil).Once()
	f.list.On("Reload", mock.Anything).Return(len(orders), controllers.SignalNone, nil).Once()
	f.list.On("Orders").Return(orders).Maybe()
	f.shell.Start(t.Context())
	require.Equal(t, cli.ScreenOrderList, f.shell.Screen())
}

func TestNewShell(t *testing.T) {
	_, err := cli.NewShell(cli.Config{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestShell_Start(t *testing.T) {
	t.Run("stored session skips login", func(t *testing.T) {
		f := newShellFixture(t)
		f.startLoggedIn(t, []*order.Order{sampleOrder(42, order.ReadyForDelivery)})

		assert.Contains(t, f.out.String(), "Delivery Orders [@]")
		assert.Contains(t, f.out.String(), "#42 Noodle Bar")
		assert.Contains(t, f.out.String(), "[Central]")
	})

	t.Run("no session shows login", func(t *testing.T) {
		f := newShellFixture(t)
		f.sessions.On("Load", mock.Anything).Return(nil, nil).Once()

		f.shell.Start(t.Context())

		assert.Equal(t, cli.ScreenLogin, f.shell.Screen())
		assert.Contains(t, f.out.String(), "Environment: production (https://prod.example.com)")
		f.list.AssertNotCalled(t, "Reload", mock.Anything)
	})

	t.Run("unreadable session shows login", func(t *testing.T) {
		f := newShellFixture(t)
		f.sessions.On("Load", mock.Anything).Return(nil, errors.New("corrupt")).Once()

		f.shell.Start(t.Context())

		assert.Equal(t, cli.ScreenLogin, f.shell.Screen())
	})

	t.Run("rejected token on first load returns to login", func(t *testing.T) {
		f := newShellFixture(t)
		s := driverSession()
		f.sessions.On("Load", mock.Anything).Return(&s, nil).Once()
		f.list.On("Reload", mock.Anything).
			Return(0, controllers.SignalRedirectToLogin, errs.NewSessionExpiredError("list orders", http.StatusUnauthorized)).
			Once()

		f.shell.Start(t.Context())

		assert.Equal(t, cli.ScreenLogin, f.shell.Screen())
		assert.Contains(t, f.out.String(), "session expired")
	})
}

func TestShell_Login(t *testing.T) {
	t.Run("successful login opens the list", func(t *testing.T) {
		f := newShellFixture(t)
		f.sessions.On("Load", mock.Anything).Return(nil, nil).Once()
		f.shell.Start(t.Context())

		f.login.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.LoginCommand) bool {
			return c.Email() == "demo@email.com" && c.Password() == "password"
		})).Return(driverSession(), nil).Once()
		f.list.On("Reload", mock.Anything).Return(0, controllers.SignalNone, nil).Once()
		f.list.On("Orders").Return([]*order.Order{})

		quit := f.shell.Execute(t.Context(), "login demo@email.com password")

		assert.False(t, quit)
		assert.Equal(t, cli.ScreenOrderList, f.shell.Screen())
		assert.Contains(t, f.out.String(), "Welcome, Demo Driver")
		assert.Contains(t, f.out.String(), "No orders in this region")
	})

	t.Run("invalid email never reaches the handler", func(t *testing.T) {
		f := newShellFixture(t)
		f.sessions.On("Load", mock.Anything).Return(nil, nil).Once()
		f.shell.Start(t.Context())

		f.shell.Execute(t.Context(), "login not-an-email password")

		assert.Equal(t, cli.ScreenLogin, f.shell.Screen())
		assert.Contains(t, f.out.String(), "error:")
		f.login.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("backend error stays on login", func(t *testing.T) {
		f := newShellFixture(t)
		f.sessions.On("Load", mock.Anything).Return(nil, nil).Once()
		f.shell.Start(t.Context())
		f.login.On("Handle", mock.Anything, mock.Anything).Return(driverSession(), errs.ErrInvalidCredentials).Once()

		f.shell.Execute(t.Context(), "login demo@email.com wrong")

		assert.Equal(t, cli.ScreenLogin, f.shell.Screen())
		assert.Contains(t, f.out.String(), "invalid credentials")
	})

	t.Run("usage", func(t *testing.T) {
		f := newShellFixture(t)
		f.sessions.On("Load", mock.Anything).Return(nil, nil).Once()
		f.shell.Start(t.Context())

		f.shell.Execute(t.Context(), "login demo@email.com")

		assert.Contains(t, f.out.String(), "usage: login <email> <password>")
	})
}

func TestShell_Signup(t *testing.T) {
	f := newShellFixture(t)
	f.sessions.On("Load", mock.Anything).Return(nil, nil).Once()
	f.shell.Start(t.Context())

	f.shell.Execute(t.Context(), "signup")
	assert.Equal(t, cli.ScreenSignup, f.shell.Screen())

	f.shell.Execute(t.Context(), "signup Demo demo@email.com pw other")
	assert.Contains(t, f.out.String(), errs.ErrPasswordMismatch.Error())
	f.signup.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)

	f.signup.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.SignupCommand) bool {
		return c.Name() == "Demo" && c.Role() == "delivery"
	})).Return(driverSession(), nil).Once()
	f.list.On("Reload", mock.Anything).Return(0, controllers.SignalNone, nil).Once()
	f.list.On("Orders").Return([]*order.Order{})

	f.shell.Execute(t.Context(), "signup Demo demo@email.com pw pw")

	assert.Equal(t, cli.ScreenOrderList, f.shell.Screen())
	f.signup.AssertExpectations(t)
}

func TestShell_Navigation(t *testing.T) {
	t.Run("open, advance and complete", func(t *testing.T) {
		f := newShellFixture(t)
		o := sampleOrder(42, order.OnDelivery)
		f.startLoggedIn(t, []*order.Order{o})

		f.list.On("Select", 0).Return(o, nil).Once()
		f.detail.On("Order").Return(o)
		f.detail.On("ActionLabel").Return(controllers.LabelCompleteDelivery)

		f.shell.Execute(t.Context(), "open 1")
		assert.Equal(t, cli.ScreenOrderDetail, f.shell.Screen())
		assert.Same(t, o, f.opened)
		assert.Contains(t, f.out.String(), "[<] Order Detail [@]")
		assert.Contains(t, f.out.String(), "Complete Delivery")
		assert.Contains(t, f.out.String(), "1 Raffles Place (1.29,103.85)")

		f.detail.On("Advance", mock.Anything).Return(controllers.SignalDeliveryCompleted, nil).Once()
		f.list.On("Reload", mock.Anything).Return(0, controllers.SignalNone, nil).Once()

		f.shell.Execute(t.Context(), "advance")

		assert.Equal(t, cli.ScreenOrderList, f.shell.Screen())
		assert.Contains(t, f.out.String(), "Delivery completed")
		f.list.AssertExpectations(t)
	})

	t.Run("expired session during advance goes to login", func(t *testing.T) {
		f := newShellFixture(t)
		o := sampleOrder(42, order.ReadyForDelivery)
		f.startLoggedIn(t, []*order.Order{o})
		f.list.On("Select", 0).Return(o, nil).Once()
		f.detail.On("Order").Return(o)
		f.detail.On("ActionLabel").Return(controllers.LabelAcceptDelivery)
		f.shell.Execute(t.Context(), "open 1")

		f.detail.On("Advance", mock.Anything).
			Return(controllers.SignalRedirectToLogin, errs.NewSessionExpiredError("update order", http.StatusUnauthorized)).
			Once()

		f.shell.Execute(t.Context(), "advance")

		assert.Equal(t, cli.ScreenLogin, f.shell.Screen())
		f.shell.Execute(t.Context(), "orders")
		assert.Contains(t, f.out.String(), errs.ErrAuthRequired.Error())
	})

	t.Run("failed transition stays on detail", func(t *testing.T) {
		f := newShellFixture(t)
		o := sampleOrder(42, order.ReadyForDelivery)
		f.startLoggedIn(t, []*order.Order{o})
		f.list.On("Select", 0).Return(o, nil).Once()
		f.detail.On("Order").Return(o)
		f.detail.On("ActionLabel").Return(controllers.LabelAcceptDelivery)
		f.shell.Execute(t.Context(), "open 1")

		f.detail.On("Advance", mock.Anything).
			Return(controllers.SignalNone, errs.NewTransitionFailedError(42, "ON_DELIVERY", http.StatusConflict, nil)).
			Once()

		f.shell.Execute(t.Context(), "advance")

		assert.Equal(t, cli.ScreenOrderDetail, f.shell.Screen())
		assert.Contains(t, f.out.String(), "order status update failed")
	})

	t.Run("locate", func(t *testing.T) {
		f := newShellFixture(t)
		o := sampleOrder(42, order.ReadyForDelivery)
		f.startLoggedIn(t, []*order.Order{o})
		f.list.On("Select", 0).Return(o, nil).Once()
		f.detail.On("Order").Return(o)
		f.detail.On("ActionLabel").Return(controllers.LabelAcceptDelivery)
		f.shell.Execute(t.Context(), "open 1")
		f.detail.On("Locate", mock.Anything, order.DeliveryStop).Return(nil).Once()

		f.shell.Execute(t.Context(), "locate delivery")

		assert.Contains(t, f.out.String(), "Opened delivery in the map application")
		f.detail.AssertExpectations(t)
	})

	t.Run("region change", func(t *testing.T) {
		f := newShellFixture(t)
		f.startLoggedIn(t, []*order.Order{})
		f.list.On("SelectRegion", mock.Anything, order.East).Return(0, controllers.SignalNone, nil).Once()

		f.shell.Execute(t.Context(), "region east")

		f.list.AssertExpectations(t)
	})

	t.Run("unknown region is rejected locally", func(t *testing.T) {
		f := newShellFixture(t)
		f.startLoggedIn(t, []*order.Order{})

		f.shell.Execute(t.Context(), "region Mars")

		assert.Contains(t, f.out.String(), "error:")
		f.list.AssertNotCalled(t, "SelectRegion", mock.Anything, mock.Anything)
	})

	t.Run("open out of range", func(t *testing.T) {
		f := newShellFixture(t)
		f.startLoggedIn(t, []*order.Order{})
		f.list.On("Select", 4).Return(nil, errs.NewValueIsOutOfRangeError("order index", 4, 0, -1)).Once()

		f.shell.Execute(t.Context(), "open 5")

		assert.Equal(t, cli.ScreenOrderList, f.shell.Screen())
		assert.Contains(t, f.out.String(), "error:")
	})

	t.Run("account and back", func(t *testing.T) {
		f := newShellFixture(t)
		f.startLoggedIn(t, []*order.Order{})

		f.shell.Execute(t.Context(), "account")
		assert.Equal(t, cli.ScreenAccount, f.shell.Screen())
		assert.Contains(t, f.out.String(), "Email: demo@email.com")

		f.shell.Execute(t.Context(), "back")
		assert.Equal(t, cli.ScreenOrderList, f.shell.Screen())
	})

	t.Run("advance is not available on the list", func(t *testing.T) {
		f := newShellFixture(t)
		f.startLoggedIn(t, []*order.Order{})

		f.shell.Execute(t.Context(), "advance")

		assert.Contains(t, f.out.String(), "not available on Delivery Orders")
	})
}

func TestShell_Logout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newShellFixture(t)
		f.startLoggedIn(t, []*order.Order{})
		f.logout.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

		f.shell.Execute(t.Context(), "logout")

		assert.Equal(t, cli.ScreenLogin, f.shell.Screen())
		f.logout.AssertExpectations(t)
	})

	t.Run("failure still lands on login", func(t *testing.T) {
		f := newShellFixture(t)
		f.startLoggedIn(t, []*order.Order{})
		f.logout.On("Handle", mock.Anything, mock.Anything).Return(errs.ErrServer).Once()

		f.shell.Execute(t.Context(), "logout")

		assert.Equal(t, cli.ScreenLogin, f.shell.Screen())
		assert.Contains(t, f.out.String(), "internal server error")
	})
}

func TestShell_SwitchingUserDropsPreviousOrders(t *testing.T) {
	fetcher := &MockAssignedOrdersFetcher{}
	list := controllers.NewOrderListController(fetcher, nil)
	f := newShellFixtureWithOrders(t, list)
	inRegion := func(region order.Region) any {
		return mock.MatchedBy(func(q queries.GetAssignedOrdersQuery) bool { return q.Region() == region })
	}

	first := driverSession()
	f.sessions.On("Load", mock.Anything).Return(&first, nil).Once()
	fetcher.On("Handle", mock.Anything, inRegion(order.Central)).
		Return([]*order.Order{sampleOrder(42, order.ReadyForDelivery)}, nil).Once()
	f.shell.Start(t.Context())

	fetcher.On("Handle", mock.Anything, inRegion(order.North)).
		Return([]*order.Order{sampleOrder(43, order.OnDelivery)}, nil).Once()
	f.shell.Execute(t.Context(), "region North")
	require.Equal(t, order.North, list.SelectedRegion())
	require.Len(t, list.Orders(), 1)

	fetcher.On("Handle", mock.Anything, inRegion(order.North)).
		Return(nil, errs.NewSessionExpiredError("list orders", http.StatusUnauthorized)).Once()
	f.shell.Execute(t.Context(), "orders")
	require.Equal(t, cli.ScreenLogin, f.shell.Screen())
	assert.Empty(t, list.Orders())
	assert.Equal(t, order.DefaultRegion, list.SelectedRegion())

	second, err := session.NewSession("u2", "Second Driver", session.RoleDelivery, "tok2", "second@email.com")
	require.NoError(t, err)
	f.login.On("Handle", mock.Anything, mock.Anything).Return(second, nil).Once()
	fetcher.On("Handle", mock.Anything, inRegion(order.Central)).Return(nil, errs.ErrServer).Once()
	f.out.Reset()

	f.shell.Execute(t.Context(), "login second@email.com password")

	assert.Equal(t, cli.ScreenOrderList, f.shell.Screen())
	assert.Contains(t, f.out.String(), "Welcome, Second Driver")
	assert.NotContains(t, f.out.String(), "#43")
	assert.Contains(t, f.out.String(), "[Central]")
	assert.Empty(t, list.Orders())
	fetcher.AssertExpectations(t)
}

func TestShell_LogoutResetsOrderList(t *testing.T) {
	f := newShellFixture(t)
	f.startLoggedIn(t, []*order.Order{sampleOrder(42, order.ReadyForDelivery)})
	f.logout.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	f.shell.Execute(t.Context(), "logout")

	f.list.AssertCalled(t, "Reset")
}

func TestShell_Environment(t *testing.T) {
	t.Run("toggle", func(t *testing.T) {
		f := newShellFixture(t)
		f.envCmd.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.SetEnvironmentCommand) bool {
			return c.IsToggle()
		})).Return(environment.Development, nil).Once()

		f.shell.Execute(t.Context(), "env toggle")

		f.envCmd.AssertExpectations(t)
		assert.Contains(t, f.out.String(), "Environment:")
	})

	t.Run("explicit target", func(t *testing.T) {
		f := newShellFixture(t)
		f.envCmd.On("Handle", mock.Anything, mock.MatchedBy(func(c commands.SetEnvironmentCommand) bool {
			return !c.IsToggle() && c.Target() == environment.Development
		})).Return(environment.Development, nil).Once()

		f.shell.Execute(t.Context(), "env development")

		f.envCmd.AssertExpectations(t)
	})

	t.Run("bad target", func(t *testing.T) {
		f := newShellFixture(t)

		f.shell.Execute(t.Context(), "env staging")

		assert.Contains(t, f.out.String(), "error:")
		f.envCmd.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestShell_Run(t *testing.T) {
	f := newShellFixture(t)
	f.sessions.On("Load", mock.Anything).Return(nil, nil).Once()

	err := f.shell.Run(t.Context(), strings.NewReader("help\nbogus\nquit\nhelp\n"))

	require.NoError(t, err)
	out := f.out.String()
	assert.Contains(t, out, "locate pickup|delivery")
	assert.Contains(t, out, `unknown command "bogus"`)
	assert.Equal(t, 1, strings.Count(out, "commands:"))
}
