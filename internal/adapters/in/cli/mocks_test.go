package cli_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"driverapp/internal/core/application/controllers"
	"driverapp/internal/core/application/usecases/commands"
	"driverapp/internal/core/application/usecases/queries"
	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/core/domain/model/kernel"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/core/domain/model/session"
)

type MockLoginHandler struct{ mock.Mock }

func (m *MockLoginHandler) Handle(ctx context.Context, command commands.LoginCommand) (session.Session, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(session.Session), args.Error(1)
}

type MockSignupHandler struct{ mock.Mock }

func (m *MockSignupHandler) Handle(ctx context.Context, command commands.SignupCommand) (session.Session, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(session.Session), args.Error(1)
}

type MockLogoutHandler struct{ mock.Mock }

func (m *MockLogoutHandler) Handle(ctx context.Context, command commands.LogoutCommand) error {
	return m.Called(ctx, command).Error(0)
}

type MockEnvironmentHandler struct{ mock.Mock }

func (m *MockEnvironmentHandler) Handle(
	ctx context.Context, command commands.SetEnvironmentCommand,
) (environment.Environment, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(environment.Environment), args.Error(1)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Save(ctx context.Context, s session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionStore) Load(ctx context.Context) (*session.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionStore) Clear(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockSessionStore) Reset(ctx context.Context) error { return m.Called(ctx).Error(0) }

type MockEnvironmentProvider struct{ mock.Mock }

func (m *MockEnvironmentProvider) Active(ctx context.Context) (environment.Environment, error) {
	args := m.Called(ctx)
	return args.Get(0).(environment.Environment), args.Error(1)
}

func (m *MockEnvironmentProvider) ActiveBaseURL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockOrderList struct{ mock.Mock }

func (m *MockOrderList) SelectRegion(ctx context.Context, region order.Region) (int, controllers.Signal, error) {
	args := m.Called(ctx, region)
	return args.Int(0), args.Get(1).(controllers.Signal), args.Error(2)
}

func (m *MockOrderList) Reload(ctx context.Context) (int, controllers.Signal, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Get(1).(controllers.Signal), args.Error(2)
}

func (m *MockOrderList) Orders() []*order.Order {
	return m.Called().Get(0).([]*order.Order)
}

func (m *MockOrderList) SelectedRegion() order.Region {
	return m.Called().Get(0).(order.Region)
}

func (m *MockOrderList) Reset() { m.Called() }

func (m *MockOrderList) Select(index int) (*order.Order, error) {
	args := m.Called(index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderDetail struct{ mock.Mock }

func (m *MockOrderDetail) Order() *order.Order {
	return m.Called().Get(0).(*order.Order)
}

func (m *MockOrderDetail) ActionLabel() string { return m.Called().String(0) }

func (m *MockOrderDetail) Advance(ctx context.Context) (controllers.Signal, error) {
	args := m.Called(ctx)
	return args.Get(0).(controllers.Signal), args.Error(1)
}

func (m *MockOrderDetail) Locate(ctx context.Context, stop order.StopKind) error {
	return m.Called(ctx, stop).Error(0)
}

type MockAssignedOrdersFetcher struct{ mock.Mock }

func (m *MockAssignedOrdersFetcher) Handle(ctx context.Context, query queries.GetAssignedOrdersQuery) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func driverSession() session.Session {
	s, err := session.NewSession("u1", "Demo Driver", session.RoleDelivery, "tok", "demo@email.com")
	if err != nil {
		panic(err)
	}
	return s
}

func sampleOrder(id int64, status order.Status) *order.Order {
	coords, err := kernel.NewCoordinates(1.29, 103.85)
	if err != nil {
		panic(err)
	}
	pickup, err := order.NewStop("Central", "1 Raffles Place", &coords)
	if err != nil {
		panic(err)
	}
	delivery, err := order.NewStop("East", "80 Changi Rd", nil)
	if err != nil {
		panic(err)
	}
	o, err := order.RestoreOrder(id, status, pickup, delivery, order.Details{RestaurantName: "Noodle Bar"})
	if err != nil {
		panic(err)
	}
	return o
}
