package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/core/domain/model/session"
	"driverapp/internal/core/ports"
)

type MockDeliveryAPI struct{ mock.Mock }

func (m *MockDeliveryAPI) Login(ctx context.Context, email, password string) (ports.AuthResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(ports.AuthResult), args.Error(1)
}

func (m *MockDeliveryAPI) Register(ctx context.Context, r ports.Registration) (ports.AuthResult, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(ports.AuthResult), args.Error(1)
}

func (m *MockDeliveryAPI) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockDeliveryAPI) GetOrdersForDeliveryStaff(
	ctx context.Context, token, userID string, region order.Region,
) ([]*order.Order, error) {
	args := m.Called(ctx, token, userID, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockDeliveryAPI) MarkOnDelivery(ctx context.Context, token string, orderID int64) error {
	args := m.Called(ctx, token, orderID)
	return args.Error(0)
}

func (m *MockDeliveryAPI) MarkDelivered(ctx context.Context, token string, orderID int64) error {
	args := m.Called(ctx, token, orderID)
	return args.Error(0)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Save(ctx context.Context, s session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionStore) Load(ctx context.Context) (*session.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionStore) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockEnvironmentProvider struct{ mock.Mock }

func (m *MockEnvironmentProvider) Active(ctx context.Context) (environment.Environment, error) {
	args := m.Called(ctx)
	return args.Get(0).(environment.Environment), args.Error(1)
}

func (m *MockEnvironmentProvider) ActiveBaseURL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockEnvironmentSwitcher struct{ mock.Mock }

func (m *MockEnvironmentSwitcher) SetEnvironment(ctx context.Context, env environment.Environment) error {
	args := m.Called(ctx, env)
	return args.Error(0)
}

func (m *MockEnvironmentSwitcher) Toggle(ctx context.Context) (environment.Environment, error) {
	args := m.Called(ctx)
	return args.Get(0).(environment.Environment), args.Error(1)
}

type MockMapNavigator struct{ mock.Mock }

func (m *MockMapNavigator) Navigate(ctx context.Context, d ports.Destination) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func driverSession(token string) *session.Session {
	s, err := session.NewSession("u1", "Demo Driver", session.RoleDelivery, token, "demo@email.com")
	if err != nil {
		panic(err)
	}
	return &s
}

func restoreOrder(id int64, status order.Status, pickupAddress string) *order.Order {
	pickup, err := order.NewStop("Central", pickupAddress, nil)
	if err != nil {
		panic(err)
	}
	delivery, err := order.NewStop("East", "80 Marine Parade Rd", nil)
	if err != nil {
		panic(err)
	}
	o, err := order.RestoreOrder(id, status, pickup, delivery, order.Details{RestaurantName: "Hawker Corner"})
	if err != nil {
		panic(err)
	}
	return o
}
