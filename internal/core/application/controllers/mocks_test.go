package controllers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

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
	return m.Called(ctx, token).Error(0)
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
	return m.Called(ctx, token, orderID).Error(0)
}

func (m *MockDeliveryAPI) MarkDelivered(ctx context.Context, token string, orderID int64) error {
	return m.Called(ctx, token, orderID).Error(0)
}

type MockMapNavigator struct{ mock.Mock }

func (m *MockMapNavigator) Navigate(ctx context.Context, d ports.Destination) error {
	return m.Called(ctx, d).Error(0)
}

// memorySessionStore keeps the session and a flag for the rest of the local state
// so tests can tell a session-only clear from a full reset.
type memorySessionStore struct {
	current    *session.Session
	otherState bool
}

func newMemorySessionStore(token string) *memorySessionStore {
	s, err := session.NewSession("u1", "Demo", session.RoleDelivery, token, "demo@email.com")
	if err != nil {
		panic(err)
	}
	return &memorySessionStore{current: &s, otherState: true}
}

func (m *memorySessionStore) Save(_ context.Context, s session.Session) error {
	m.current = &s
	return nil
}

func (m *memorySessionStore) Load(context.Context) (*session.Session, error) {
	return m.current, nil
}

func (m *memorySessionStore) Clear(context.Context) error {
	m.current = nil
	return nil
}

func (m *memorySessionStore) Reset(context.Context) error {
	m.current = nil
	m.otherState = false
	return nil
}

func newOrder(id int64, status order.Status) *order.Order {
	pickup, _ := order.NewStop("Central", "1 Raffles Place", nil)
	delivery, _ := order.NewStop("East", "80 Marine Parade Rd", nil)
	o, err := order.RestoreOrder(id, status, pickup, delivery, order.Details{RestaurantName: "Hawker Corner"})
	if err != nil {
		panic(err)
	}
	return o
}
