package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"driverapp/internal/core/application/services"
	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/pkg/errs"
)

type MockEnvironmentStore struct{ mock.Mock }

func (m *MockEnvironmentStore) Load(ctx context.Context) (environment.Environment, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(environment.Environment), args.Bool(1), args.Error(2)
}

func (m *MockEnvironmentStore) Save(ctx context.Context, env environment.Environment) error {
	args := m.Called(ctx, env)
	return args.Error(0)
}

var testURLs = services.BaseURLs{
	Development: "http://localhost:8765/",
	Production:  "http://prod.example.com",
}

func newResolver(t *testing.T, store *MockEnvironmentStore) *services.EnvironmentResolver {
	t.Helper()
	r, err := services.NewEnvironmentResolver(store, testURLs, environment.Production, nil)
	require.NoError(t, err)
	return r
}

func TestNewEnvironmentResolver_Validation(t *testing.T) {
	_, err := services.NewEnvironmentResolver(nil, services.BaseURLs{}, environment.Unknown, nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "development base url")
	assert.Contains(t, err.Error(), "production base url")
}

func TestEnvironmentResolver_ActiveBaseURL(t *testing.T) {
	t.Run("nothing persisted falls back to production", func(t *testing.T) {
		ctx := t.Context()
		store := new(MockEnvironmentStore)
		store.On("Load", ctx).Return(environment.Unknown, false, nil).Once()

		url, err := newResolver(t, store).ActiveBaseURL(ctx)

		require.NoError(t, err)
		assert.Equal(t, "http://prod.example.com", url)
		store.AssertExpectations(t)
	})

	t.Run("persisted development", func(t *testing.T) {
		ctx := t.Context()
		store := new(MockEnvironmentStore)
		store.On("Load", ctx).Return(environment.Development, true, nil).Once()

		url, err := newResolver(t, store).ActiveBaseURL(ctx)

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8765", url)
	})

	t.Run("store failure surfaces as is", func(t *testing.T) {
		ctx := t.Context()
		storeErr := errors.New("disk gone")
		store := new(MockEnvironmentStore)
		store.On("Load", ctx).Return(environment.Unknown, false, storeErr).Once()

		_, err := newResolver(t, store).ActiveBaseURL(ctx)

		require.ErrorIs(t, err, storeErr)
	})
}

func TestEnvironmentResolver_SetEnvironment(t *testing.T) {
	ctx := t.Context()
	store := new(MockEnvironmentStore)
	store.On("Save", ctx, environment.Development).Return(nil).Once()

	r := newResolver(t, store)
	require.NoError(t, r.SetEnvironment(ctx, environment.Development))
	require.ErrorIs(t, r.SetEnvironment(ctx, environment.Unknown), errs.ErrValueIsInvalid)

	store.AssertExpectations(t)
}

func TestEnvironmentResolver_Toggle(t *testing.T) {
	ctx := t.Context()
	store := new(MockEnvironmentStore)
	mock.InOrder(
		store.On("Load", ctx).Return(environment.Unknown, false, nil).Once(),
		store.On("Save", ctx, environment.Development).Return(nil).Once(),
	)

	next, err := newResolver(t, store).Toggle(ctx)

	require.NoError(t, err)
	assert.Equal(t, environment.Development, next)
	store.AssertExpectations(t)
}
