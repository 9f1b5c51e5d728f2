package commands_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"driverapp/internal/core/application/usecases/commands"
	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/core/domain/model/session"
	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

func TestLoginCommandHandler_Handle_PersistsSession(t *testing.T) {
	ctx := t.Context()
	api := new(MockDeliveryAPI)
	sessions := new(MockSessionStore)
	envs := new(MockEnvironmentProvider)

	api.On("Login", ctx, "demo@email.com", "password").Return(ports.AuthResult{
		UserID: "u1", Name: "Demo", Role: "delivery", Token: "t1",
	}, nil).Once()

	var saved session.Session
	sessions.On("Save", ctx, mock.AnythingOfType("session.Session")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(session.Session) }).
		Return(nil).Once()

	cmd, err := commands.NewLoginCommand("demo@email.com", "password")
	require.NoError(t, err)

	got, err := commands.NewLoginCommandHandler(api, sessions, envs).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID())
	assert.Equal(t, "Demo", got.Name())
	assert.Equal(t, "delivery", got.Role())
	assert.Equal(t, "t1", got.Token())
	assert.Equal(t, "demo@email.com", got.Email())
	assert.Equal(t, got, saved)
	api.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_RoleGate(t *testing.T) {
	ctx := t.Context()
	api := new(MockDeliveryAPI)
	sessions := new(MockSessionStore)

	api.On("Login", ctx, "cook@email.com", "pw").Return(ports.AuthResult{
		UserID: "u9", Name: "Cook", Role: "restaurant", Token: "t9",
	}, nil).Once()
	sessions.On("Reset", ctx).Return(nil).Once()

	cmd, _ := commands.NewLoginCommand("cook@email.com", "pw")
	_, err := commands.NewLoginCommandHandler(api, sessions, new(MockEnvironmentProvider)).Handle(ctx, cmd)

	var roleErr *errs.RoleNotAllowedError
	require.ErrorAs(t, err, &roleErr)
	assert.Equal(t, "cook@email.com", roleErr.Email)
	assert.Equal(t, "restaurant", roleErr.Role)
	sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	sessions.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		env    environment.Environment
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 invalid credentials",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, errs.ErrInvalidCredentials)
			},
		},
		{
			name:   "404 in development hints at demo account",
			status: http.StatusNotFound,
			env:    environment.Development,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, errs.ErrEndpointNotFound)
				assert.Contains(t, err.Error(), "demo@email.com")
				assert.Contains(t, err.Error(), "http://localhost:8765/user/login")
			},
		},
		{
			name:   "404 in production asks to contact support",
			status: http.StatusNotFound,
			env:    environment.Production,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, errs.ErrEndpointNotFound)
				assert.Contains(t, err.Error(), "contact support")
			},
		},
		{
			name:   "500 server error",
			status: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, errs.ErrServer)
			},
		},
		{
			name:   "other status",
			status: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				var unexpected *errs.UnexpectedStatusError
				require.ErrorAs(t, err, &unexpected)
				assert.Equal(t, http.StatusBadGateway, unexpected.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			api := new(MockDeliveryAPI)
			sessions := new(MockSessionStore)
			envs := new(MockEnvironmentProvider)

			statusErr := errs.NewHTTPStatusError("login", tt.status, "")
			statusErr.URL = "http://localhost:8765/user/login"
			api.On("Login", ctx, "demo@email.com", "password").Return(ports.AuthResult{}, statusErr).Once()
			envs.On("Active", ctx).Return(tt.env, nil).Maybe()

			cmd, _ := commands.NewLoginCommand("demo@email.com", "password")
			_, err := commands.NewLoginCommandHandler(api, sessions, envs).Handle(ctx, cmd)

			tt.check(t, err)
			sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestLoginCommandHandler_Handle_Transport(t *testing.T) {
	ctx := t.Context()
	api := new(MockDeliveryAPI)
	cause := errors.New("connection refused")
	api.On("Login", ctx, "demo@email.com", "password").
		Return(ports.AuthResult{}, errs.NewTransportError("login", cause)).Once()

	cmd, _ := commands.NewLoginCommand("demo@email.com", "password")
	_, err := commands.NewLoginCommandHandler(api, new(MockSessionStore), new(MockEnvironmentProvider)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTransport)
	require.ErrorIs(t, err, cause)
}

func TestLoginCommandHandler_Handle_MissingTokenIsTransportError(t *testing.T) {
	ctx := t.Context()
	api := new(MockDeliveryAPI)
	api.On("Login", ctx, "demo@email.com", "password").
		Return(ports.AuthResult{UserID: "u1", Role: "delivery"}, nil).Once()

	cmd, _ := commands.NewLoginCommand("demo@email.com", "password")
	_, err := commands.NewLoginCommandHandler(api, new(MockSessionStore), new(MockEnvironmentProvider)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTransport)
}

func TestLoginCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	api := new(MockDeliveryAPI)
	_, err := commands.NewLoginCommandHandler(api, new(MockSessionStore), new(MockEnvironmentProvider)).
		Handle(t.Context(), commands.LoginCommand{})

	require.ErrorIs(t, err, commands.ErrLoginCommandIsNotConstructed)
	api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}
