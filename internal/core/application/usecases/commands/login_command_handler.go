package commands

import (
	"context"

	"driverapp/internal/core/domain/model/session"
	"driverapp/internal/core/ports"
)

// LoginCommandHandler authenticates the driver against the active backend.
//
// Example:
//
//	cmd, err := commands.NewLoginCommand("demo@email.com", "password")
//	if err != nil {
//	    return err // validation, no request sent
//	}
//	s, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidCredentials):
//	case errors.Is(err, errs.ErrRoleNotAllowed):
//	}
type LoginCommandHandler struct {
	api      ports.DeliveryAPI
	sessions ports.SessionStore
	envs     ports.EnvironmentProvider
}

func NewLoginCommandHandler(
	api ports.DeliveryAPI,
	sessions ports.SessionStore,
	envs ports.EnvironmentProvider,
) LoginCommandHandler {
	return LoginCommandHandler{api: api, sessions: sessions, envs: envs}
}

// Handle posts the credentials and, for a delivery account, persists the returned
// session with the submitted email. Any other role clears local state and yields
// RoleNotAllowedError.
func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) (session.Session, error) {
	if err := command.Validate(); err != nil {
		return session.Session{}, err
	}

	result, err := h.api.Login(ctx, command.Email(), command.Password())
	if err != nil {
		return session.Session{}, mapAuthError(ctx, h.envs, "login", err)
	}

	return establishSession(ctx, h.sessions, "login", result, command.Email())
}
