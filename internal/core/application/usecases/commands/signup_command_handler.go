package commands

import (
	"context"

	"driverapp/internal/core/domain/model/session"
	"driverapp/internal/core/ports"
)

// SignupCommandHandler registers an account and logs it in. Response handling,
// role gate included, is the same as LoginCommandHandler.
type SignupCommandHandler struct {
	api      ports.DeliveryAPI
	sessions ports.SessionStore
	envs     ports.EnvironmentProvider
}

func NewSignupCommandHandler(
	api ports.DeliveryAPI,
	sessions ports.SessionStore,
	envs ports.EnvironmentProvider,
) SignupCommandHandler {
	return SignupCommandHandler{api: api, sessions: sessions, envs: envs}
}

func (h SignupCommandHandler) Handle(ctx context.Context, command SignupCommand) (session.Session, error) {
	if err := command.Validate(); err != nil {
		return session.Session{}, err
	}

	result, err := h.api.Register(ctx, ports.Registration{
		Name:     command.Name(),
		Email:    command.Email(),
		Password: command.Password(),
		Role:     command.Role(),
	})
	if err != nil {
		return session.Session{}, mapAuthError(ctx, h.envs, "register", err)
	}

	return establishSession(ctx, h.sessions, "register", result, command.Email())
}
