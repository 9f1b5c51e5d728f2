package commands

import (
	"context"

	"driverapp/internal/core/domain/model/environment"
)

// EnvironmentSwitcher persists the environment flag.
type EnvironmentSwitcher interface {
	SetEnvironment(ctx context.Context, env environment.Environment) error
	Toggle(ctx context.Context) (environment.Environment, error)
}

// SetEnvironmentCommandHandler switches backends. The session is left alone.
type SetEnvironmentCommandHandler struct {
	switcher EnvironmentSwitcher
}

func NewSetEnvironmentCommandHandler(switcher EnvironmentSwitcher) SetEnvironmentCommandHandler {
	return SetEnvironmentCommandHandler{switcher: switcher}
}

// Handle returns the environment now active.
func (h SetEnvironmentCommandHandler) Handle(
	ctx context.Context,
	command SetEnvironmentCommand,
) (environment.Environment, error) {
	if err := command.Validate(); err != nil {
		return environment.Unknown, err
	}

	if command.IsToggle() {
		return h.switcher.Toggle(ctx)
	}
	if err := h.switcher.SetEnvironment(ctx, command.Target()); err != nil {
		return environment.Unknown, err
	}
	return command.Target(), nil
}
