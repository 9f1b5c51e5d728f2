package commands

import (
	"errors"

	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/pkg/guard"
)

var ErrSetEnvironmentCommandIsNotConstructed = errors.New(
	"SetEnvironmentCommand must be created via NewSetEnvironmentCommand or NewToggleEnvironmentCommand",
)

// SetEnvironmentCommand selects the backend for subsequent requests, either
// explicitly or by flipping the current value.
type SetEnvironmentCommand struct {
	target environment.Environment
	toggle bool
	guard  guard.ConstructorGuard
}

func NewSetEnvironmentCommand(target environment.Environment) (SetEnvironmentCommand, error) {
	if err := target.Validate(); err != nil {
		return SetEnvironmentCommand{}, err
	}
	return SetEnvironmentCommand{target: target, guard: guard.NewConstructorGuard()}, nil
}

func NewToggleEnvironmentCommand() SetEnvironmentCommand {
	return SetEnvironmentCommand{toggle: true, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through a constructor.
func (c SetEnvironmentCommand) Validate() error {
	return c.guard.Validate(ErrSetEnvironmentCommandIsNotConstructed)
}

func (c SetEnvironmentCommand) Target() environment.Environment { return c.target }
func (c SetEnvironmentCommand) IsToggle() bool                  { return c.toggle }
