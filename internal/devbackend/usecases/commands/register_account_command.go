package commands

import (
	"errors"
	"strings"

	"driverapp/internal/core/domain/model/kernel"
	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

// DefaultRole is given to accounts registered without a role.
const DefaultRole = "delivery"

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// RegisterAccountCommand creates an account and signs the caller in.
//
// Example:
//
//	cmd, err := NewRegisterAccountCommand("Dana", "dana@email.com", "secret", "")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    kernel.Email
	password string
	role     string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand validates every field at once. An empty role falls
// back to DefaultRole.
func NewRegisterAccountCommand(name, email, password, role string) (RegisterAccountCommand, error) {
	command := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return RegisterAccountCommand{}, err
	}
	command.role = strings.TrimSpace(role)
	if command.role == "" {
		command.role = DefaultRole
	}

	return command, nil
}

func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

func (c RegisterAccountCommand) Name() string {
	return c.name
}

func (c RegisterAccountCommand) Email() kernel.Email {
	return c.email
}

func (c RegisterAccountCommand) Password() string {
	return c.password
}

func (c RegisterAccountCommand) Role() string {
	return c.role
}

func (c *RegisterAccountCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setEmail(raw string) error {
	email, err := kernel.NewEmail(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
