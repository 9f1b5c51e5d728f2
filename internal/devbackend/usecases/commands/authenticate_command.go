package commands

import (
	"errors"
	"strings"

	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand checks a pair of credentials.
type AuthenticateCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateCommand(email, password string) (AuthenticateCommand, error) {
	command := AuthenticateCommand{
		guard: guard.NewConstructorGuard(),
	}

	var emailErr, passwordErr error
	command.email = strings.TrimSpace(email)
	if command.email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	command.password = password
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return AuthenticateCommand{}, err
	}

	return command, nil
}

func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

func (c AuthenticateCommand) Email() string {
	return c.email
}

func (c AuthenticateCommand) Password() string {
	return c.password
}
