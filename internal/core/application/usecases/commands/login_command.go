package commands

import (
	"errors"

	"driverapp/internal/core/domain/model/kernel"
	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand carries validated credentials.
type LoginCommand struct {
	email    kernel.Email
	password string
	guard    guard.ConstructorGuard
}

// NewLoginCommand checks that both fields are present and the email is well formed.
// Both missing fields are reported together.
func NewLoginCommand(email, password string) (LoginCommand, error) {
	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	validEmail, emailErr := kernel.NewEmail(email)
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		email:    validEmail,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Email() string {
	return c.email.String()
}

func (c LoginCommand) Password() string {
	return c.password
}
