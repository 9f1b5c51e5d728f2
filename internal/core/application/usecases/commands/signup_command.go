package commands

import (
	"errors"
	"strings"

	"driverapp/internal/core/domain/model/kernel"
	"driverapp/internal/core/domain/model/session"
	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

var ErrSignupCommandIsNotConstructed = errors.New(
	"SignupCommand must be created via NewSignupCommand constructor",
)

// SignupCommand registers a new account. Role defaults to delivery.
type SignupCommand struct {
	name     string
	email    kernel.Email
	password string
	role     string
	guard    guard.ConstructorGuard
}

// NewSignupCommand validates the form: every field present, a well formed email and
// a matching confirmation.
func NewSignupCommand(name, email, password, confirmPassword, role string) (SignupCommand, error) {
	var nameErr, passwordErr, confirmErr, mismatchErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if confirmPassword == "" {
		confirmErr = errs.NewValueIsRequiredError("confirmPassword")
	}
	if password != "" && confirmPassword != "" && password != confirmPassword {
		mismatchErr = errs.ErrPasswordMismatch
	}
	validEmail, emailErr := kernel.NewEmail(email)
	if err := errors.Join(nameErr, emailErr, passwordErr, confirmErr, mismatchErr); err != nil {
		return SignupCommand{}, err
	}

	if strings.TrimSpace(role) == "" {
		role = session.RoleDelivery
	}

	return SignupCommand{
		name:     strings.TrimSpace(name),
		email:    validEmail,
		password: password,
		role:     strings.TrimSpace(role),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SignupCommand) Validate() error {
	return c.guard.Validate(ErrSignupCommandIsNotConstructed)
}

func (c SignupCommand) Name() string     { return c.name }
func (c SignupCommand) Email() string    { return c.email.String() }
func (c SignupCommand) Password() string { return c.password }
func (c SignupCommand) Role() string     { return c.role }
