// Package account models the users known to the development backend.
package account

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"driverapp/internal/core/domain/model/kernel"
	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

var (
	// ErrAccountIsNotConstructed is returned when a zero-value Account is used.
	ErrAccountIsNotConstructed = errs.NewValueIsRequiredError("account must be created via NewAccount or RestoreAccount")
	// ErrEmailTaken is returned when registering an address that already has an account.
	ErrEmailTaken = errors.New("email already registered")
)

// Account is a registered user. Emails are stored lower-cased so lookups are
// case-insensitive.
type Account struct {
	id           uuid.UUID
	name         string
	email        string
	role         string
	passwordHash string
	guard        guard.ConstructorGuard
}

// NewAccount creates an account with a fresh id.
func NewAccount(name string, email kernel.Email, role, passwordHash string) (*Account, error) {
	return RestoreAccount(uuid.New(), name, email.String(), role, passwordHash)
}

// RestoreAccount rebuilds an account from storage.
func RestoreAccount(id uuid.UUID, name, email, role, passwordHash string) (*Account, error) {
	var idErr, nameErr, emailErr, roleErr, hashErr error
	if id == uuid.Nil {
		idErr = errs.NewValueIsRequiredError("id")
	}
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	validEmail, emailErr := kernel.NewEmail(strings.TrimSpace(email))
	if strings.TrimSpace(role) == "" {
		roleErr = errs.NewValueIsRequiredError("role")
	}
	if passwordHash == "" {
		hashErr = errs.NewValueIsRequiredError("passwordHash")
	}
	if err := errors.Join(idErr, nameErr, emailErr, roleErr, hashErr); err != nil {
		return nil, err
	}

	return &Account{
		id:           id,
		name:         strings.TrimSpace(name),
		email:        NormalizeEmail(validEmail.String()),
		role:         strings.TrimSpace(role),
		passwordHash: passwordHash,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *Account) Validate() error {
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Name() string         { return a.name }
func (a *Account) Email() string        { return a.email }
func (a *Account) Role() string         { return a.role }
func (a *Account) PasswordHash() string { return a.passwordHash }
