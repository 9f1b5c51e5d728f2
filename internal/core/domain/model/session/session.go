// Package session holds the authenticated identity of the driver using the app.
package session

import (
	"errors"

	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

// RoleDelivery is the only role allowed to use the driver app.
const RoleDelivery = "delivery"

// ErrSessionIsNotConstructed is returned when a zero-value Session is used.
var ErrSessionIsNotConstructed = errs.NewValueIsRequiredError("session must be created via NewSession constructor")

// Session is the identity returned by login or signup and kept until logout or
// until the backend stops accepting its token.
//
// Invariants:
//   - userID is not empty
//   - token is not empty
type Session struct {
	userID string
	name   string
	role   string
	token  string
	email  string
	guard  guard.ConstructorGuard
}

// NewSession creates a Session. Missing userID and token are reported together.
//
// Example:
//
//	s, err := session.NewSession("u1", "Demo", session.RoleDelivery, "t", "demo@email.com")
func NewSession(userID, name, role, token, email string) (Session, error) {
	var userIDErr, tokenErr error
	if userID == "" {
		userIDErr = errs.NewValueIsRequiredError("userId")
	}
	if token == "" {
		tokenErr = errs.NewValueIsRequiredError("token")
	}
	if err := errors.Join(userIDErr, tokenErr); err != nil {
		return Session{}, err
	}

	return Session{
		userID: userID,
		name:   name,
		role:   role,
		token:  token,
		email:  email,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrSessionIsNotConstructed for a zero value.
func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s Session) UserID() string { return s.userID }
func (s Session) Name() string   { return s.name }
func (s Session) Role() string   { return s.role }
func (s Session) Token() string  { return s.token }
func (s Session) Email() string  { return s.email }

// IsDriver reports whether the session carries the delivery role.
func (s Session) IsDriver() bool {
	return s.role == RoleDelivery
}
