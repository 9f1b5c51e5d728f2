package kernel

import (
	"fmt"
	"regexp"

	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when a zero-value Email is used.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail constructor")

// emailPattern is deliberately loose: something@something.something without whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is an address that passed the local shape check.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail validates raw and wraps it. An empty string yields ValueIsRequiredError,
// a malformed one ValueIsInvalidError. The value is kept as typed.
func NewEmail(raw string) (Email, error) {
	if raw == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(raw) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", raw))
	}
	return Email{value: raw, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrEmailIsNotConstructed for a zero value.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

func (e Email) String() string {
	return e.value
}
