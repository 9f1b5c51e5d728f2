// Package auth holds the credential primitives of the development backend:
// bcrypt password hashing, HS256 bearer tokens with an in-memory denylist and
// the echo middleware that guards authenticated routes.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"driverapp/internal/devbackend/ports"
	"driverapp/internal/pkg/errs"
)

var _ ports.PasswordHasher = BcryptHasher{}

// BcryptHasher hashes passwords with a fixed bcrypt cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher accepts a cost in [bcrypt.MinCost, bcrypt.MaxCost]; zero selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int) (BcryptHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return BcryptHasher{}, errs.NewValueIsOutOfRangeError("cost", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return BcryptHasher{cost: cost}, nil
}

func (h BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
