package ports

import (
	"time"

	"github.com/google/uuid"
)

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer signs bearer tokens for authenticated accounts.
type TokenIssuer interface {
	Issue(userID uuid.UUID, role string) (string, error)
}

// TokenRevoker invalidates a token before it expires.
type TokenRevoker interface {
	Revoke(tokenID string, expiresAt time.Time)
}
