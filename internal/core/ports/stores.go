// Package ports defines the contracts between the driver client core and the outside
// world: local persistence, the delivery backend and the map application.
package ports

import (
	"context"

	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/core/domain/model/session"
)

// Keys under which the client keeps its state in the key/value store.
const (
	SessionKey     = "userData"
	EnvironmentKey = "projEnv"
)

// KeyValueStore is the device-local string store. Get reports a missing key with
// ok == false and a nil error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key, the environment flag included.
	Clear(ctx context.Context) error
}

// SessionStore persists the single active session.
type SessionStore interface {
	Save(ctx context.Context, s session.Session) error

	// Load returns (nil, nil) when nobody is logged in.
	Load(ctx context.Context) (*session.Session, error)

	// Clear removes the session record only.
	Clear(ctx context.Context) error

	// Reset wipes all local state. Used on logout and whenever the backend
	// rejects the token; the environment falls back to its default.
	Reset(ctx context.Context) error
}

// EnvironmentStore persists the active environment flag.
type EnvironmentStore interface {
	// Load reports ok == false when no flag was ever saved.
	Load(ctx context.Context) (env environment.Environment, ok bool, err error)
	Save(ctx context.Context, env environment.Environment) error
}

// EnvironmentProvider resolves which backend requests go to. Implementations read
// the persisted flag on every call so a switch applies to the next request.
type EnvironmentProvider interface {
	Active(ctx context.Context) (environment.Environment, error)
	ActiveBaseURL(ctx context.Context) (string, error)
}
