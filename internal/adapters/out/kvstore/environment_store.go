package kvstore

import (
	"context"

	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

var _ ports.EnvironmentStore = &EnvironmentStore{}

// EnvironmentStore keeps the environment flag as a plain string under
// ports.EnvironmentKey.
type EnvironmentStore struct {
	kv ports.KeyValueStore
}

func NewEnvironmentStore(kv ports.KeyValueStore) (*EnvironmentStore, error) {
	if kv == nil {
		return nil, errs.NewValueIsRequiredError("kv")
	}
	return &EnvironmentStore{kv: kv}, nil
}

// Load treats an unrecognised stored value like a missing one so the caller
// falls back to its default.
func (s *EnvironmentStore) Load(ctx context.Context) (environment.Environment, bool, error) {
	raw, ok, err := s.kv.Get(ctx, ports.EnvironmentKey)
	if err != nil || !ok {
		return environment.Unknown, false, err
	}
	env, err := environment.Parse(raw)
	if err != nil {
		return environment.Unknown, false, nil
	}
	return env, true, nil
}

func (s *EnvironmentStore) Save(ctx context.Context, env environment.Environment) error {
	if err := env.Validate(); err != nil {
		return err
	}
	return s.kv.Set(ctx, ports.EnvironmentKey, env.String())
}
