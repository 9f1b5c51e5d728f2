package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"driverapp/internal/core/domain/model/session"
	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

var _ ports.SessionStore = &SessionStore{}

// sessionRecord is the JSON shape kept under ports.SessionKey.
type sessionRecord struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Token  string `json:"token"`
	Email  string `json:"email"`
}

// SessionStore keeps the active session as a JSON record in a KeyValueStore.
type SessionStore struct {
	kv ports.KeyValueStore
}

func NewSessionStore(kv ports.KeyValueStore) (*SessionStore, error) {
	if kv == nil {
		return nil, errs.NewValueIsRequiredError("kv")
	}
	return &SessionStore{kv: kv}, nil
}

func (s *SessionStore) Save(ctx context.Context, sess session.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(sessionRecord{
		UserID: sess.UserID(),
		Name:   sess.Name(),
		Role:   sess.Role(),
		Token:  sess.Token(),
		Email:  sess.Email(),
	})
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, ports.SessionKey, string(raw))
}

// Load returns (nil, nil) when no record is stored. A record that no longer
// decodes into a valid session is reported as an error.
func (s *SessionStore) Load(ctx context.Context) (*session.Session, error) {
	raw, ok, err := s.kv.Get(ctx, ports.SessionKey)
	if err != nil || !ok {
		return nil, err
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(ports.SessionKey, err)
	}
	sess, err := session.NewSession(rec.UserID, rec.Name, rec.Role, rec.Token, rec.Email)
	if err != nil {
		return nil, fmt.Errorf("stored session: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, ports.SessionKey)
}

func (s *SessionStore) Reset(ctx context.Context) error {
	return s.kv.Clear(ctx)
}
