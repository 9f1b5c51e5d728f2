package auth_test

import (
	"testing"
	"time"

	"driverapp/internal/devbackend/auth"
	"driverapp/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newService(t *testing.T, clock *fakeClock) *auth.TokenService {
	t.Helper()
	s, err := auth.NewTokenService("secret", time.Hour, auth.WithClock(clock.Now))
	require.NoError(t, err)
	return s
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	s := newService(t, clock)
	user := uuid.New()

	raw, err := s.Issue(user, "delivery")
	require.NoError(t, err)

	claims, err := s.Verify(raw)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user, id)
	assert.Equal(t, "delivery", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_Verify(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		clock := &fakeClock{now: time.Now()}
		s := newService(t, clock)
		raw, err := s.Issue(uuid.New(), "delivery")
		require.NoError(t, err)

		clock.now = clock.now.Add(2 * time.Hour)
		_, err = s.Verify(raw)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("foreign secret", func(t *testing.T) {
		other, err := auth.NewTokenService("other", time.Hour)
		require.NoError(t, err)
		raw, err := other.Issue(uuid.New(), "delivery")
		require.NoError(t, err)

		_, err = newService(t, &fakeClock{now: time.Now()}).Verify(raw)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "x",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = newService(t, &fakeClock{now: time.Now()}).Verify(raw)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := newService(t, &fakeClock{now: time.Now()}).Verify("not.a.token")
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestTokenService_Revoke(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	s := newService(t, clock)
	raw, err := s.Issue(uuid.New(), "delivery")
	require.NoError(t, err)
	claims, err := s.Verify(raw)
	require.NoError(t, err)

	s.Revoke(claims.ID, claims.ExpiresAt.Time)

	_, err = s.Verify(raw)
	require.ErrorIs(t, err, auth.ErrTokenRevoked)

	other, err := s.Issue(uuid.New(), "delivery")
	require.NoError(t, err)
	_, err = s.Verify(other)
	require.NoError(t, err, "revocation is per token")
}

func TestNewTokenService_Validation(t *testing.T) {
	_, err := auth.NewTokenService("", 0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
