package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const claimsKey = "auth.claims"

// TokenVerifier is satisfied by *TokenService.
type TokenVerifier interface {
	Verify(raw string) (Claims, error)
}

// BearerAuth rejects requests without a valid bearer token with 401 and
// stores the verified claims for ClaimsFrom.
func BearerAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := verifier.Verify(strings.TrimSpace(raw))
			if errors.Is(err, ErrTokenRevoked) {
				return echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims BearerAuth stored on c.
func ClaimsFrom(c echo.Context) (Claims, bool) {
	claims, ok := c.Get(claimsKey).(Claims)
	return claims, ok
}
