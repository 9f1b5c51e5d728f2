package commands

import (
	"context"
	"errors"
	"net/http"

	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/core/domain/model/session"
	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

// mapAuthError turns a login or register failure into the user-facing taxonomy.
// A 404 is explained differently depending on the active environment.
func mapAuthError(ctx context.Context, envs ports.EnvironmentProvider, operation string, err error) error {
	statusErr, ok := errs.AsHTTPStatus(err)
	if !ok {
		if errors.Is(err, errs.ErrTransport) {
			return err
		}
		return errs.NewTransportError(operation, err)
	}

	switch statusErr.StatusCode {
	case http.StatusUnauthorized:
		return errs.ErrInvalidCredentials
	case http.StatusNotFound:
		active, envErr := envs.Active(ctx)
		if envErr != nil {
			active = environment.Default
		}
		return errs.NewEndpointNotFoundError(active.String(), statusErr.URL)
	case http.StatusInternalServerError:
		return errs.ErrServer
	}
	return errs.NewUnexpectedStatusError(operation, statusErr.StatusCode)
}

// establishSession applies the role gate and persists the session. An account
// without the delivery role wipes local state instead.
func establishSession(
	ctx context.Context,
	sessions ports.SessionStore,
	operation string,
	result ports.AuthResult,
	email string,
) (session.Session, error) {
	if result.Role != session.RoleDelivery {
		roleErr := errs.NewRoleNotAllowedError(email, result.Role)
		if resetErr := sessions.Reset(ctx); resetErr != nil {
			return session.Session{}, errors.Join(roleErr, resetErr)
		}
		return session.Session{}, roleErr
	}

	s, err := session.NewSession(result.UserID, result.Name, result.Role, result.Token, email)
	if err != nil {
		return session.Session{}, errs.NewTransportError(operation, err)
	}

	if err = sessions.Save(ctx, s); err != nil {
		return session.Session{}, err
	}
	return s, nil
}

// expireSession wipes local state after the backend rejected the token.
func expireSession(ctx context.Context, sessions ports.SessionStore, operation string, statusCode int) error {
	expired := errs.NewSessionExpiredError(operation, statusCode)
	if err := sessions.Reset(ctx); err != nil {
		return errors.Join(expired, err)
	}
	return expired
}
