package commands

import (
	"context"
	"errors"
	"net/http"

	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

// LogoutCommandHandler invalidates the token on the backend and wipes local state.
// Local state is wiped whatever the backend answers; the backend error, if any,
// is returned afterwards.
type LogoutCommandHandler struct {
	api      ports.DeliveryAPI
	sessions ports.SessionStore
}

func NewLogoutCommandHandler(api ports.DeliveryAPI, sessions ports.SessionStore) LogoutCommandHandler {
	return LogoutCommandHandler{api: api, sessions: sessions}
}

// Handle sends no request when nobody is logged in.
func (h LogoutCommandHandler) Handle(ctx context.Context, command LogoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	var callErr error
	current, loadErr := h.sessions.Load(ctx)
	if loadErr == nil && current != nil {
		callErr = mapLogoutError(h.api.Logout(ctx, current.Token()))
	}

	return errors.Join(loadErr, callErr, h.sessions.Reset(ctx))
}

func mapLogoutError(err error) error {
	if err == nil {
		return nil
	}
	statusErr, ok := errs.AsHTTPStatus(err)
	if !ok {
		if errors.Is(err, errs.ErrTransport) {
			return err
		}
		return errs.NewTransportError("logout", err)
	}

	switch {
	case statusErr.IsUnauthorized():
		return errs.NewSessionExpiredError("logout", statusErr.StatusCode)
	case statusErr.StatusCode == http.StatusInternalServerError:
		return errs.ErrServer
	}
	return errs.NewUnexpectedStatusError("logout", statusErr.StatusCode)
}
