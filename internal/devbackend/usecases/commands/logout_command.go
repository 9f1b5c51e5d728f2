package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"driverapp/internal/devbackend/ports"
	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand invalidates one token until its natural expiry.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	tokenID   string
	expiresAt time.Time

	guard guard.ConstructorGuard
}

func NewLogoutCommand(tokenID string, expiresAt time.Time) (LogoutCommand, error) {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return LogoutCommand{}, errs.NewValueIsRequiredError("tokenId")
	}
	return LogoutCommand{tokenID: tokenID, expiresAt: expiresAt, guard: guard.NewConstructorGuard()}, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

func (c LogoutCommand) TokenID() string      { return c.tokenID }
func (c LogoutCommand) ExpiresAt() time.Time { return c.expiresAt }

type LogoutCommandHandler struct {
	revoker ports.TokenRevoker
}

func NewLogoutCommandHandler(revoker ports.TokenRevoker) LogoutCommandHandler {
	return LogoutCommandHandler{revoker: revoker}
}

func (h LogoutCommandHandler) Handle(_ context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	h.revoker.Revoke(cmd.TokenID(), cmd.ExpiresAt())
	return nil
}
