package commands

import (
	"context"
	"errors"

	"driverapp/internal/devbackend/ports"
	"driverapp/internal/pkg/errs"
)

// AuthenticateCommandHandler verifies credentials and issues a token. An unknown
// email and a wrong password both yield errs.ErrInvalidCredentials.
type AuthenticateCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewAuthenticateCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

func (h AuthenticateCommandHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	uow := h.uowFactory.Create()
	found, err := uow.AccountRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthResult{}, errs.ErrInvalidCredentials
	}
	if err != nil {
		return AuthResult{}, err
	}

	if err = h.hasher.Compare(found.PasswordHash(), cmd.Password()); err != nil {
		return AuthResult{}, errs.ErrInvalidCredentials
	}

	return issueFor(h.tokens, found)
}
