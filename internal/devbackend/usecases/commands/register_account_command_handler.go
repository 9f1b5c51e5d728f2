package commands

import (
	"context"

	"driverapp/internal/devbackend/domain/account"
	"driverapp/internal/devbackend/ports"
)

// RegisterAccountCommandHandler stores a new account with a hashed password
// and issues its first token. A taken email yields account.ErrEmailTaken.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewRegisterAccountCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

func (h RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return AuthResult{}, err
	}

	created, err := account.NewAccount(cmd.Name(), cmd.Email(), cmd.Role(), hash)
	if err != nil {
		return AuthResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AuthResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, created); err != nil {
		return AuthResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return AuthResult{}, err
	}

	return issueFor(h.tokens, created)
}
