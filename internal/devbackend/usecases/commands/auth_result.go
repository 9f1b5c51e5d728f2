package commands

import (
	"driverapp/internal/devbackend/domain/account"
	"driverapp/internal/devbackend/ports"
)

// AuthResult is what register and login hand back to the caller.
type AuthResult struct {
	UserID string
	Name   string
	Role   string
	Token  string
}

func issueFor(tokens ports.TokenIssuer, a *account.Account) (AuthResult, error) {
	token, err := tokens.Issue(a.ID(), a.Role())
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		UserID: a.ID().String(),
		Name:   a.Name(),
		Role:   a.Role(),
		Token:  token,
	}, nil
}
