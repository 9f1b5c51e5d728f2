package commands_test

import (
	"testing"
	"time"

	"driverapp/internal/devbackend/usecases/commands"
	"driverapp/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestLogoutCommandHandler_Handle(t *testing.T) {
	t.Run("revokes the token id", func(t *testing.T) {
		exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		revoker := new(MockTokenRevoker)
		revoker.On("Revoke", "jti-1", exp).Once()

		cmd, err := commands.NewLogoutCommand("jti-1", exp)
		require.NoError(t, err)
		require.NoError(t, commands.NewLogoutCommandHandler(revoker).Handle(t.Context(), cmd))

		revoker.AssertExpectations(t)
	})

	t.Run("blank token id", func(t *testing.T) {
		_, err := commands.NewLogoutCommand("  ", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
