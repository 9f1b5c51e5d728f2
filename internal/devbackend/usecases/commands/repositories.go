// Package commands contains the write operations of the development backend.
// Every handler follows the same shape: validate the command, open a unit of
// work, change the aggregates and commit.
package commands

import (
	"context"

	"driverapp/internal/devbackend/ports"
)

type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// AccountUoW is used by commands that only touch accounts.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// DeliveryUoW is used by commands that only touch orders.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
