package ports

import "context"

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary over the backend repositories.
// Repositories obtained after Begin run inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction and then publishes the events recorded by
	// the deliveries touched inside it.
	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	AccountRepository() AccountRepository
	DeliveryRepository() DeliveryRepository
}
