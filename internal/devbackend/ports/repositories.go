// Package ports defines the persistence and messaging contracts of the
// development backend.
package ports

import (
	"context"

	"driverapp/internal/devbackend/domain/account"
	"driverapp/internal/devbackend/domain/delivery"
)

// AccountRepository stores registered users.
type AccountRepository interface {
	// Add stores a new account. A duplicate email yields account.ErrEmailTaken.
	Add(ctx context.Context, aggregate *account.Account) error

	// GetByEmail looks an account up by its normalized email. A missing account
	// yields errs.ObjectNotFoundError.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

// DeliveryRepository stores orders together with their assigned driver.
type DeliveryRepository interface {
	// Add stores a draft and returns the delivery with its generated id.
	Add(ctx context.Context, draft delivery.Draft) (*delivery.Delivery, error)

	// Update persists status and driver changes of an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get returns the delivery with the given order id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*delivery.Delivery, error)
}

// EventPublisher forwards delivery status changes to interested consumers.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event delivery.StatusChanged) error
}
