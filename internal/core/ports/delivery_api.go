package ports

import (
	"context"

	"driverapp/internal/core/domain/model/order"
)

// AuthResult is the identity returned by the login and register endpoints.
type AuthResult struct {
	UserID string
	Name   string
	Role   string
	Token  string
}

// Registration is the payload of the register endpoint.
type Registration struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// DeliveryAPI is the REST contract of the delivery backend. Implementations resolve
// the base URL on every call.
//
// Error contract:
//   - any non-2xx answer is returned as *errs.HTTPStatusError
//   - connectivity failures and bodies that cannot be decoded as *errs.TransportError
//
// Use cases map these to the user-facing taxonomy.
type DeliveryAPI interface {
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Register(ctx context.Context, r Registration) (AuthResult, error)
	Logout(ctx context.Context, token string) error

	GetOrdersForDeliveryStaff(ctx context.Context, token, userID string, region order.Region) ([]*order.Order, error)

	// MarkOnDelivery reports that the driver picked the order up.
	MarkOnDelivery(ctx context.Context, token string, orderID int64) error
	// MarkDelivered reports that the order reached the customer.
	MarkDelivered(ctx context.Context, token string, orderID int64) error
}
