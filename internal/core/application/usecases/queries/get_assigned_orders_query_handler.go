package queries

import (
	"context"
	"errors"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

// GetAssignedOrdersQueryHandler fetches the driver's orders from the backend.
//
// Errors:
//   - ErrAuthRequired when nobody is logged in (no request is sent)
//   - SessionExpiredError on 401/403, after local state was wiped
//   - FetchError for any other non-2xx status
//   - TransportError when the backend cannot be reached or answers garbage
type GetAssignedOrdersQueryHandler struct {
	api      OrdersReader
	sessions ports.SessionStore
}

// OrdersReader is the part of ports.DeliveryAPI this query needs.
type OrdersReader interface {
	GetOrdersForDeliveryStaff(ctx context.Context, token, userID string, region order.Region) ([]*order.Order, error)
}

func NewGetAssignedOrdersQueryHandler(api OrdersReader, sessions ports.SessionStore) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{api: api, sessions: sessions}
}

func (h GetAssignedOrdersQueryHandler) Handle(ctx context.Context, query GetAssignedOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	current, err := h.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errs.ErrAuthRequired
	}

	orders, err := h.api.GetOrdersForDeliveryStaff(ctx, current.Token(), current.UserID(), query.Region())
	if err == nil {
		if orders == nil {
			orders = []*order.Order{}
		}
		return orders, nil
	}

	statusErr, ok := errs.AsHTTPStatus(err)
	if !ok {
		if errors.Is(err, errs.ErrTransport) {
			return nil, err
		}
		return nil, errs.NewTransportError("list orders", err)
	}
	if statusErr.IsUnauthorized() {
		expired := errs.NewSessionExpiredError("list orders", statusErr.StatusCode)
		if resetErr := h.sessions.Reset(ctx); resetErr != nil {
			return nil, errors.Join(expired, resetErr)
		}
		return nil, expired
	}
	return nil, errs.NewFetchError(statusErr.StatusCode)
}
