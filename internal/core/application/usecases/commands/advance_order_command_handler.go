package commands

import (
	"context"
	"errors"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

// AdvanceOrderCommandHandler reports a status change to the backend and applies
// it locally once acknowledged.
//
// Outcomes:
//   - DELIVERED: nothing is sent, the status is returned unchanged
//   - 2xx: the order moves one step forward
//   - 401/403: local state is wiped, SessionExpiredError
//   - anything else: TransitionFailedError, the order is untouched
//
// Example:
//
//	cmd, _ := commands.NewAdvanceOrderCommand(o)
//	status, err := handler.Handle(ctx, cmd)
//	if err == nil && status == order.Delivered {
//	    // back to the list
//	}
type AdvanceOrderCommandHandler struct {
	api      ports.DeliveryAPI
	sessions ports.SessionStore
}

func NewAdvanceOrderCommandHandler(api ports.DeliveryAPI, sessions ports.SessionStore) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{api: api, sessions: sessions}
}

// Handle returns the order status after the call.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, command AdvanceOrderCommand) (order.Status, error) {
	if err := command.Validate(); err != nil {
		return order.Unknown, err
	}

	o := command.Order()
	if o.IsDelivered() {
		return o.Status(), nil
	}

	target, err := o.Status().Next()
	if err != nil {
		return o.Status(), err
	}

	current, err := h.sessions.Load(ctx)
	if err != nil {
		return o.Status(), err
	}
	if current == nil {
		return o.Status(), errs.ErrAuthRequired
	}

	if err = h.send(ctx, current.Token(), o.ID(), target); err != nil {
		return o.Status(), h.mapError(ctx, o.ID(), target, err)
	}

	if err = o.Acknowledge(true); err != nil {
		return o.Status(), err
	}
	return o.Status(), nil
}

func (h AdvanceOrderCommandHandler) send(ctx context.Context, token string, id int64, target order.Status) error {
	if target == order.OnDelivery {
		return h.api.MarkOnDelivery(ctx, token, id)
	}
	return h.api.MarkDelivered(ctx, token, id)
}

func (h AdvanceOrderCommandHandler) mapError(ctx context.Context, id int64, target order.Status, err error) error {
	statusErr, ok := errs.AsHTTPStatus(err)
	if !ok {
		cause := err
		var transportErr *errs.TransportError
		if errors.As(err, &transportErr) && transportErr.Cause != nil {
			cause = transportErr.Cause
		}
		return errs.NewTransitionFailedError(id, target.String(), 0, cause)
	}
	if statusErr.IsUnauthorized() {
		return expireSession(ctx, h.sessions, "update order status", statusErr.StatusCode)
	}
	return errs.NewTransitionFailedError(id, target.String(), statusErr.StatusCode, nil)
}
