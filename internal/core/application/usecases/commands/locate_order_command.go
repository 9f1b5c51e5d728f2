package commands

import (
	"errors"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

var ErrLocateOrderCommandIsNotConstructed = errors.New(
	"LocateOrderCommand must be created via NewLocateOrderCommand constructor",
)

// LocateOrderCommand opens the map application on one stop of an order.
type LocateOrderCommand struct {
	order *order.Order
	stop  order.StopKind
	guard guard.ConstructorGuard
}

func NewLocateOrderCommand(o *order.Order, stop order.StopKind) (LocateOrderCommand, error) {
	var orderErr error
	if o == nil {
		orderErr = errs.NewValueIsRequiredError("order")
	} else {
		orderErr = o.Validate()
	}
	var stopErr error
	if stop != order.PickupStop && stop != order.DeliveryStop {
		stopErr = errs.NewValueIsInvalidError("stop")
	}
	if err := errors.Join(orderErr, stopErr); err != nil {
		return LocateOrderCommand{}, err
	}

	return LocateOrderCommand{order: o, stop: stop, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c LocateOrderCommand) Validate() error {
	return c.guard.Validate(ErrLocateOrderCommandIsNotConstructed)
}

func (c LocateOrderCommand) Order() *order.Order { return c.order }
func (c LocateOrderCommand) Stop() order.StopKind { return c.stop }
