package commands

import (
	"errors"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand moves an order one step along the delivery workflow.
// The command carries the order held by the detail screen; on success that
// order is updated in place.
type AdvanceOrderCommand struct {
	order *order.Order
	guard guard.ConstructorGuard
}

func NewAdvanceOrderCommand(o *order.Order) (AdvanceOrderCommand, error) {
	if o == nil {
		return AdvanceOrderCommand{}, errs.NewValueIsRequiredError("order")
	}
	if err := o.Validate(); err != nil {
		return AdvanceOrderCommand{}, err
	}
	return AdvanceOrderCommand{order: o, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) Order() *order.Order {
	return c.order
}
