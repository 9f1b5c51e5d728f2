package commands

import (
	"errors"
	"time"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/devbackend/domain/delivery"
	"driverapp/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand publishes a new order to drivers in READY_FOR_DELIVERY.
// Orders enter the system this way only: the seeding job and the demo data.
//
// Example:
//
//	pickup, _ := order.NewStop("Central", "1 Raffles Place", nil)
//	drop, _ := order.NewStop("East", "80 Marine Parade Rd", nil)
//	cmd, err := NewCreateOrderCommand(order.Details{RestaurantName: "Noodle Bar"}, pickup, drop)
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	draft delivery.Draft

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order. A zero order time is replaced by
// the current time.
func NewCreateOrderCommand(details order.Details, pickup, drop order.Stop) (CreateOrderCommand, error) {
	if details.OrderTime.IsZero() {
		details.OrderTime = time.Now().UTC()
	}
	draft, err := delivery.NewDraft(details, pickup, drop)
	if err != nil {
		return CreateOrderCommand{}, err
	}
	return CreateOrderCommand{draft: draft, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Draft() delivery.Draft {
	return c.draft
}
