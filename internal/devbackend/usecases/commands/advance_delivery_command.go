package commands

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand moves one order to ON_DELIVERY (pickup) or DELIVERED.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	driverID uuid.UUID
	target   order.Status

	guard guard.ConstructorGuard
}

func NewAdvanceDeliveryCommand(orderID int64, driverID uuid.UUID, target order.Status) (AdvanceDeliveryCommand, error) {
	command := AdvanceDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDriverID(driverID),
		command.setTarget(target),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return command, nil
}

func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

func (c AdvanceDeliveryCommand) OrderID() int64 {
	return c.orderID
}

func (c AdvanceDeliveryCommand) DriverID() uuid.UUID {
	return c.driverID
}

func (c AdvanceDeliveryCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceDeliveryCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsOutOfRangeError("orderId", orderID, 1, "max int64")
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceDeliveryCommand) setDriverID(driverID uuid.UUID) error {
	if driverID == uuid.Nil {
		return errs.NewValueIsRequiredError("driverId")
	}
	c.driverID = driverID
	return nil
}

func (c *AdvanceDeliveryCommand) setTarget(target order.Status) error {
	if target != order.OnDelivery && target != order.Delivered {
		return errs.NewValueIsInvalidErrorWithCause("target",
			fmt.Errorf("%s is not a reachable status", target))
	}
	c.target = target
	return nil
}
