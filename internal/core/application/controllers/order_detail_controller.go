package controllers

import (
	"context"
	"log/slog"

	"driverapp/internal/core/application/usecases/commands"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/pkg/errs"
)

// Labels of the single action button on the detail screen.
const (
	LabelAcceptDelivery   = "Accept Delivery"
	LabelCompleteDelivery = "Complete Delivery"
)

// OrderAdvancer runs AdvanceOrderCommand.
type OrderAdvancer interface {
	Handle(ctx context.Context, command commands.AdvanceOrderCommand) (order.Status, error)
}

// OrderLocator runs LocateOrderCommand.
type OrderLocator interface {
	Handle(ctx context.Context, command commands.LocateOrderCommand) error
}

// OrderDetailController backs the "Order Detail" screen of one order.
type OrderDetailController struct {
	order    *order.Order
	advancer OrderAdvancer
	locator  OrderLocator
	logger   *slog.Logger
}

func NewOrderDetailController(
	o *order.Order,
	advancer OrderAdvancer,
	locator OrderLocator,
	logger *slog.Logger,
) (*OrderDetailController, error) {
	if o == nil {
		return nil, errs.NewValueIsRequiredError("order")
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderDetailController{
		order:    o,
		advancer: advancer,
		locator:  locator,
		logger:   logger.With("component", "OrderDetailController", "orderId", o.ID()),
	}, nil
}

// Order returns the displayed order.
func (c *OrderDetailController) Order() *order.Order {
	return c.order
}

// ActionLabel returns the button text for the current status; empty once delivered.
func (c *OrderDetailController) ActionLabel() string {
	switch c.order.Status() {
	case order.ReadyForDelivery:
		return LabelAcceptDelivery
	case order.OnDelivery:
		return LabelCompleteDelivery
	case order.Unknown, order.Delivered:
	}
	return ""
}

// Advance moves the order one step forward. A delivered order is left alone
// without contacting the backend. Reaching DELIVERED raises SignalDeliveryCompleted.
func (c *OrderDetailController) Advance(ctx context.Context) (Signal, error) {
	if c.order.IsDelivered() {
		return SignalNone, nil
	}

	command, err := commands.NewAdvanceOrderCommand(c.order)
	if err != nil {
		return SignalNone, err
	}

	status, err := c.advancer.Handle(ctx, command)
	if err != nil {
		c.logger.DebugContext(ctx, "advancing order failed", "status", c.order.Status().String(), "error", err)
		return signalFor(err), err
	}

	c.logger.DebugContext(ctx, "order advanced", "status", status.String())
	if status == order.Delivered {
		return SignalDeliveryCompleted, nil
	}
	return SignalNone, nil
}

// Locate opens the map application on the pickup or the delivery stop.
func (c *OrderDetailController) Locate(ctx context.Context, stop order.StopKind) error {
	command, err := commands.NewLocateOrderCommand(c.order, stop)
	if err != nil {
		return err
	}
	if err = c.locator.Handle(ctx, command); err != nil {
		c.logger.DebugContext(ctx, "locate failed", "stop", stop.String(), "error", err)
		return err
	}
	return nil
}
