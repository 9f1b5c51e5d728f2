package order

import (
	"errors"
	"fmt"
	"time"

	"driverapp/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the RestoreOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")
)

// Details groups the descriptive attributes of an order that carry no business rules.
type Details struct {
	RestaurantName string
	ImageURL       string
	OrderTime      time.Time
	// Rating is nil when the customer has not rated the order.
	Rating *float64
}

// Order represents a group food order as seen by the assigned driver. It is the
// aggregate root of the delivery workflow on the client side.
//
// Order follows these invariants:
//   - Must have a positive identifier (groupFoodOrderId)
//   - Must carry a valid Status
//   - Pickup and delivery stops are validated on restore
//   - Status only moves forward, one step at a time
//   - Can only be created through RestoreOrder
//
// Orders are never created by the driver: they are restored from the backend
// payload and replaced wholesale on every list reload.
type Order struct {
	// id is the backend's groupFoodOrderId
	id int64

	details Details

	// status represents the current state in the delivery workflow
	status Status

	pickup   Stop
	delivery Stop

	// isConstructed ensures the order was created via RestoreOrder
	isConstructed bool
}

// RestoreOrder rebuilds an Order from backend data with validation.
//
// Parameters:
//   - id: groupFoodOrderId (must be positive)
//   - status: current workflow status (must be valid)
//   - pickup: the restaurant stop
//   - delivery: the customer stop
//   - details: descriptive attributes, not validated
//
// Returns:
//   - *Order: The restored order if all validations pass
//   - error: joined validation errors otherwise
//
// Example:
//
//	pickup, _ := order.NewStop("Central", "1 Raffles Place", nil)
//	delivery, _ := order.NewStop("East", "80 Marine Parade Rd", nil)
//	o, err := order.RestoreOrder(42, order.ReadyForDelivery, pickup, delivery, order.Details{})
func RestoreOrder(id int64, status Status, pickup, delivery Stop, details Details) (*Order, error) {
	o := &Order{
		details:       details,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setPickup(pickup),
		o.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the groupFoodOrderId.
func (o *Order) ID() int64 {
	return o.id
}

// RestaurantName returns the name of the restaurant preparing the order.
func (o *Order) RestaurantName() string {
	return o.details.RestaurantName
}

// ImageURL returns the restaurant image shown next to the order.
func (o *Order) ImageURL() string {
	return o.details.ImageURL
}

// OrderTime returns when the customer placed the order.
func (o *Order) OrderTime() time.Time {
	return o.details.OrderTime
}

// Rating returns the customer rating and whether one was given.
func (o *Order) Rating() (float64, bool) {
	if o.details.Rating == nil {
		return 0, false
	}
	return *o.details.Rating, true
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Pickup returns the restaurant stop.
func (o *Order) Pickup() Stop {
	return o.pickup
}

// Delivery returns the customer stop.
func (o *Order) Delivery() Stop {
	return o.delivery
}

// Stop returns the stop of the given kind.
func (o *Order) Stop(kind StopKind) (Stop, error) {
	switch kind {
	case PickupStop:
		return o.pickup, nil
	case DeliveryStop:
		return o.delivery, nil
	case UnknownStop:
	}
	return Stop{}, errs.NewValueIsInvalidErrorWithCause("stop", fmt.Errorf("%d is not a valid stop kind", kind))
}

// IsDelivered reports whether the order reached its terminal status.
func (o *Order) IsDelivered() bool {
	return o.status.IsTerminal()
}

// PickUp marks the order as picked up by the driver.
//
// This method enforces the following business rules:
//   - The order must be in ReadyForDelivery status
//
// After a successful call the status is OnDelivery.
func (o *Order) PickUp() error {
	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as handed to the customer.
//
// This method enforces the following business rules:
//   - The order must be in OnDelivery status
//   - Delivered is a final state with no further transitions
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Acknowledge applies the outcome of an advance request. When acknowledged is false
// the order is left untouched; otherwise it moves exactly one step forward.
//
// Returns an error for a terminal or invalid status, in which case the order is
// not modified.
func (o *Order) Acknowledge(acknowledged bool) error {
	next, err := NextStatus(o.status, acknowledged)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("groupFoodOrderId", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPickup(stop Stop) error {
	if err := stop.Validate(); err != nil {
		return fmt.Errorf("pickup: %w", err)
	}
	o.pickup = stop
	return nil
}

func (o *Order) setDelivery(stop Stop) error {
	if err := stop.Validate(); err != nil {
		return fmt.Errorf("delivery: %w", err)
	}
	o.delivery = stop
	return nil
}
