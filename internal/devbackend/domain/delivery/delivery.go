// Package delivery models an order as the development backend owns it: the
// shared order aggregate plus the driver it is assigned to.
package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a zero-value Delivery is used.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via RestoreDelivery constructor")
	// ErrDraftIsNotConstructed is returned when a zero-value Draft is used.
	ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")
	// ErrInvalidTransition is returned when the order status does not allow the requested step.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrAssignedToAnotherDriver is returned when a driver touches an order someone else picked up.
	ErrAssignedToAnotherDriver = errors.New("order is assigned to another driver")
)

// StatusChanged is recorded every time a delivery moves forward.
type StatusChanged struct {
	OrderID    int64     `json:"orderId"`
	Status     string    `json:"status"`
	DriverID   string    `json:"driverId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Draft is an order that has not been stored yet and therefore has no id.
type Draft struct {
	details  order.Details
	pickup   order.Stop
	delivery order.Stop
	guard    guard.ConstructorGuard
}

// NewDraft validates the stops and requires a restaurant name.
func NewDraft(details order.Details, pickup, delivery order.Stop) (Draft, error) {
	var nameErr, pickupErr, deliveryErr error
	if strings.TrimSpace(details.RestaurantName) == "" {
		nameErr = errs.NewValueIsRequiredError("restaurantName")
	}
	if err := pickup.Validate(); err != nil {
		pickupErr = fmt.Errorf("pickup: %w", err)
	}
	if err := delivery.Validate(); err != nil {
		deliveryErr = fmt.Errorf("delivery: %w", err)
	}
	if err := errors.Join(nameErr, pickupErr, deliveryErr); err != nil {
		return Draft{}, err
	}
	return Draft{details: details, pickup: pickup, delivery: delivery, guard: guard.NewConstructorGuard()}, nil
}

func (d Draft) Validate() error {
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

func (d Draft) Details() order.Details { return d.details }
func (d Draft) Pickup() order.Stop     { return d.pickup }
func (d Draft) Delivery() order.Stop   { return d.delivery }

// Delivery is the backend aggregate. A nil driver means nobody picked the order up yet.
//
// Invariants:
//   - an unassigned delivery is READY_FOR_DELIVERY
//   - only the assigned driver can complete it
type Delivery struct {
	order    *order.Order
	driverID *uuid.UUID
	events   []StatusChanged

	isConstructed bool
}

// RestoreDelivery rebuilds a delivery from storage.
func RestoreDelivery(o *order.Order, driverID *uuid.UUID) (*Delivery, error) {
	if o == nil {
		return nil, errs.NewValueIsRequiredError("order")
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if driverID == nil && o.Status() != order.ReadyForDelivery {
		return nil, errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("order %d is %s without a driver", o.ID(), o.Status()))
	}

	d := &Delivery{order: o, isConstructed: true}
	if driverID != nil {
		id := *driverID
		d.driverID = &id
	}
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) Order() *order.Order { return d.order }
func (d *Delivery) ID() int64           { return d.order.ID() }

// DriverID returns a copy of the assigned driver, nil when unassigned.
func (d *Delivery) DriverID() *uuid.UUID {
	if d.driverID == nil {
		return nil
	}
	id := *d.driverID
	return &id
}

// Region is the region of the pickup stop.
func (d *Delivery) Region() (order.Region, error) {
	return order.ParseRegion(d.order.Pickup().Location())
}

// VisibleTo reports whether driverID may see the delivery: it is either theirs
// or still waiting for a driver.
func (d *Delivery) VisibleTo(driverID uuid.UUID) bool {
	if d.driverID == nil {
		return d.order.Status() == order.ReadyForDelivery
	}
	return *d.driverID == driverID
}

// PickUp assigns the delivery to driverID and moves it to ON_DELIVERY.
func (d *Delivery) PickUp(driverID uuid.UUID, at time.Time) error {
	if d.driverID != nil && *d.driverID != driverID {
		return ErrAssignedToAnotherDriver
	}
	if err := d.order.PickUp(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}
	d.driverID = &driverID
	d.record(at)
	return nil
}

// Complete moves the delivery to DELIVERED. Only the assigned driver can do it.
func (d *Delivery) Complete(driverID uuid.UUID, at time.Time) error {
	if d.driverID == nil {
		return fmt.Errorf("%w: order %d was never picked up", ErrInvalidTransition, d.order.ID())
	}
	if *d.driverID != driverID {
		return ErrAssignedToAnotherDriver
	}
	if err := d.order.Deliver(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}
	d.record(at)
	return nil
}

// PullEvents returns the recorded events and forgets them.
func (d *Delivery) PullEvents() []StatusChanged {
	events := d.events
	d.events = nil
	return events
}

func (d *Delivery) record(at time.Time) {
	d.events = append(d.events, StatusChanged{
		OrderID:    d.order.ID(),
		Status:     d.order.Status().String(),
		DriverID:   d.driverID.String(),
		OccurredAt: at.UTC(),
	})
}
