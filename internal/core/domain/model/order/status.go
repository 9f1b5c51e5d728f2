package order

import (
	"fmt"

	"driverapp/internal/pkg/errs"
)

// Status represents the delivery state of an order.
//
// State transitions:
//
//	READY_FOR_DELIVERY ──PickUp──> ON_DELIVERY ──Deliver──> DELIVERED
//
// The order is monotonic; DELIVERED accepts no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// ReadyForDelivery is the initial status: the kitchen is done and the
	// order waits for a driver to pick it up.
	ReadyForDelivery

	// OnDelivery indicates the driver picked the order up.
	OnDelivery

	// Delivered indicates the order reached the customer. Final state.
	Delivered
)

// getStatusStrings returns the wire names of all statuses, Unknown included.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		ReadyForDelivery: "READY_FOR_DELIVERY",
		OnDelivery:       "ON_DELIVERY",
		Delivered:        "DELIVERED",
	}
}

// getValidStatusStrings returns the wire names of valid statuses only.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		ReadyForDelivery: "READY_FOR_DELIVERY",
		OnDelivery:       "ON_DELIVERY",
		Delivered:        "DELIVERED",
	}
}

// ParseStatus maps a backend status name to a Status.
//
// Example:
//
//	s, err := order.ParseStatus("ON_DELIVERY")
//	// s == order.OnDelivery
func ParseStatus(raw string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known order status", raw),
	)
}

// Validate checks that the status is one of the three workflow states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the backend name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the status that follows s in the workflow.
//
// Returns:
//   - (OnDelivery, nil) for ReadyForDelivery
//   - (Delivered, nil) for OnDelivery
//   - (Unknown, error) for Delivered and invalid statuses
func (s Status) Next() (Status, error) {
	switch s {
	case ReadyForDelivery:
		return OnDelivery, nil
	case OnDelivery:
		return Delivered, nil
	case Unknown, Delivered:
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s has no next status", s.String()),
	)
}

// PickUp transitions ReadyForDelivery to OnDelivery.
func (s Status) PickUp() (Status, error) {
	if s != ReadyForDelivery {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pick up", s.String()),
		)
	}
	return OnDelivery, nil
}

// Deliver transitions OnDelivery to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != OnDelivery {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// NextStatus is the pure transition function used by the detail screen: given the
// current status and whether the backend acknowledged the advance request, it returns
// the status to display. A rejected request leaves the status unchanged; an
// acknowledged one moves exactly one step forward.
//
// Example:
//
//	next, err := order.NextStatus(order.OnDelivery, true)
//	// next == order.Delivered
//
//	next, err = order.NextStatus(order.OnDelivery, false)
//	// next == order.OnDelivery
func NextStatus(current Status, acknowledged bool) (Status, error) {
	if err := current.Validate(); err != nil {
		return Unknown, err
	}
	if !acknowledged {
		return current, nil
	}
	return current.Next()
}
