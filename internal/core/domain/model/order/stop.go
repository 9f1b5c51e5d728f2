package order

import (
	"errors"
	"fmt"
	"strings"

	"driverapp/internal/core/domain/model/kernel"
	"driverapp/internal/pkg/errs"
)

// ErrStopIsNotConstructed is returned when a Stop was not created through NewStop.
var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// StopKind selects one of the two stops of an order.
type StopKind int

const (
	UnknownStop StopKind = iota
	PickupStop
	DeliveryStop
)

// ParseStopKind accepts "pickup" or "delivery" in any case.
func ParseStopKind(raw string) (StopKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pickup":
		return PickupStop, nil
	case "delivery":
		return DeliveryStop, nil
	}
	return UnknownStop, errs.NewValueIsInvalidErrorWithCause(
		"stop",
		fmt.Errorf("%q is neither pickup nor delivery", raw),
	)
}

func (k StopKind) String() string {
	switch k {
	case PickupStop:
		return "pickup"
	case DeliveryStop:
		return "delivery"
	case UnknownStop:
	}
	return "unknown"
}

// Stop is one end of a delivery: the area it belongs to, a street address and,
// when the backend knows them, its coordinates.
type Stop struct {
	location      string
	address       string
	coordinates   kernel.Coordinates
	hasCoords     bool
	isConstructed bool
}

// NewStop creates a Stop. Coordinates are optional; when given they must be valid.
func NewStop(location, address string, coordinates *kernel.Coordinates) (Stop, error) {
	stop := Stop{
		location:      strings.TrimSpace(location),
		address:       strings.TrimSpace(address),
		isConstructed: true,
	}
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return Stop{}, err
		}
		stop.coordinates = *coordinates
		stop.hasCoords = true
	}
	return stop, nil
}

// Validate ensures the stop was created via NewStop.
func (s Stop) Validate() error {
	if !s.isConstructed {
		return ErrStopIsNotConstructed
	}
	return nil
}

// Location returns the area name (usually a Region name).
func (s Stop) Location() string {
	return s.location
}

// Address returns the street address, possibly empty.
func (s Stop) Address() string {
	return s.address
}

// Coordinates returns the stop's coordinates and whether they are known.
func (s Stop) Coordinates() (kernel.Coordinates, bool) {
	return s.coordinates, s.hasCoords
}

// IsLocatable reports whether a map application has anything to search for.
func (s Stop) IsLocatable() bool {
	return s.hasCoords || s.address != ""
}
