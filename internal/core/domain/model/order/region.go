package order

import (
	"fmt"
	"strings"

	"driverapp/internal/pkg/errs"
)

// Region is one of the fixed areas the order list is filtered by.
type Region int

const (
	// RegionUnknown is the invalid zero value.
	RegionUnknown Region = iota
	North
	South
	Central
	West
	East
)

// DefaultRegion is the region selected before the driver picks one.
const DefaultRegion = Central

var regionNames = map[Region]string{
	North:   "North",
	South:   "South",
	Central: "Central",
	West:    "West",
	East:    "East",
}

// Regions returns every valid region in display order.
func Regions() []Region {
	return []Region{North, South, Central, West, East}
}

// ParseRegion maps a region name (case-insensitive) to a Region.
func ParseRegion(raw string) (Region, error) {
	for region, name := range regionNames {
		if strings.EqualFold(name, strings.TrimSpace(raw)) {
			return region, nil
		}
	}
	return RegionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"region",
		fmt.Errorf("%q is not one of North, South, Central, West, East", raw),
	)
}

// Validate rejects RegionUnknown and out-of-range values.
func (r Region) Validate() error {
	if _, ok := regionNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("region", fmt.Errorf("%d is not a valid region", r))
	}
	return nil
}

// String returns the wire name, which is also what the backend expects as `location`.
func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return "Unknown"
}
