package ports

import (
	"context"

	"driverapp/internal/core/domain/model/kernel"
)

// Destination is what gets handed to the map application. Coordinates win over
// Address when both are set.
type Destination struct {
	Label       string
	Address     string
	Coordinates *kernel.Coordinates
}

// MapNavigator opens an external map application centered on a destination.
type MapNavigator interface {
	Navigate(ctx context.Context, d Destination) error
}
