package commands

import (
	"context"
	"fmt"

	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

// LocateOrderCommandHandler hands a stop to the map application. Coordinates are
// preferred; the street address is the fallback. The order itself is never modified.
type LocateOrderCommandHandler struct {
	navigator ports.MapNavigator
}

func NewLocateOrderCommandHandler(navigator ports.MapNavigator) LocateOrderCommandHandler {
	return LocateOrderCommandHandler{navigator: navigator}
}

func (h LocateOrderCommandHandler) Handle(ctx context.Context, command LocateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	o := command.Order()
	stop, err := o.Stop(command.Stop())
	if err != nil {
		return err
	}
	if !stop.IsLocatable() {
		return errs.NewNavigationUnavailableError(command.Stop().String(), errs.NewValueIsRequiredError("address"))
	}

	destination := ports.Destination{
		Label:   fmt.Sprintf("%s for order %d", command.Stop(), o.ID()),
		Address: stop.Address(),
	}
	if coords, ok := stop.Coordinates(); ok {
		destination.Coordinates = &coords
	}

	if err = h.navigator.Navigate(ctx, destination); err != nil {
		return errs.NewNavigationUnavailableError(command.Stop().String(), err)
	}
	return nil
}
