// Package controllers holds the screen-level state machines of the driver app. They
// own what a screen displays and translate use case outcomes into navigation signals;
// rendering is left to the inbound adapter.
package controllers

import (
	"errors"

	"driverapp/internal/pkg/errs"
)

// Signal tells the presentation layer where to go after an action.
type Signal int

const (
	// SignalNone keeps the current screen.
	SignalNone Signal = iota
	// SignalRedirectToLogin is raised when the session is gone or was rejected.
	SignalRedirectToLogin
	// SignalDeliveryCompleted is raised when an order reached DELIVERED.
	SignalDeliveryCompleted
)

func (s Signal) String() string {
	switch s {
	case SignalRedirectToLogin:
		return "redirect-to-login"
	case SignalDeliveryCompleted:
		return "delivery-completed"
	case SignalNone:
	}
	return "none"
}

func signalFor(err error) Signal {
	if errors.Is(err, errs.ErrSessionExpired) || errors.Is(err, errs.ErrAuthRequired) {
		return SignalRedirectToLogin
	}
	return SignalNone
}
