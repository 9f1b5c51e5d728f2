// Package environment models which backend deployment the app talks to.
package environment

import (
	"fmt"
	"strings"

	"driverapp/internal/pkg/errs"
)

// Environment selects a backend deployment. Exactly one is active at a time.
type Environment int

const (
	// Unknown is the invalid zero value.
	Unknown Environment = iota
	Development
	Production
)

// Default is used when nothing has been persisted yet.
const Default = Production

var names = map[Environment]string{
	Development: "development",
	Production:  "production",
}

// Parse maps "development" or "production" (any case) to an Environment.
func Parse(raw string) (Environment, error) {
	for env, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(raw)) {
			return env, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"environment",
		fmt.Errorf("%q is neither development nor production", raw),
	)
}

// Validate rejects Unknown and out-of-range values.
func (e Environment) Validate() error {
	if _, ok := names[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("environment", fmt.Errorf("%d is not a valid environment", e))
	}
	return nil
}

func (e Environment) String() string {
	if name, ok := names[e]; ok {
		return name
	}
	return "unknown"
}

// Toggle flips development and production. Unknown toggles to Default.
func (e Environment) Toggle() Environment {
	switch e {
	case Development:
		return Production
	case Production:
		return Development
	case Unknown:
	}
	return Default
}
