package order

import (
	"fmt"
	"strings"
	"time"

	"driverapp/internal/pkg/errs"
)

// localTimeLayout is the zone-less layout some backends emit; it is read as UTC.
const localTimeLayout = "2006-01-02T15:04:05"

// ParseOrderTime accepts RFC 3339 timestamps and zone-less ones. An empty string
// yields the zero time.
func ParseOrderTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(localTimeLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("orderTime", fmt.Errorf("%q: %w", raw, err))
	}
	return t, nil
}
