// Package mapnav hands destinations to the operating system's URL opener,
// which shows them in the user's map application.
package mapnav

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

var _ ports.MapNavigator = &Navigator{}

// DefaultBaseURL is the map search endpoint used when none is configured.
const DefaultBaseURL = "https://www.google.com/maps/search/"

// Opener launches target in an external application.
type Opener func(ctx context.Context, target string) error

// Navigator builds a map search URL for a destination and opens it.
type Navigator struct {
	baseURL string
	open    Opener
	logger  *slog.Logger
}

type Option func(*Navigator)

// WithOpener replaces the OS opener.
func WithOpener(open Opener) Option {
	return func(n *Navigator) { n.open = open }
}

// WithBaseURL points the navigator at another map search endpoint.
func WithBaseURL(base string) Option {
	return func(n *Navigator) { n.baseURL = base }
}

func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) { n.logger = logger }
}

func NewNavigator(opts ...Option) *Navigator {
	n := &Navigator{
		baseURL: DefaultBaseURL,
		open:    SystemOpener,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.With("component", "MapNavigator")
	return n
}

// URL returns the map search URL for d. Coordinates take precedence over the address.
func (n *Navigator) URL(d ports.Destination) (string, error) {
	var query string
	switch {
	case d.Coordinates != nil:
		if err := d.Coordinates.Validate(); err != nil {
			return "", err
		}
		query = d.Coordinates.String()
	case strings.TrimSpace(d.Address) != "":
		query = strings.TrimSpace(d.Address)
	default:
		return "", errs.NewValueIsRequiredError("address")
	}

	u, err := url.Parse(n.baseURL)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("map base url", err)
	}
	q := u.Query()
	q.Set("api", "1")
	q.Set("query", query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (n *Navigator) Navigate(ctx context.Context, d ports.Destination) error {
	target, err := n.URL(d)
	if err != nil {
		return err
	}
	n.logger.DebugContext(ctx, "opening map", "label", d.Label, "url", target)
	if err := n.open(ctx, target); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

// SystemOpener opens target with the platform's default handler.
func SystemOpener(ctx context.Context, target string) error {
	name, args := openCommand(runtime.GOOS)
	cmd := exec.CommandContext(ctx, name, append(args, target)...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// the opener exits once the handler is launched
	return cmd.Wait()
}

func openCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
