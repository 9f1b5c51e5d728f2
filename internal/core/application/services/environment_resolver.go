// Package services holds application services shared by several use cases.
package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"driverapp/internal/core/domain/model/environment"
	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

// EnvironmentResolver maps the persisted environment flag to a backend base URL.
// The flag is read on every call, so a switch applies to the next request.
//
// Example:
//
//	resolver, err := services.NewEnvironmentResolver(store, services.BaseURLs{
//	    Development: "http://localhost:8765",
//	    Production:  "https://api.example.com",
//	}, environment.Production, logger)
//	base, err := resolver.ActiveBaseURL(ctx)
type EnvironmentResolver struct {
	store    ports.EnvironmentStore
	urls     map[environment.Environment]string
	fallback environment.Environment
	logger   *slog.Logger
}

// BaseURLs binds each environment to its backend.
type BaseURLs struct {
	Development string
	Production  string
}

var _ ports.EnvironmentProvider = (*EnvironmentResolver)(nil)

// NewEnvironmentResolver validates the configured URLs and the fallback used when
// no flag is persisted.
func NewEnvironmentResolver(
	store ports.EnvironmentStore,
	urls BaseURLs,
	fallback environment.Environment,
	logger *slog.Logger,
) (*EnvironmentResolver, error) {
	var storeErr, devErr, prodErr error
	if store == nil {
		storeErr = errs.NewValueIsRequiredError("environment store")
	}
	if strings.TrimSpace(urls.Development) == "" {
		devErr = errs.NewValueIsRequiredError("development base url")
	}
	if strings.TrimSpace(urls.Production) == "" {
		prodErr = errs.NewValueIsRequiredError("production base url")
	}
	if err := errors.Join(storeErr, devErr, prodErr, fallback.Validate()); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &EnvironmentResolver{
		store: store,
		urls: map[environment.Environment]string{
			environment.Development: strings.TrimRight(strings.TrimSpace(urls.Development), "/"),
			environment.Production:  strings.TrimRight(strings.TrimSpace(urls.Production), "/"),
		},
		fallback: fallback,
		logger:   logger.With("component", "EnvironmentResolver"),
	}, nil
}

// Active returns the persisted environment, or the fallback when none is stored.
func (r *EnvironmentResolver) Active(ctx context.Context) (environment.Environment, error) {
	env, ok, err := r.store.Load(ctx)
	if err != nil {
		return environment.Unknown, err
	}
	if !ok {
		return r.fallback, nil
	}
	return env, nil
}

// ActiveBaseURL returns the base URL of the active environment, without a trailing slash.
func (r *EnvironmentResolver) ActiveBaseURL(ctx context.Context) (string, error) {
	env, err := r.Active(ctx)
	if err != nil {
		return "", err
	}
	return r.URL(env), nil
}

// URL returns the base URL bound to env, or "" for an invalid value.
func (r *EnvironmentResolver) URL(env environment.Environment) string {
	return r.urls[env]
}

// SetEnvironment persists env. The session record is not touched.
func (r *EnvironmentResolver) SetEnvironment(ctx context.Context, env environment.Environment) error {
	if err := env.Validate(); err != nil {
		return err
	}
	if err := r.store.Save(ctx, env); err != nil {
		return err
	}
	r.logger.DebugContext(ctx, "environment switched", "environment", env.String(), "baseURL", r.URL(env))
	return nil
}

// Toggle flips development and production and returns the new value.
func (r *EnvironmentResolver) Toggle(ctx context.Context) (environment.Environment, error) {
	current, err := r.Active(ctx)
	if err != nil {
		return environment.Unknown, err
	}
	next := current.Toggle()
	if err = r.SetEnvironment(ctx, next); err != nil {
		return environment.Unknown, err
	}
	return next, nil
}
