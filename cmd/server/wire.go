package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-onboarding-service/internal/app"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/config"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/health"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-onboarding-service/internal/ports"
)

// newInjector registers every component. Nothing is constructed until it is
// first invoked. metrics may be nil.
func newInjector(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	// Outbound: the resilient client and the profile API adapters on top of it.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Client, acl.ProfileAPIName, do.MustInvoke[*telemetry.Metrics](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (*acl.Transport, error) {
		return acl.NewTransport(do.MustInvoke[*httpclient.Client](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.CorporationClient, error) {
		return acl.NewCorporationClient(do.MustInvoke[*acl.Transport](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ProfileClient, error) {
		return acl.NewProfileClient(do.MustInvoke[*acl.Transport](i), logger), nil
	})

	do.Provide(injector, provideFormService)
	do.Provide(injector, provideHealthRegistry)

	// Inbound: handlers, router, server.
	do.Provide(injector, func(i do.Injector) (*handlers.FormHandler, error) {
		return handlers.NewFormHandler(do.MustInvoke[*app.FormService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		pipeline := middleware.Standard(logger, do.MustInvoke[*telemetry.Metrics](i), cfg.Server.WriteTimeout)
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.FormHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			pipeline...,
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})

	return injector
}

func provideFormService(i do.Injector) (*app.FormService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	limits := app.FormLimits{
		TTL:      cfg.Onboarding.FormTTL,
		MaxForms: cfg.Onboarding.MaxForms,
	}
	return app.NewFormService(
		do.MustInvoke[ports.CorporationClient](i),
		do.MustInvoke[ports.ProfileClient](i),
		limits,
		do.MustInvoke[*slog.Logger](i),
		do.MustInvoke[*telemetry.Metrics](i),
	), nil
}

// provideHealthRegistry registers the profile API breaker and the form store
// as readiness dependencies.
func provideHealthRegistry(i do.Injector) (ports.HealthRegistry, error) {
	registry := health.New()
	registry.Register(do.MustInvoke[*acl.Transport](i))
	registry.Register(do.MustInvoke[*app.FormService](i))
	return registry, nil
}
