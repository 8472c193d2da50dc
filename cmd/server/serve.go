package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"

	adapthttp "github.com/jsamuelsen11/go-onboarding-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-onboarding-service/internal/app"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/config"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-onboarding-service/internal/platform/telemetry"
)

const (
	serverShutdownTimeout    = 15 * time.Second
	telemetryShutdownTimeout = 5 * time.Second
)

// serve runs the HTTP server and the idle-form sweeper until ctx is done or
// either of them fails, then flushes telemetry.
func serve(ctx context.Context, cfg *config.Config, logOutput io.Writer) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOutput)

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(providers, logger)

	injector := newInjector(cfg, logger, providers.Metrics)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	forms, err := do.Invoke[*app.FormService](injector)
	if err != nil {
		return fmt.Errorf("wiring form service: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, serverShutdownTimeout)
	})
	g.Go(func() error {
		return forms.RunSweeper(gctx, formSweepInterval(cfg.Onboarding.FormTTL))
	})

	logger.Info("service starting",
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("telemetry", cfg.Telemetry.Enabled),
	)
	if err := g.Wait(); err != nil {
		logger.Error("service failed", slog.Any("error", err))
		return fmt.Errorf("serving: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// formSweepInterval is a tenth of the TTL, but at least a second.
func formSweepInterval(ttl time.Duration) time.Duration {
	return max(ttl/10, time.Second)
}

func flushTelemetry(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
	defer cancel()

	if err := p.Shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
}
