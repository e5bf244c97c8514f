package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/emiliopalmerini/mlopsdemo/internal/adapters/otel"
	"github.com/emiliopalmerini/mlopsdemo/internal/adapters/turso"
	"github.com/emiliopalmerini/mlopsdemo/internal/config"
	"github.com/emiliopalmerini/mlopsdemo/internal/logging"
	"github.com/emiliopalmerini/mlopsdemo/internal/ports"
	"github.com/emiliopalmerini/mlopsdemo/internal/session"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config   config.Config
	Logger   *slog.Logger
	DB       *sql.DB
	Catalog  ports.CatalogRepository
	Exporter ports.MetricsExporter
}

// NewAppContext opens the catalog and the metrics exporter described by cfg.
// A failing exporter is logged and replaced by the no-op one.
func NewAppContext(ctx context.Context, cfg config.Config) (*AppContext, error) {
	logger := logging.NewWithLevel(os.Stderr, cfg.LogLevel)

	db, err := turso.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	repos := turso.NewRepositories(db)

	var exporter ports.MetricsExporter = otel.NewNoOpExporter()
	if cfg.OTEL.Enabled {
		exp, err := otel.NewExporter(ctx, otel.Config{
			Endpoint: cfg.OTEL.Endpoint,
			Enabled:  cfg.OTEL.Enabled,
			Insecure: cfg.OTEL.Insecure,
		})
		if err != nil {
			logger.Warn("metrics export disabled", "error", err)
		} else {
			exporter = exp
		}
	}

	return &AppContext{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Catalog:  repos.Catalog,
		Exporter: exporter,
	}, nil
}

// Sessions builds the session store for the dashboard.
func (a *AppContext) Sessions() *session.Store {
	return session.NewStore(session.Deps{
		Catalog:      a.Catalog,
		Exporter:     a.Exporter,
		Logger:       a.Logger,
		MetricPeriod: a.Config.MetricPeriod,
		ChartPeriod:  a.Config.ChartPeriod,
		StepPeriod:   a.Config.StepPeriod,
		Seed:         a.Config.Seed,
	}, a.Config.SessionTTL)
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close(ctx context.Context) error {
	var errs []error
	if a.Exporter != nil {
		errs = append(errs, a.Exporter.Close(ctx))
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}
