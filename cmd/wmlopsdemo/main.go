package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/emiliopalmerini/mlopsdemo/internal/cli"
	"github.com/emiliopalmerini/mlopsdemo/internal/config"
	"github.com/emiliopalmerini/mlopsdemo/internal/logging"
	"github.com/emiliopalmerini/mlopsdemo/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run serves the dashboard configured from the environment only.
func run() error {
	cfg, err := config.Load(config.Options{})
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := cli.NewAppContext(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(context.Background()) }()
	ctx = logging.NewContext(ctx, app.Logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		app.Logger.Info("shutting down")
		cancel()
	}()

	sessions := app.Sessions()
	defer sessions.Close()
	go sessions.Run(ctx)

	server := web.NewServer(app.Catalog, sessions, web.Options{
		Port:       cfg.Port,
		MetricPoll: cfg.MetricPeriod,
		ChartPoll:  cfg.ChartPeriod,
		SessionTTL: cfg.SessionTTL,
		Logger:     app.Logger,
	})
	return server.Start(ctx)
}
