package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mlopsdemo/internal/adapters/turso"
	"github.com/emiliopalmerini/mlopsdemo/internal/logging"
	"github.com/emiliopalmerini/mlopsdemo/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the dashboard server.

Examples:
  mlopsdemo serve                      # Start on default port 8080
  mlopsdemo serve --port 3000          # Start on port 3000
  mlopsdemo serve --config demo.yaml   # Layer a YAML config over the defaults
  mlopsdemo serve --reseed             # Restore the seeded catalog first`,
	RunE: runServe,
}

var (
	servePort   int
	serveSeed   uint64
	serveReseed bool
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().Uint64Var(&serveSeed, "seed", 0, "Fixed random seed for reproducible sessions (0 = random)")
	serveCmd.Flags().BoolVar(&serveReseed, "reseed", false, "Roll the catalog back and seed it again before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewAppContext(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := app.Close(closeCtx); err != nil {
			app.Logger.Error("shutdown", "error", err)
		}
	}()
	ctx = logging.NewContext(ctx, app.Logger)

	if serveReseed {
		if err := turso.Reseed(ctx, app.DB); err != nil {
			return err
		}
		app.Logger.Info("catalog reseeded", "database", cfg.DatabaseURL)
	}

	// Handle shutdown signals
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
