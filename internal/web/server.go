package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"

	"github.com/emiliopalmerini/mlopsdemo/internal/catalog"
	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
	"github.com/emiliopalmerini/mlopsdemo/internal/ports"
	"github.com/emiliopalmerini/mlopsdemo/internal/session"
)

//go:embed static/*
var staticFiles embed.FS

const sessionCookie = "mlopsdemo_session"

// Options tune the server. Zero poll periods fall back to the catalog
// defaults.
type Options struct {
	Port       int
	MetricPoll time.Duration
	ChartPoll  time.Duration
	StepPoll   time.Duration
	SessionTTL time.Duration
	Logger     *slog.Logger
}

type Server struct {
	router   *http.ServeMux
	port     int
	catalog  ports.CatalogRepository
	sessions *session.Store
	cookies  *scs.SessionManager
	logger   *slog.Logger
	opts     Options
}

func NewServer(cat ports.CatalogRepository, sessions *session.Store, opts Options) *Server {
	if opts.MetricPoll <= 0 {
		opts.MetricPoll = catalog.MetricPeriod
	}
	if opts.ChartPoll <= 0 {
		opts.ChartPoll = catalog.ChartPeriod
	}
	if opts.StepPoll <= 0 {
		opts.StepPoll = time.Second
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	cookies := scs.New()
	cookies.Store = memstore.New()
	cookies.IdleTimeout = opts.SessionTTL
	cookies.Cookie.Name = sessionCookie
	cookies.Cookie.HttpOnly = true
	cookies.Cookie.SameSite = http.SameSiteLaxMode

	s := &Server{
		router:   http.NewServeMux(),
		port:     opts.Port,
		catalog:  cat,
		sessions: sessions,
		cookies:  cookies,
		logger:   opts.Logger,
		opts:     opts,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages. Only these routes select a view; every other path is a 404.
	for _, v := range domain.Views {
		pattern := "GET " + v.Path
		if v.Path == "/" {
			pattern = "GET /{$}"
		}
		s.router.HandleFunc(pattern, s.handleView)
	}

	// Navigation
	s.router.HandleFunc("POST /nav/persona", s.handlePersona)

	// Live fragments (htmx polling)
	s.router.HandleFunc("GET /fragments/metrics", s.handleMetricsFragment)
	s.router.HandleFunc("GET /fragments/latency", s.handleLatencyFragment)
	s.router.HandleFunc("GET /fragments/workflow", s.handleWorkflowFragment)

	// Step simulator
	s.router.HandleFunc("POST /workflows/select", s.handleWorkflowSelect)
	s.router.HandleFunc("POST /workflows/start", s.handleWorkflowStart)
	s.router.HandleFunc("POST /workflows/pause", s.handleWorkflowPause)
	s.router.HandleFunc("POST /workflows/reset", s.handleWorkflowReset)

	// API
	s.router.HandleFunc("GET /api/state", s.handleAPIState)
}

// Handler returns the full middleware chain around the router.
func (s *Server) Handler() http.Handler {
	return s.cookies.LoadAndSave(logRequests(s.logger, htmx(s.router)))
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", "url", fmt.Sprintf("http://localhost:%d", s.port))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
