package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/felixge/httpsnoop"

	"github.com/emiliopalmerini/mlopsdemo/internal/logging"
)

// logRequests logs one line per request and stores the logger in the
// request context.
func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(logging.NewContext(r.Context(), logger))
		m := httpsnoop.CaptureMetrics(next, w, r)

		level := slog.LevelDebug
		if m.Code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"duration", m.Duration,
			"bytes", m.Written,
		)
	})
}

type contextKey string

const htmxKey contextKey = "htmx"

// htmx marks requests issued by htmx so handlers can answer with fragments.
func htmx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isHTMX := r.Header.Get("HX-Request") == "true"
		ctx := context.WithValue(r.Context(), htmxKey, isHTMX)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isHTMX(r *http.Request) bool {
	if v, ok := r.Context().Value(htmxKey).(bool); ok {
		return v
	}
	return false
}
