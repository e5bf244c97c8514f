package web

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
	"github.com/emiliopalmerini/mlopsdemo/internal/logging"
	"github.com/emiliopalmerini/mlopsdemo/internal/session"
	"github.com/emiliopalmerini/mlopsdemo/internal/web/templates"
)

const sessionKey = "sid"

// currentSession resolves the browser cookie to a live session, creating
// one when the cookie is new or its session was reaped.
func (s *Server) currentSession(r *http.Request) *session.Session {
	ctx := r.Context()
	sess, created := s.sessions.GetOrCreate(ctx, s.cookies.GetString(ctx, sessionKey))
	if created {
		s.cookies.Put(ctx, sessionKey, sess.ID)
	}
	return sess
}

func shell(nav domain.NavState) templates.Shell {
	return templates.Shell{
		Nav:      nav,
		Views:    domain.Views,
		Personas: domain.Personas,
	}
}

// render writes c as HTML. Render failures after the header is sent can
// only be logged.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render failed", "path", r.URL.Path, "error", err)
	}
}

// stopPolling is the status htmx treats as "stop polling this element".
const stopPolling = 286

// fragmentError answers a poll. A poll for a view that is not mounted is
// stopped rather than failed.
func fragmentError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, session.ErrNotMounted) {
		w.WriteHeader(stopPolling)
		return
	}
	serverError(w, r, err)
}

// actionError answers a simulator action.
func actionError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, session.ErrNotMounted) {
		http.Error(w, "Workflows view is not open", http.StatusConflict)
		return
	}
	serverError(w, r, err)
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// activeTab returns the tab query parameter when it names one of tabs,
// otherwise the first tab.
func activeTab(r *http.Request, tabs []templates.Tab) string {
	want := r.URL.Query().Get("tab")
	for _, t := range tabs {
		if t.ID == want {
			return want
		}
	}
	if len(tabs) == 0 {
		return ""
	}
	return tabs[0].ID
}
