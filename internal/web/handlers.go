package web

import (
	"net/http"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
	"github.com/emiliopalmerini/mlopsdemo/internal/web/templates"
)

// handleView mounts the view routed at the request path, selects it and
// renders the page. htmx requests get the content swap and the route path
// to push.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.currentSession(r)

	view, err := sess.Mount(ctx, domain.ViewForPath(r.URL.Path))
	if err != nil {
		serverError(w, r, err)
		return
	}

	body, err := s.viewBody(r, view)
	if err != nil {
		serverError(w, r, err)
		return
	}
	nav := sess.Nav()

	if isHTMX(r) {
		w.Header().Set("HX-Push-Url", pushURL(r, view.ID()))
		render(w, r, templates.Navigate(shell(nav), body))
		return
	}
	render(w, r, templates.Page(shell(nav), body))
}

// pushURL is the route path for id, keeping the tab parameter.
func pushURL(r *http.Request, id domain.ViewID) string {
	u := id.Path()
	if tab := r.URL.Query().Get("tab"); tab != "" {
		u += "?tab=" + tab
	}
	return u
}

func (s *Server) handlePersona(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	sess := s.currentSession(r)

	var action domain.NavAction = domain.ClearPersona{}
	if v := r.FormValue("persona"); v != "" {
		id := domain.PersonaID(v)
		if _, ok := domain.LookupPersona(id); !ok {
			http.Error(w, "Unknown persona", http.StatusBadRequest)
			return
		}
		action = domain.SelectPersona{ID: id}
	}
	nav := sess.Dispatch(action)
	render(w, r, templates.TopBar(shell(nav)))
}
