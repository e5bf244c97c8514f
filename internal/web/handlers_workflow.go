package web

import (
	"net/http"

	"github.com/emiliopalmerini/mlopsdemo/internal/sim"
	"github.com/emiliopalmerini/mlopsdemo/internal/web/templates"
)

// Simulator actions act on the mounted workflow view only.

func (s *Server) renderWorkflow(w http.ResponseWriter, r *http.Request, st *sim.Stepper) {
	render(w, r, templates.WorkflowPanel(s.workflowData(st)))
}

func (s *Server) handleWorkflowSelect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	id := r.FormValue("flow")
	if id == "" {
		http.Error(w, "Flow is required", http.StatusBadRequest)
		return
	}

	st, err := s.currentSession(r).Workflow()
	if err != nil {
		actionError(w, r, err)
		return
	}
	if !st.SelectFlow(id) {
		http.Error(w, "Unknown flow", http.StatusNotFound)
		return
	}
	s.renderWorkflow(w, r, st)
}

func (s *Server) handleWorkflowStart(w http.ResponseWriter, r *http.Request) {
	st, err := s.currentSession(r).StartWorkflow(r.Context())
	if err != nil {
		actionError(w, r, err)
		return
	}
	s.renderWorkflow(w, r, st)
}

func (s *Server) handleWorkflowPause(w http.ResponseWriter, r *http.Request) {
	st, err := s.currentSession(r).Workflow()
	if err != nil {
		actionError(w, r, err)
		return
	}
	st.Pause()
	s.renderWorkflow(w, r, st)
}

func (s *Server) handleWorkflowReset(w http.ResponseWriter, r *http.Request) {
	st, err := s.currentSession(r).Workflow()
	if err != nil {
		actionError(w, r, err)
		return
	}
	st.Reset()
	s.renderWorkflow(w, r, st)
}
