package web

import (
	"net/http"

	"github.com/emiliopalmerini/mlopsdemo/internal/web/templates"
)

// Fragments poll the mounted view and never mount one themselves. A poll
// addressed to a view that is no longer mounted is told to stop.

func (s *Server) handleMetricsFragment(w http.ResponseWriter, r *http.Request) {
	metrics, err := s.currentSession(r).Metrics()
	if err != nil {
		fragmentError(w, r, err)
		return
	}
	poll := templates.Poll{URL: "/fragments/metrics", Every: s.opts.MetricPoll}
	render(w, r, templates.MetricGrid("overview-metrics", metrics, poll))
}

func (s *Server) handleLatencyFragment(w http.ResponseWriter, r *http.Request) {
	points, err := s.currentSession(r).Performance()
	if err != nil {
		fragmentError(w, r, err)
		return
	}
	poll := templates.Poll{URL: "/fragments/latency", Every: s.opts.ChartPoll}
	render(w, r, templates.LiveChart("latency-chart", performanceChart(points), poll))
}

func (s *Server) handleWorkflowFragment(w http.ResponseWriter, r *http.Request) {
	st, err := s.currentSession(r).Workflow()
	if err != nil {
		fragmentError(w, r, err)
		return
	}
	render(w, r, templates.WorkflowPanel(s.workflowData(st)))
}
