package web

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestViews_RenderTheirDataset(t *testing.T) {
	ts, c := testClient(t)

	tests := []struct {
		path string
		view string
		want []string
	}{
		{"/", "overview", []string{"Total Models", "Latency &amp; Throughput (24h)", "Deployment Flows", "System Health", "Recent Activity"}},
		{"/datascientist", "data-scientist", []string{"Active Experiments", "Fraud Detection XGBoost v2.1"}},
		{"/datascientist?tab=features", "data-scientist", []string{"Feature Importance", "payment_decline_rate_7d"}},
		{"/datascientist?tab=models", "data-scientist", []string{"Model Registry", "Fraud Detector v2"}},
		{"/mlops", "mlops-engineer", []string{"Active Pipelines", "Recent Deployments", "Fraud Detector v2.1"}},
		{"/mlops?tab=infrastructure", "mlops-engineer", []string{"Resource Utilisation", "Running Pods"}},
		{"/mlops?tab=alerts", "mlops-engineer", []string{"Model endpoint timeout"}},
		{"/riskops", "risk-operations", []string{"Fraud Events", "Risk Levels", "High Risk Alerts"}},
		{"/riskops?tab=strategies", "risk-operations", []string{"Velocity Check"}},
		{"/executive", "executive", []string{"Platform ROI", "ROI Growth", "Cost Savings by Category", "Strategic Objectives", "Team Productivity"}},
		{"/workflows", "workflows", []string{"workflow-panel", "Same Project (Element → Element)"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, c, ts.URL+tt.path)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}
			if !strings.Contains(body, `<main id="content" data-view="`+tt.view+`">`) {
				t.Errorf("expected view %s to be rendered", tt.view)
			}
			for _, w := range tt.want {
				if !strings.Contains(body, w) {
					t.Errorf("expected body to contain %q", w)
				}
			}
		})
	}
}

func TestDataScientist_ShowsExactlyThreeExperiments(t *testing.T) {
	ts, c := testClient(t)
	_, body := get(t, c, ts.URL+"/datascientist")

	if n := strings.Count(body, `<tr data-id="exp-`); n != 3 {
		t.Errorf("expected 3 experiment rows, got %d", n)
	}
	for _, id := range []string{"exp-001", "exp-002", "exp-003"} {
		if !strings.Contains(body, `data-id="`+id+`"`) {
			t.Errorf("expected experiment %s", id)
		}
	}
}

func TestUnknownPathsAreNotFound(t *testing.T) {
	ts, c := testClient(t)
	for _, path := range []string{"/favicon.ico", "/robots.txt", "/does-not-exist", "/workflows/extra"} {
		resp, _ := get(t, c, ts.URL+path)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, resp.StatusCode)
		}
	}
}

// Requests that are not a sidebar navigation must leave the active view,
// the mounted view and its simulator exactly as they were.
func TestNonNavigationRequestsKeepViewState(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"favicon", http.MethodGet, "/favicon.ico", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/wp-login.php", http.StatusNotFound},
		{"stale metrics poll", http.MethodGet, "/fragments/metrics", stopPolling},
		{"stale latency poll", http.MethodGet, "/fragments/latency", stopPolling},
		{"workflow poll", http.MethodGet, "/fragments/workflow", http.StatusOK},
		{"persona", http.MethodPost, "/nav/persona", http.StatusOK},
		{"state", http.MethodGet, "/api/state", http.StatusOK},
		{"health", http.MethodGet, "/health", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, c := testClient(t)
			get(t, c, ts.URL+"/workflows")
			post(t, c, ts.URL+"/workflows/select", url.Values{"flow": {"flow2"}})
			post(t, c, ts.URL+"/workflows/start", nil)

			var resp *http.Response
			if tt.method == http.MethodPost {
				resp, _ = post(t, c, ts.URL+tt.path, url.Values{"persona": {"executive"}})
			} else {
				resp, _ = get(t, c, ts.URL+tt.path)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("expected %d, got %d", tt.status, resp.StatusCode)
			}

			st := state(t, ts, c)
			if st.View != "workflows" || st.Mounted != "workflows" {
				t.Errorf("expected workflows active and mounted, got view=%s mounted=%s", st.View, st.Mounted)
			}
			if st.Workflow == nil || st.Workflow.FlowID != "flow2" || !st.Workflow.Playing {
				t.Errorf("expected flow2 still playing, got %+v", st.Workflow)
			}
		})
	}
}

func TestHTMXNavigation(t *testing.T) {
	ts, c := testClient(t)
	resp, body := get(t, c, ts.URL+"/executive", "HX-Request", "true")

	if got := resp.Header.Get("HX-Push-Url"); got != "/executive" {
		t.Errorf("expected HX-Push-Url /executive, got %q", got)
	}
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("expected a fragment, got a full page")
	}
	if !strings.Contains(body, `hx-swap-oob="true"`) {
		t.Error("expected out of band sidebar and top bar")
	}

	resp, _ = get(t, c, ts.URL+"/riskops?tab=strategies", "HX-Request", "true")
	if got := resp.Header.Get("HX-Push-Url"); got != "/riskops?tab=strategies" {
		t.Errorf("expected tab kept in pushed url, got %q", got)
	}
}

func TestPersona(t *testing.T) {
	ts, c := testClient(t)
	get(t, c, ts.URL+"/mlops")

	resp, body := post(t, c, ts.URL+"/nav/persona", url.Values{"persona": {"executive"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, `<span class="persona-name">Executive</span>`) {
		t.Error("expected executive persona in top bar")
	}

	st := state(t, ts, c)
	if st.Persona != "executive" {
		t.Errorf("expected persona executive, got %q", st.Persona)
	}
	if st.View != "mlops-engineer" {
		t.Errorf("expected persona to leave the view alone, got %q", st.View)
	}

	resp, _ = post(t, c, ts.URL+"/nav/persona", url.Values{"persona": {"pirate"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown persona, got %d", resp.StatusCode)
	}

	_, body = post(t, c, ts.URL+"/nav/persona", url.Values{"persona": {""}})
	if !strings.Contains(body, "Guest") {
		t.Error("expected empty persona to clear the selection")
	}
	if st := state(t, ts, c); st.Persona != "" {
		t.Errorf("expected persona cleared, got %q", st.Persona)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	ts, c1 := testClient(t)
	get(t, c1, ts.URL+"/workflows")
	post(t, c1, ts.URL+"/workflows/start", nil)

	c2 := &http.Client{}
	st := state(t, ts, c2)
	if st.Workflow != nil || st.Mounted != "" {
		t.Errorf("expected a fresh session, got %+v", st)
	}
	if got := state(t, ts, c1); got.Workflow == nil || !got.Workflow.Playing {
		t.Errorf("expected first session still playing, got %+v", got.Workflow)
	}
}
