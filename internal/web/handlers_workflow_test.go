package web

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestWorkflow_Transitions(t *testing.T) {
	ts, c := testClient(t)
	get(t, c, ts.URL+"/workflows")

	_, body := post(t, c, ts.URL+"/workflows/start", nil)
	if !strings.Contains(body, `data-playing="true"`) {
		t.Error("expected playing after start")
	}
	if !strings.Contains(body, `hx-get="/fragments/workflow" hx-trigger="every 1000ms"`) {
		t.Error("expected the panel to poll while playing")
	}

	_, body = post(t, c, ts.URL+"/workflows/pause", nil)
	if !strings.Contains(body, `data-playing="false"`) {
		t.Error("expected paused")
	}
	if strings.Contains(body, `hx-trigger="every`) {
		t.Error("expected polling to stop when paused")
	}

	_, body = post(t, c, ts.URL+"/workflows/select", url.Values{"flow": {"flow3"}})
	if !strings.Contains(body, `data-flow="flow3"`) {
		t.Error("expected flow3 selected")
	}

	_, body = post(t, c, ts.URL+"/workflows/reset", nil)
	if !strings.Contains(body, `data-step="0" data-playing="false"`) {
		t.Error("expected reset to step 0, not playing")
	}

	st := state(t, ts, c)
	if st.Workflow == nil || st.Workflow.FlowID != "flow3" || st.Workflow.Step != 0 {
		t.Errorf("unexpected workflow state %+v", st.Workflow)
	}
}

func TestWorkflow_SelectErrors(t *testing.T) {
	ts, c := testClient(t)
	get(t, c, ts.URL+"/workflows")

	resp, _ := post(t, c, ts.URL+"/workflows/select", url.Values{"flow": {"nope"}})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown flow, got %d", resp.StatusCode)
	}
	resp, _ = post(t, c, ts.URL+"/workflows/select", url.Values{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing flow, got %d", resp.StatusCode)
	}
}

func TestWorkflow_ActionsNeedTheWorkflowView(t *testing.T) {
	ts, c := testClient(t)
	get(t, c, ts.URL+"/executive")

	for _, path := range []string{"/workflows/start", "/workflows/pause", "/workflows/reset"} {
		resp, _ := post(t, c, ts.URL+path, nil)
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("%s: expected 409, got %d", path, resp.StatusCode)
		}
	}
	resp, _ := post(t, c, ts.URL+"/workflows/select", url.Values{"flow": {"flow2"}})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("select: expected 409, got %d", resp.StatusCode)
	}

	st := state(t, ts, c)
	if st.View != "executive" || st.Mounted != "executive" || st.Workflow != nil {
		t.Errorf("expected executive untouched, got %+v", st)
	}
}

func TestFragments_PollTheMountedView(t *testing.T) {
	ts, c := testClient(t)
	get(t, c, ts.URL+"/")

	resp, body := get(t, c, ts.URL+"/fragments/metrics")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, `id="overview-metrics"`) {
		t.Error("expected overview metric grid")
	}

	_, body = get(t, c, ts.URL+"/fragments/latency")
	if n := strings.Count(body, `<g class="mark">`); n != 6 {
		t.Errorf("expected one mark per performance point, got %d", n)
	}
	if !strings.Contains(body, `id="latency-chart"`) {
		t.Error("expected the latency chart container")
	}

	resp, _ = get(t, c, ts.URL+"/fragments/workflow")
	if resp.StatusCode != stopPolling {
		t.Errorf("expected workflow poll stopped on the overview, got %d", resp.StatusCode)
	}
	if st := state(t, ts, c); st.Mounted != "overview" || len(st.Metrics) != 6 {
		t.Errorf("expected overview still mounted with 6 metrics, got %+v", st)
	}
}
