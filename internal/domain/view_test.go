package domain

import "testing"

func TestViewForPath(t *testing.T) {
	tests := map[string]ViewID{
		"/":              ViewOverview,
		"/datascientist": ViewDataScientist,
		"/mlops":         ViewMLOps,
		"/riskops":       ViewRiskOps,
		"/executive":     ViewExecutive,
		"/workflows":     ViewWorkflows,
		"/nope":          ViewOverview,
	}
	for path, want := range tests {
		if got := ViewForPath(path); got != want {
			t.Errorf("ViewForPath(%q): expected %s, got %s", path, want, got)
		}
	}
}

func TestViewPathsRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range Views {
		if seen[v.Path] {
			t.Errorf("duplicate path %s", v.Path)
		}
		seen[v.Path] = true
		if got := ViewForPath(v.ID.Path()); got != v.ID {
			t.Errorf("expected %s, got %s", v.ID, got)
		}
	}
}

func TestParseViewID(t *testing.T) {
	if got := ParseViewID("executive"); got != ViewExecutive {
		t.Errorf("expected executive, got %s", got)
	}
	if got := ParseViewID(""); got != ViewOverview {
		t.Errorf("expected overview fallback, got %s", got)
	}
	if ViewID("settings").Valid() {
		t.Error("settings should not be a valid view")
	}
}
