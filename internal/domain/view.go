package domain

// ViewID is the closed set of dashboard views.
type ViewID string

const (
	ViewOverview      ViewID = "overview"
	ViewDataScientist ViewID = "data-scientist"
	ViewMLOps         ViewID = "mlops-engineer"
	ViewRiskOps       ViewID = "risk-operations"
	ViewExecutive     ViewID = "executive"
	ViewWorkflows     ViewID = "workflows"
)

// View describes a sidebar entry.
type View struct {
	ID   ViewID
	Name string
	Icon string
	Path string
}

// Views is the sidebar in display order. Paths map 1:1 to ids.
var Views = []View{
	{ID: ViewOverview, Name: "Platform Overview", Icon: "🏠", Path: "/"},
	{ID: ViewDataScientist, Name: "Data Scientist", Icon: "🧠", Path: "/datascientist"},
	{ID: ViewMLOps, Name: "MLOps Engineer", Icon: "⚙️", Path: "/mlops"},
	{ID: ViewRiskOps, Name: "Risk Operations", Icon: "🛡️", Path: "/riskops"},
	{ID: ViewExecutive, Name: "Executive", Icon: "📈", Path: "/executive"},
	{ID: ViewWorkflows, Name: "Workflow Visualization", Icon: "🔀", Path: "/workflows"},
}

func (v ViewID) Valid() bool {
	_, ok := lookupView(v)
	return ok
}

// Path returns the route for the view. Unknown ids route to the overview.
func (v ViewID) Path() string {
	view, ok := lookupView(v)
	if !ok {
		return "/"
	}
	return view.Path
}

// Name returns the sidebar label.
func (v ViewID) Name() string {
	view, ok := lookupView(v)
	if !ok {
		return Views[0].Name
	}
	return view.Name
}

// ParseViewID maps any string to a view, falling back to the overview.
func ParseViewID(s string) ViewID {
	if id := ViewID(s); id.Valid() {
		return id
	}
	return ViewOverview
}

// ViewForPath maps a route path to its view, falling back to the overview.
func ViewForPath(path string) ViewID {
	for _, v := range Views {
		if v.Path == path {
			return v.ID
		}
	}
	return ViewOverview
}

func lookupView(id ViewID) (View, bool) {
	for _, v := range Views {
		if v.ID == id {
			return v, true
		}
	}
	return View{}, false
}
