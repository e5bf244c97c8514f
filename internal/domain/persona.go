package domain

// PersonaID selects the label shown in the top bar. It grants nothing and
// filters nothing.
type PersonaID string

const (
	PersonaNone          PersonaID = ""
	PersonaDataScientist PersonaID = "data-scientist"
	PersonaMLOpsEngineer PersonaID = "mlops-engineer"
	PersonaRiskOps       PersonaID = "risk-operations"
	PersonaExecutive     PersonaID = "executive"
)

type Persona struct {
	ID          PersonaID
	Name        string
	Icon        string
	Color       string
	Description string
}

// Personas is the fixed persona list in display order.
var Personas = []Persona{
	{ID: PersonaDataScientist, Name: "Data Scientist", Icon: "🧠", Color: "#8b5cf6", Description: "Model development and experimentation"},
	{ID: PersonaMLOpsEngineer, Name: "MLOps Engineer", Icon: "🔧", Color: "#3b82f6", Description: "Deployment and infrastructure management"},
	{ID: PersonaRiskOps, Name: "Risk Operations", Icon: "🛡️", Color: "#ef4444", Description: "Fraud monitoring and strategy management"},
	{ID: PersonaExecutive, Name: "Executive", Icon: "📈", Color: "#10b981", Description: "Strategic oversight and KPIs"},
}

// LookupPersona returns the persona with the given id.
func LookupPersona(id PersonaID) (Persona, bool) {
	for _, p := range Personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}
