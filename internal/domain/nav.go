package domain

// NavState is the process-wide UI state of one browser session. It is a
// value; use Reduce to derive the next one.
type NavState struct {
	Active  ViewID
	Persona PersonaID
}

// InitialNavState shows the overview with no persona.
func InitialNavState() NavState {
	return NavState{Active: ViewOverview}
}

// NavAction is one of SelectView, SelectPersona or ClearPersona.
type NavAction interface {
	isNavAction()
}

type SelectView struct{ ID ViewID }

type SelectPersona struct{ ID PersonaID }

type ClearPersona struct{}

func (SelectView) isNavAction()    {}
func (SelectPersona) isNavAction() {}
func (ClearPersona) isNavAction()  {}

// Reduce applies a to s. Unknown views fall back to the overview and
// unknown personas leave the state unchanged.
func Reduce(s NavState, a NavAction) NavState {
	switch a := a.(type) {
	case SelectView:
		s.Active = ParseViewID(string(a.ID))
	case SelectPersona:
		if _, ok := LookupPersona(a.ID); ok {
			s.Persona = a.ID
		}
	case ClearPersona:
		s.Persona = PersonaNone
	}
	return s
}

// CurrentPersona returns the selected persona, if any.
func (s NavState) CurrentPersona() (Persona, bool) {
	if s.Persona == PersonaNone {
		return Persona{}, false
	}
	return LookupPersona(s.Persona)
}
