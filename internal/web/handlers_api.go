package web

import (
	"encoding/json"
	"net/http"
)

type apiMetric struct {
	Key     string  `json:"key"`
	Title   string  `json:"title"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Live    bool    `json:"live"`
}

type apiWorkflow struct {
	FlowID   string `json:"flow_id"`
	Step     int    `json:"step"`
	LastStep int    `json:"last_step"`
	Playing  bool   `json:"playing"`
	Finished bool   `json:"finished"`
}

type apiState struct {
	Session  string       `json:"session"`
	View     string       `json:"view"`
	Persona  string       `json:"persona,omitempty"`
	Mounted  string       `json:"mounted,omitempty"`
	Metrics  []apiMetric  `json:"metrics,omitempty"`
	Workflow *apiWorkflow `json:"workflow,omitempty"`
}

func (s *Server) handleAPIState(w http.ResponseWriter, r *http.Request) {
	snap := s.currentSession(r).Snapshot()

	state := apiState{
		Session: snap.ID,
		View:    snap.Nav.Active.String(),
		Persona: string(snap.Nav.Persona),
		Mounted: snap.Mounted.String(),
	}
	for _, m := range snap.Metrics {
		state.Metrics = append(state.Metrics, apiMetric{
			Key:     m.Key,
			Title:   m.Title,
			Value:   m.Value,
			Display: m.Display(),
			Live:    m.Live(),
		})
	}
	if st := snap.Workflow; st != nil {
		state.Workflow = &apiWorkflow{
			FlowID:   st.FlowID,
			Step:     st.Current,
			LastStep: st.Last,
			Playing:  st.Playing,
			Finished: st.Finished,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(state); err != nil {
		serverError(w, r, err)
	}
}
