package sim

import (
	"context"
	"sync"
	"time"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

// StepState is the workflow simulator cursor. Transitions are pure.
type StepState struct {
	FlowID   string
	Last     int // highest valid cursor for the selected flow
	Current  int
	Playing  bool
	Finished bool // the last run reached the final step
}

// InitialStepState selects the first flow, cursor at 0, not playing.
func InitialStepState(flows []domain.DeploymentFlow) StepState {
	if len(flows) == 0 {
		return StepState{}
	}
	return StepState{FlowID: flows[0].ID, Last: flows[0].LastStep()}
}

// Start resumes from the cursor, or begins again from 0 when the previous
// run already finished.
func (s StepState) Start() StepState {
	if s.Finished {
		s.Current = 0
		s.Finished = false
	}
	s.Playing = true
	return s
}

// Tick advances the cursor, or ends the run when it sits on the last step.
func (s StepState) Tick() StepState {
	if !s.Playing {
		return s
	}
	if s.Current < s.Last {
		s.Current++
		return s
	}
	s.Playing = false
	s.Finished = true
	return s
}

func (s StepState) Pause() StepState {
	s.Playing = false
	return s
}

func (s StepState) Reset() StepState {
	s.Playing = false
	s.Finished = false
	s.Current = 0
	return s
}

// SelectFlow switches flow and keeps the cursor, clamped to the new flow.
func (s StepState) SelectFlow(f domain.DeploymentFlow) StepState {
	s.FlowID = f.ID
	s.Last = f.LastStep()
	if s.Current > s.Last {
		s.Current = s.Last
	}
	return s
}

// Stepper drives a StepState on a timer.
type Stepper struct {
	ctx   context.Context
	flows []domain.DeploymentFlow

	ctl sync.Mutex // serialises Start, Pause, Reset and Stop

	mu     sync.Mutex
	state  StepState
	onStep func(StepState)

	task *Task
}

// NewStepper returns a stepper whose timer lives at most as long as ctx.
func NewStepper(ctx context.Context, flows []domain.DeploymentFlow, period time.Duration) *Stepper {
	s := &Stepper{
		ctx:   ctx,
		flows: flows,
		state: InitialStepState(flows),
	}
	s.task = NewTask(period, s.advance)
	return s
}

// OnStep registers fn to receive the state after every tick that moves
// the cursor. The tick that ends a run on the last step is not reported.
func (s *Stepper) OnStep(fn func(StepState)) {
	s.mu.Lock()
	s.onStep = fn
	s.mu.Unlock()
}

func (s *Stepper) advance() bool {
	s.mu.Lock()
	prev := s.state.Current
	s.state = s.state.Tick()
	st, fn := s.state, s.onStep
	s.mu.Unlock()

	if fn != nil && st.Current != prev {
		fn(st)
	}
	return st.Playing
}

func (s *Stepper) State() StepState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Stepper) Flows() []domain.DeploymentFlow {
	return s.flows
}

// Flow returns the selected flow.
func (s *Stepper) Flow() domain.DeploymentFlow {
	id := s.State().FlowID
	for _, f := range s.flows {
		if f.ID == id {
			return f
		}
	}
	return domain.DeploymentFlow{}
}

// Start begins a run. It reports false when a run was already playing.
func (s *Stepper) Start() bool {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	if s.state.Playing {
		s.mu.Unlock()
		return false
	}
	s.state = s.state.Start()
	s.mu.Unlock()

	// a loop that just ended the previous run may still be exiting
	s.task.Stop()
	s.task.Start(s.ctx)
	return true
}

func (s *Stepper) Pause() {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	s.state = s.state.Pause()
	s.mu.Unlock()
	s.task.Stop()
}

func (s *Stepper) Reset() {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	s.state = s.state.Reset()
	s.mu.Unlock()
	s.task.Stop()
}

// SelectFlow switches to the flow with the given id. Unknown ids are
// ignored and reported as false.
func (s *Stepper) SelectFlow(id string) bool {
	for _, f := range s.flows {
		if f.ID != id {
			continue
		}
		s.mu.Lock()
		s.state = s.state.SelectFlow(f)
		s.mu.Unlock()
		return true
	}
	return false
}

// Stop cancels any pending advance without touching the cursor.
func (s *Stepper) Stop() {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	s.state.Playing = false
	s.mu.Unlock()
	s.task.Stop()
}
