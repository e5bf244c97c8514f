package domain

// StepStatus is the status printed on a workflow step. It is static data
// and is not driven by the step simulator's cursor.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepRunning   StepStatus = "running"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
)

func (s StepStatus) Valid() bool {
	switch s {
	case StepPending, StepRunning, StepCompleted, StepFailed:
		return true
	}
	return false
}

type WorkflowStep struct {
	ID          string
	Title       string
	Description string
	Status      StepStatus
	Duration    *string
	Details     []string
}

// DeploymentFlow is a named, ordered list of steps.
type DeploymentFlow struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
	Steps       []WorkflowStep
}

// LastStep returns the highest valid cursor for the flow, 0 for an empty flow.
func (f DeploymentFlow) LastStep() int {
	if len(f.Steps) == 0 {
		return 0
	}
	return len(f.Steps) - 1
}
