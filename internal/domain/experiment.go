package domain

// ExperimentStatus is the illustrative state of a training run.
type ExperimentStatus string

const (
	ExperimentRunning   ExperimentStatus = "running"
	ExperimentCompleted ExperimentStatus = "completed"
	ExperimentFailed    ExperimentStatus = "failed"
)

func (s ExperimentStatus) Valid() bool {
	switch s {
	case ExperimentRunning, ExperimentCompleted, ExperimentFailed:
		return true
	}
	return false
}

type Experiment struct {
	ID        string
	Name      string
	Status    ExperimentStatus
	Accuracy  float64
	F1        float64
	Runtime   string
	CreatedAt string // relative label, e.g. "2 hours ago"
}

// ModelPerformance is one row of the model comparison chart.
type ModelPerformance struct {
	Name      string
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}
