package sim

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

func testFlows() []domain.DeploymentFlow {
	steps := func(n int) []domain.WorkflowStep {
		out := make([]domain.WorkflowStep, n)
		for i := range out {
			out[i] = domain.WorkflowStep{ID: string(rune('a' + i)), Status: domain.StepPending}
		}
		return out
	}
	return []domain.DeploymentFlow{
		{ID: "flow1", Name: "Four", Steps: steps(4)},
		{ID: "flow2", Name: "Two", Steps: steps(2)},
		{ID: "empty", Name: "Empty"},
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
