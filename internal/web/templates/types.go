package templates

import (
	"time"

	"github.com/emiliopalmerini/mlopsdemo/internal/chart"
	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
	"github.com/emiliopalmerini/mlopsdemo/internal/sim"
)

// Shell is the sidebar and top bar around every page.
type Shell struct {
	Nav      domain.NavState
	Views    []domain.View
	Personas []domain.Persona
}

// Poll is an htmx refresh hint. Zero Every disables polling.
type Poll struct {
	URL   string
	Every time.Duration
}

type OverviewData struct {
	Metrics      []domain.Metric
	MetricsPoll  Poll
	Performance  chart.Chart
	ChartPoll    Poll
	Models       chart.Chart
	Flows        chart.Chart
	Health       []domain.HealthComponent
	Activity     []domain.Activity
}

type Tab struct {
	ID    string
	Label string
}

type DataScientistData struct {
	Tab          string
	Tabs         []Tab
	Metrics      []domain.Metric
	Experiments  []domain.Experiment
	Models       []domain.ModelPerformance
	ModelChart   chart.Chart
	Features     []domain.Feature
	FeatureChart chart.Chart
}

type MLOpsData struct {
	Tab         string
	Tabs        []Tab
	Metrics     []domain.Metric
	Deployments []domain.Deployment
	Resources   chart.Chart
	Cluster     []domain.Metric
	Alerts      []domain.Alert
}

type RiskData struct {
	Tab        string
	Tabs       []Tab
	Metrics    []domain.Metric
	Events     []domain.FraudEvent
	Levels     chart.Chart
	Strategies []domain.Strategy
}

type ExecutiveData struct {
	KPIs         []domain.Metric
	ROI          chart.Chart
	CostSavings  chart.Chart
	Objectives   []domain.Objective
	Productivity []domain.ProductivityMetric
}

type WorkflowData struct {
	Flows []domain.DeploymentFlow
	Flow  domain.DeploymentFlow
	State sim.StepState
	Poll  Poll
}
