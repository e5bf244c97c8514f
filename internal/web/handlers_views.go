package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/mlopsdemo/internal/catalog"
	"github.com/emiliopalmerini/mlopsdemo/internal/chart"
	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
	"github.com/emiliopalmerini/mlopsdemo/internal/session"
	"github.com/emiliopalmerini/mlopsdemo/internal/sim"
	"github.com/emiliopalmerini/mlopsdemo/internal/web/templates"
)

var (
	dataScientistTabs = []templates.Tab{
		{ID: "experiments", Label: "🧪 Experiments"},
		{ID: "models", Label: "🧠 Model Registry"},
		{ID: "features", Label: "📊 Feature Store"},
	}
	mlopsTabs = []templates.Tab{
		{ID: "deployments", Label: "🚀 Deployments"},
		{ID: "infrastructure", Label: "🖥️ Infrastructure"},
		{ID: "alerts", Label: "🚨 Alerts"},
	}
	riskTabs = []templates.Tab{
		{ID: "events", Label: "🚨 Fraud Events"},
		{ID: "strategies", Label: "🛡️ Strategies"},
	}
)

// viewBody builds the content of a freshly mounted view.
func (s *Server) viewBody(r *http.Request, view *session.View) (templ.Component, error) {
	ctx := r.Context()
	switch view.ID() {
	case domain.ViewOverview:
		d, err := s.overviewData(ctx, view)
		if err != nil {
			return nil, err
		}
		return templates.Overview(d), nil
	case domain.ViewDataScientist:
		d, err := s.dataScientistData(ctx)
		if err != nil {
			return nil, err
		}
		d.Tab = activeTab(r, d.Tabs)
		return templates.DataScientist(d), nil
	case domain.ViewMLOps:
		d := mlopsData()
		d.Tab = activeTab(r, d.Tabs)
		return templates.MLOps(d), nil
	case domain.ViewRiskOps:
		d := riskData(view.FraudEvents())
		d.Tab = activeTab(r, d.Tabs)
		return templates.RiskOps(d), nil
	case domain.ViewExecutive:
		return templates.Executive(executiveData()), nil
	case domain.ViewWorkflows:
		return templates.Workflows(s.workflowData(view.Workflow())), nil
	}
	return nil, fmt.Errorf("unknown view %q", view.ID())
}

func (s *Server) overviewData(ctx context.Context, view *session.View) (templates.OverviewData, error) {
	models, err := s.catalog.ListModelPerformance(ctx)
	if err != nil {
		return templates.OverviewData{}, fmt.Errorf("loading overview: %w", err)
	}

	return templates.OverviewData{
		Metrics:     view.Metrics(),
		MetricsPoll: templates.Poll{URL: "/fragments/metrics", Every: s.opts.MetricPoll},
		Performance: performanceChart(view.Performance()),
		ChartPoll:   templates.Poll{URL: "/fragments/latency", Every: s.opts.ChartPoll},
		Models:      modelChart(models),
		Flows:       chart.Donut("Deployment Flows", catalog.FlowDistribution()),
		Health:      catalog.SystemHealth(),
		Activity:    catalog.RecentActivity(),
	}, nil
}

func (s *Server) dataScientistData(ctx context.Context) (templates.DataScientistData, error) {
	var (
		experiments []domain.Experiment
		features    []domain.Feature
		models      []domain.ModelPerformance
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		experiments, err = s.catalog.ListExperiments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		features, err = s.catalog.ListFeatures(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		models, err = s.catalog.ListModelPerformance(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return templates.DataScientistData{}, fmt.Errorf("loading data scientist view: %w", err)
	}

	return templates.DataScientistData{
		Tabs:         dataScientistTabs,
		Metrics:      catalog.DataScientistMetrics(),
		Experiments:  experiments,
		Models:       models,
		ModelChart:   modelChart(models),
		Features:     features,
		FeatureChart: featureChart(features),
	}, nil
}

func mlopsData() templates.MLOpsData {
	return templates.MLOpsData{
		Tabs:        mlopsTabs,
		Metrics:     catalog.MLOpsMetrics(),
		Deployments: catalog.RecentDeployments(),
		Resources:   sampleChart("Resource Utilisation", "Utilisation", "%.0f%%", catalog.ResourceUtilisation()),
		Cluster:     catalog.ClusterStatus(),
		Alerts:      catalog.RecentAlerts(),
	}
}

func riskData(events []domain.FraudEvent) templates.RiskData {
	return templates.RiskData{
		Tabs:       riskTabs,
		Metrics:    catalog.RiskMetrics(),
		Events:     events,
		Levels:     chart.Donut("Risk Levels", catalog.RiskDistribution(events)),
		Strategies: catalog.ActiveStrategies(),
	}
}

func executiveData() templates.ExecutiveData {
	return templates.ExecutiveData{
		KPIs:         catalog.ExecutiveKPIs(),
		ROI:          sampleLine("ROI Growth", "ROI (%)", catalog.ROIGrowth()),
		CostSavings:  sampleChart("Cost Savings by Category", "Savings", "$%.1fM", catalog.CostSavings()),
		Objectives:   catalog.StrategicObjectives(),
		Productivity: catalog.TeamProductivity(),
	}
}

func (s *Server) workflowData(st *sim.Stepper) templates.WorkflowData {
	return templates.WorkflowData{
		Flows: st.Flows(),
		Flow:  st.Flow(),
		State: st.State(),
		Poll:  templates.Poll{URL: "/fragments/workflow", Every: s.opts.StepPoll},
	}
}
