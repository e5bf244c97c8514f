package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

func DataScientist(d DataScientistData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="view view-data-scientist">`)
		h.component(ctx, MetricGrid("ds-metrics", d.Metrics, Poll{}))
		tabs(h, domain.ViewDataScientist.Path(), d.Tab, d.Tabs)

		switch d.Tab {
		case "models":
			h.component(ctx, LiveChart("model-chart", d.ModelChart, Poll{}))
			panel(h, "Model Registry", func() {
				h.raw(`<table class="models"><thead><tr><th>Model</th><th>Accuracy</th><th>Precision</th><th>Recall</th><th>F1</th></tr></thead><tbody>`)
				for _, m := range d.Models {
					h.f(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
						m.Name, formatPercent(m.Accuracy), formatPercent(m.Precision), formatPercent(m.Recall), formatPercent(m.F1))
				}
				h.raw(`</tbody></table>`)
			})
		case "features":
			h.component(ctx, LiveChart("feature-chart", d.FeatureChart, Poll{}))
			panel(h, "Feature Store", func() {
				h.raw(`<table class="features"><thead><tr><th>Feature</th><th>Importance</th><th>Type</th><th>Source</th></tr></thead><tbody>`)
				for _, f := range d.Features {
					h.f(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
						f.Name, formatScore(f.Importance), f.Type.String(), f.Source)
				}
				h.raw(`</tbody></table>`)
			})
		default:
			panel(h, "Experiments", func() {
				h.raw(`<table class="experiments"><thead><tr><th>ID</th><th>Name</th><th>Status</th><th>Accuracy</th><th>F1</th><th>Runtime</th><th>Created</th></tr></thead><tbody>`)
				for _, e := range d.Experiments {
					h.f(`<tr data-id="%s"><td>%s</td><td>%s</td><td class="status-%s">%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
						e.ID, e.ID, e.Name, e.Status.String(), e.Status.String(),
						formatPercent(e.Accuracy), formatPercent(e.F1), e.Runtime, e.CreatedAt)
				}
				h.raw(`</tbody></table>`)
			})
		}
		h.raw(`</div>`)
	})
}

func MLOps(d MLOpsData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="view view-mlops">`)
		h.component(ctx, MetricGrid("mlops-metrics", d.Metrics, Poll{}))
		tabs(h, domain.ViewMLOps.Path(), d.Tab, d.Tabs)

		switch d.Tab {
		case "infrastructure":
			h.component(ctx, LiveChart("resource-chart", d.Resources, Poll{}))
			panel(h, "Cluster Status", func() {
				h.component(ctx, MetricGrid("cluster-status", d.Cluster, Poll{}))
			})
		case "alerts":
			panel(h, "Recent Alerts", func() {
				h.raw(`<ul class="alerts">`)
				for _, a := range d.Alerts {
					h.f(`<li class="severity-%s"><strong>%s</strong> %s <time>%s</time></li>`,
						a.Severity.String(), a.Severity.String(), a.Message, a.When)
				}
				h.raw(`</ul>`)
			})
		default:
			panel(h, "Recent Deployments", func() {
				h.raw(`<table class="deployments"><thead><tr><th>Model</th><th>Environment</th><th>Status</th><th>When</th></tr></thead><tbody>`)
				for _, dep := range d.Deployments {
					h.f(`<tr><td>%s</td><td>%s</td><td class="status-%s">%s %s</td><td>%s</td></tr>`,
						dep.Model, dep.Environment, dep.Status.String(), stepIcon(dep.Status), dep.Status.String(), dep.When)
				}
				h.raw(`</tbody></table>`)
			})
		}
		h.raw(`</div>`)
	})
}

func RiskOps(d RiskData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="view view-risk">`)
		h.component(ctx, MetricGrid("risk-metrics", d.Metrics, Poll{}))
		tabs(h, domain.ViewRiskOps.Path(), d.Tab, d.Tabs)

		switch d.Tab {
		case "strategies":
			panel(h, "Active Strategies", func() {
				h.raw(`<table class="strategies"><thead><tr><th>Strategy</th><th>Status</th><th>Effectiveness</th></tr></thead><tbody>`)
				for _, s := range d.Strategies {
					h.f(`<tr><td>%s</td><td>%s</td><td>%s</td></tr>`, s.Name, s.Status, s.Effectiveness)
				}
				h.raw(`</tbody></table>`)
			})
		default:
			h.raw(`<div class="row">`)
			panel(h, "Fraud Events", func() {
				h.raw(`<table class="fraud-events"><thead><tr><th>Time</th><th>Seller</th><th>Risk Score</th><th>Level</th><th>Confidence</th><th>Reason</th></tr></thead><tbody>`)
				for _, e := range d.Events {
					h.f(`<tr class="risk-%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
						e.RiskLevel.String(), formatTimestamp(e.Timestamp), e.SellerID, formatScore(e.RiskScore),
						e.RiskLevel.String(), formatRatio(e.Confidence), e.Reason)
				}
				h.raw(`</tbody></table>`)
			})
			h.component(ctx, LiveChart("risk-levels", d.Levels, Poll{}))
			h.raw(`</div>`)
		}
		h.raw(`</div>`)
	})
}

func Executive(d ExecutiveData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="view view-executive">`)
		h.component(ctx, MetricGrid("executive-kpis", d.KPIs, Poll{}))

		h.raw(`<div class="row">`)
		h.component(ctx, LiveChart("roi-chart", d.ROI, Poll{}))
		h.component(ctx, LiveChart("savings-chart", d.CostSavings, Poll{}))
		h.raw(`</div>`)

		panel(h, "Strategic Objectives", func() {
			h.raw(`<ul class="objectives">`)
			for _, o := range d.Objectives {
				h.f(`<li><span>%s</span> <progress max="100" value="%.0f"></progress> <span>%s</span></li>`,
					o.Name, o.Progress()*100, o.Status)
			}
			h.raw(`</ul>`)
		})
		panel(h, "Team Productivity", func() {
			h.raw(`<table class="productivity"><thead><tr><th>Metric</th><th>Improvement</th><th>Status</th></tr></thead><tbody>`)
			for _, p := range d.Productivity {
				h.f(`<tr><td>%s</td><td>%s</td><td>%s</td></tr>`, p.Metric, p.Improvement, p.Status)
			}
			h.raw(`</tbody></table>`)
		})
		h.raw(`</div>`)
	})
}
