package templates

import (
	"context"

	"github.com/a-h/templ"
)

func Overview(d OverviewData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="view view-overview">`)
		h.raw(`<p class="lead">Real-time view of model performance, deployments and platform health.</p>`)
		h.component(ctx, MetricGrid("overview-metrics", d.Metrics, d.MetricsPoll))

		h.raw(`<div class="row">`)
		h.component(ctx, LiveChart("latency-chart", d.Performance, d.ChartPoll))
		h.component(ctx, LiveChart("models-chart", d.Models, Poll{}))
		h.raw(`</div>`)

		h.raw(`<div class="row">`)
		h.component(ctx, LiveChart("flows-chart", d.Flows, Poll{}))
		panel(h, "System Health", func() {
			h.raw(`<ul class="health">`)
			for _, c := range d.Health {
				h.f(`<li class="health-%s">%s <strong>%s</strong> <span>%s uptime</span> <span>%s</span></li>`,
					c.Status.String(), healthIcon(c.Status), c.Name, c.Uptime, c.ResponseTime)
			}
			h.raw(`</ul>`)
		})
		h.raw(`</div>`)

		panel(h, "Recent Activity", func() {
			h.raw(`<ul class="activity">`)
			for _, a := range d.Activity {
				h.f(`<li class="severity-%s"><time>%s</time> %s <em>%s</em></li>`,
					a.Severity.String(), a.When, a.Event, a.Kind)
			}
			h.raw(`</ul>`)
		})
		h.raw(`</div>`)
	})
}
