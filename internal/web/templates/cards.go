package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/mlopsdemo/internal/chart"
	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

// MetricGrid renders one card per metric. With a poll the grid refreshes
// itself from p.URL.
func MetricGrid(id string, metrics []domain.Metric, p Poll) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.f(`<section id="%s" class="metric-grid"%s>`, id, pollAttrs(p))
		for _, m := range metrics {
			metricCard(h, m)
		}
		h.raw(`</section>`)
	})
}

func metricCard(h *html, m domain.Metric) {
	live := ""
	if m.Live() {
		live = " live"
	}
	h.f(`<article class="metric-card%s" data-key="%s" style="border-top-color:%s">`, safe(live), m.Key, m.Color)
	h.f(`<div class="metric-title">%s %s</div>`, m.Icon, m.Title)
	h.f(`<div class="metric-value">%s</div>`, m.Display())
	if m.Change != "" {
		h.f(`<div class="metric-change trend-%s">%s %s</div>`, m.Trend.String(), trendArrow(m.Trend), m.Change)
	}
	h.raw(`</article>`)
}

// LiveChart wraps a chart in a container that can poll for a fresh copy.
func LiveChart(id string, c chart.Chart, p Poll) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.f(`<div id="%s" class="panel"%s>`, id, pollAttrs(p))
		h.component(ctx, c.SVG())
		h.raw(`</div>`)
	})
}

func panel(h *html, title string, body func()) {
	h.raw(`<section class="panel">`)
	if title != "" {
		h.f(`<h2>%s</h2>`, title)
	}
	body()
	h.raw(`</section>`)
}

func tabs(h *html, path, active string, ts []Tab) {
	h.raw(`<nav class="tabs">`)
	for _, t := range ts {
		class := ""
		if t.ID == active {
			class = ` class="active"`
		}
		href := path + "?tab=" + t.ID
		h.f(`<a%s href="%s" hx-get="%s" hx-target="#content" hx-swap="outerHTML">%s</a>`,
			safe(class), href, href, t.Label)
	}
	h.raw(`</nav>`)
}
