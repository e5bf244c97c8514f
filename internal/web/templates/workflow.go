package templates

import (
	"context"

	"github.com/a-h/templ"
)

// WorkflowPanel is the flow picker, controls and step list. It polls
// itself while a run is playing.
func WorkflowPanel(d WorkflowData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		poll := Poll{}
		if d.State.Playing {
			poll = d.Poll
		}
		h.f(`<section id="workflow-panel" class="workflow" data-flow="%s" data-step="%d" data-playing="%t"%s>`,
			d.Flow.ID, d.State.Current, d.State.Playing, pollAttrs(poll))

		h.raw(`<div class="flow-picker">`)
		for _, f := range d.Flows {
			class := "flow"
			if f.ID == d.Flow.ID {
				class = "flow active"
			}
			h.f(`<form hx-post="/workflows/select" hx-target="#workflow-panel" hx-swap="outerHTML">`+
				`<input type="hidden" name="flow" value="%s">`+
				`<button class="%s" style="border-color:%s" title="%s">%s %s</button></form>`,
				f.ID, class, f.Color, f.Description, f.Icon, f.Name)
		}
		h.raw(`</div>`)

		h.f(`<header class="flow-header"><h2>%s %s</h2><p>%s</p></header>`, d.Flow.Icon, d.Flow.Name, d.Flow.Description)

		h.raw(`<div class="controls">`)
		if d.State.Playing {
			h.raw(`<button hx-post="/workflows/pause" hx-target="#workflow-panel" hx-swap="outerHTML">⏸ Pause</button>`)
		} else {
			h.raw(`<button hx-post="/workflows/start" hx-target="#workflow-panel" hx-swap="outerHTML">▶ Start</button>`)
		}
		h.raw(`<button hx-post="/workflows/reset" hx-target="#workflow-panel" hx-swap="outerHTML">⟲ Reset</button>`)
		if n := len(d.Flow.Steps); n > 0 {
			h.f(`<span class="progress">Step %d of %d</span>`, d.State.Current+1, n)
		}
		if d.State.Finished {
			h.raw(`<span class="finished">Run complete</span>`)
		}
		h.raw(`</div>`)

		h.raw(`<ol class="steps">`)
		for i, st := range d.Flow.Steps {
			class := "step step-" + st.Status.String()
			if i == d.State.Current {
				class += " current"
			}
			h.f(`<li class="%s" data-step-id="%s"><div class="step-head">%s <strong>%s</strong>`,
				class, st.ID, stepIcon(st.Status), st.Title)
			if st.Duration != nil {
				h.f(` <span class="duration">%s</span>`, *st.Duration)
			}
			h.f(`</div><p>%s</p>`, st.Description)
			if len(st.Details) > 0 {
				h.raw(`<ul class="details">`)
				for _, det := range st.Details {
					h.f(`<li>%s</li>`, det)
				}
				h.raw(`</ul>`)
			}
			h.raw(`</li>`)
		}
		h.raw(`</ol></section>`)
	})
}

func Workflows(d WorkflowData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="view view-workflows">`)
		h.raw(`<p class="lead">Step through a deployment flow. Runs advance one step at a time.</p>`)
		h.component(ctx, WorkflowPanel(d))
		h.raw(`</div>`)
	})
}
