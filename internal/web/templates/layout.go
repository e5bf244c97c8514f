package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

// Page wraps body in the document, sidebar and top bar.
func Page(shell Shell, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.f(`<title>%s · Seller Risk MLOps</title>`, shell.Nav.Active.Name())
		h.raw(`<link rel="stylesheet" href="/static/app.css">`)
		h.raw(`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
		h.raw(`</head><body><div class="app">`)
		sidebar(h, shell, false)
		h.raw(`<div class="main">`)
		topBar(h, shell, false)
		h.component(ctx, Content(shell.Nav.Active, body))
		h.raw(`</div></div></body></html>`)
	})
}

// Navigate is the htmx answer to a view change: the new content plus the
// sidebar and top bar swapped out of band.
func Navigate(shell Shell, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.component(ctx, Content(shell.Nav.Active, body))
		sidebar(h, shell, true)
		topBar(h, shell, true)
	})
}

// Content is the swappable view area.
func Content(active domain.ViewID, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.f(`<main id="content" data-view="%s">`, active.String())
		h.component(ctx, body)
		h.raw(`</main>`)
	})
}

// TopBar shows the active view and the persona picker.
func TopBar(shell Shell) templ.Component {
	return component(func(ctx context.Context, h *html) {
		topBar(h, shell, false)
	})
}

func oobAttr(oob bool) safe {
	if oob {
		return ` hx-swap-oob="true"`
	}
	return ""
}

func sidebar(h *html, shell Shell, oob bool) {
	h.f(`<nav id="sidebar" class="sidebar"%s><div class="brand">🛡️ Seller Risk MLOps</div><ul>`, oobAttr(oob))
	for _, v := range shell.Views {
		class := ""
		if v.ID == shell.Nav.Active {
			class = ` class="active"`
		}
		h.f(`<li%s><a href="%s" hx-get="%s" hx-target="#content" hx-swap="outerHTML">%s %s</a></li>`,
			safe(class), v.Path, v.Path, v.Icon, v.Name)
	}
	h.raw(`</ul></nav>`)
}

func topBar(h *html, shell Shell, oob bool) {
	h.f(`<header id="topbar" class="topbar"%s>`, oobAttr(oob))
	h.f(`<h1>%s</h1>`, shell.Nav.Active.Name())
	h.raw(`<form hx-post="/nav/persona" hx-target="#topbar" hx-swap="outerHTML" hx-trigger="change">`)
	h.raw(`<select name="persona" aria-label="Persona"><option value="">Select persona</option>`)
	for _, p := range shell.Personas {
		sel := ""
		if p.ID == shell.Nav.Persona {
			sel = " selected"
		}
		h.f(`<option value="%s"%s>%s %s</option>`, string(p.ID), safe(sel), p.Icon, p.Name)
	}
	h.raw(`</select></form>`)
	if p, ok := shell.Nav.CurrentPersona(); ok {
		h.f(`<div class="persona" style="color:%s"><span class="persona-icon">%s</span> <span class="persona-name">%s</span></div>`,
			p.Color, p.Icon, p.Name)
	} else {
		h.raw(`<div class="persona persona-none">👤 Guest</div>`)
	}
	h.raw(`</header>`)
}
