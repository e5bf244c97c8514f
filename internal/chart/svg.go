package chart

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// SVG renders the chart as inline SVG. Every mark carries a <title>
// element so browsers show the tooltip on hover.
func (c Chart) SVG() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<figure class="chart chart-%s">`, c.Kind)
		if c.Title != "" {
			fmt.Fprintf(&b, `<figcaption>%s</figcaption>`, templ.EscapeString(c.Title))
		}
		fmt.Fprintf(&b, `<svg viewBox="0 0 %d %d" width="100%%" role="img" aria-label="%s">`,
			c.Width, c.Height, templ.EscapeString(c.Title))

		switch c.Kind {
		case KindLine:
			c.writeLine(&b)
		case KindBar:
			c.writeBar(&b)
		case KindDonut:
			c.writeDonut(&b)
		}

		b.WriteString(`</svg>`)
		c.writeLegend(&b)
		b.WriteString(`</figure>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func (c Chart) writeLine(b *strings.Builder) {
	for j, l := range c.Legend {
		var pts []string
		for _, m := range c.Marks {
			if j < len(m.Dots) {
				pts = append(pts, fmt.Sprintf("%.2f,%.2f", m.Dots[j].X, m.Dots[j].Y))
			}
		}
		if len(pts) > 1 {
			fmt.Fprintf(b, `<polyline fill="none" stroke="%s" stroke-width="2" points="%s"/>`,
				l.Color, strings.Join(pts, " "))
		}
	}
	for _, m := range c.Marks {
		b.WriteString(`<g class="mark">`)
		writeTitle(b, m.Tooltip)
		for _, d := range m.Dots {
			fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="4" fill="%s"/>`, d.X, d.Y, d.Color)
		}
		if len(m.Dots) > 0 {
			fmt.Fprintf(b, `<text x="%.2f" y="%d" text-anchor="middle" class="axis">%s</text>`,
				m.Dots[0].X, c.Height-8, templ.EscapeString(m.Label))
		}
		b.WriteString(`</g>`)
	}
}

func (c Chart) writeBar(b *strings.Builder) {
	for _, m := range c.Marks {
		b.WriteString(`<g class="mark">`)
		writeTitle(b, m.Tooltip)
		fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" rx="3"/>`,
			m.X, m.Y, m.W, m.H, m.Color)
		fmt.Fprintf(b, `<text x="%.2f" y="%d" text-anchor="middle" class="axis">%s</text>`,
			m.X+m.W/2, c.Height-8, templ.EscapeString(m.Label))
		b.WriteString(`</g>`)
	}
}

func (c Chart) writeDonut(b *strings.Builder) {
	for _, m := range c.Marks {
		b.WriteString(`<g class="mark">`)
		writeTitle(b, m.Tooltip)
		if m.Path != "" {
			fmt.Fprintf(b, `<path d="%s" fill="%s"/>`, m.Path, m.Color)
		}
		b.WriteString(`</g>`)
	}
}

func (c Chart) writeLegend(b *strings.Builder) {
	if len(c.Legend) == 0 {
		return
	}
	b.WriteString(`<ul class="legend">`)
	for _, l := range c.Legend {
		fmt.Fprintf(b, `<li><span class="swatch" style="background:%s"></span>%s</li>`,
			l.Color, templ.EscapeString(l.Name))
	}
	b.WriteString(`</ul>`)
}

func writeTitle(b *strings.Builder, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, `<title>%s</title>`, templ.EscapeString(strings.Join(lines, "\n")))
}
