package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// safe is markup that f writes without escaping.
type safe string

// html writes markup and remembers the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes s escaped.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// f writes a formatted fragment. Every argument is escaped after
// formatting except safe ones; the format itself is written as is.
func (h *html) f(format string, args ...any) {
	for i, a := range args {
		if _, ok := a.(safe); ok {
			continue
		}
		args[i] = escaped{a}
	}
	h.raw(fmt.Sprintf(format, args...))
}

// escaped formats its value the way fmt would and escapes the result, so
// named string types, Stringers and errors cannot leak markup.
type escaped struct{ v any }

func (e escaped) Format(st fmt.State, verb rune) {
	_, _ = io.WriteString(st, templ.EscapeString(fmt.Sprintf(fmt.FormatString(st, verb), e.v)))
}

func (h *html) component(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(ctx, h)
		return h.err
	})
}
