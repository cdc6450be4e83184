package pages

import (
	"context"
	"fmt"
	"io"

	templpkg "github.com/a-h/templ"
)

// htmlWriter accumulates markup and remembers the first write error, so
// components can emit a sequence of fragments without error plumbing at
// every call site.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) rawf(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}

// text writes escaped content.
func (h *htmlWriter) text(s string) {
	h.raw(templpkg.EscapeString(s))
}

// attr returns an escaped attribute value.
func attr(s string) string {
	return templpkg.EscapeString(s)
}

// component adapts a write function into a templ.Component.
func component(fn func(ctx context.Context, h *htmlWriter)) templpkg.Component {
	return templpkg.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}
