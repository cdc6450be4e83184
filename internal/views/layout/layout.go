// Package layout provides the shared page shell for every server-rendered
// view.
package layout

import (
	"context"
	"fmt"
	"io"

	templpkg "github.com/a-h/templ"

	"github.com/boshow88/Perfume-Tracker/internal/views/theme"
)

// Base wraps page content in the application shell: head, palette, nav and
// the htmx runtime used for partial refreshes.
func Base(title string, contents ...templpkg.Component) templpkg.Component {
	return templpkg.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s · Perfume Tracker</title>`+
				`<style>%s</style>`+
				`<link rel="stylesheet" href="/assets/app.css">`+
				`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`+
				`</head><body>`,
			templpkg.EscapeString(title), theme.Default().CSSVariables(),
		); err != nil {
			return err
		}
		if err := nav(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="shell">`); err != nil {
			return err
		}
		for _, c := range contents {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func nav(w io.Writer) error {
	_, err := io.WriteString(w,
		`<nav class="topnav">`+
			`<span class="brand">Perfume Tracker</span>`+
			`<a href="/">Collection</a>`+
			`<a href="/library">Library</a>`+
			`<a href="/filter">Filter</a>`+
			`<a href="/sort">Sort</a>`+
			`<a href="/viewer/">Viewer</a>`+
			`</nav>`)
	return err
}
