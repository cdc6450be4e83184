package pages

import (
	"context"

	templpkg "github.com/a-h/templ"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
	"github.com/boshow88/Perfume-Tracker/internal/views/layout"
)

// LibraryPage renders the lookup-table manager for one table, with tabs for
// switching between tables.
func LibraryPage(lib *catalog.Library, table catalog.Table, flash string) templpkg.Component {
	return layout.Base("Library", component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="panel library-panel"><nav class="tabs">`)
		for _, t := range catalog.Tables {
			cls := "tab"
			if t == table {
				cls = "tab active"
			}
			h.rawf(`<a class="%s" href="/library?table=%s">`, cls, attr(string(t)))
			h.text(catalog.TableLabel(t))
			h.raw(`</a>`)
		}
		h.raw(`</nav>`)

		if flash != "" {
			h.raw(`<p class="flash">`)
			h.text(flash)
			h.raw(`</p>`)
		}

		writeLibraryTable(h, lib, table)
		writeLibraryAddForm(h, table)
		h.raw(`</section>`)
	}))
}

func writeLibraryTable(h *htmlWriter, lib *catalog.Library, table catalog.Table) {
	entries := lib.Entries(table)
	if len(entries) == 0 {
		h.raw(`<p class="muted empty">Nothing here yet.</p>`)
		return
	}
	withRegion := table == catalog.TableLocations

	// Rename forms live outside the table; inputs attach via the form
	// attribute so one form cannot straddle table cells.
	for _, e := range entries {
		h.rawf(`<form id="rename-%s" method="post" action="/library/rename">`+
			`<input type="hidden" name="table" value="%s">`+
			`<input type="hidden" name="id" value="%s"></form>`,
			attr(e.ID), attr(string(table)), attr(e.ID))
	}

	h.raw(`<table class="library"><thead><tr><th>Name</th>`)
	if withRegion {
		h.raw(`<th>Region</th>`)
	}
	h.raw(`<th>Used by</th><th></th></tr></thead><tbody>`)
	for _, e := range entries {
		h.rawf(`<tr><td><input name="name" value="%s" form="rename-%s"></td>`,
			attr(e.Name), attr(e.ID))
		if withRegion {
			h.rawf(`<td><input name="region" value="%s" form="rename-%s"></td>`,
				attr(e.Region), attr(e.ID))
		}
		h.rawf(`<td class="muted">%d</td>`, e.References)
		h.rawf(`<td class="row-actions">`+
			`<button type="submit" class="link" form="rename-%s">rename</button>`,
			attr(e.ID))
		h.rawf(`<form class="inline" method="post" action="/library/delete">`+
			`<input type="hidden" name="table" value="%s">`+
			`<input type="hidden" name="id" value="%s">`+
			`<button type="submit" class="link danger"%s>delete</button></form>`,
			attr(string(table)), attr(e.ID), disabledIf(e.References > 0))
		h.raw(`</td></tr>`)
	}
	h.raw(`</tbody></table>`)
}

func writeLibraryAddForm(h *htmlWriter, table catalog.Table) {
	h.rawf(`<form class="library-add" method="post" action="/library/add">`+
		`<input type="hidden" name="table" value="%s">`+
		`<input name="name" placeholder="New entry" required>`, attr(string(table)))
	if table == catalog.TableLocations {
		h.raw(`<input name="region" placeholder="Region">`)
	}
	h.raw(`<button type="submit">Add</button></form>`)
}

func disabledIf(cond bool) string {
	if cond {
		return ` disabled title="Still referenced by perfumes"`
	}
	return ""
}
