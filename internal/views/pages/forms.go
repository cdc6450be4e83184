package pages

import (
	"context"

	templpkg "github.com/a-h/templ"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
	"github.com/boshow88/Perfume-Tracker/internal/views/layout"
)

// PerfumeForm renders the add/edit form. A nil perfume means a new one.
func PerfumeForm(lib *catalog.Library, p *catalog.Perfume) templpkg.Component {
	title := "Add Perfume"
	action := "/perfumes/add"
	if p != nil {
		title = "Edit Perfume"
		action = "/perfumes/update"
	}
	return layout.Base(title, component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="panel form-panel"><h2>`)
		h.text(title)
		h.rawf(`</h2><form method="post" action="%s">`, attr(action))
		if p != nil {
			h.rawf(`<input type="hidden" name="id" value="%s">`, attr(p.ID))
		}

		h.raw(`<label>Name<input name="name" required value="`)
		if p != nil {
			h.text(p.Name)
		}
		h.raw(`"></label>`)

		writeSelect(h, "brand_id", "Brand", lib.Entries(catalog.TableBrands), selectedID(p, func(p *catalog.Perfume) string { return p.BrandID }))
		h.raw(`<label class="inline-new">New brand<input name="brand_new" placeholder="Or type a new one"></label>`)

		writeSelect(h, "concentration_id", "Concentration", lib.Entries(catalog.TableConcentrations), selectedID(p, func(p *catalog.Perfume) string { return p.ConcentrationID }))

		writeMultiSelect(h, "location_ids", "Locations", lib.Entries(catalog.TableLocations), selectedIDs(p, func(p *catalog.Perfume) []string { return p.LocationIDs }))
		writeMultiSelect(h, "tag_ids", "Tags", lib.Entries(catalog.TableTags), selectedIDs(p, func(p *catalog.Perfume) []string { return p.TagIDs }))
		h.raw(`<label class="inline-new">New tags<input name="tags_new" placeholder="Comma separated"></label>`)

		h.raw(`<div class="form-actions"><button type="submit">Save</button>` +
			`<a class="button" href="/">Cancel</a></div>`)
		h.raw(`</form></section>`)
	}))
}

// EventForm renders the full event entry form for one perfume.
func EventForm(lib *catalog.Library, p *catalog.Perfume) templpkg.Component {
	return layout.Base("Add Event", component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="panel form-panel"><h2>Add Event</h2><p class="muted">`)
		h.text(p.Name)
		h.raw(`</p><form method="post" action="/events/add">`)
		h.rawf(`<input type="hidden" name="id" value="%s">`, attr(p.ID))

		h.raw(`<label>Type<select name="type">`)
		for _, kind := range catalog.EventTypes {
			h.rawf(`<option value="%s">%s</option>`, attr(string(kind)), attr(catalog.DisplayLabel(string(kind))))
		}
		h.raw(`</select></label>`)

		h.raw(`<label>Date<input type="date" name="date"></label>`)
		h.raw(`<label>Location<input name="location" placeholder="Where it happened"></label>`)
		h.raw(`<label>Amount (ml)<input type="number" step="0.1" name="ml" placeholder="Bottle size for buy/sell"></label>`)
		h.raw(`<label>Price<input type="number" step="0.01" name="price"></label>`)

		h.raw(`<label>Purchase type<select name="purchase_type_id"><option value="">-</option>`)
		for _, e := range lib.Entries(catalog.TablePurchaseTypes) {
			h.rawf(`<option value="%s">%s</option>`, attr(e.ID), attr(e.Name))
		}
		h.raw(`</select></label>`)

		h.raw(`<label>Note<textarea name="note" rows="2"></textarea></label>`)
		h.raw(`<div class="form-actions"><button type="submit">Save</button>` +
			`<a class="button" href="/">Cancel</a></div>`)
		h.raw(`</form></section>`)
	}))
}

// ImportPage renders the paste target for a Fragrantica page dump.
func ImportPage(p *catalog.Perfume, warnings []string) templpkg.Component {
	return layout.Base("Import Votes", component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="panel form-panel"><h2>Import Fragrantica Votes</h2><p class="muted">`)
		h.text(p.Name)
		h.raw(`</p>`)
		if len(warnings) > 0 {
			h.raw(`<ul class="warnings">`)
			for _, w := range warnings {
				h.raw(`<li>`)
				h.text(w)
				h.raw(`</li>`)
			}
			h.raw(`</ul>`)
		}
		h.raw(`<form method="post" action="/fragrantica/import">`)
		h.rawf(`<input type="hidden" name="id" value="%s">`, attr(p.ID))
		h.raw(`<label>Page text<textarea name="text" rows="14" placeholder="Select all on the perfume page and paste here"></textarea></label>`)
		h.raw(`<div class="form-actions"><button type="submit">Import</button>` +
			`<a class="button" href="/">Cancel</a></div>`)
		h.raw(`</form></section>`)
	}))
}

// AccessPage asks for the access code when one is configured.
func AccessPage(failed bool) templpkg.Component {
	return layout.Base("Access", component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="panel form-panel narrow"><h2>Access</h2>`)
		if failed {
			h.raw(`<p class="flash">Wrong code, try again.</p>`)
		}
		h.raw(`<form method="post" action="/access">` +
			`<label>Code<input type="password" name="code" autofocus></label>` +
			`<div class="form-actions"><button type="submit">Enter</button></div>` +
			`</form></section>`)
	}))
}

func selectedID(p *catalog.Perfume, pick func(*catalog.Perfume) string) string {
	if p == nil {
		return ""
	}
	return pick(p)
}

func selectedIDs(p *catalog.Perfume, pick func(*catalog.Perfume) []string) []string {
	if p == nil {
		return nil
	}
	return pick(p)
}

func writeSelect(h *htmlWriter, name, label string, entries []catalog.Entry, selected string) {
	h.rawf(`<label>%s<select name="%s"><option value="">-</option>`, attr(label), attr(name))
	for _, e := range entries {
		sel := ""
		if e.ID == selected {
			sel = " selected"
		}
		h.rawf(`<option value="%s"%s>%s</option>`, attr(e.ID), sel, attr(e.Name))
	}
	h.raw(`</select></label>`)
}

func writeMultiSelect(h *htmlWriter, name, label string, entries []catalog.Entry, selected []string) {
	h.rawf(`<label>%s<select name="%s" multiple size="5">`, attr(label), attr(name))
	for _, e := range entries {
		sel := ""
		for _, id := range selected {
			if id == e.ID {
				sel = " selected"
				break
			}
		}
		display := e.Name
		if e.Region != "" {
			display += " (" + e.Region + ")"
		}
		h.rawf(`<option value="%s"%s>%s</option>`, attr(e.ID), sel, attr(display))
	}
	h.raw(`</select></label>`)
}
