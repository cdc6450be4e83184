package pages

import (
	"context"

	templpkg "github.com/a-h/templ"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
	"github.com/boshow88/Perfume-Tracker/internal/views/layout"
)

// FilterPage renders the full filter configuration form. Submitting stores
// the filter in the session and redirects back to the collection.
func FilterPage(lib *catalog.Library, f catalog.Filter) templpkg.Component {
	return layout.Base("Filter", component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="panel form-panel"><h2>Filter</h2>` +
			`<form method="post" action="/filter">`)

		writeFilterMulti(h, "brand_ids", "Brands", lib.Entries(catalog.TableBrands), f.BrandIDs)
		writeFilterMulti(h, "concentration_ids", "Concentrations", lib.Entries(catalog.TableConcentrations), f.ConcentrationIDs)
		writeFilterMulti(h, "location_ids", "Locations", lib.Entries(catalog.TableLocations), f.LocationIDs)
		writeFilterMulti(h, "tag_ids", "Tags", lib.Entries(catalog.TableTags), f.TagIDs)

		h.raw(`<fieldset><legend>Tag logic</legend>`)
		for _, logic := range []string{"or", "and"} {
			checked := ""
			if f.TagLogic == logic || (f.TagLogic == "" && logic == "or") {
				checked = " checked"
			}
			h.rawf(`<label class="check"><input type="radio" name="tag_logic" value="%s"%s> %s</label>`,
				logic, checked, attr(titleCase(logic)))
		}
		h.raw(`</fieldset>`)

		writeCheckGroup(h, "states", "State", []string{"owned", "tested", "wishlist"}, f.States)
		writeCheckGroup(h, "seasons", "Season", catalog.SeasonKeys, f.Seasons)
		writeCheckGroup(h, "times", "Time of day", catalog.TimeKeys, f.Times)
		writeCheckGroup(h, "genders", "Gender", catalog.GenderOptions, f.Genders)

		writeRange(h, "rating", "Rating", f.Rating, catalog.RatingMax)
		writeRange(h, "longevity", "Longevity", f.Longevity, catalog.LongevityMax)
		writeRange(h, "sillage", "Sillage", f.Sillage, catalog.SillageMax)
		writeRange(h, "value", "Value", f.Value, catalog.ValueMax)

		h.raw(`<fieldset><legend>Data presence</legend>`)
		h.rawf(`<label class="check"><input type="checkbox" name="has_my_votes" value="1"%s> Has my votes</label>`,
			checkedIf(f.HasMyVotes))
		h.rawf(`<label class="check"><input type="checkbox" name="has_fragrantica" value="1"%s> Has Fragrantica data</label>`,
			checkedIf(f.HasFragrantica))
		h.raw(`</fieldset>`)

		h.raw(`<div class="form-actions"><button type="submit">Apply</button>` +
			`<button type="submit" name="reset" value="1" class="secondary">Reset</button>` +
			`<a class="button" href="/">Cancel</a></div>`)
		h.raw(`</form></section>`)
	}))
}

// SortPage renders the ordered sort-key editor. Three key slots are enough
// in practice; empty slots are skipped on submit.
func SortPage(keys []catalog.SortKey) templpkg.Component {
	const slots = 3
	return layout.Base("Sort", component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="panel form-panel"><h2>Sort</h2>` +
			`<form method="post" action="/sort">`)
		for i := 0; i < slots; i++ {
			var current catalog.SortKey
			if i < len(keys) {
				current = keys[i]
			}
			h.rawf(`<fieldset><legend>Key %d</legend>`, i+1)

			h.rawf(`<label>Field<select name="field_%d"><option value="">-</option>`, i)
			for _, field := range catalog.SortFields {
				sel := ""
				if field == current.Field {
					sel = " selected"
				}
				h.rawf(`<option value="%s"%s>%s</option>`,
					attr(string(field)), sel, attr(catalog.DisplayLabel(string(field))))
			}
			h.raw(`</select></label>`)

			h.rawf(`<label>Order<select name="order_%d">`, i)
			orders := catalog.OrdersFor(current.Field)
			for _, order := range orders {
				sel := ""
				if order == current.Order {
					sel = " selected"
				}
				h.rawf(`<option value="%s"%s>%s</option>`,
					attr(order), sel, attr(catalog.DisplayLabel(order)))
			}
			h.raw(`</select></label></fieldset>`)
		}
		h.raw(`<div class="form-actions"><button type="submit">Apply</button>` +
			`<a class="button" href="/">Cancel</a></div>`)
		h.raw(`</form></section>`)
	}))
}

func writeFilterMulti(h *htmlWriter, name, label string, entries []catalog.Entry, selected []string) {
	if len(entries) == 0 {
		return
	}
	writeMultiSelect(h, name, label, entries, selected)
}

func writeCheckGroup(h *htmlWriter, name, label string, options, selected []string) {
	h.rawf(`<fieldset><legend>%s</legend>`, attr(label))
	for _, opt := range options {
		checked := ""
		for _, s := range selected {
			if s == opt {
				checked = " checked"
				break
			}
		}
		h.rawf(`<label class="check"><input type="checkbox" name="%s" value="%s"%s> %s</label>`,
			attr(name), attr(opt), checked, attr(catalog.DisplayLabel(opt)))
	}
	h.raw(`</fieldset>`)
}

func writeRange(h *htmlWriter, name, label string, r catalog.RangeFilter, cap float64) {
	h.rawf(`<fieldset><legend>%s score</legend>`, attr(label))
	h.rawf(`<label>Min<input type="number" name="%s_min" min="0" max="%s" step="0.1" value="%s"></label>`,
		attr(name), trimFloat(cap), trimFloat(r.Min))
	h.rawf(`<label>Max<input type="number" name="%s_max" min="0" max="%s" step="0.1" value="%s"></label>`,
		attr(name), trimFloat(cap), trimFloat(r.Max))
	h.rawf(`<label class="check"><input type="checkbox" name="%s_exclude" value="1"%s> Exclude range</label>`,
		attr(name), checkedIf(r.Exclude))
	h.raw(`</fieldset>`)
}

func checkedIf(cond bool) string {
	if cond {
		return " checked"
	}
	return ""
}
