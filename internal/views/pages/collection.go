package pages

import (
	"context"

	templpkg "github.com/a-h/templ"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
	"github.com/boshow88/Perfume-Tracker/internal/views/layout"
)

// CollectionPage renders the split list/detail workspace.
func CollectionPage(s CollectionSnapshot) templpkg.Component {
	return layout.Base("Collection", toolbar(s), component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="split">`)
		h.raw(`<section class="panel list-panel" id="perfume-table">`)
		writeTable(h, s)
		h.raw(`</section>`)
		h.raw(`<section class="panel detail-panel" id="perfume-detail">`)
		writeDetail(h, s.Library, s.SelectedPerfume())
		h.raw(`</section>`)
		h.raw(`</div>`)
	}))
}

// PerfumeTable renders the list partial for htmx refreshes.
func PerfumeTable(s CollectionSnapshot) templpkg.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		writeTable(h, s)
	})
}

// PerfumeDetail renders the detail partial for one perfume.
func PerfumeDetail(lib *catalog.Library, p *catalog.Perfume) templpkg.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		writeDetail(h, lib, p)
	})
}

func toolbar(s CollectionSnapshot) templpkg.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="toolbar">`)
		if s.Flash != "" {
			h.raw(`<p class="flash">`)
			h.text(s.Flash)
			h.raw(`</p>`)
		}
		h.rawf(`<span class="muted">%d of %d perfumes</span>`, len(s.Perfumes), s.Total)
		h.raw(`<span class="muted"> · `)
		h.text(FilterSummary(s.Library, s.Filter))
		h.raw(` · sort: `)
		h.text(SortKeySummary(s.SortKeys))
		h.raw(`</span>`)
		h.raw(`<a class="button" href="/perfumes/new">Add Perfume</a>`)
		h.raw(`</div>`)
	})
}

func writeTable(h *htmlWriter, s CollectionSnapshot) {
	if len(s.Perfumes) == 0 {
		h.raw(`<p class="muted empty">No perfumes match the current filter.</p>`)
		return
	}
	h.raw(`<table class="collection"><thead><tr>` +
		`<th>Name</th><th>Brand</th><th>State</th><th>Rating</th><th>When</th>` +
		`</tr></thead><tbody>`)
	for _, p := range s.Perfumes {
		d := catalog.Derive(p)
		rowClass := ""
		if p.ID == s.Selected {
			rowClass = ` class="selected"`
		}
		h.rawf(`<tr%s hx-get="/perfumes/detail?id=%s" hx-target="#perfume-detail" hx-swap="innerHTML">`,
			rowClass, attr(p.ID))
		h.raw(`<td>`)
		h.text(p.Name)
		h.raw(`</td><td>`)
		h.text(DefaultDash(s.Library.BrandName(p.BrandID)))
		h.rawf(`</td><td><span class="%s">`, StateClass(d.Ownership))
		h.text(StateBadge(d))
		h.raw(`</span></td><td>`)
		h.text(catalog.ScoreSummary(p.Fragrantica.Rating, catalog.RatingOptions))
		h.raw(`</td><td>`)
		h.text(catalog.SeasonTimeSummary(p.Fragrantica.SeasonTime))
		h.raw(`</td></tr>`)
	}
	h.raw(`</tbody></table>`)
}

func writeDetail(h *htmlWriter, lib *catalog.Library, p *catalog.Perfume) {
	if p == nil {
		h.raw(`<p class="muted empty">Select a perfume to see its details.</p>`)
		return
	}
	d := catalog.Derive(p)

	h.raw(`<header class="detail-head"><h2>`)
	h.text(p.Name)
	h.raw(`</h2><p class="muted">`)
	h.text(DefaultDash(lib.BrandName(p.BrandID)))
	if name := lib.ConcentrationName(p.ConcentrationID); name != "" {
		h.raw(` · `)
		h.text(name)
	}
	h.raw(`</p>`)
	h.rawf(`<span class="%s">`, StateClass(d.Ownership))
	h.text(StateBadge(d))
	h.raw(`</span></header>`)

	writeDetailActions(h, p)
	writeDetailMeta(h, lib, p)
	writeVoteBlocks(h, p)
	writeEvents(h, lib, p)
	writeNotes(h, p)
	writeLinks(h, p)
}

func writeDetailActions(h *htmlWriter, p *catalog.Perfume) {
	h.raw(`<div class="actions">`)
	for _, quick := range []struct{ kind, label string }{
		{"smell", "Quick Smell"},
		{"skin", "Quick Skin"},
	} {
		h.rawf(`<form method="post" action="/events/quick" hx-post="/events/quick" hx-target="#perfume-detail">`+
			`<input type="hidden" name="id" value="%s">`+
			`<input type="hidden" name="type" value="%s">`+
			`<button type="submit">%s</button></form>`,
			attr(p.ID), quick.kind, quick.label)
	}
	h.rawf(`<a class="button" href="/events/new?id=%s">Add Event</a>`, attr(p.ID))
	h.rawf(`<a class="button" href="/perfumes/edit?id=%s">Edit</a>`, attr(p.ID))
	h.rawf(`<a class="button" href="/fragrantica/import?id=%s">Import Votes</a>`, attr(p.ID))
	h.rawf(`<form method="post" action="/perfumes/delete" onsubmit="return confirm('Delete this perfume?')">`+
		`<input type="hidden" name="id" value="%s">`+
		`<button type="submit" class="danger">Delete</button></form>`, attr(p.ID))
	h.raw(`</div>`)
}

func writeDetailMeta(h *htmlWriter, lib *catalog.Library, p *catalog.Perfume) {
	h.raw(`<dl class="meta">`)
	if len(p.LocationIDs) > 0 {
		h.raw(`<dt>Locations</dt><dd>`)
		for i, id := range p.LocationIDs {
			if i > 0 {
				h.raw(`, `)
			}
			h.text(lib.LocationDisplay(id))
		}
		h.raw(`</dd>`)
	}
	if len(p.TagIDs) > 0 {
		h.raw(`<dt>Tags</dt><dd>`)
		for i, name := range lib.TagNames(p.TagIDs) {
			if i > 0 {
				h.raw(` `)
			}
			h.raw(`<span class="tag">`)
			h.text(name)
			h.raw(`</span>`)
		}
		h.raw(`</dd>`)
	}
	h.raw(`<dt>Added</dt><dd>`)
	h.text(FormatUnix(p.CreatedAt))
	h.raw(`</dd><dt>Updated</dt><dd>`)
	h.text(FormatUnix(p.UpdatedAt))
	h.raw(`</dd></dl>`)
}

// writeVoteBlocks renders the Fragrantica summaries next to the personal
// click-to-vote rows.
func writeVoteBlocks(h *htmlWriter, p *catalog.Perfume) {
	h.raw(`<section class="votes"><h3>Votes</h3>`)
	myBlocks := p.MyVotes.Blocks()
	for i, block := range p.Fragrantica.Blocks() {
		h.raw(`<div class="vote-block"><div class="vote-head"><span>`)
		h.text(block.Label)
		h.raw(`</span><span class="muted">`)
		h.text(catalog.BlockSummary(block.Key, block.Votes))
		byMax := block.Key == "season_time"
		if n := catalog.SampleSize(block.Votes, block.Options, byMax); n > 0 && n < catalog.LowSampleThreshold {
			h.rawf(` <em class="lowsample">(%d votes)</em>`, n)
		}
		h.raw(`</span></div>`)

		h.raw(`<div class="vote-options">`)
		for _, opt := range block.Options {
			mine := myBlocks[i].Votes[opt]
			cls := "vote-opt"
			if mine > 0 {
				cls += " mine"
			}
			h.rawf(`<form method="post" action="/votes/update" hx-post="/votes/update" hx-target="#perfume-detail">`+
				`<input type="hidden" name="id" value="%s">`+
				`<input type="hidden" name="block" value="%s">`+
				`<input type="hidden" name="option" value="%s">`+
				`<button type="submit" class="%s" title="Fragrantica: %d, mine: %d">%s</button>`+
				`</form>`,
				attr(p.ID), attr(block.Key), attr(opt), cls,
				block.Votes[opt], mine, attr(catalog.DisplayLabel(opt)))
		}
		h.raw(`</div></div>`)
	}
	h.raw(`</section>`)
}

func writeEvents(h *htmlWriter, lib *catalog.Library, p *catalog.Perfume) {
	h.rawf(`<section class="events"><h3>History (%d)</h3>`, len(p.Events))
	if len(p.Events) == 0 {
		h.raw(`<p class="muted">No events yet.</p></section>`)
		return
	}
	h.raw(`<ul>`)
	for _, e := range p.Events {
		h.raw(`<li>`)
		h.text(EventLine(lib, e))
		h.rawf(` <form class="inline" method="post" action="/events/delete" hx-post="/events/delete" hx-target="#perfume-detail">`+
			`<input type="hidden" name="id" value="%s">`+
			`<input type="hidden" name="event_id" value="%s">`+
			`<button type="submit" class="link danger">remove</button></form>`,
			attr(p.ID), attr(e.ID))
		h.raw(`</li>`)
	}
	h.raw(`</ul></section>`)
}

func writeNotes(h *htmlWriter, p *catalog.Perfume) {
	h.raw(`<section class="notes"><h3>Notes</h3>`)
	for _, n := range p.Notes {
		h.raw(`<article class="note"><h4>`)
		h.text(n.Title)
		h.raw(`</h4><p>`)
		h.text(n.Content)
		h.rawf(`</p><form class="inline" method="post" action="/notes/delete">`+
			`<input type="hidden" name="id" value="%s">`+
			`<input type="hidden" name="note_id" value="%s">`+
			`<button type="submit" class="link danger">remove</button></form>`,
			attr(p.ID), attr(n.ID))
		h.raw(`</article>`)
	}
	h.rawf(`<form class="note-add" method="post" action="/notes/add">`+
		`<input type="hidden" name="id" value="%s">`, attr(p.ID))
	h.raw(`<select name="title">`)
	for _, title := range catalog.QuickNoteTitles {
		h.rawf(`<option value="%s">%s</option>`, attr(title), attr(title))
	}
	h.raw(`<option value="Note">Note</option></select>` +
		`<textarea name="content" rows="2" placeholder="Write a note"></textarea>` +
		`<button type="submit">Add Note</button></form></section>`)
}

func writeLinks(h *htmlWriter, p *catalog.Perfume) {
	h.raw(`<section class="links"><h3>Links</h3><ul>`)
	for i, l := range p.Links {
		h.rawf(`<li><a href="%s" rel="noopener" target="_blank">`, attr(l.URL))
		h.text(DefaultDash(l.Label))
		h.rawf(`</a> <form class="inline" method="post" action="/links/delete">`+
			`<input type="hidden" name="id" value="%s">`+
			`<input type="hidden" name="index" value="%d">`+
			`<button type="submit" class="link danger">remove</button></form></li>`,
			attr(p.ID), i)
	}
	h.raw(`</ul>`)
	h.rawf(`<form class="link-add" method="post" action="/links/add">`+
		`<input type="hidden" name="id" value="%s">`+
		`<input name="label" placeholder="Label">`+
		`<input name="url" placeholder="https://" required>`+
		`<button type="submit">Add Link</button></form></section>`, attr(p.ID))
}
