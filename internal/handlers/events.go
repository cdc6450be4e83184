package handlers

import (
	"net/http"
	"strconv"
	"strings"

	applog "github.com/boshow88/Perfume-Tracker/internal/log"
	"github.com/boshow88/Perfume-Tracker/internal/views/pages"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
)

// NewEventForm renders the full event form for a perfume.
func NewEventForm(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}
	renderComponent(w, r, pages.EventForm(library, p))
}

// AddEvent appends an event built from the submitted form.
func AddEvent(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	kind := strings.TrimSpace(strings.ToLower(r.FormValue("type")))
	if !catalog.KnownEventType(kind) {
		http.Error(w, "unknown event type", http.StatusBadRequest)
		return
	}

	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}

	e := catalog.NewEvent(p.ID, catalog.EventType(kind))
	e.EventDate = strings.TrimSpace(r.FormValue("date"))
	e.Location = strings.TrimSpace(r.FormValue("location"))
	e.PurchaseTypeID = r.FormValue("purchase_type_id")
	e.Note = strings.TrimSpace(r.FormValue("note"))
	if ml, ok := parseOptionalFloat(r.FormValue("ml")); ok {
		if e.Type == catalog.EventSell && ml > 0 {
			ml = -ml
		}
		e.MLDelta = &ml
	}
	if price, ok := parseOptionalFloat(r.FormValue("price")); ok {
		e.Price = &price
	}

	p.Events = append(p.Events, e)
	p.Touch()
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	applog.Info(r.Context(), "event added", "perfume", p.ID, "type", kind)
	setFlash(r, "Recorded "+kind+" for "+p.Name)
	respondDetail(w, r, p.ID)
}

// QuickEvent appends a smell or skin event dated now, with no further detail.
func QuickEvent(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	kind := strings.TrimSpace(strings.ToLower(r.FormValue("type")))
	if kind != string(catalog.EventSmell) && kind != string(catalog.EventSkin) {
		http.Error(w, "quick events are smell or skin only", http.StatusBadRequest)
		return
	}

	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}

	p.Events = append(p.Events, catalog.NewEvent(p.ID, catalog.EventType(kind)))
	p.Touch()
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	respondDetail(w, r, p.ID)
}

// DeleteEvent removes one event from a perfume's history.
func DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}
	idx := p.EventByID(r.FormValue("event_id"))
	if idx < 0 {
		http.NotFound(w, r)
		return
	}
	p.Events = append(p.Events[:idx], p.Events[idx+1:]...)
	p.Touch()
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	respondDetail(w, r, p.ID)
}

func parseOptionalFloat(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
