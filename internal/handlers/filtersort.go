package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
	"github.com/boshow88/Perfume-Tracker/internal/views/pages"
)

// FilterForm renders the filter editor preloaded with the session's filter.
func FilterForm(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	defer mu.Unlock()
	renderComponent(w, r, pages.FilterPage(library, sessionFilter(r)))
}

// ApplyFilter stores the submitted filter in the session and returns to the
// collection.
func ApplyFilter(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if r.FormValue("reset") == "1" {
		storeSessionFilter(r, catalog.DefaultFilter())
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	f := catalog.DefaultFilter()
	f.BrandIDs = r.Form["brand_ids"]
	f.ConcentrationIDs = r.Form["concentration_ids"]
	f.LocationIDs = r.Form["location_ids"]
	f.TagIDs = r.Form["tag_ids"]
	if r.FormValue("tag_logic") == "and" {
		f.TagLogic = "and"
	}
	f.States = r.Form["states"]
	f.Seasons = r.Form["seasons"]
	f.Times = r.Form["times"]
	f.Genders = r.Form["genders"]
	f.Rating = parseRange(r, "rating", catalog.RatingMax)
	f.Longevity = parseRange(r, "longevity", catalog.LongevityMax)
	f.Sillage = parseRange(r, "sillage", catalog.SillageMax)
	f.Value = parseRange(r, "value", catalog.ValueMax)
	f.HasMyVotes = r.FormValue("has_my_votes") == "1"
	f.HasFragrantica = r.FormValue("has_fragrantica") == "1"

	storeSessionFilter(r, f)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SortForm renders the sort-key editor preloaded with the session's keys.
func SortForm(w http.ResponseWriter, r *http.Request) {
	renderComponent(w, r, pages.SortPage(sessionSortKeys(r)))
}

// ApplySort stores the submitted sort chain in the session. Slots with no
// field selected are skipped; invalid orders fall back to the field's first
// valid direction.
func ApplySort(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	var keys []catalog.SortKey
	for i := 0; ; i++ {
		field, ok := formSlot(r, "field", i)
		if !ok {
			break
		}
		if field == "" {
			continue
		}
		order, _ := formSlot(r, "order", i)
		key, valid := catalog.ParseSortKey(field, order)
		if !valid {
			http.Error(w, fmt.Sprintf("unknown sort field %q", field), http.StatusBadRequest)
			return
		}
		keys = append(keys, key)
	}
	storeSessionSortKeys(r, keys)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func formSlot(r *http.Request, prefix string, i int) (string, bool) {
	name := fmt.Sprintf("%s_%d", prefix, i)
	if _, present := r.Form[name]; !present {
		return "", false
	}
	return strings.TrimSpace(r.FormValue(name)), true
}

func parseRange(r *http.Request, name string, cap float64) catalog.RangeFilter {
	out := catalog.RangeFilter{Max: cap}
	if v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(name+"_min")), 64); err == nil && v > 0 {
		out.Min = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(name+"_max")), 64); err == nil && v > 0 && v <= cap {
		out.Max = v
	}
	out.Exclude = r.FormValue(name+"_exclude") == "1"
	if out.Min > out.Max {
		out.Min, out.Max = out.Max, out.Min
	}
	return out
}
