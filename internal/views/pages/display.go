package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
)

// DefaultDash returns an em dash when the provided value is empty or whitespace.
func DefaultDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

// StateBadge renders the derived state of a perfume as a short display
// string, e.g. "Owned 70ml · On-skin".
func StateBadge(d catalog.Derived) string {
	parts := []string{d.Ownership.String()}
	if d.Ownership == catalog.Owned && d.OwnedML > 0 {
		parts[0] = fmt.Sprintf("Owned %sml", trimFloat(d.OwnedML))
	}
	if d.OnSkin {
		parts = append(parts, "On-skin")
	} else if d.Tested {
		parts = append(parts, "Tested")
	}
	return strings.Join(parts, " · ")
}

// StateClass maps the ownership state to a CSS badge class.
func StateClass(o catalog.Ownership) string {
	switch o {
	case catalog.Owned:
		return "badge owned"
	case catalog.PreviouslyOwned:
		return "badge previous"
	default:
		return "badge wishlist"
	}
}

// FormatUnix renders a unix timestamp as a calendar date.
func FormatUnix(ts int64) string {
	if ts == 0 {
		return "—"
	}
	return time.Unix(ts, 0).UTC().Format("02 Jan 2006")
}

// EventLine renders a one-line summary of an event for the history list.
func EventLine(lib *catalog.Library, e catalog.Event) string {
	parts := []string{titleCase(string(e.Type))}
	if e.EventDate != "" {
		parts = append(parts, e.EventDate)
	} else if e.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, e.Timestamp); err == nil {
			parts = append(parts, t.Format("2006-01-02"))
		}
	}
	if e.Location != "" {
		parts = append(parts, "at "+e.Location)
	}
	if e.MLDelta != nil {
		delta := trimFloat(*e.MLDelta)
		if *e.MLDelta > 0 {
			delta = "+" + delta
		}
		parts = append(parts, delta+"ml")
	}
	if e.Price != nil {
		parts = append(parts, fmt.Sprintf("$%s", trimFloat(*e.Price)))
	}
	if e.PurchaseTypeID != "" {
		parts = append(parts, lib.PurchaseTypeName(e.PurchaseTypeID))
	}
	if e.Note != "" {
		parts = append(parts, "· "+e.Note)
	}
	return strings.Join(parts, " ")
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SortKeySummary describes the active sort chain for the toolbar.
func SortKeySummary(keys []catalog.SortKey) string {
	if len(keys) == 0 {
		return "unsorted"
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k.Field, strings.ReplaceAll(k.Order, "_", " ")))
	}
	return strings.Join(parts, ", ")
}

// FilterSummary lists the engaged filter predicates for the toolbar.
func FilterSummary(lib *catalog.Library, f catalog.Filter) string {
	if !f.Active() {
		return "no active filters"
	}
	var parts []string
	if len(f.BrandIDs) > 0 {
		names := make([]string, 0, len(f.BrandIDs))
		for _, id := range f.BrandIDs {
			names = append(names, lib.BrandName(id))
		}
		parts = append(parts, "brands: "+strings.Join(names, ", "))
	}
	if len(f.ConcentrationIDs) > 0 {
		parts = append(parts, fmt.Sprintf("%d concentration(s)", len(f.ConcentrationIDs)))
	}
	if len(f.States) > 0 {
		parts = append(parts, "states: "+strings.Join(f.States, ", "))
	}
	if len(f.Seasons) > 0 || len(f.Times) > 0 {
		parts = append(parts, "when: "+strings.Join(append(append([]string{}, f.Seasons...), f.Times...), ", "))
	}
	if len(f.TagIDs) > 0 {
		logic := "any"
		if f.TagLogic == "and" {
			logic = "all"
		}
		parts = append(parts, fmt.Sprintf("tags (%s): %s", logic, strings.Join(lib.TagNames(f.TagIDs), ", ")))
	}
	if len(f.LocationIDs) > 0 {
		parts = append(parts, fmt.Sprintf("%d location(s)", len(f.LocationIDs)))
	}
	if len(f.Genders) > 0 {
		labels := make([]string, 0, len(f.Genders))
		for _, g := range f.Genders {
			labels = append(labels, catalog.DisplayLabel(g))
		}
		parts = append(parts, "gender: "+strings.Join(labels, ", "))
	}
	for _, rf := range []struct {
		name  string
		r     catalog.RangeFilter
		limit float64
	}{
		{"rating", f.Rating, catalog.RatingMax},
		{"longevity", f.Longevity, catalog.LongevityMax},
		{"sillage", f.Sillage, catalog.SillageMax},
		{"value", f.Value, catalog.ValueMax},
	} {
		if rf.r.Active(rf.limit) {
			mode := "include"
			if rf.r.Exclude {
				mode = "exclude"
			}
			parts = append(parts, fmt.Sprintf("%s %.1f–%.1f (%s)", rf.name, rf.r.Min, rf.r.Max, mode))
		}
	}
	if f.HasMyVotes {
		parts = append(parts, "voted by me")
	}
	if f.HasFragrantica {
		parts = append(parts, "has Fragrantica data")
	}
	return strings.Join(parts, " · ")
}
