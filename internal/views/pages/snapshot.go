package pages

import (
	"github.com/boshow88/Perfume-Tracker/internal/catalog"
)

// CollectionSnapshot aggregates everything the collection views render: the
// library, the filtered and sorted perfume list, and the active view
// configuration.
type CollectionSnapshot struct {
	Library  *catalog.Library
	Perfumes []*catalog.Perfume
	Filter   catalog.Filter
	SortKeys []catalog.SortKey
	Total    int
	Selected string
	Flash    string
}

// NewCollectionSnapshot applies the filter and sort configuration to the
// library and captures the result for rendering.
func NewCollectionSnapshot(lib *catalog.Library, filter catalog.Filter, keys []catalog.SortKey, selected, flash string) CollectionSnapshot {
	perfumes := filter.Apply(lib.Perfumes)
	catalog.NewSorter(lib, keys).Sort(perfumes)
	return CollectionSnapshot{
		Library:  lib,
		Perfumes: perfumes,
		Filter:   filter,
		SortKeys: keys,
		Total:    len(lib.Perfumes),
		Selected: selected,
		Flash:    flash,
	}
}

// SelectedPerfume resolves the selected identifier, falling back to the
// first visible perfume.
func (s CollectionSnapshot) SelectedPerfume() *catalog.Perfume {
	if s.Selected != "" {
		if p := s.Library.PerfumeByID(s.Selected); p != nil {
			return p
		}
	}
	if len(s.Perfumes) > 0 {
		return s.Perfumes[0]
	}
	return nil
}
