package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField names a sortable dimension of the collection.
type SortField string

const (
	SortByBrand     SortField = "brand"
	SortByName      SortField = "name"
	SortByRating    SortField = "rating"
	SortByLongevity SortField = "longevity"
	SortBySillage   SortField = "sillage"
	SortByValue     SortField = "value"
	SortByGender    SortField = "gender"
	SortByState     SortField = "state"
)

// SortFields lists every sortable dimension in display order.
var SortFields = []SortField{
	SortByBrand, SortByName, SortByRating, SortByLongevity,
	SortBySillage, SortByValue, SortByGender, SortByState,
}

// SortKey pairs a dimension with a direction. Directions are "asc"/"desc"
// for most fields; gender additionally understands "female_first",
// "male_first" and "unisex_first", state understands "owned_first".
type SortKey struct {
	Field SortField `json:"field"`
	Order string    `json:"order"`
}

// OrdersFor returns the valid directions for a sort field.
func OrdersFor(field SortField) []string {
	switch field {
	case SortByGender:
		return []string{"female_first", "male_first", "unisex_first"}
	case SortByState:
		return []string{"owned_first"}
	default:
		return []string{"asc", "desc"}
	}
}

// Sorter applies an ordered chain of sort keys as one stable multi-key
// comparator. String dimensions compare locale-aware and case-insensitive;
// perfumes missing a numeric value sort lowest.
type Sorter struct {
	lib      *Library
	keys     []SortKey
	collator *collate.Collator
}

// NewSorter builds a sorter over the given library.
func NewSorter(lib *Library, keys []SortKey) *Sorter {
	return &Sorter{
		lib:      lib,
		keys:     keys,
		collator: collate.New(language.Und, collate.IgnoreCase),
	}
}

// Sort orders the perfume slice in place. Ties after the last key preserve
// the original relative order.
func (s *Sorter) Sort(perfumes []*Perfume) {
	if len(s.keys) == 0 {
		return
	}
	sort.SliceStable(perfumes, func(i, j int) bool {
		for _, key := range s.keys {
			if cmp := s.compare(perfumes[i], perfumes[j], key); cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})
}

func (s *Sorter) compare(a, b *Perfume, key SortKey) int {
	switch key.Field {
	case SortByBrand:
		return s.compareStrings(s.lib.BrandName(a.BrandID), s.lib.BrandName(b.BrandID), key.Order)
	case SortByName:
		return s.compareStrings(a.Name, b.Name, key.Order)
	case SortByRating:
		return compareScores(
			WeightedScore(a.Fragrantica.Rating, RatingOptions),
			WeightedScore(b.Fragrantica.Rating, RatingOptions),
			key.Order,
		)
	case SortByLongevity:
		return compareScores(
			WeightedScore(a.Fragrantica.Longevity, LongevityOptions),
			WeightedScore(b.Fragrantica.Longevity, LongevityOptions),
			key.Order,
		)
	case SortBySillage:
		return compareScores(
			WeightedScore(a.Fragrantica.Sillage, SillageOptions),
			WeightedScore(b.Fragrantica.Sillage, SillageOptions),
			key.Order,
		)
	case SortByValue:
		return compareScores(
			WeightedScore(a.Fragrantica.Value, ValueOptions),
			WeightedScore(b.Fragrantica.Value, ValueOptions),
			key.Order,
		)
	case SortByGender:
		return compareGender(
			WeightedScore(a.Fragrantica.Gender, GenderOptions),
			WeightedScore(b.Fragrantica.Gender, GenderOptions),
			key.Order,
		)
	case SortByState:
		return compareInts(statePriority(a), statePriority(b))
	}
	return 0
}

func (s *Sorter) compareStrings(a, b, order string) int {
	cmp := s.collator.CompareString(a, b)
	if order == "desc" {
		return -cmp
	}
	return cmp
}

// compareScores orders numeric scores; a missing value (score 0) is the
// lowest possible key in either direction.
func compareScores(a, b float64, order string) int {
	cmp := compareFloats(a, b)
	if order == "desc" {
		return -cmp
	}
	return cmp
}

// compareGender orders by the gender scale score; higher means more female
// with the female-first option weighting.
func compareGender(a, b float64, order string) int {
	switch order {
	case "male_first":
		return compareFloats(a, b)
	case "unisex_first":
		mid := (GenderMax + 1) / 2
		return compareFloats(abs(a-mid), abs(b-mid))
	default: // female_first
		return -compareFloats(a, b)
	}
}

func statePriority(p *Perfume) int {
	d := Derive(p)
	switch {
	case d.Ownership == Owned:
		return 0
	case d.Tested:
		return 1
	case d.Ownership == PreviouslyOwned:
		return 2
	default:
		return 3
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ParseSortKey validates a field/order pair from user input.
func ParseSortKey(field, order string) (SortKey, bool) {
	f := SortField(strings.TrimSpace(strings.ToLower(field)))
	valid := false
	for _, known := range SortFields {
		if known == f {
			valid = true
			break
		}
	}
	if !valid {
		return SortKey{}, false
	}
	order = strings.TrimSpace(strings.ToLower(order))
	for _, known := range OrdersFor(f) {
		if known == order {
			return SortKey{Field: f, Order: order}, true
		}
	}
	return SortKey{Field: f, Order: OrdersFor(f)[0]}, true
}
