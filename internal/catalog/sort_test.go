package catalog

import (
	"reflect"
	"testing"
)

func namedPerfume(lib *Library, name, brand string, rating map[string]int) *Perfume {
	p := NewPerfume(name)
	p.BrandID = lib.FindOrCreate(TableBrands, brand)
	p.Fragrantica.Rating = rating
	lib.AddPerfume(p)
	return p
}

func namesOf(perfumes []*Perfume) []string {
	names := make([]string, 0, len(perfumes))
	for _, p := range perfumes {
		names = append(names, p.Name)
	}
	return names
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	namedPerfume(lib, "terre", "Hermes", nil)
	namedPerfume(lib, "Bleu", "Chanel", nil)
	namedPerfume(lib, "aventus", "Creed", nil)

	NewSorter(lib, []SortKey{{Field: SortByName, Order: "asc"}}).Sort(lib.Perfumes)
	want := []string{"aventus", "Bleu", "terre"}
	if got := namesOf(lib.Perfumes); !reflect.DeepEqual(got, want) {
		t.Fatalf("sorted names = %v, want %v", got, want)
	}

	NewSorter(lib, []SortKey{{Field: SortByName, Order: "desc"}}).Sort(lib.Perfumes)
	want = []string{"terre", "Bleu", "aventus"}
	if got := namesOf(lib.Perfumes); !reflect.DeepEqual(got, want) {
		t.Fatalf("desc sorted names = %v, want %v", got, want)
	}
}

func TestSortMultiKey(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	namedPerfume(lib, "B", "Chanel", nil)
	namedPerfume(lib, "A", "Chanel", nil)
	namedPerfume(lib, "C", "Armani", nil)

	keys := []SortKey{
		{Field: SortByBrand, Order: "asc"},
		{Field: SortByName, Order: "asc"},
	}
	NewSorter(lib, keys).Sort(lib.Perfumes)
	want := []string{"C", "A", "B"}
	if got := namesOf(lib.Perfumes); !reflect.DeepEqual(got, want) {
		t.Fatalf("multi-key sort = %v, want %v", got, want)
	}
}

func TestSortMissingScoresSortLowest(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	namedPerfume(lib, "rated", "X", map[string]int{"ok": 10})
	namedPerfume(lib, "unrated", "X", nil)
	namedPerfume(lib, "loved", "X", map[string]int{"love": 10})

	NewSorter(lib, []SortKey{{Field: SortByRating, Order: "desc"}}).Sort(lib.Perfumes)
	want := []string{"loved", "rated", "unrated"}
	if got := namesOf(lib.Perfumes); !reflect.DeepEqual(got, want) {
		t.Fatalf("desc rating sort = %v, want %v", got, want)
	}

	NewSorter(lib, []SortKey{{Field: SortByRating, Order: "asc"}}).Sort(lib.Perfumes)
	want = []string{"unrated", "rated", "loved"}
	if got := namesOf(lib.Perfumes); !reflect.DeepEqual(got, want) {
		t.Fatalf("asc rating sort = %v, want %v", got, want)
	}
}

func TestSortStability(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	namedPerfume(lib, "first", "Same", nil)
	namedPerfume(lib, "second", "Same", nil)
	namedPerfume(lib, "third", "Same", nil)

	keys := []SortKey{{Field: SortByBrand, Order: "asc"}}
	NewSorter(lib, keys).Sort(lib.Perfumes)
	want := []string{"first", "second", "third"}
	if got := namesOf(lib.Perfumes); !reflect.DeepEqual(got, want) {
		t.Fatalf("equal-key sort reordered: %v", got)
	}

	// Re-sorting an already-sorted list by the same key keeps the order.
	NewSorter(lib, keys).Sort(lib.Perfumes)
	if got := namesOf(lib.Perfumes); !reflect.DeepEqual(got, want) {
		t.Fatalf("re-sort reordered equal keys: %v", got)
	}
}

func TestSortGenderOrders(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	namedPerfume(lib, "feminine", "X", nil).Fragrantica.Gender = map[string]int{"female": 30}
	namedPerfume(lib, "masculine", "X", nil).Fragrantica.Gender = map[string]int{"male": 30}
	namedPerfume(lib, "shared", "X", nil).Fragrantica.Gender = map[string]int{"unisex": 30}

	NewSorter(lib, []SortKey{{Field: SortByGender, Order: "female_first"}}).Sort(lib.Perfumes)
	if got := lib.Perfumes[0].Name; got != "feminine" {
		t.Fatalf("female_first leads with %q", got)
	}

	NewSorter(lib, []SortKey{{Field: SortByGender, Order: "unisex_first"}}).Sort(lib.Perfumes)
	if got := lib.Perfumes[0].Name; got != "shared" {
		t.Fatalf("unisex_first leads with %q", got)
	}
}

func TestSortStateOwnedFirst(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	wish := namedPerfume(lib, "wish", "X", nil)
	owned := namedPerfume(lib, "owned", "X", nil)
	owned.Events = eventsOf(EventBuy)
	tested := namedPerfume(lib, "tested", "X", nil)
	tested.Events = eventsOf(EventSkin)
	_ = wish

	NewSorter(lib, []SortKey{{Field: SortByState, Order: "owned_first"}}).Sort(lib.Perfumes)
	want := []string{"owned", "tested", "wish"}
	if got := namesOf(lib.Perfumes); !reflect.DeepEqual(got, want) {
		t.Fatalf("owned_first sort = %v, want %v", got, want)
	}
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		order string
		want  SortKey
		ok    bool
	}{
		{"name", "desc", SortKey{SortByName, "desc"}, true},
		{"Gender", "male_first", SortKey{SortByGender, "male_first"}, true},
		{"gender", "asc", SortKey{SortByGender, "female_first"}, true},
		{"nonsense", "asc", SortKey{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseSortKey(tt.field, tt.order)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("ParseSortKey(%q, %q) = %v, %t; want %v, %t", tt.field, tt.order, got, ok, tt.want, tt.ok)
		}
	}
}
