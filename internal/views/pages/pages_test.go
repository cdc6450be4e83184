package pages

import (
	"context"
	"strings"
	"testing"

	templpkg "github.com/a-h/templ"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
)

func render(t *testing.T, c templpkg.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func testLibrary(t *testing.T) (*catalog.Library, *catalog.Perfume) {
	t.Helper()
	lib := catalog.NewLibrary()
	brandID, err := lib.AddEntry(catalog.TableBrands, "Guerlain", "")
	if err != nil {
		t.Fatalf("add brand: %v", err)
	}
	p := catalog.NewPerfume("Shalimar")
	p.BrandID = brandID
	ml := 50.0
	buy := catalog.NewEvent(p.ID, catalog.EventBuy)
	buy.MLDelta = &ml
	p.Events = append(p.Events, buy)
	p.Fragrantica.Rating = map[string]int{"love": 40, "like": 20}
	lib.AddPerfume(p)
	return lib, p
}

func TestCollectionPageRendersRows(t *testing.T) {
	t.Parallel()
	lib, p := testLibrary(t)
	s := NewCollectionSnapshot(lib, catalog.DefaultFilter(), nil, "", "")
	out := render(t, CollectionPage(s))

	for _, want := range []string{"Shalimar", "Guerlain", "Owned 50ml", p.ID} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestPerfumeDetailEscapesContent(t *testing.T) {
	t.Parallel()
	lib, p := testLibrary(t)
	p.Notes = append(p.Notes, catalog.Note{ID: "n1", Title: "Review", Content: "<script>alert(1)</script>"})

	out := render(t, PerfumeDetail(lib, p))
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("note content rendered unescaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("escaped note content missing")
	}
}

func TestPerfumeDetailNil(t *testing.T) {
	t.Parallel()
	lib, _ := testLibrary(t)
	out := render(t, PerfumeDetail(lib, nil))
	if !strings.Contains(out, "Select a perfume") {
		t.Errorf("nil detail placeholder missing, got %q", out)
	}
}

func TestLibraryPageDisablesReferencedDelete(t *testing.T) {
	t.Parallel()
	lib, _ := testLibrary(t)
	out := render(t, LibraryPage(lib, catalog.TableBrands, ""))
	if !strings.Contains(out, "disabled") {
		t.Error("referenced entry delete button should be disabled")
	}
	if !strings.Contains(out, "Guerlain") {
		t.Error("brand row missing")
	}
}

func TestFilterPagePreselectsState(t *testing.T) {
	t.Parallel()
	lib, _ := testLibrary(t)
	f := catalog.DefaultFilter()
	f.States = []string{"owned"}
	out := render(t, FilterPage(lib, f))
	if !strings.Contains(out, `name="states" value="owned" checked`) {
		t.Error("owned state checkbox not preselected")
	}
}

func TestSortPageOffersGenderOrders(t *testing.T) {
	t.Parallel()
	out := render(t, SortPage([]catalog.SortKey{{Field: catalog.SortByGender, Order: "unisex_first"}}))
	if !strings.Contains(out, `value="unisex_first" selected`) {
		t.Error("gender order not preselected")
	}
}

func TestStateBadge(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		d    catalog.Derived
		want string
	}{
		{"wishlist", catalog.Derived{Ownership: catalog.Wishlist}, "Wishlist"},
		{"owned with ml", catalog.Derived{Ownership: catalog.Owned, OwnedML: 70}, "Owned 70ml"},
		{"owned on skin", catalog.Derived{Ownership: catalog.Owned, OwnedML: 50, Tested: true, OnSkin: true}, "Owned 50ml · On-skin"},
		{"previously owned tested", catalog.Derived{Ownership: catalog.PreviouslyOwned, Tested: true}, "Previously Owned · Tested"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateBadge(tt.d); got != tt.want {
				t.Fatalf("StateBadge() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventLine(t *testing.T) {
	t.Parallel()
	lib := catalog.NewLibrary()
	ml := 100.0
	price := 89.9

	e := catalog.Event{
		Type:      catalog.EventBuy,
		EventDate: "2024-03-01",
		Location:  "Berlin",
		MLDelta:   &ml,
		Price:     &price,
	}
	got := EventLine(lib, e)
	for _, want := range []string{"Buy", "2024-03-01", "at Berlin", "+100ml", "$89.9"} {
		if !strings.Contains(got, want) {
			t.Errorf("EventLine() = %q, missing %q", got, want)
		}
	}
}

func TestFilterSummary(t *testing.T) {
	t.Parallel()
	lib, p := testLibrary(t)

	if got := FilterSummary(lib, catalog.DefaultFilter()); got != "no active filters" {
		t.Fatalf("default summary = %q", got)
	}

	f := catalog.DefaultFilter()
	f.BrandIDs = []string{p.BrandID}
	f.States = []string{"owned"}
	got := FilterSummary(lib, f)
	for _, want := range []string{"brands: Guerlain", "states: owned"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary = %q, missing %q", got, want)
		}
	}
}

func TestDefaultDashAndFormatUnix(t *testing.T) {
	t.Parallel()
	if got := DefaultDash("  "); got != "—" {
		t.Fatalf("DefaultDash(blank) = %q", got)
	}
	if got := DefaultDash("x"); got != "x" {
		t.Fatalf("DefaultDash(x) = %q", got)
	}
	if got := FormatUnix(0); got != "—" {
		t.Fatalf("FormatUnix(0) = %q", got)
	}
	if got := FormatUnix(1700000000); got != "14 Nov 2023" {
		t.Fatalf("FormatUnix = %q", got)
	}
}
