package catalog

import (
	"errors"
	"testing"
)

func TestRenameKeepsReferences(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	brandID, err := lib.AddEntry(TableBrands, "Channel", "")
	if err != nil {
		t.Fatalf("AddEntry() error = %v", err)
	}

	p := NewPerfume("No 5")
	p.BrandID = brandID
	lib.AddPerfume(p)

	if err := lib.RenameEntry(TableBrands, brandID, "Chanel", ""); err != nil {
		t.Fatalf("RenameEntry() error = %v", err)
	}

	if p.BrandID != brandID {
		t.Fatalf("stored reference changed: %q -> %q", brandID, p.BrandID)
	}
	if got := lib.BrandName(p.BrandID); got != "Chanel" {
		t.Fatalf("BrandName() = %q, want %q", got, "Chanel")
	}
}

func TestDeleteReferencedEntryRejected(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	tagID, _ := lib.AddEntry(TableTags, "woody", "")
	p := NewPerfume("Encre Noire")
	p.TagIDs = []string{tagID}
	lib.AddPerfume(p)

	err := lib.DeleteEntry(TableTags, tagID)
	var inUse *ErrEntryInUse
	if !errors.As(err, &inUse) {
		t.Fatalf("DeleteEntry() error = %v, want ErrEntryInUse", err)
	}
	if inUse.References != 1 {
		t.Fatalf("References = %d, want 1", inUse.References)
	}
	if _, ok := lib.Tags[tagID]; !ok {
		t.Fatal("rejected delete must leave the entry in place")
	}

	// After the reference is gone the delete succeeds.
	p.TagIDs = nil
	if err := lib.DeleteEntry(TableTags, tagID); err != nil {
		t.Fatalf("DeleteEntry() after unreference error = %v", err)
	}
}

func TestDeletePurchaseTypeReferencedByEvent(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	ptID, _ := lib.AddEntry(TablePurchaseTypes, "blind buy", "")
	p := NewPerfume("Aventus")
	e := NewEvent(p.ID, EventBuy)
	e.PurchaseTypeID = ptID
	p.Events = append(p.Events, e)
	lib.AddPerfume(p)

	if err := lib.DeleteEntry(TablePurchaseTypes, ptID); err == nil {
		t.Fatal("expected delete of event-referenced purchase type to fail")
	}
}

func TestAddEntryDeduplicates(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	first, _ := lib.AddEntry(TableBrands, "Dior", "")
	second, _ := lib.AddEntry(TableBrands, "dior", "")
	if first != second {
		t.Fatalf("duplicate add created a second entry: %q vs %q", first, second)
	}
	if len(lib.Brands) != 1 {
		t.Fatalf("Brands has %d entries, want 1", len(lib.Brands))
	}
}

func TestAddEntryRejectsBlankName(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	if _, err := lib.AddEntry(TableTags, "   ", ""); err == nil {
		t.Fatal("expected blank name to be rejected")
	}
}

func TestFindOrCreate(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	id := lib.FindOrCreate(TableTags, "fresh")
	if id == "" {
		t.Fatal("FindOrCreate returned empty id")
	}
	if again := lib.FindOrCreate(TableTags, "Fresh"); again != id {
		t.Fatalf("FindOrCreate created duplicate: %q vs %q", id, again)
	}
	if blank := lib.FindOrCreate(TableTags, "  "); blank != "" {
		t.Fatalf("blank name resolved to %q, want empty", blank)
	}
}

func TestLocationEntries(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	id, err := lib.AddEntry(TableLocations, "Sephora", "NYC")
	if err != nil {
		t.Fatalf("AddEntry() error = %v", err)
	}
	if got := lib.LocationDisplay(id); got != "Sephora (NYC)" {
		t.Fatalf("LocationDisplay() = %q", got)
	}
	if err := lib.RenameEntry(TableLocations, id, "Sephora", ""); err != nil {
		t.Fatalf("RenameEntry() error = %v", err)
	}
	if got := lib.LocationDisplay(id); got != "Sephora" {
		t.Fatalf("LocationDisplay() after region removal = %q", got)
	}
	if got := lib.LocationDisplay("missing"); got != UnknownLabel {
		t.Fatalf("missing location resolved to %q", got)
	}
}

func TestUnknownReferencesFallBack(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	if got := lib.BrandName("nope"); got != UnknownLabel {
		t.Fatalf("BrandName(missing) = %q", got)
	}
	if got := lib.BrandName(""); got != "" {
		t.Fatalf("BrandName(empty) = %q, want empty", got)
	}
	if got := lib.TagName("nope"); got != UnknownLabel {
		t.Fatalf("TagName(missing) = %q", got)
	}
}

func TestEntriesSortedWithReferenceCounts(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	b, _ := lib.AddEntry(TableBrands, "Zara", "")
	a, _ := lib.AddEntry(TableBrands, "Armani", "")
	p := NewPerfume("Si")
	p.BrandID = a
	lib.AddPerfume(p)
	_ = b

	entries := lib.Entries(TableBrands)
	if len(entries) != 2 {
		t.Fatalf("Entries() returned %d rows", len(entries))
	}
	if entries[0].Name != "Armani" || entries[1].Name != "Zara" {
		t.Fatalf("Entries() not sorted: %v", entries)
	}
	if entries[0].References != 1 || entries[1].References != 0 {
		t.Fatalf("reference counts wrong: %+v", entries)
	}
}

func TestNewLibrarySeedsDefaults(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	if len(lib.Concentrations) != len(DefaultConcentrations) {
		t.Fatalf("seeded %d concentrations, want %d", len(lib.Concentrations), len(DefaultConcentrations))
	}
	if len(lib.PurchaseTypes) != len(DefaultPurchaseTypes) {
		t.Fatalf("seeded %d purchase types, want %d", len(lib.PurchaseTypes), len(DefaultPurchaseTypes))
	}
	if len(lib.Brands) != 0 || len(lib.Perfumes) != 0 {
		t.Fatal("new library should start without brands or perfumes")
	}
}

func TestDeletePerfume(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	p := NewPerfume("Gone")
	lib.AddPerfume(p)
	if !lib.DeletePerfume(p.ID) {
		t.Fatal("DeletePerfume() = false for present perfume")
	}
	if lib.DeletePerfume(p.ID) {
		t.Fatal("DeletePerfume() = true for absent perfume")
	}
}
