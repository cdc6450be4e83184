package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// UnknownLabel is rendered whenever a reference does not resolve in its
// lookup table. Stored identifiers are never rewritten to match.
const UnknownLabel = "Unknown"

// Location is a lookup-table entry that additionally carries a region.
type Location struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// Table identifies one of the library's lookup tables.
type Table string

const (
	TableBrands         Table = "brands"
	TableConcentrations Table = "concentrations"
	TableLocations      Table = "locations"
	TableTags           Table = "tags"
	TablePurchaseTypes  Table = "purchase_types"
)

// Tables lists every lookup table in display order.
var Tables = []Table{TableBrands, TableConcentrations, TableLocations, TableTags, TablePurchaseTypes}

// TableLabel returns the display heading for a lookup table.
func TableLabel(t Table) string {
	switch t {
	case TableBrands:
		return "Brands"
	case TableConcentrations:
		return "Concentrations"
	case TableLocations:
		return "Locations"
	case TableTags:
		return "Tags"
	case TablePurchaseTypes:
		return "Purchase Types"
	}
	return string(t)
}

// Default values seeded into an empty library.
var (
	DefaultConcentrations = []string{"Extrait", "Parfum", "EDP", "EDT", "Cologne"}
	DefaultPurchaseTypes  = []string{"full", "decant", "sample", "gift"}
)

// Library is the complete document: every perfume plus the identifier-keyed
// lookup tables they reference. Renaming a table entry is a single map write;
// referencing perfumes hold the identifier and are untouched.
type Library struct {
	Version        int                 `json:"version"`
	UpdatedAt      int64               `json:"updated_at"`
	Perfumes       []*Perfume          `json:"perfumes"`
	Brands         map[string]string   `json:"brands"`
	Concentrations map[string]string   `json:"concentrations"`
	Locations      map[string]Location `json:"locations"`
	Tags           map[string]string   `json:"tags"`
	PurchaseTypes  map[string]string   `json:"purchase_types"`
}

// NewLibrary builds an empty library with the default lookup values seeded.
func NewLibrary() *Library {
	lib := &Library{
		Version:        2,
		UpdatedAt:      time.Now().Unix(),
		Perfumes:       []*Perfume{},
		Brands:         map[string]string{},
		Concentrations: map[string]string{},
		Locations:      map[string]Location{},
		Tags:           map[string]string{},
		PurchaseTypes:  map[string]string{},
	}
	for _, name := range DefaultConcentrations {
		lib.Concentrations[NewID()] = name
	}
	for _, name := range DefaultPurchaseTypes {
		lib.PurchaseTypes[NewID()] = name
	}
	return lib
}

// EnsureTables allocates any lookup map left nil by a tolerant decode.
func (l *Library) EnsureTables() {
	if l.Perfumes == nil {
		l.Perfumes = []*Perfume{}
	}
	if l.Brands == nil {
		l.Brands = map[string]string{}
	}
	if l.Concentrations == nil {
		l.Concentrations = map[string]string{}
	}
	if l.Locations == nil {
		l.Locations = map[string]Location{}
	}
	if l.Tags == nil {
		l.Tags = map[string]string{}
	}
	if l.PurchaseTypes == nil {
		l.PurchaseTypes = map[string]string{}
	}
}

// Touch refreshes the document timestamp. Called before every save.
func (l *Library) Touch() {
	l.UpdatedAt = time.Now().Unix()
}

// PerfumeByID returns the perfume with the given identifier, or nil.
func (l *Library) PerfumeByID(id string) *Perfume {
	for _, p := range l.Perfumes {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AddPerfume appends a perfume to the collection.
func (l *Library) AddPerfume(p *Perfume) {
	l.Perfumes = append(l.Perfumes, p)
}

// DeletePerfume removes the perfume with the given identifier. It reports
// whether a perfume was removed.
func (l *Library) DeletePerfume(id string) bool {
	for i, p := range l.Perfumes {
		if p.ID == id {
			l.Perfumes = append(l.Perfumes[:i], l.Perfumes[i+1:]...)
			return true
		}
	}
	return false
}

// BrandName resolves a brand reference, falling back to UnknownLabel.
func (l *Library) BrandName(id string) string {
	if id == "" {
		return ""
	}
	if name, ok := l.Brands[id]; ok {
		return name
	}
	return UnknownLabel
}

// ConcentrationName resolves a concentration reference.
func (l *Library) ConcentrationName(id string) string {
	if id == "" {
		return ""
	}
	if name, ok := l.Concentrations[id]; ok {
		return name
	}
	return UnknownLabel
}

// TagName resolves a tag reference.
func (l *Library) TagName(id string) string {
	if name, ok := l.Tags[id]; ok {
		return name
	}
	return UnknownLabel
}

// TagNames resolves a list of tag references, skipping empty identifiers.
func (l *Library) TagNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		names = append(names, l.TagName(id))
	}
	return names
}

// PurchaseTypeName resolves a purchase-type reference.
func (l *Library) PurchaseTypeName(id string) string {
	if id == "" {
		return ""
	}
	if name, ok := l.PurchaseTypes[id]; ok {
		return name
	}
	return UnknownLabel
}

// LocationDisplay resolves a location reference to "Name (Region)".
func (l *Library) LocationDisplay(id string) string {
	loc, ok := l.Locations[id]
	if !ok {
		return UnknownLabel
	}
	if strings.TrimSpace(loc.Region) == "" {
		return loc.Name
	}
	return fmt.Sprintf("%s (%s)", loc.Name, loc.Region)
}

// Entry is one row of a lookup table prepared for display.
type Entry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Region     string `json:"region,omitempty"`
	References int    `json:"references"`
}

// Entries lists the rows of a lookup table sorted by name, with the number
// of perfumes referencing each entry.
func (l *Library) Entries(table Table) []Entry {
	refs := l.referenceCounts(table)
	entries := []Entry{}
	switch table {
	case TableLocations:
		for id, loc := range l.Locations {
			entries = append(entries, Entry{ID: id, Name: loc.Name, Region: loc.Region, References: refs[id]})
		}
	default:
		for id, name := range l.table(table) {
			entries = append(entries, Entry{ID: id, Name: name, References: refs[id]})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries
}

func (l *Library) table(t Table) map[string]string {
	switch t {
	case TableBrands:
		return l.Brands
	case TableConcentrations:
		return l.Concentrations
	case TableTags:
		return l.Tags
	case TablePurchaseTypes:
		return l.PurchaseTypes
	}
	return nil
}

func (l *Library) referenceCounts(table Table) map[string]int {
	counts := map[string]int{}
	for _, p := range l.Perfumes {
		switch table {
		case TableBrands:
			if p.BrandID != "" {
				counts[p.BrandID]++
			}
		case TableConcentrations:
			if p.ConcentrationID != "" {
				counts[p.ConcentrationID]++
			}
		case TableLocations:
			for _, id := range p.LocationIDs {
				counts[id]++
			}
		case TableTags:
			for _, id := range p.TagIDs {
				counts[id]++
			}
		case TablePurchaseTypes:
			for _, e := range p.Events {
				if e.PurchaseTypeID != "" {
					counts[e.PurchaseTypeID]++
				}
			}
		}
	}
	return counts
}

// AddEntry inserts a new lookup value and returns its generated identifier.
// Duplicate names (case-insensitive) reuse the existing entry.
func (l *Library) AddEntry(table Table, name, region string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%s: name must not be empty", table)
	}
	if id := l.findByName(table, name); id != "" {
		return id, nil
	}
	id := NewID()
	if table == TableLocations {
		l.Locations[id] = Location{Name: name, Region: strings.TrimSpace(region)}
		return id, nil
	}
	m := l.table(table)
	if m == nil {
		return "", fmt.Errorf("unknown lookup table %q", table)
	}
	m[id] = name
	return id, nil
}

// RenameEntry updates the display value of one lookup entry. Every perfume
// referencing it picks up the new value immediately because records hold the
// identifier, not the string.
func (l *Library) RenameEntry(table Table, id, name, region string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%s: name must not be empty", table)
	}
	if table == TableLocations {
		if _, ok := l.Locations[id]; !ok {
			return fmt.Errorf("locations: no entry %q", id)
		}
		l.Locations[id] = Location{Name: name, Region: strings.TrimSpace(region)}
		return nil
	}
	m := l.table(table)
	if m == nil {
		return fmt.Errorf("unknown lookup table %q", table)
	}
	if _, ok := m[id]; !ok {
		return fmt.Errorf("%s: no entry %q", table, id)
	}
	m[id] = name
	return nil
}

// ErrEntryInUse is returned when deleting a lookup entry that perfumes still
// reference.
type ErrEntryInUse struct {
	Table      Table
	Name       string
	References int
}

func (e *ErrEntryInUse) Error() string {
	return fmt.Sprintf("%s: %q is referenced by %d perfume(s)", e.Table, e.Name, e.References)
}

// DeleteEntry removes a lookup value. Deletion is rejected while any perfume
// still references the entry.
func (l *Library) DeleteEntry(table Table, id string) error {
	if n := l.referenceCounts(table)[id]; n > 0 {
		return &ErrEntryInUse{Table: table, Name: l.entryName(table, id), References: n}
	}
	if table == TableLocations {
		if _, ok := l.Locations[id]; !ok {
			return fmt.Errorf("locations: no entry %q", id)
		}
		delete(l.Locations, id)
		return nil
	}
	m := l.table(table)
	if m == nil {
		return fmt.Errorf("unknown lookup table %q", table)
	}
	if _, ok := m[id]; !ok {
		return fmt.Errorf("%s: no entry %q", table, id)
	}
	delete(m, id)
	return nil
}

func (l *Library) entryName(table Table, id string) string {
	if table == TableLocations {
		return l.Locations[id].Name
	}
	if m := l.table(table); m != nil {
		return m[id]
	}
	return ""
}

func (l *Library) findByName(table Table, name string) string {
	lower := strings.ToLower(name)
	if table == TableLocations {
		for id, loc := range l.Locations {
			if strings.ToLower(loc.Name) == lower {
				return id
			}
		}
		return ""
	}
	for id, value := range l.table(table) {
		if strings.ToLower(value) == lower {
			return id
		}
	}
	return ""
}

// FindOrCreate resolves a display name to its identifier, creating the entry
// when absent. Blank names resolve to the empty identifier.
func (l *Library) FindOrCreate(table Table, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if id := l.findByName(table, name); id != "" {
		return id
	}
	id, err := l.AddEntry(table, name, "")
	if err != nil {
		return ""
	}
	return id
}

// Names returns the sorted display values of a lookup table, for pickers.
func (l *Library) Names(table Table) []string {
	entries := l.Entries(table)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
