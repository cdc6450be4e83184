// Package store persists the whole collection document as a single JSON
// file. Every mutating action rewrites the full document; there are no
// partial writes and no transactions.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
)

// Store reads and writes the collection document at a fixed path.
type Store struct {
	path string
}

// New builds a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the data file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole document. A missing or empty file yields a freshly
// seeded library; a malformed file is an error surfaced to the caller.
func (s *Store) Load() (*catalog.Library, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog.NewLibrary(), nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return catalog.NewLibrary(), nil
	}

	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode data file %s: %w", s.path, err)
	}
	return doc.toLibrary(), nil
}

// Save serializes the full document and atomically replaces the data file.
func (s *Store) Save(lib *catalog.Library) error {
	lib.EnsureTables()
	lib.Touch()

	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".perfumes-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// rawDocument tolerates older document layouts: the "*_map" table names, the
// outlets table, inline brand/tag strings on perfumes and "my_"-prefixed
// personal vote keys.
type rawDocument struct {
	Version   int          `json:"version"`
	UpdatedAt int64        `json:"updated_at"`
	Perfumes  []rawPerfume `json:"perfumes"`

	Brands            map[string]string          `json:"brands"`
	BrandsMap         map[string]string          `json:"brands_map"`
	Concentrations    map[string]string          `json:"concentrations"`
	ConcentrationsMap map[string]string          `json:"concentrations_map"`
	Locations         map[string]json.RawMessage `json:"locations"`
	OutletsMap        map[string]json.RawMessage `json:"outlets_map"`
	Tags              map[string]string          `json:"tags"`
	TagsMap           map[string]string          `json:"tags_map"`
	PurchaseTypes     map[string]string          `json:"purchase_types"`
	PurchaseTypesMap  map[string]string          `json:"purchase_types_map"`
}

type rawPerfume struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	BrandID         string         `json:"brand_id"`
	ConcentrationID string         `json:"concentration_id"`
	LocationIDs     []string       `json:"location_ids"`
	OutletIDs       []string       `json:"outlet_ids"`
	TagIDs          []string       `json:"tag_ids"`
	CreatedAt       int64          `json:"created_at"`
	UpdatedAt       int64          `json:"updated_at"`
	Events          []rawEvent     `json:"events"`
	Notes           []catalog.Note `json:"notes"`
	Links           []catalog.Link `json:"links"`

	Fragrantica map[string]map[string]int `json:"fragrantica"`
	MyVotes     map[string]map[string]int `json:"my_votes"`

	// Legacy inline strings migrated into the lookup tables on load.
	Brand string   `json:"brand"`
	Tags  []string `json:"tags"`
}

type rawEvent struct {
	catalog.Event

	// Legacy purchase-type display name.
	PurchaseType string `json:"purchase_type"`
}

func (doc *rawDocument) toLibrary() *catalog.Library {
	lib := &catalog.Library{
		Version:        doc.Version,
		UpdatedAt:      doc.UpdatedAt,
		Brands:         firstTable(doc.Brands, doc.BrandsMap),
		Concentrations: firstTable(doc.Concentrations, doc.ConcentrationsMap),
		Tags:           firstTable(doc.Tags, doc.TagsMap),
		PurchaseTypes:  firstTable(doc.PurchaseTypes, doc.PurchaseTypesMap),
		Locations:      decodeLocations(doc.Locations, doc.OutletsMap),
	}
	lib.EnsureTables()
	if lib.Version == 0 {
		lib.Version = 2
	}

	for _, rp := range doc.Perfumes {
		p := rp.toPerfume(lib)
		if p.ID == "" {
			p.ID = catalog.NewID()
		}
		lib.AddPerfume(p)
	}

	// Seed the default values when the tables are absent entirely.
	if len(lib.Concentrations) == 0 {
		for _, name := range catalog.DefaultConcentrations {
			lib.Concentrations[catalog.NewID()] = name
		}
	}
	if len(lib.PurchaseTypes) == 0 {
		for _, name := range catalog.DefaultPurchaseTypes {
			lib.PurchaseTypes[catalog.NewID()] = name
		}
	}
	return lib
}

func (rp *rawPerfume) toPerfume(lib *catalog.Library) *catalog.Perfume {
	p := &catalog.Perfume{
		ID:              rp.ID,
		Name:            rp.Name,
		BrandID:         rp.BrandID,
		ConcentrationID: rp.ConcentrationID,
		LocationIDs:     rp.LocationIDs,
		TagIDs:          rp.TagIDs,
		CreatedAt:       rp.CreatedAt,
		UpdatedAt:       rp.UpdatedAt,
		Notes:           rp.Notes,
		Links:           rp.Links,
		Fragrantica:     decodeVoteSet(rp.Fragrantica, ""),
		MyVotes:         decodeVoteSet(rp.MyVotes, "my_"),
	}
	if len(p.LocationIDs) == 0 && len(rp.OutletIDs) > 0 {
		p.LocationIDs = rp.OutletIDs
	}

	// Inline brand/tag strings from pre-normalized documents become lookup
	// entries; the perfume keeps only the identifier.
	if p.BrandID == "" && strings.TrimSpace(rp.Brand) != "" {
		p.BrandID = lib.FindOrCreate(catalog.TableBrands, rp.Brand)
	}
	if len(p.TagIDs) == 0 && len(rp.Tags) > 0 {
		for _, tag := range rp.Tags {
			if id := lib.FindOrCreate(catalog.TableTags, tag); id != "" {
				p.TagIDs = append(p.TagIDs, id)
			}
		}
	}

	p.Events = make([]catalog.Event, 0, len(rp.Events))
	for _, re := range rp.Events {
		e := re.Event
		if e.ID == "" {
			e.ID = catalog.NewID()
		}
		if e.PerfumeID == "" {
			e.PerfumeID = p.ID
		}
		if e.PurchaseTypeID == "" && strings.TrimSpace(re.PurchaseType) != "" {
			e.PurchaseTypeID = lib.FindOrCreate(catalog.TablePurchaseTypes, re.PurchaseType)
		}
		p.Events = append(p.Events, e)
	}
	return p
}

func decodeVoteSet(blocks map[string]map[string]int, legacyPrefix string) catalog.VoteSet {
	var set catalog.VoteSet
	if len(blocks) == 0 {
		return set
	}
	blockKeys := map[string]*map[string]int{
		"rating_votes":      &set.Rating,
		"season_time_votes": &set.SeasonTime,
		"longevity_votes":   &set.Longevity,
		"sillage_votes":     &set.Sillage,
		"gender_votes":      &set.Gender,
		"value_votes":       &set.Value,
	}
	for key, target := range blockKeys {
		if votes, ok := blocks[key]; ok && len(votes) > 0 {
			*target = votes
			continue
		}
		if legacyPrefix == "" {
			continue
		}
		if votes, ok := blocks[legacyPrefix+key]; ok && len(votes) > 0 {
			*target = votes
		}
	}
	return set
}

func decodeLocations(current, legacy map[string]json.RawMessage) map[string]catalog.Location {
	source := current
	if len(source) == 0 {
		source = legacy
	}
	out := map[string]catalog.Location{}
	for id, raw := range source {
		var loc catalog.Location
		if err := json.Unmarshal(raw, &loc); err == nil && loc.Name != "" {
			out[id] = loc
			continue
		}
		// Oldest layout stored a bare name string.
		var name string
		if err := json.Unmarshal(raw, &name); err == nil && name != "" {
			out[id] = catalog.Location{Name: name}
		}
	}
	return out
}

func firstTable(tables ...map[string]string) map[string]string {
	for _, t := range tables {
		if len(t) > 0 {
			return t
		}
	}
	return map[string]string{}
}
