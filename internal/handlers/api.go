package handlers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
	applog "github.com/boshow88/Perfume-Tracker/internal/log"
)

type apiPerfume struct {
	*catalog.Perfume
	Brand         string           `json:"brand"`
	Concentration string           `json:"concentration,omitempty"`
	Locations     []string         `json:"locations,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	State         string           `json:"state"`
	Tested        bool             `json:"tested"`
	OnSkin        bool             `json:"on_skin"`
	OwnedML       float64          `json:"owned_ml"`
	Scores        map[string]*real `json:"scores"`
}

// real serializes as a number, distinguishing "no data" (null) from zero.
type real float64

func score(votes map[string]int, options []string) *real {
	v := catalog.WeightedScore(votes, options)
	if v == 0 {
		return nil
	}
	r := real(v)
	return &r
}

type apiCollection struct {
	Version       int                 `json:"version"`
	UpdatedAt     int64               `json:"updated_at"`
	Perfumes      []apiPerfume        `json:"perfumes"`
	Brands        []catalog.Entry     `json:"brands"`
	Tags          []catalog.Entry     `json:"tags"`
	Locations     []catalog.Entry     `json:"locations"`
	Concentration []catalog.Entry     `json:"concentrations"`
	PurchaseTypes []catalog.Entry     `json:"purchase_types"`
	Options       map[string][]string `json:"options"`
}

// Collection serves the whole catalogue as JSON with names and derived
// state resolved, so the static viewer needs no lookup logic of its own.
func Collection(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	out := apiCollection{
		Version:       library.Version,
		UpdatedAt:     library.UpdatedAt,
		Perfumes:      make([]apiPerfume, 0, len(library.Perfumes)),
		Brands:        library.Entries(catalog.TableBrands),
		Tags:          library.Entries(catalog.TableTags),
		Locations:     library.Entries(catalog.TableLocations),
		Concentration: library.Entries(catalog.TableConcentrations),
		PurchaseTypes: library.Entries(catalog.TablePurchaseTypes),
		Options: map[string][]string{
			"rating":      catalog.RatingOptions,
			"season_time": catalog.SeasonTimeOptions,
			"longevity":   catalog.LongevityOptions,
			"sillage":     catalog.SillageOptions,
			"gender":      catalog.GenderOptions,
			"value":       catalog.ValueOptions,
		},
	}
	for _, p := range library.Perfumes {
		d := catalog.Derive(p)
		locations := make([]string, 0, len(p.LocationIDs))
		for _, id := range p.LocationIDs {
			locations = append(locations, library.LocationDisplay(id))
		}
		out.Perfumes = append(out.Perfumes, apiPerfume{
			Perfume:       p,
			Brand:         library.BrandName(p.BrandID),
			Concentration: library.ConcentrationName(p.ConcentrationID),
			Locations:     locations,
			Tags:          library.TagNames(p.TagIDs),
			State:         d.Ownership.String(),
			Tested:        d.Tested,
			OnSkin:        d.OnSkin,
			OwnedML:       d.OwnedML,
			Scores: map[string]*real{
				"rating":    score(p.Fragrantica.Rating, catalog.RatingOptions),
				"longevity": score(p.Fragrantica.Longevity, catalog.LongevityOptions),
				"sillage":   score(p.Fragrantica.Sillage, catalog.SillageOptions),
				"value":     score(p.Fragrantica.Value, catalog.ValueOptions),
				"gender":    score(p.Fragrantica.Gender, catalog.GenderOptions),
			},
		})
	}
	mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		applog.Error(r.Context(), "failed to encode collection", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
