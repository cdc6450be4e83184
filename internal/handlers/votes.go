package handlers

import (
	"net/http"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
)

// UpdateVote toggles a personal vote. Rating, longevity, sillage, gender and
// value are single-choice: picking an option clears the previous one, and
// picking the current option again clears the block. Season and time options
// toggle independently so several can be active at once.
func UpdateVote(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	blockKey := r.FormValue("block")
	option := r.FormValue("option")

	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}

	votes, ok := p.MyVotes.BlockByKey(blockKey)
	if !ok {
		http.Error(w, "unknown vote block", http.StatusBadRequest)
		return
	}
	options := optionsForBlock(blockKey)
	if !validOption(options, option) {
		http.Error(w, "unknown vote option", http.StatusBadRequest)
		return
	}

	if votes[option] > 0 {
		delete(votes, option)
	} else {
		if blockKey != "season_time" {
			for key := range votes {
				delete(votes, key)
			}
		}
		votes[option] = 1
	}

	p.Touch()
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	respondDetail(w, r, p.ID)
}

func optionsForBlock(key string) []string {
	switch key {
	case "rating":
		return catalog.RatingOptions
	case "season_time":
		return catalog.SeasonTimeOptions
	case "longevity":
		return catalog.LongevityOptions
	case "sillage":
		return catalog.SillageOptions
	case "gender":
		return catalog.GenderOptions
	case "value":
		return catalog.ValueOptions
	}
	return nil
}

func validOption(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}
