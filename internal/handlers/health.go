package handlers

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	applog "github.com/boshow88/Perfume-Tracker/internal/log"
)

type healthResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Perfumes int       `json:"perfumes"`
}

// Health is a simple readiness handler suitable for infrastructure probes.
func Health(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	count := len(library.Perfumes)
	mu.Unlock()

	resp := healthResponse{
		Status:   "ok",
		Time:     time.Now().UTC(),
		Perfumes: count,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		applog.Error(r.Context(), "failed to encode health response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
