package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/boshow88/Perfume-Tracker/internal/fragrantica"
	applog "github.com/boshow88/Perfume-Tracker/internal/log"
	"github.com/boshow88/Perfume-Tracker/internal/views/pages"
)

// ImportForm renders the paste target for a Fragrantica page dump.
func ImportForm(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}
	renderComponent(w, r, pages.ImportPage(p, nil))
}

// Import parses pasted Fragrantica page text and stores the community votes
// on the perfume. Blocks the parser could not find keep their previous data.
func Import(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	text := r.FormValue("text")
	if strings.TrimSpace(text) == "" {
		http.Error(w, "page text is required", http.StatusBadRequest)
		return
	}

	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}

	parsed, warnings := fragrantica.Parse(text)
	p.Fragrantica.Merge(parsed)

	p.Touch()
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	applog.Info(r.Context(), "fragrantica votes imported",
		"perfume", p.ID, "warnings", len(warnings))

	if len(warnings) > 0 {
		renderComponent(w, r, pages.ImportPage(p, warnings))
		return
	}
	setFlash(r, fmt.Sprintf("Imported Fragrantica votes for %s", p.Name))
	http.Redirect(w, r, "/?id="+p.ID, http.StatusSeeOther)
}
