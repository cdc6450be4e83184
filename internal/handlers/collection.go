package handlers

import (
	"net/http"

	"github.com/boshow88/Perfume-Tracker/internal/views/pages"
)

// Home renders the collection workspace: the filtered, sorted list next to
// the detail pane of the selected perfume.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	mu.Lock()
	defer mu.Unlock()
	renderComponent(w, r, pages.CollectionPage(snapshot(r, r.URL.Query().Get("id"))))
}

// PerfumeTable renders the list partial for htmx refreshes.
func PerfumeTable(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	defer mu.Unlock()
	renderComponent(w, r, pages.PerfumeTable(snapshot(r, r.URL.Query().Get("id"))))
}

// PerfumeDetail renders the detail partial for one perfume.
func PerfumeDetail(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}
	renderComponent(w, r, pages.PerfumeDetail(library, p))
}
