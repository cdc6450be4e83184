package handlers

import (
	"net/http"
	"strings"

	applog "github.com/boshow88/Perfume-Tracker/internal/log"
	"github.com/boshow88/Perfume-Tracker/internal/views/pages"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
)

// NewPerfumeForm renders the empty add form.
func NewPerfumeForm(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	defer mu.Unlock()
	renderComponent(w, r, pages.PerfumeForm(library, nil))
}

// EditPerfumeForm renders the edit form for an existing perfume.
func EditPerfumeForm(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}
	renderComponent(w, r, pages.PerfumeForm(library, p))
}

// AddPerfume creates a perfume from the submitted form.
func AddPerfume(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	mu.Lock()
	defer mu.Unlock()

	p := catalog.NewPerfume(name)
	applyPerfumeForm(r, p)
	library.AddPerfume(p)
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	applog.Info(r.Context(), "perfume added", "id", p.ID, "name", p.Name)
	setFlash(r, "Added "+p.Name)
	http.Redirect(w, r, "/?id="+p.ID, http.StatusSeeOther)
}

// UpdatePerfume applies form edits to an existing perfume.
func UpdatePerfume(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}
	if name := strings.TrimSpace(r.FormValue("name")); name != "" {
		p.Name = name
	}
	applyPerfumeForm(r, p)
	p.Touch()
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	setFlash(r, "Saved "+p.Name)
	http.Redirect(w, r, "/?id="+p.ID, http.StatusSeeOther)
}

// DeletePerfume removes a perfume and its attached data.
func DeletePerfume(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}
	library.DeletePerfume(p.ID)
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	applog.Info(r.Context(), "perfume deleted", "id", p.ID, "name", p.Name)
	setFlash(r, "Deleted "+p.Name)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// applyPerfumeForm fills the reference fields from the submitted form,
// creating brand and tag entries for freshly typed names. The caller must
// hold mu.
func applyPerfumeForm(r *http.Request, p *catalog.Perfume) {
	p.BrandID = r.FormValue("brand_id")
	if name := strings.TrimSpace(r.FormValue("brand_new")); name != "" {
		p.BrandID = library.FindOrCreate(catalog.TableBrands, name)
	}
	p.ConcentrationID = r.FormValue("concentration_id")
	p.LocationIDs = r.Form["location_ids"]
	p.TagIDs = r.Form["tag_ids"]
	for _, name := range strings.Split(r.FormValue("tags_new"), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id := library.FindOrCreate(catalog.TableTags, name)
		if !containsID(p.TagIDs, id) {
			p.TagIDs = append(p.TagIDs, id)
		}
	}
}

func containsID(ids []string, id string) bool {
	for _, have := range ids {
		if have == id {
			return true
		}
	}
	return false
}
