package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
)

// AddNote attaches a titled note to a perfume.
func AddNote(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	content := strings.TrimSpace(r.FormValue("content"))
	if content == "" {
		http.Error(w, "note content is required", http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		title = "Note"
	}

	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}

	p.Notes = append(p.Notes, catalog.Note{
		ID:        catalog.NewID(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().Unix(),
	})
	p.Touch()
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	respondDetail(w, r, p.ID)
}

// DeleteNote removes one note from a perfume.
func DeleteNote(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}
	idx := p.NoteByID(r.FormValue("note_id"))
	if idx < 0 {
		http.NotFound(w, r)
		return
	}
	p.Notes = append(p.Notes[:idx], p.Notes[idx+1:]...)
	p.Touch()
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	respondDetail(w, r, p.ID)
}

// AddLink attaches a labelled URL to a perfume.
func AddLink(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	url := strings.TrimSpace(r.FormValue("url"))
	if url == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}
	label := strings.TrimSpace(r.FormValue("label"))
	if label == "" {
		label = url
	}

	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}

	p.Links = append(p.Links, catalog.Link{Label: label, URL: url})
	p.Touch()
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	respondDetail(w, r, p.ID)
}

// DeleteLink removes the link at the submitted index.
func DeleteLink(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	p := requirePerfume(w, r)
	if p == nil {
		return
	}
	idx, err := strconv.Atoi(r.FormValue("index"))
	if err != nil || idx < 0 || idx >= len(p.Links) {
		http.NotFound(w, r)
		return
	}
	p.Links = append(p.Links[:idx], p.Links[idx+1:]...)
	p.Touch()
	if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	respondDetail(w, r, p.ID)
}
