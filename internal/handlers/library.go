package handlers

import (
	"errors"
	"net/http"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
	applog "github.com/boshow88/Perfume-Tracker/internal/log"
	"github.com/boshow88/Perfume-Tracker/internal/views/pages"
)

func libraryTable(r *http.Request) (catalog.Table, bool) {
	value := r.FormValue("table")
	if value == "" {
		return catalog.TableBrands, true
	}
	for _, t := range catalog.Tables {
		if string(t) == value {
			return t, true
		}
	}
	return "", false
}

// LibraryPage renders the lookup-table manager.
func LibraryPage(w http.ResponseWriter, r *http.Request) {
	table, ok := libraryTable(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	mu.Lock()
	defer mu.Unlock()
	renderComponent(w, r, pages.LibraryPage(library, table, popFlash(r)))
}

// LibraryAdd creates a lookup entry.
func LibraryAdd(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	table, ok := libraryTable(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	mu.Lock()
	defer mu.Unlock()
	_, err := library.AddEntry(table, r.FormValue("name"), r.FormValue("region"))
	if err != nil {
		setFlash(r, err.Error())
	} else if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/library?table="+string(table), http.StatusSeeOther)
}

// LibraryRename renames a lookup entry. Every perfume referencing the entry
// picks up the new name because references are by identifier.
func LibraryRename(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	table, ok := libraryTable(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	mu.Lock()
	defer mu.Unlock()
	err := library.RenameEntry(table, r.FormValue("id"), r.FormValue("name"), r.FormValue("region"))
	if err != nil {
		setFlash(r, err.Error())
	} else if err := saveLibrary(r); err != nil {
		http.Error(w, "failed to save", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/library?table="+string(table), http.StatusSeeOther)
}

// LibraryDelete removes a lookup entry unless perfumes still reference it.
func LibraryDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	table, ok := libraryTable(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	mu.Lock()
	defer mu.Unlock()
	err := library.DeleteEntry(table, r.FormValue("id"))
	var inUse *catalog.ErrEntryInUse
	switch {
	case errors.As(err, &inUse):
		setFlash(r, err.Error())
	case err != nil:
		applog.Warn(r.Context(), "library delete rejected", "table", string(table), "error", err)
		setFlash(r, err.Error())
	default:
		if err := saveLibrary(r); err != nil {
			http.Error(w, "failed to save", http.StatusInternalServerError)
			return
		}
	}
	http.Redirect(w, r, "/library?table="+string(table), http.StatusSeeOther)
}
