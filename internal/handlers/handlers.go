package handlers

import (
	"net/http"
	"sync"

	templpkg "github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"
	json "github.com/goccy/go-json"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
	applog "github.com/boshow88/Perfume-Tracker/internal/log"
	"github.com/boshow88/Perfume-Tracker/internal/store"
	"github.com/boshow88/Perfume-Tracker/internal/views/pages"
)

const (
	sessionFilterKey  = "view:filter"
	sessionSortKey    = "view:sort"
	sessionFlashKey   = "view:flash"
	sessionAccessKey  = "access:granted"
	sessionAccessFail = "access:failed"
)

var (
	sessionManager *scs.SessionManager
	library        *catalog.Library
	dataStore      *store.Store
	accessHash     string

	// mu serializes every mutation of the library and the save that
	// follows it. Reads hold it too; the dataset is small.
	mu sync.Mutex
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, lib *catalog.Library, st *store.Store, accessCodeHash string) {
	sessionManager = sm
	library = lib
	dataStore = st
	accessHash = accessCodeHash
}

func renderComponent(w http.ResponseWriter, r *http.Request, c templpkg.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render component", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// saveLibrary persists the library after a mutation. The caller must hold mu.
func saveLibrary(r *http.Request) error {
	library.Touch()
	if err := dataStore.Save(library); err != nil {
		applog.Error(r.Context(), "failed to save collection", "error", err, "path", dataStore.Path())
		return err
	}
	return nil
}

func setFlash(r *http.Request, message string) {
	if sessionManager == nil || message == "" {
		return
	}
	sessionManager.Put(r.Context(), sessionFlashKey, message)
}

func popFlash(r *http.Request) string {
	if sessionManager == nil {
		return ""
	}
	return sessionManager.PopString(r.Context(), sessionFlashKey)
}

// sessionFilter loads the filter stored in the session, falling back to the
// pass-through default.
func sessionFilter(r *http.Request) catalog.Filter {
	filter := catalog.DefaultFilter()
	if sessionManager == nil {
		return filter
	}
	raw := sessionManager.GetString(r.Context(), sessionFilterKey)
	if raw == "" {
		return filter
	}
	if err := json.Unmarshal([]byte(raw), &filter); err != nil {
		applog.Warn(r.Context(), "discarding malformed session filter", "error", err)
		return catalog.DefaultFilter()
	}
	return filter
}

func storeSessionFilter(r *http.Request, f catalog.Filter) {
	if sessionManager == nil {
		return
	}
	raw, err := json.Marshal(f)
	if err != nil {
		applog.Error(r.Context(), "failed to encode filter", "error", err)
		return
	}
	sessionManager.Put(r.Context(), sessionFilterKey, string(raw))
}

func sessionSortKeys(r *http.Request) []catalog.SortKey {
	if sessionManager == nil {
		return nil
	}
	raw := sessionManager.GetString(r.Context(), sessionSortKey)
	if raw == "" {
		return nil
	}
	var keys []catalog.SortKey
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		applog.Warn(r.Context(), "discarding malformed session sort", "error", err)
		return nil
	}
	return keys
}

func storeSessionSortKeys(r *http.Request, keys []catalog.SortKey) {
	if sessionManager == nil {
		return
	}
	raw, err := json.Marshal(keys)
	if err != nil {
		applog.Error(r.Context(), "failed to encode sort keys", "error", err)
		return
	}
	sessionManager.Put(r.Context(), sessionSortKey, string(raw))
}

// snapshot builds the collection view state for the current session. The
// caller must hold mu.
func snapshot(r *http.Request, selected string) pages.CollectionSnapshot {
	return pages.NewCollectionSnapshot(library, sessionFilter(r), sessionSortKeys(r), selected, popFlash(r))
}

// respondDetail re-renders either the detail partial (htmx) or redirects to
// the collection with the perfume selected.
func respondDetail(w http.ResponseWriter, r *http.Request, perfumeID string) {
	if isHTMX(r) {
		p := library.PerfumeByID(perfumeID)
		renderComponent(w, r, pages.PerfumeDetail(library, p))
		return
	}
	http.Redirect(w, r, "/?id="+perfumeID, http.StatusSeeOther)
}

func requirePerfume(w http.ResponseWriter, r *http.Request) *catalog.Perfume {
	p := library.PerfumeByID(r.FormValue("id"))
	if p == nil {
		http.NotFound(w, r)
		return nil
	}
	return p
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}
