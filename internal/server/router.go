package server

import (
	"context"
	"net/http"

	"github.com/boshow88/Perfume-Tracker/internal/handlers"
	applog "github.com/boshow88/Perfume-Tracker/internal/log"
)

func newRouter(cfg Config) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")

	mux.HandleFunc("/healthz", handlers.Health)

	protect := func(h http.HandlerFunc) http.Handler {
		return handlers.RequireAccess(h)
	}

	mux.Handle("/", protect(handlers.Home))
	mux.Handle("/perfumes/table", protect(handlers.PerfumeTable))
	mux.Handle("/perfumes/detail", protect(handlers.PerfumeDetail))
	mux.Handle("/perfumes/new", protect(handlers.NewPerfumeForm))
	mux.Handle("/perfumes/edit", protect(handlers.EditPerfumeForm))
	mux.Handle("/perfumes/add", protect(handlers.AddPerfume))
	mux.Handle("/perfumes/update", protect(handlers.UpdatePerfume))
	mux.Handle("/perfumes/delete", protect(handlers.DeletePerfume))

	mux.Handle("/events/new", protect(handlers.NewEventForm))
	mux.Handle("/events/add", protect(handlers.AddEvent))
	mux.Handle("/events/quick", protect(handlers.QuickEvent))
	mux.Handle("/events/delete", protect(handlers.DeleteEvent))

	mux.Handle("/notes/add", protect(handlers.AddNote))
	mux.Handle("/notes/delete", protect(handlers.DeleteNote))
	mux.Handle("/links/add", protect(handlers.AddLink))
	mux.Handle("/links/delete", protect(handlers.DeleteLink))
	mux.Handle("/votes/update", protect(handlers.UpdateVote))

	mux.Handle("/fragrantica/import", protect(importDispatch()))

	mux.Handle("/library", protect(handlers.LibraryPage))
	mux.Handle("/library/add", protect(handlers.LibraryAdd))
	mux.Handle("/library/rename", protect(handlers.LibraryRename))
	mux.Handle("/library/delete", protect(handlers.LibraryDelete))

	mux.Handle("/filter", protect(filterDispatch()))
	mux.Handle("/sort", protect(sortDispatch()))

	mux.HandleFunc("/access", accessDispatch)

	mux.Handle("/api/collection", rateLimit(cfg.APIRateLimit,
		handlers.RequireAccessAPI(http.HandlerFunc(handlers.Collection))))

	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/static"))))
	mux.Handle("/viewer/", http.StripPrefix("/viewer/", http.FileServer(http.Dir("web/static/viewer"))))

	applog.Debug(context.Background(), "routes registered")
	return mux
}

// importDispatch, filterDispatch and sortDispatch split GET form pages from
// POST submissions sharing one path.
func importDispatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			handlers.Import(w, r)
			return
		}
		handlers.ImportForm(w, r)
	}
}

func filterDispatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			handlers.ApplyFilter(w, r)
			return
		}
		handlers.FilterForm(w, r)
	}
}

func sortDispatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			handlers.ApplySort(w, r)
			return
		}
		handlers.SortForm(w, r)
	}
}

func accessDispatch(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		handlers.Access(w, r)
		return
	}
	handlers.AccessForm(w, r)
}
