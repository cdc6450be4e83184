package handlers

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	applog "github.com/boshow88/Perfume-Tracker/internal/log"
	"github.com/boshow88/Perfume-Tracker/internal/views/pages"
)

// AccessForm renders the access-code prompt.
func AccessForm(w http.ResponseWriter, r *http.Request) {
	failed := sessionManager != nil && sessionManager.PopBool(r.Context(), sessionAccessFail)
	renderComponent(w, r, pages.AccessPage(failed))
}

// Access verifies the submitted code against the configured bcrypt hash and
// marks the session as granted.
func Access(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if sessionManager == nil || accessHash == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(accessHash), []byte(r.FormValue("code"))); err != nil {
		sessionManager.Put(r.Context(), sessionAccessFail, true)
		http.Redirect(w, r, "/access", http.StatusSeeOther)
		return
	}
	if err := sessionManager.RenewToken(r.Context()); err != nil {
		applog.Error(r.Context(), "failed to renew session token", "error", err)
		http.Error(w, "session failure", http.StatusInternalServerError)
		return
	}
	sessionManager.Put(r.Context(), sessionAccessKey, true)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HasAccess reports whether the session passed the access gate. With no
// hash configured the gate is open.
func HasAccess(r *http.Request) bool {
	if accessHash == "" {
		return true
	}
	return sessionManager != nil && sessionManager.GetBool(r.Context(), sessionAccessKey)
}

// RequireAccess redirects to the access prompt until the session is granted.
func RequireAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !HasAccess(r) {
			http.Redirect(w, r, "/access", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAccessAPI rejects ungated requests with 401 instead of redirecting,
// for JSON endpoints whose consumers cannot follow the prompt.
func RequireAccessAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !HasAccess(r) {
			http.Error(w, "access code required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
