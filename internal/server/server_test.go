package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/boshow88/Perfume-Tracker/internal/catalog"
	"github.com/boshow88/Perfume-Tracker/internal/store"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.Library == nil {
		cfg.Library = catalog.NewLibrary()
	}
	if cfg.Store == nil {
		cfg.Store = store.New(filepath.Join(t.TempDir(), "perfumes.json"))
	}
	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return srv
}

func TestRouterServesHealth(t *testing.T) {
	srv := newTestServer(t, Config{Addr: "127.0.0.1:0"})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected /healthz to return 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json content type, got %q", ct)
	}
}

func TestRouterServesCollectionAPI(t *testing.T) {
	lib := catalog.NewLibrary()
	lib.AddPerfume(catalog.NewPerfume("Test Perfume"))
	srv := newTestServer(t, Config{Addr: "127.0.0.1:0", Library: lib})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/collection", nil)
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := rr.Body.String(); !strings.Contains(body, "Test Perfume") {
		t.Fatalf("collection payload missing perfume, got %q", body)
	}
}

func TestRouterRateLimitsAPI(t *testing.T) {
	srv := newTestServer(t, Config{Addr: "127.0.0.1:0", APIRateLimit: 2})

	var limited bool
	for i := 0; i < 10; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/collection", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		srv.Handler().ServeHTTP(rr, req)
		if rr.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatal("expected a burst of requests to trip the rate limit")
	}
}

func TestAccessGateRedirects(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("sekrit"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	srv := newTestServer(t, Config{Addr: "127.0.0.1:0", AccessCodeHash: string(hash)})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect to access prompt, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/access" {
		t.Fatalf("expected redirect to /access, got %q", loc)
	}
}

func TestAccessGateGuardsCollectionAPI(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("sekrit"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	lib := catalog.NewLibrary()
	lib.AddPerfume(catalog.NewPerfume("Hidden Perfume"))
	srv := newTestServer(t, Config{Addr: "127.0.0.1:0", Library: lib, AccessCodeHash: string(hash)})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/collection", nil)
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without access code, got %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "Hidden Perfume") {
		t.Fatal("collection data leaked past the access gate")
	}
}

func TestHomeOpenWithoutAccessHash(t *testing.T) {
	srv := newTestServer(t, Config{Addr: "127.0.0.1:0"})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with no access hash configured, got %d", rr.Code)
	}
}

func TestRateLimitIgnoresForwardedHeader(t *testing.T) {
	srv := newTestServer(t, Config{Addr: "127.0.0.1:0", APIRateLimit: 2})

	var limited bool
	for i := 0; i < 10; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/collection", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("192.0.2.%d", i))
		srv.Handler().ServeHTTP(rr, req)
		if rr.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatal("rotating forwarded headers must not reset the per-client limit")
	}
}
