package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/boshow88/Perfume-Tracker/internal/config"
	applog "github.com/boshow88/Perfume-Tracker/internal/log"
	"github.com/boshow88/Perfume-Tracker/internal/server"
	"github.com/boshow88/Perfume-Tracker/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		log.Fatalf("invalid log level %q: %v", cfg.Logging.Level, err)
	}

	st := store.New(cfg.Data.Path)
	library, err := st.Load()
	if err != nil {
		log.Fatalf("failed to load collection from %s: %v", cfg.Data.Path, err)
	}
	applog.Info(context.Background(), "collection loaded",
		"path", cfg.Data.Path, "perfumes", len(library.Perfumes))

	srv, err := server.New(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Library:        library,
		Store:          st,
		AccessCodeHash: cfg.Access.CodeHash,
		APIRateLimit:   cfg.Viewer.RateLimit,
	})
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server encountered an error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	if err := srv.Stop(); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}
