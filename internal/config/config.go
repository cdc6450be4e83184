// Package config builds the runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Logging LoggingConfig
	Session SessionConfig
	Access  AccessConfig
	Viewer  ViewerConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// DataConfig locates the single JSON document holding the collection.
type DataConfig struct {
	Path string
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level string
}

// SessionConfig controls session cookie behavior.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// AccessConfig optionally gates the UI behind a bcrypt-hashed access code,
// for deployments reaching beyond the local machine. Empty hash means open.
type AccessConfig struct {
	CodeHash string
}

// ViewerConfig tunes the read-only viewer API.
type ViewerConfig struct {
	RateLimit int // requests per second per client, 0 disables limiting
}

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	lookup := os.Getenv
	cfg := Config{
		Server: ServerConfig{
			Addr: firstNonEmpty(lookup("SERVER_ADDR"), lookup("ADDR"), "127.0.0.1:8099"),
		},
		Data: DataConfig{
			Path: firstNonEmpty(lookup("DATA_PATH"), "data/perfumes.json"),
		},
		Logging: LoggingConfig{
			Level: firstNonEmpty(lookup("LOG_LEVEL"), "info"),
		},
		Session: SessionConfig{
			Lifetime:     parseDurationWithDefault(lookup("SESSION_LIFETIME"), 12*time.Hour),
			CookieName:   firstNonEmpty(lookup("SESSION_COOKIE_NAME"), "tracker_session"),
			CookieDomain: lookup("SESSION_COOKIE_DOMAIN"),
			CookieSecure: parseBoolWithDefault(lookup("SESSION_COOKIE_SECURE"), false),
		},
		Access: AccessConfig{
			CodeHash: strings.TrimSpace(lookup("ACCESS_CODE_HASH")),
		},
		Viewer: ViewerConfig{
			RateLimit: parseIntWithDefault(lookup("VIEWER_RATE_LIMIT"), 20),
		},
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}
	if strings.TrimSpace(cfg.Data.Path) == "" {
		return Config{}, fmt.Errorf("data path must not be empty")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := time.ParseDuration(trimmed)
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return def
	}
	return parsed
}
