package api

import (
	"fmt"

	"github.com/samdwyer/mazewalk/internal/config"
)

// Config holds the HTTP server's configuration values.
type Config struct {
	Addr        string // Address for the REST API
	GinMode     string // Mode for the Gin framework (release, debug, test)
	MaxSessions int    // Upper bound on live maze sessions
}

// LoadConfig reads MAZEWALK_HTTP_ADDR, GIN_MODE and MAZEWALK_MAX_SESSIONS.
func LoadConfig() (Config, error) {
	maxSessions, err := config.Int("MAZEWALK_MAX_SESSIONS", 1024)
	if err != nil {
		return Config{}, err
	}
	if maxSessions < 1 {
		return Config{}, fmt.Errorf("MAZEWALK_MAX_SESSIONS must be positive, got %d", maxSessions)
	}

	return Config{
		Addr:        config.String("MAZEWALK_HTTP_ADDR", ":8080"),
		GinMode:     config.String("GIN_MODE", "release"),
		MaxSessions: maxSessions,
	}, nil
}
