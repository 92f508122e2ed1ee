package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MAZEWALK_HTTP_ADDR", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("MAZEWALK_MAX_SESSIONS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{Addr: ":8080", GinMode: "release", MaxSessions: 1024}, cfg)

	t.Setenv("MAZEWALK_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("MAZEWALK_MAX_SESSIONS", "5")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{Addr: "127.0.0.1:9000", GinMode: "debug", MaxSessions: 5}, cfg)

	t.Setenv("MAZEWALK_MAX_SESSIONS", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}
