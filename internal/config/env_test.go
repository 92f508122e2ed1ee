package config

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Setenv("MAZEWALK_TEST_STRING", "")
	assert.Equal(t, "fallback", String("MAZEWALK_TEST_STRING", "fallback"))

	t.Setenv("MAZEWALK_TEST_STRING", "value")
	assert.Equal(t, "value", String("MAZEWALK_TEST_STRING", "fallback"))
}

func TestInt(t *testing.T) {
	t.Setenv("MAZEWALK_TEST_INT", "")
	n, err := Int("MAZEWALK_TEST_INT", 15)
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	t.Setenv("MAZEWALK_TEST_INT", "25")
	n, err = Int("MAZEWALK_TEST_INT", 15)
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	t.Setenv("MAZEWALK_TEST_INT", "big")
	_, err = Int("MAZEWALK_TEST_INT", 15)
	assert.ErrorContains(t, err, "MAZEWALK_TEST_INT")
}

func TestInt64(t *testing.T) {
	t.Setenv("MAZEWALK_TEST_INT64", "-9000000000")
	n, err := Int64("MAZEWALK_TEST_INT64", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-9000000000), n)

	t.Setenv("MAZEWALK_TEST_INT64", "1.5")
	_, err = Int64("MAZEWALK_TEST_INT64", 0)
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	t.Setenv("MAZEWALK_TEST_LEVEL", "")
	level, err := LogLevel("MAZEWALK_TEST_LEVEL", log.InfoLevel)
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, level)

	t.Setenv("MAZEWALK_TEST_LEVEL", "debug")
	level, err = LogLevel("MAZEWALK_TEST_LEVEL", log.InfoLevel)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)

	t.Setenv("MAZEWALK_TEST_LEVEL", "chatty")
	_, err = LogLevel("MAZEWALK_TEST_LEVEL", log.InfoLevel)
	assert.Error(t, err)
}
