package util

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv("POKERD_HOST", "127.0.0.1")
	t.Setenv("POKERD_PORT", "19204")
	t.Setenv("POKERD_MIN_PLAYERS", "4")

	assert.Equal(t, "127.0.0.1", Env.GetHost())
	assert.Equal(t, uint(19204), Env.GetPort())
	assert.Equal(t, 4, Env.GetMinPlayers())
}

func TestEnvUnsetDefaults(t *testing.T) {
	t.Setenv("POKERD_HOST", "")
	t.Setenv("POKERD_PORT", "")

	assert.Equal(t, "", Env.GetHost())
	assert.Equal(t, uint(0), Env.GetPort())
}

func TestEnvInvalidPortIgnored(t *testing.T) {
	t.Setenv("POKERD_PORT", "not-a-port")
	assert.Equal(t, uint(0), Env.GetPort())
}

func TestEnvLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, zerolog.InfoLevel, Env.GetZeroLogLogLevel())

	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, zerolog.DebugLevel, Env.GetZeroLogLogLevel())

	t.Setenv("LOG_LEVEL", "disabled")
	assert.Equal(t, zerolog.Disabled, Env.GetZeroLogLogLevel())

	t.Setenv("LOG_LEVEL", "bogus")
	assert.Equal(t, zerolog.InfoLevel, Env.GetZeroLogLogLevel())
}
