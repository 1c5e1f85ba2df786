package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "0.0.0.0", config.Host)
	assert.Equal(t, uint(9204), config.Port)
	assert.Equal(t, uint(9205), config.AdminPort)
	assert.Equal(t, 2, config.MinPlayers)
	assert.Equal(t, time.Second, config.WaitTick())
	assert.Equal(t, "0.0.0.0:9204", config.ListenAddr())
	assert.Equal(t, "0.0.0.0:9205", config.AdminAddr())
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "pokerd.yaml")
	data := "host: 127.0.0.1\nport: 19204\nminPlayers: 3\n"
	require.NoError(t, os.WriteFile(configFile, []byte(data), 0644))

	config, err := ParseConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", config.Host)
	assert.Equal(t, uint(19204), config.Port)
	assert.Equal(t, 3, config.MinPlayers)
	// Untouched keys keep their defaults.
	assert.Equal(t, uint(9205), config.AdminPort)
	assert.Equal(t, time.Second, config.WaitTick())
}

func TestParseConfigClampsMinimumPlayers(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "pokerd.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("minPlayers: 1\n"), 0644))

	config, err := ParseConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, MinimumPlayers, config.MinPlayers)
}

func TestParseConfigMissingFile(t *testing.T) {
	_, err := ParseConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseConfigBadYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "pokerd.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("port: [nope"), 0644))

	_, err := ParseConfig(configFile)
	require.Error(t, err)
}
