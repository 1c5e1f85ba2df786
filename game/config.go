package game

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// MinimumPlayers is the smallest roster a round can start with.
	MinimumPlayers = 2

	// DefaultPort is the port the daemon listens on when nothing else
	// is configured.
	DefaultPort = 9204
)

// Config holds the daemon's tunables. Zero values fall back to the
// defaults, so a partial YAML file is fine.
type Config struct {
	Host           string `yaml:"host"`
	Port           uint   `yaml:"port"`
	AdminPort      uint   `yaml:"adminPort"`
	MinPlayers     int    `yaml:"minPlayers"`
	WaitTickMillis uint32 `yaml:"waitTickMillis"`
}

// DefaultConfig returns the stock configuration: listen on all
// interfaces, port 9204, two-player minimum, one-second wait counters.
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           DefaultPort,
		AdminPort:      DefaultPort + 1,
		MinPlayers:     MinimumPlayers,
		WaitTickMillis: 1000,
	}
}

// ParseConfig reads a YAML config file and overlays it on the defaults.
func ParseConfig(configFile string) (Config, error) {
	config := DefaultConfig()

	bytes, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, errors.Wrap(err, fmt.Sprintf("Error reading config file [%s]", configFile))
	}

	err = yaml.Unmarshal(bytes, &config)
	if err != nil {
		return Config{}, errors.Wrap(err, fmt.Sprintf("Error parsing config YAML file [%s]", configFile))
	}

	if config.MinPlayers < MinimumPlayers {
		config.MinPlayers = MinimumPlayers
	}
	if config.WaitTickMillis == 0 {
		config.WaitTickMillis = 1000
	}
	return config, nil
}

// WaitTick is the interval at which waiting counters are refreshed.
func (c Config) WaitTick() time.Duration {
	return time.Duration(c.WaitTickMillis) * time.Millisecond
}

// ListenAddr is the host:port the player listener binds.
func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AdminAddr is the host:port the admin REST server binds.
func (c Config) AdminAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.AdminPort)
}
