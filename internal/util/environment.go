package util

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/pbui/pokerd/logging"
)

var environmentLogger = logging.GetZeroLogger("util::environment", nil)

type pokerdEnvironment struct {
	Host       string
	Port       string
	AdminPort  string
	ConfigFile string
	MinPlayers string
	LogLevel   string
}

// Env is a helper object for accessing environment variables.
var Env = &pokerdEnvironment{
	Host:       "POKERD_HOST",
	Port:       "POKERD_PORT",
	AdminPort:  "POKERD_ADMIN_PORT",
	ConfigFile: "POKERD_CONFIG",
	MinPlayers: "POKERD_MIN_PLAYERS",
	LogLevel:   "LOG_LEVEL",
}

// GetHost returns the listen host override, or "" if unset.
func (e *pokerdEnvironment) GetHost() string {
	return os.Getenv(e.Host)
}

// GetPort returns the listen port override, or 0 if unset or invalid.
func (e *pokerdEnvironment) GetPort() uint {
	return e.getUint(e.Port)
}

// GetAdminPort returns the admin port override, or 0 if unset or
// invalid.
func (e *pokerdEnvironment) GetAdminPort() uint {
	return e.getUint(e.AdminPort)
}

// GetConfigFile returns the config file override, or "" if unset.
func (e *pokerdEnvironment) GetConfigFile() string {
	return os.Getenv(e.ConfigFile)
}

// GetMinPlayers returns the minimum-players override, or 0 if unset
// or invalid.
func (e *pokerdEnvironment) GetMinPlayers() int {
	return int(e.getUint(e.MinPlayers))
}

func (e *pokerdEnvironment) getUint(key string) uint {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		environmentLogger.Warn().Msgf("Ignoring invalid value [%s] for %s", v, key)
		return 0
	}
	return uint(n)
}

func (e *pokerdEnvironment) GetZeroLogLogLevel() zerolog.Level {
	v := os.Getenv(e.LogLevel)
	switch v {
	case "":
		return zerolog.InfoLevel
	case "disabled":
		return zerolog.Disabled
	default:
		l, err := zerolog.ParseLevel(v)
		if err != nil {
			environmentLogger.Warn().Msgf("Ignoring invalid log level [%s]", v)
			return zerolog.InfoLevel
		}
		return l
	}
}
