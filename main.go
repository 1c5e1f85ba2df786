package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pbui/pokerd/game"
	"github.com/pbui/pokerd/internal/util"
	"github.com/pbui/pokerd/logging"
	"github.com/pbui/pokerd/rest"
	"github.com/pbui/pokerd/server"
)

var configFile *string
var host *string
var port *uint
var adminPort *uint

var mainLogger = logging.GetZeroLogger("main::main", nil)

func init() {
	configFile = flag.String("config", "", "YAML configuration file")
	host = flag.String("host", "", "listen host (overrides config)")
	port = flag.Uint("port", 0, "listen port (overrides config)")
	adminPort = flag.Uint("admin-port", 0, "admin REST port (overrides config)")
}

func main() {
	err := run()
	if err != nil {
		mainLogger.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	zerolog.SetGlobalLevel(util.Env.GetZeroLogLogLevel())

	config, err := loadConfig()
	if err != nil {
		return err
	}

	table := game.NewTable(config)
	srv := server.New(config, table)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(ctx)
	})
	g.Go(func() error {
		return rest.RunAdminServer(ctx, config.AdminAddr(), table)
	})
	return g.Wait()
}

// loadConfig resolves the configuration with flags taking precedence
// over environment variables, which take precedence over the YAML
// file, which overlays the defaults.
func loadConfig() (game.Config, error) {
	file := *configFile
	if file == "" {
		file = util.Env.GetConfigFile()
	}

	config := game.DefaultConfig()
	if file != "" {
		parsed, err := game.ParseConfig(file)
		if err != nil {
			return game.Config{}, err
		}
		config = parsed
	}

	if h := util.Env.GetHost(); h != "" {
		config.Host = h
	}
	if p := util.Env.GetPort(); p != 0 {
		config.Port = p
	}
	if p := util.Env.GetAdminPort(); p != 0 {
		config.AdminPort = p
	}
	if m := util.Env.GetMinPlayers(); m >= game.MinimumPlayers {
		config.MinPlayers = m
	}

	if *host != "" {
		config.Host = *host
	}
	if *port != 0 {
		config.Port = *port
	}
	if *adminPort != 0 {
		config.AdminPort = *adminPort
	}
	return config, nil
}
