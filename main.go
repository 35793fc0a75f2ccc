// Command carsim is a menu-driven car simulator.
//
// Run without arguments to play at the terminal prompt. Subcommands:
//  1. "tui" – full-screen terminal UI
//  2. "mcp" – Model Context Protocol stdio server for AI agents
//  3. "env" – list the environment variables the program reads
//
// Settings come from the environment (and an optional .env or --config file).
// When a telemetry address is set, a read-only HTTP and WebSocket API shows the
// game live, optionally through an ngrok tunnel.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/mcp-training/carsimulator/game/config"
	"github.com/wricardo/mcp-training/carsimulator/game/provider"
	"github.com/wricardo/mcp-training/carsimulator/game/service"
	"github.com/wricardo/mcp-training/carsimulator/transport/console"
	"github.com/wricardo/mcp-training/carsimulator/transport/mcp"
	"github.com/wricardo/mcp-training/carsimulator/transport/tui"
	"github.com/wricardo/mcp-training/carsimulator/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Car Simulator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdin, os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newCommand builds the CLI. Game output goes to stdout, logs to stderr.
func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "carsim",
		Usage:     "drive a car from a text menu",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "settings file (yaml, json, toml or env)",
				Sources: cli.EnvVars("CARSIM_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "offline",
				Usage: "skip the driver lookup and use the fallback driver",
			},
			&cli.StringFlag{
				Name:  "fallback",
				Usage: "fallback driver strategy (static, pool)",
			},
			&cli.StringFlag{
				Name:  "telemetry-addr",
				Usage: "serve read-only telemetry on this address, e.g. localhost:8080",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withGame(ctx, cmd, stderr, func(ctx context.Context, g *game) error {
				c := console.New(g.service, stdin, stdout, console.WithLogger(g.logger))
				return ignoreCancel(c.Run(ctx))
			})
		},
		Commands: []*cli.Command{
			{
				Name:  "tui",
				Usage: "play in a full-screen terminal UI",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withGame(ctx, cmd, stderr, func(ctx context.Context, g *game) error {
						return tui.Run(ctx, g.service)
					})
				},
			},
			{
				Name:  "mcp",
				Usage: "serve the game to AI agents over MCP stdio",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withGame(ctx, cmd, stderr, func(ctx context.Context, g *game) error {
						g.logger.Info("MCP stdio server ready")
						return mcp.NewServer(g.service, g.logger).ServeStdio()
					})
				},
			},
			{
				Name:  "env",
				Usage: "list environment variables and their defaults",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					description, err := config.Describe()
					if err != nil {
						return err
					}
					fmt.Fprintln(stdout, description)
					return nil
				},
			},
		},
	}
}

// game is everything one play session needs
type game struct {
	settings *config.Settings
	logger   *log.Logger
	service  service.GameService
	hub      *websocket.Hub
}

// withGame wires settings, logging, the driver provider and telemetry, runs
// play and tears everything down again
func withGame(ctx context.Context, cmd *cli.Command, stderr io.Writer, play func(context.Context, *game) error) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "carsim",
		Level:           settings.Level(),
	})
	logger.Debug("starting", "app", AppName, "version", Version)

	g := &game{settings: settings, logger: logger}

	opts := []service.Option{service.WithLogger(logger)}
	if settings.TelemetryEnabled() {
		g.hub = websocket.NewHub(logger)
		go g.hub.Run()
		defer g.hub.Stop()
		opts = append(opts, service.WithBroadcaster(g.hub))
	}

	driverProvider, err := newDriverProvider(settings, logger)
	if err != nil {
		return err
	}
	g.service = service.NewGameService(driverProvider, opts...)

	if settings.TelemetryEnabled() {
		t, err := startTelemetry(ctx, settings, g.service, g.hub, logger)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := t.Shutdown(shutdownCtx); err != nil {
				logger.Warn("telemetry shutdown error", "err", err)
			}
		}()
	}

	return play(ctx, g)
}

// loadSettings reads .env, the environment or --config, then applies flags
func loadSettings(cmd *cli.Command) (*config.Settings, error) {
	if err := config.LoadDotEnv(); err != nil {
		log.Warn("error loading .env file", "err", err)
	}

	var (
		settings *config.Settings
		err      error
	)
	if path := cmd.String("config"); path != "" {
		settings, err = config.LoadFile(path)
	} else {
		settings, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if cmd.Bool("debug") {
		settings.LogLevel = "debug"
	}
	if cmd.IsSet("offline") {
		settings.Provider.Offline = cmd.Bool("offline")
	}
	if fallback := cmd.String("fallback"); fallback != "" {
		settings.Provider.Fallback = fallback
	}
	if addr := cmd.String("telemetry-addr"); addr != "" {
		settings.Telemetry.Addr = addr
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// newDriverProvider picks the network provider or, offline, the fallback alone
func newDriverProvider(settings *config.Settings, logger *log.Logger) (provider.DriverProvider, error) {
	fallback, err := provider.NewFallback(settings.Provider.Fallback)
	if err != nil {
		return nil, err
	}

	if settings.Provider.Offline {
		logger.Debug("offline mode, using fallback driver", "fallback", settings.Provider.Fallback)
		return provider.NewFallbackProvider(fallback), nil
	}

	return provider.NewRandomUserProvider(
		provider.WithEndpoint(settings.Provider.URL),
		provider.WithTimeout(settings.Provider.Timeout),
		provider.WithFallback(fallback),
		provider.WithLogger(logger),
	), nil
}

// ignoreCancel treats an interrupt as a normal way to leave the game
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
