// Command fifteen plays the 15-puzzle in a terminal.
//
// It supports two modes:
//  1. play (default) – interactive console game on stdin/stdout
//  2. "mcp" – MCP stdio server so an AI agent can play the same puzzle
//
// Flags control the config directory and name, the random seed, tile
// colouring and debug logging. Every flag can also be set from the
// environment or a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/fifteen-puzzle/game/config"
	"github.com/wricardo/fifteen-puzzle/game/console"
	"github.com/wricardo/fifteen-puzzle/game/engine"
	"github.com/wricardo/fifteen-puzzle/game/service"
	"github.com/wricardo/fifteen-puzzle/transport/mcp"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Fifteen Puzzle"
)

// main loads .env, builds the command tree and runs it
func main() {
	log.Logger = newLogger(os.Stderr, false)

	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("error loading .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := a.command().Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("fifteen stopped")
	}
}

// app holds the process streams so tests can script a game
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// settings is everything a mode needs after flags are resolved
type settings struct {
	logger  zerolog.Logger
	configs *config.Manager
	game    *engine.GameConfig
	rng     *rand.Rand
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:    "fifteen",
		Usage:   "slide tiles 1-15 into order on a 4x4 board",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing game configurations",
				Sources: cli.EnvVars("FIFTEEN_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultConfigName,
				Usage:   "configuration name (file name without extension)",
				Sources: cli.EnvVars("FIFTEEN_CONFIG"),
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "random seed for the shuffle (default: clock)",
				Sources: cli.EnvVars("FIFTEEN_SEED"),
			},
			&cli.BoolFlag{
				Name:    "color",
				Usage:   "colour tiles with ANSI escapes",
				Sources: cli.EnvVars("FIFTEEN_COLOR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging on stderr",
				Sources: cli.EnvVars("FIFTEEN_DEBUG"),
			},
		},
		Action: a.play,
		Commands: []*cli.Command{
			{
				Name:   "mcp",
				Usage:  "serve the puzzle as MCP tools over stdio",
				Action: a.serveMCP,
			},
		},
	}
}

// play runs the interactive console game
func (a *app) play(ctx context.Context, cmd *cli.Command) error {
	st, err := a.setup(cmd)
	if err != nil {
		return err
	}

	eng, err := engine.NewEngine(st.game, st.rng)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	game := console.NewGame(eng, a.stdin, a.stdout,
		console.WithRenderer(console.NewRenderer(cmd.Bool("color"))),
		console.WithLogger(st.logger),
	)

	result, err := game.Run(ctx)
	if err != nil {
		return err
	}

	st.logger.Debug().
		Bool("solved", result.Solved).
		Bool("quit", result.Quit).
		Int("moves", result.Moves).
		Msg("game over")
	return nil
}

// serveMCP runs the MCP stdio server
func (a *app) serveMCP(ctx context.Context, cmd *cli.Command) error {
	st, err := a.setup(cmd)
	if err != nil {
		return err
	}

	var configs service.ConfigManager
	if st.configs != nil {
		configs = st.configs
	}

	gameService, err := service.NewGameService(configs, st.rng, st.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	st.logger.Info().Str("app", AppName).Str("version", Version).Msg("starting MCP stdio server")
	return mcp.NewServer(gameService, st.logger).ServeStdio()
}

// setup resolves logging, the random source and the active configuration
func (a *app) setup(cmd *cli.Command) (*settings, error) {
	logger := newLogger(a.stderr, cmd.Bool("debug"))
	log.Logger = logger

	st := &settings{logger: logger}

	if cmd.IsSet("seed") {
		st.rng = rand.New(rand.NewSource(cmd.Int64("seed")))
	} else {
		st.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	dir := cmd.String("config-dir")
	name := cmd.String("config")

	manager, err := config.NewManager(dir, logger)
	if err != nil {
		if cmd.IsSet("config") && name != config.DefaultConfigName {
			return nil, fmt.Errorf("config %q requested but config directory is unavailable: %w", name, err)
		}
		logger.Warn().Err(err).Str("dir", dir).Msg("config directory unavailable, using built-in default")
		st.game = engine.DefaultConfig()
		return st, nil
	}
	st.configs = manager

	if err := manager.SetDefault(name); err != nil {
		if cmd.IsSet("config") || !errors.Is(err, config.ErrConfigNotFound) {
			return nil, err
		}
		logger.Debug().Str("config", name).Msg("default config not found, using fallback")
	}
	st.game = manager.GetDefault()

	logger.Debug().Str("config", st.game.Name).Str("dir", dir).Msg("configuration loaded")
	return st, nil
}

// newLogger writes human-readable logs; warn level unless debug is set
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
