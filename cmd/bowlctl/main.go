package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/bowlctl/internal/config"
	"github.com/danmuck/bowlctl/internal/console"
	"github.com/danmuck/bowlctl/internal/game"
	"github.com/danmuck/bowlctl/internal/logging"
	"github.com/danmuck/bowlctl/internal/server"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to a bowlctl TOML config (optional)")
	flag.BoolVar(&opts.serve, "serve", false, "serve the live scoreboard over HTTP")
	flag.StringVar(&opts.addr, "addr", "", "scoreboard listen address (overrides config)")
	flag.Parse()

	logging.ConfigureRuntime()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "bowlctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	ui := console.New(os.Stdin, os.Stdout, cfg.MaxCompetitors, console.WithClearScreen(cfg.ClearScreen))
	gameOpts := []game.Option{game.WithLogger(log.Logger.With().Str("component", "game").Logger())}

	var srv *server.Server
	if cfg.Server.Enabled {
		store := server.NewStore()
		srv = server.New(cfg.Server.Addr, store, cfg.Server.CorsOrigins, log.Logger.With().Str("component", "server").Logger())
		gameOpts = append(gameOpts, game.WithPublisher(store))
	}
	bowlingGame := game.New(ui, gameConfig(cfg), gameOpts...)

	g, gctx := errgroup.WithContext(ctx)
	if srv != nil {
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}
	g.Go(func() error {
		return playGame(gctx, bowlingGame, ui, cfg)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("bowlctl interrupted")
		return nil
	}
	return err
}

// playGame runs the game off the caller's goroutine so an interrupt is not
// held up by a blocked stdin read.
func playGame(ctx context.Context, g *game.Game, ui *console.Console, cfg config.Config) error {
	done := make(chan error, 1)
	go func() {
		done <- g.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		if cfg.Server.Enabled {
			return ui.Notify(fmt.Sprintf("Game over. Final scoreboard served at http://%s/scoreboard until interrupted.", cfg.Server.Addr))
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
