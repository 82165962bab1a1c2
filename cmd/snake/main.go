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

	"github.com/ScolDev/snake/internal/app"
	"github.com/ScolDev/snake/internal/config"
	"github.com/ScolDev/snake/internal/domain"
	"github.com/ScolDev/snake/internal/ui/graphics"
	"github.com/ScolDev/snake/internal/ui/render"
	"github.com/ScolDev/snake/internal/ui/terminal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer closeLog()

	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}
	log.Info().
		Str("frontend", cfg.Frontend).
		Int("delay_ms", cfg.Game.FrameDelayMs).
		Int64("seed", cfg.Game.Seed).
		Msg("starting snake")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = runTerminal(ctx, cfg)
	default:
		err = runWindow(ctx, cfg)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("game exited")
		closeLog()
		os.Exit(1)
	}
	log.Info().Msg("bye")
}

func setupLogging(cfg *config.Config) (func(), error) {
	zerolog.SetGlobalLevel(cfg.LogLevel)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return func() { _ = f.Close() }, nil
	}

	// The terminal frontend owns stderr's screen.
	if cfg.Frontend == config.FrontendTerminal {
		log.Logger = zerolog.New(io.Discard)
	}
	return func() {}, nil
}

func runWindow(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	field := cfg.Game.Field()
	state := domain.NewGameState(field, nil, cfg.Game.Seed)

	engine := graphics.NewEngine(render.NewFieldRenderer(cfg.Game.CellSize), field)
	loop := app.NewLoop(state, cfg.Game.FrameDelay(), engine)
	engine.BindInput(loop)

	loopDone := make(chan error, 1)
	go func() {
		loopDone <- loop.Run(ctx)
	}()

	err := engine.Run(ctx)
	cancel()
	if loopErr := <-loopDone; err == nil {
		err = loopErr
	}
	return err
}

func runTerminal(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	term := terminal.New(screen)
	defer term.Close()

	field := term.Field()
	if field.Width < domain.MinGridCells || field.Height < domain.MinGridCells {
		return fmt.Errorf("%w: terminal too small for a %dx%d grid",
			domain.ErrInvalidConfig, domain.MinGridCells, domain.MinGridCells)
	}
	state := domain.NewGameState(field, nil, cfg.Game.Seed)
	loop := app.NewLoop(state, cfg.Game.FrameDelay(), term)

	go term.PollKeys(ctx, loop, cancel)

	return loop.Run(ctx)
}
