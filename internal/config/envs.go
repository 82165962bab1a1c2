package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/ScolDev/snake/internal/domain"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Config is everything the binary needs to start a game.
type Config struct {
	Frontend string             // "window" (ebiten) or "terminal" (tcell)
	Game     *domain.GameConfig // grid, cadence and seed
	LogLevel zerolog.Level      // LOG_LEVEL
	LogFile  string             // optional log destination, required to see logs in terminal mode
}

// Load builds the configuration from defaults, then the environment
// (optionally seeded from a .env file), then command line flags.
func Load(args []string) (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		Frontend: getEnvWithDefault("SNAKE_FRONTEND", FrontendWindow),
		Game:     domain.DefaultGameConfig(),
		LogLevel: zerolog.InfoLevel,
		LogFile:  os.Getenv("SNAKE_LOG_FILE"),
	}

	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level, err := zerolog.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("%w: LOG_LEVEL: %v", domain.ErrInvalidConfig, err)
		}
		cfg.LogLevel = level
	}

	intVars := []struct {
		key string
		dst *int
	}{
		{"SNAKE_FRAME_DELAY_MS", &cfg.Game.FrameDelayMs},
		{"SNAKE_CELL_SIZE", &cfg.Game.CellSize},
		{"SNAKE_SCREEN_WIDTH", &cfg.Game.ScreenWidth},
		{"SNAKE_SCREEN_HEIGHT", &cfg.Game.ScreenHeight},
	}
	for _, v := range intVars {
		if err := envInt(v.key, v.dst); err != nil {
			return nil, err
		}
	}
	if err := envInt64("SNAKE_SEED", &cfg.Game.Seed); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "frontend to play in: window or terminal")
	fs.IntVar(&cfg.Game.FrameDelayMs, "delay", cfg.Game.FrameDelayMs, "delay between frames in milliseconds")
	fs.IntVar(&cfg.Game.CellSize, "cell", cfg.Game.CellSize, "cell size in pixels (window frontend)")
	fs.IntVar(&cfg.Game.ScreenWidth, "width", cfg.Game.ScreenWidth, "window width in pixels")
	fs.IntVar(&cfg.Game.ScreenHeight, "height", cfg.Game.ScreenHeight, "window height in pixels")
	fs.Int64Var(&cfg.Game.Seed, "seed", cfg.Game.Seed, "random seed, 0 picks one from the clock")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: unknown frontend %q", domain.ErrInvalidConfig, c.Frontend)
	}
	return c.Game.Validate()
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// envInt overwrites dst when key is set.
func envInt(key string, dst *int) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer: %v", domain.ErrInvalidConfig, key, err)
	}
	*dst = n
	return nil
}

func envInt64(key string, dst *int64) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer: %v", domain.ErrInvalidConfig, key, err)
	}
	*dst = n
	return nil
}
