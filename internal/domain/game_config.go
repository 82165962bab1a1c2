package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid game config")

const (
	MinFrameDelayMs = 10
	MaxFrameDelayMs = 3000
	MinGridCells    = 5
)

type GameConfig struct {
	ScreenWidth  int
	ScreenHeight int
	CellSize     int
	FrameDelayMs int
	Seed         int64
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		ScreenWidth:  800,
		ScreenHeight: 600,
		CellSize:     40,
		FrameDelayMs: 100,
	}
}

func (c *GameConfig) Validate() error {
	if c.FrameDelayMs < MinFrameDelayMs || c.FrameDelayMs > MaxFrameDelayMs {
		return fmt.Errorf("%w: frame delay %dms outside [%d, %d]",
			ErrInvalidConfig, c.FrameDelayMs, MinFrameDelayMs, MaxFrameDelayMs)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	field := c.Field()
	if field.Width < MinGridCells || field.Height < MinGridCells {
		return fmt.Errorf("%w: %dx%d px with %d px cells gives a %dx%d grid, need at least %dx%d",
			ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight, c.CellSize,
			field.Width, field.Height, MinGridCells, MinGridCells)
	}
	return nil
}

func (c *GameConfig) Field() *Field {
	return FieldFromPixels(c.ScreenWidth, c.ScreenHeight, c.CellSize)
}

func (c *GameConfig) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}
