package app

import (
	"context"
	"time"

	"github.com/ScolDev/snake/internal/domain"

	"github.com/rs/zerolog/log"
)

const inputQueueSize = 16

// Presenter receives a private copy of the state after every tick.
type Presenter interface {
	Present(state *domain.GameState)
}

type PresenterFunc func(state *domain.GameState)

func (f PresenterFunc) Present(state *domain.GameState) {
	f(state)
}

// Loop owns a game and drives it at a fixed cadence. Only the goroutine
// running the loop touches the state; key presses reach it through a
// queue that is drained at the start of every tick.
type Loop struct {
	state     *domain.GameState
	delay     time.Duration
	presenter Presenter

	inputCh chan domain.Direction

	ticks uint64
}

func NewLoop(state *domain.GameState, delay time.Duration, presenter Presenter) *Loop {
	if presenter == nil {
		presenter = PresenterFunc(func(*domain.GameState) {})
	}
	return &Loop{
		state:     state,
		delay:     delay,
		presenter: presenter,
		inputCh:   make(chan domain.Direction, inputQueueSize),
	}
}

// OnKey queues the direction a key code stands for. Unknown codes are
// dropped and report false.
func (l *Loop) OnKey(code string) bool {
	dir, ok := domain.ParseKey(code)
	if !ok {
		return false
	}
	return l.Steer(dir)
}

// Steer queues a direction change for the next tick. It never blocks;
// when the queue is full the change is dropped.
func (l *Loop) Steer(dir domain.Direction) bool {
	select {
	case l.inputCh <- dir:
		return true
	default:
		log.Debug().Stringer("direction", dir).Msg("input queue full, dropping key")
		return false
	}
}

// Step runs one iteration: apply queued input, tick, present.
func (l *Loop) Step() domain.TickResult {
	l.drainInput()

	result := l.state.Tick()
	l.ticks++

	switch {
	case result.Reset:
		log.Debug().Uint64("tick", l.ticks).Msg("snake bit itself, game reset")
	case result.Ate:
		log.Debug().
			Uint64("tick", l.ticks).
			Int("score", result.Score).
			Int("length", result.Length).
			Msg("apple eaten")
	}

	l.presenter.Present(l.state.Copy())
	return result
}

// Run steps the game until ctx is done and returns ctx.Err().
// The delay is measured from the end of one step to the start of the next.
func (l *Loop) Run(ctx context.Context) error {
	log.Info().
		Int("width", l.state.Field.Width).
		Int("height", l.state.Field.Height).
		Dur("delay", l.delay).
		Msg("game loop started")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Uint64("ticks", l.ticks).Msg("game loop stopped")
			return ctx.Err()
		case <-timer.C:
			l.Step()
			timer.Reset(l.delay)
		}
	}
}

func (l *Loop) Ticks() uint64 {
	return l.ticks
}

func (l *Loop) drainInput() {
	for {
		select {
		case dir := <-l.inputCh:
			l.state.SetDirection(dir)
		default:
			return
		}
	}
}
