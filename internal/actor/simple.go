package actor

import (
	"time"

	"github.com/coder/quartz"
	"github.com/lox/fourhanded/internal/game"
	"github.com/lox/fourhanded/internal/timer"
)

// Simple calls every bet after a short pause
type Simple struct {
	timer   *timer.Timer
	started bool
}

// NewSimple creates a Simple actor that thinks for think before acting
func NewSimple(clock quartz.Clock, think time.Duration) *Simple {
	return &Simple{timer: timer.New(clock, think)}
}

func (s *Simple) StartTurn() {
	s.started = true
	s.timer.Start()
}

func (s *Simple) TurnStarted() bool {
	return s.started
}

func (s *Simple) Done(bool, game.Info) bool {
	return s.timer.Done()
}

func (s *Simple) Decision() game.Decision {
	return game.Decision{Action: game.Call}
}

func (s *Simple) EndTurn() {
	s.started = false
}
