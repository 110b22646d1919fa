package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/fourhanded/internal/actor"
	"github.com/lox/fourhanded/internal/config"
	"github.com/lox/fourhanded/internal/controls"
	"github.com/lox/fourhanded/internal/game"
	"github.com/lox/fourhanded/internal/randutil"
	"github.com/lox/fourhanded/internal/tui"
)

type PlayCmd struct {
	NoColor bool `help:"Disable colors"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	logger, closeLog, err := cli.openLog()
	if err != nil {
		return err
	}
	defer closeLog()

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seed := randutil.Resolve(cli.Seed)
	rng := randutil.New(seed)
	logger.Info("Starting game", "seed", seed, "config", cli.Config)

	clock := quartz.NewReal()
	in := controls.New(clock)

	seats := make([]game.SeatConfig, len(cfg.Seats))
	actors := make([]game.Actor, len(cfg.Seats))
	human := -1
	for i, sc := range cfg.Seats {
		seats[i] = game.SeatConfig{Name: sc.Name, Stack: cfg.Table.StartingStack}
		switch sc.Actor {
		case config.ActorHuman:
			actors[i] = actor.NewHuman(in)
			human = i
		case config.ActorSimple:
			actors[i] = actor.NewSimple(clock, sc.ThinkDuration())
		case config.ActorAdHoc:
			actors[i] = actor.NewAdHoc(clock, randutil.New(rng.Int64()),
				actor.WithThinkTime(sc.ThinkDuration()),
				actor.WithEquity(cfg.Equity.Trials, cfg.Equity.Workers),
				actor.WithLogger(logger.WithPrefix("adhoc")),
			)
		}
		logger.Info("Seat", "index", i, "name", sc.Name, "actor", sc.Actor)
	}

	g, err := game.New(seats, actors,
		game.WithRNG(randutil.New(rng.Int64())),
		game.WithBlinds(cfg.Table.SmallBlind, cfg.Table.BigBlind),
		game.WithConfirmLock(cfg.ConfirmLockDuration()),
		game.WithLogger(logger.WithPrefix("game")),
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	model := tui.New(g, in, human, cfg.TickInterval(), logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := model.Err(); err != nil {
		return err
	}

	logger.Info("Game finished", "hands", g.HandNumber)
	return nil
}
