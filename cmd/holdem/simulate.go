package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/fourhanded/internal/config"
	"github.com/lox/fourhanded/internal/fileutil"
	"github.com/lox/fourhanded/internal/simulator"
)

type SimulateCmd struct {
	Hands   int           `default:"1000" help:"Number of hands to play"`
	HumanAs string        `default:"adhoc" enum:"simple,adhoc" help:"Actor that takes human seats (simple|adhoc)"`
	Trials  int           `help:"Override equity trials per decision"`
	Timeout time.Duration `default:"10s" help:"Per-hand timeout"`
	Output  string        `short:"o" type:"path" help:"Write a JSON report to this file"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	logger, closeLog, err := cli.openLog()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seats := make([]simulator.Seat, len(cfg.Seats))
	for i, sc := range cfg.Seats {
		seats[i] = simulator.Seat{Name: sc.Name, Actor: sc.Actor}
		if sc.Actor == config.ActorHuman {
			seats[i].Actor = c.HumanAs
		}
	}
	trials := cfg.Equity.Trials
	if c.Trials > 0 {
		trials = c.Trials
	}

	sim, err := simulator.New(simulator.Config{
		Hands:         c.Hands,
		Seats:         seats,
		StartingStack: cfg.Table.StartingStack,
		SmallBlind:    cfg.Table.SmallBlind,
		BigBlind:      cfg.Table.BigBlind,
		Trials:        trials,
		Workers:       cfg.Equity.Workers,
		Seed:          cli.Seed,
		Timeout:       c.Timeout,
		Logger:        logger.WithPrefix("sim"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	res, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	logger.Info("Simulation finished", "hands", res.Hands, "sessions", res.Sessions, "elapsed", time.Since(start))

	simulator.WriteSummary(os.Stdout, res)

	if c.Output != "" {
		if err := fileutil.WriteAtomic(c.Output, 0o644, func(w io.Writer) error {
			return simulator.WriteJSON(w, res)
		}); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Wrote report", "path", c.Output)
	}
	return nil
}
