// Package simulator plays hands between automated seats without a terminal,
// recording per-seat results. A session that runs down to one funded seat is
// replaced by a fresh one until the requested number of hands is played.
package simulator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/fourhanded/internal/actor"
	"github.com/lox/fourhanded/internal/config"
	"github.com/lox/fourhanded/internal/controls"
	"github.com/lox/fourhanded/internal/game"
	"github.com/lox/fourhanded/internal/randutil"
	"github.com/lox/fourhanded/internal/statistics"
)

var errGameOver = errors.New("session over")

// Seat names an automated seat and the actor that plays it.
type Seat struct {
	Name  string
	Actor string
}

// Config holds configuration for running simulations
type Config struct {
	Hands         int
	Seats         []Seat
	StartingStack int
	SmallBlind    int
	BigBlind      int
	Trials        int
	Workers       int
	Seed          int64
	Timeout       time.Duration // per hand
	Logger        *log.Logger
}

// Result holds the statistics of every seat after a run.
type Result struct {
	Names    []string
	Seats    []*statistics.Statistics
	Hands    int
	Sessions int
	Seed     int64
}

// Simulator runs headless hands
type Simulator struct {
	config Config
	clock  quartz.Clock
}

// New creates a simulator, filling in defaults for unset fields.
func New(cfg Config) (*Simulator, error) {
	if cfg.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", cfg.Hands)
	}
	if len(cfg.Seats) < 2 || len(cfg.Seats) > statistics.Positions {
		return nil, fmt.Errorf("need 2 to %d seats, got %d", statistics.Positions, len(cfg.Seats))
	}
	for i, s := range cfg.Seats {
		if s.Actor != config.ActorSimple && s.Actor != config.ActorAdHoc {
			return nil, fmt.Errorf("seat %d (%s): actor %q cannot play unattended", i, s.Name, s.Actor)
		}
	}
	if cfg.StartingStack == 0 {
		cfg.StartingStack = 200
	}
	if cfg.SmallBlind == 0 && cfg.BigBlind == 0 {
		cfg.SmallBlind, cfg.BigBlind = 2, 5
	}
	if cfg.Trials == 0 {
		cfg.Trials = 2000
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Simulator{config: cfg, clock: quartz.NewReal()}, nil
}

// Run plays the configured number of hands.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	seed := randutil.Resolve(s.config.Seed)
	rng := randutil.New(seed)
	res := &Result{Seed: seed}
	for _, seat := range s.config.Seats {
		res.Names = append(res.Names, seat.Name)
		res.Seats = append(res.Seats, &statistics.Statistics{})
	}

	in := controls.New(s.clock)
	var g *game.Game
	for res.Hands < s.config.Hands {
		if g == nil {
			var err error
			if g, err = s.newSession(rng); err != nil {
				return nil, err
			}
			res.Sessions++
			s.config.Logger.Debug("Started session", "session", res.Sessions)
		}

		results, err := s.playHandWithTimeout(ctx, g, in)
		if errors.Is(err, errGameOver) {
			g = nil
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", res.Hands+1, err)
		}
		for i, r := range results {
			if r != nil {
				res.Seats[i].Add(*r)
			}
		}
		res.Hands++
	}

	for i, stats := range res.Seats {
		if stats.Hands == 0 {
			continue
		}
		if err := stats.Validate(); err != nil {
			return nil, fmt.Errorf("seat %s statistics: %w", res.Names[i], err)
		}
	}
	return res, nil
}

func (s *Simulator) newSession(rng *rand.Rand) (*game.Game, error) {
	seats := make([]game.SeatConfig, len(s.config.Seats))
	actors := make([]game.Actor, len(s.config.Seats))
	for i, seat := range s.config.Seats {
		seats[i] = game.SeatConfig{Name: seat.Name, Stack: s.config.StartingStack}
		switch seat.Actor {
		case config.ActorSimple:
			actors[i] = actor.NewSimple(s.clock, 0)
		case config.ActorAdHoc:
			actors[i] = actor.NewAdHoc(s.clock, randutil.New(rng.Int64()),
				actor.WithEquity(s.config.Trials, s.config.Workers),
				actor.WithLogger(s.config.Logger.WithPrefix("adhoc")),
			)
		}
	}
	g, err := game.New(seats, actors,
		game.WithRNG(randutil.New(rng.Int64())),
		game.WithBlinds(s.config.SmallBlind, s.config.BigBlind),
		game.WithDealer(rng.IntN(len(seats))),
		game.WithConfirmLock(0),
		game.WithLogger(s.config.Logger.WithPrefix("game")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return g, nil
}

// playHandWithTimeout runs one hand from dealing to collection. The
// returned slice is indexed by seat and holds nil for seats that sat out.
func (s *Simulator) playHandWithTimeout(ctx context.Context, g *game.Game, in *controls.Controls) ([]*statistics.HandResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	before := make([]int, len(g.Seats))
	for i, seat := range g.Seats {
		before[i] = seat.Stack
	}

	if err := advance(ctx, g, in, game.Resolving); err != nil {
		return nil, err
	}
	results := s.results(g, before)

	in.Press(controls.Confirm)
	defer in.ReleaseAll()
	if err := advance(ctx, g, in, game.Dealing); err != nil {
		return nil, err
	}
	return results, nil
}

// advance updates g until it reaches phase.
func advance(ctx context.Context, g *game.Game, in *controls.Controls, phase game.Phase) error {
	for g.Phase != phase {
		if g.Phase == game.GameOver {
			return errGameOver
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stalled in %s on hand %d: %w", g.Phase, g.HandNumber, err)
		}
		if err := g.Update(in); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulator) results(g *game.Game, before []int) []*statistics.HandResult {
	bb := float64(g.Table.BigBlind)
	n := len(g.Seats)

	pot, shown := 0, 0
	for i, p := range g.Showdown.Payouts {
		pot += p
		if g.Showdown.Plays[i] != nil {
			shown++
		}
	}

	results := make([]*statistics.HandResult, n)
	for i, seat := range g.Seats {
		if seat.Eliminated {
			continue
		}
		results[i] = &statistics.HandResult{
			HandID:         g.HandID,
			NetBB:          float64(seat.Stack-before[i]) / bb,
			Position:       (i - g.Table.Dealer + n) % n,
			WentToShowdown: shown > 1 && g.Showdown.Plays[i] != nil,
			PotBB:          float64(pot) / bb,
			StreetReached:  g.Round.Stage().String(),
		}
	}
	return results
}

// WriteSummary prints a per-seat report of res.
func WriteSummary(w io.Writer, res *Result) {
	fmt.Fprintf(w, "\n=== RESULTS (seed %d) ===\n", res.Seed)
	fmt.Fprintf(w, "Hands played: %d over %d session(s)\n", res.Hands, res.Sessions)

	for i, stats := range res.Seats {
		fmt.Fprintf(w, "\n--- %s ---\n", res.Names[i])
		if stats.Hands == 0 {
			fmt.Fprintf(w, "No hands played\n")
			continue
		}
		low, high := stats.ConfidenceInterval95()
		fmt.Fprintf(w, "Hands: %d\n", stats.Hands)
		fmt.Fprintf(w, "Mean: %.4f bb/hand (median %.4f)\n", stats.Mean(), stats.Median())
		fmt.Fprintf(w, "Std Dev: %.4f bb, Std Error: %.4f bb\n", stats.StdDev(), stats.StdError())
		fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] bb/hand\n", low, high)
		fmt.Fprintf(w, "Percentiles: P5=%.3f, P25=%.3f, P75=%.3f, P95=%.3f\n",
			stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

		if wins := stats.ShowdownWins + stats.NonShowdownWins; wins > 0 {
			fmt.Fprintf(w, "Winning hands: %d showdown (%.1f%%), %d uncontested (%.1f%%)\n",
				stats.ShowdownWins, float64(stats.ShowdownWins)/float64(wins)*100,
				stats.NonShowdownWins, float64(stats.NonShowdownWins)/float64(wins)*100)
		}
		fmt.Fprintf(w, "Showdown: %.2f bb, non-showdown: %.2f bb\n", stats.ShowdownBB, stats.NonShowdownBB)
		fmt.Fprintf(w, "Max pot: %.1f bb, big pots (>=%dbb): %d\n", stats.MaxPotBB, statistics.BigPotBB, stats.BigPots)

		for pos := range statistics.Positions {
			if ps := stats.PositionResults[pos]; ps.Hands > 0 {
				fmt.Fprintf(w, "Position %d: %d hands, %.3f bb/hand\n", pos, ps.Hands, stats.PositionMean(pos))
			}
		}
	}
}

// SeatReport is the machine-readable summary of one seat.
type SeatReport struct {
	Name            string         `json:"name"`
	Hands           int            `json:"hands"`
	MeanBB          float64        `json:"mean_bb"`
	StdDevBB        float64        `json:"stddev_bb"`
	CI95            [2]float64     `json:"ci95"`
	ShowdownWins    int            `json:"showdown_wins"`
	NonShowdownWins int            `json:"non_showdown_wins"`
	PositionMeanBB  []float64      `json:"position_mean_bb"`
	Streets         map[string]int `json:"streets,omitempty"`
}

// Report is the machine-readable summary of a run.
type Report struct {
	Seed     int64        `json:"seed"`
	Hands    int          `json:"hands"`
	Sessions int          `json:"sessions"`
	Seats    []SeatReport `json:"seats"`
}

// NewReport summarises res.
func NewReport(res *Result) Report {
	r := Report{Seed: res.Seed, Hands: res.Hands, Sessions: res.Sessions}
	for i, stats := range res.Seats {
		low, high := stats.ConfidenceInterval95()
		sr := SeatReport{
			Name:            res.Names[i],
			Hands:           stats.Hands,
			MeanBB:          stats.Mean(),
			StdDevBB:        stats.StdDev(),
			CI95:            [2]float64{low, high},
			ShowdownWins:    stats.ShowdownWins,
			NonShowdownWins: stats.NonShowdownWins,
			Streets:         stats.Streets,
		}
		for pos := range statistics.Positions {
			sr.PositionMeanBB = append(sr.PositionMeanBB, stats.PositionMean(pos))
		}
		r.Seats = append(r.Seats, sr)
	}
	return r
}

// WriteJSON encodes the report of res to w.
func WriteJSON(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(res)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
