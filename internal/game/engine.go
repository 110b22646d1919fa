package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/fourhanded/internal/controls"
	"github.com/lox/fourhanded/internal/deck"
	"github.com/lox/fourhanded/internal/evaluator"
	"github.com/lox/fourhanded/internal/randutil"
	"github.com/sanity-io/litter"
)

// SeatConfig describes a seat when creating a game.
type SeatConfig struct {
	Name  string
	Stack int
}

// Showdown is the result of the last completed hand. Plays and Payouts are
// indexed by seat; Plays is nil for seats that folded or sat out.
type Showdown struct {
	Plays   []*evaluator.Play
	Payouts []int
	Pots    []PotResult
}

// Winners returns the seats that won at least one chip
func (s *Showdown) Winners() []int {
	var winners []int
	for i, p := range s.Payouts {
		if p > 0 {
			winners = append(winners, i)
		}
	}
	return winners
}

// Game is the single owner of all table state. Only Update mutates it.
type Game struct {
	Seats      []*Seat
	Table      Table
	Phase      Phase
	Round      RoundState
	Showdown   *Showdown
	HandID     string
	HandNumber int

	actors      []Actor
	base        *log.Logger
	logger      *log.Logger
	confirmLock time.Duration
	chips       int // total chips at the table when the hand was dealt
}

// New creates a game with one actor per seat. The first hand is dealt on
// the first call to Update.
func New(seats []SeatConfig, actors []Actor, opts ...Option) (*Game, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(seats) < 2 {
		return nil, fmt.Errorf("%d seats, need at least 2: %w", len(seats), ErrSeatConfiguration)
	}
	if len(actors) != len(seats) {
		return nil, fmt.Errorf("%d actors for %d seats: %w", len(actors), len(seats), ErrSeatConfiguration)
	}
	if cfg.dealer < 0 || cfg.dealer >= len(seats) {
		return nil, fmt.Errorf("dealer %d: %w", cfg.dealer, ErrDealerOutOfRange)
	}
	if cfg.smallBlind <= 0 || cfg.bigBlind <= cfg.smallBlind {
		return nil, fmt.Errorf("blinds %d/%d: %w", cfg.smallBlind, cfg.bigBlind, ErrSeatConfiguration)
	}

	d := cfg.deck
	if d == nil {
		rng := cfg.rng
		if rng == nil {
			rng = randutil.New(randutil.Resolve(0))
		}
		d = deck.NewDeck(rng)
	}

	g := &Game{
		Table: Table{
			Dealer:     cfg.dealer,
			Deck:       d,
			SmallBlind: cfg.smallBlind,
			BigBlind:   cfg.bigBlind,
		},
		Phase:       Dealing,
		actors:      actors,
		base:        cfg.logger,
		logger:      cfg.logger,
		confirmLock: cfg.confirmLock,
	}
	for i, sc := range seats {
		if sc.Stack < 0 {
			return nil, fmt.Errorf("seat %d stack %d: %w", i, sc.Stack, ErrSeatConfiguration)
		}
		g.Seats = append(g.Seats, &Seat{Index: i, Name: sc.Name, Stack: sc.Stack})
	}
	return g, nil
}

// Update advances the game by at most one transition. in may be nil when no
// input is available; the game then waits in Resolving.
func (g *Game) Update(in *controls.Controls) error {
	switch g.Phase {
	case Dealing:
		return g.deal()
	case Round:
		return g.playRound()
	case Resolving:
		if in != nil && in.Trigger(controls.Confirm, g.confirmLock) {
			g.resolve()
		}
	case Collecting:
		return g.collect()
	}
	return nil
}

// playRound handles the seat to act. A seat whose actor has not finished
// leaves the state untouched and is polled again next tick.
func (g *Game) playRound() error {
	i := g.Round.Turn
	s := g.Seats[i]
	actor := g.actors[i]

	if !g.Round.BlindsPosted() {
		if !actor.TurnStarted() {
			actor.StartTurn()
		}
		if !actor.Done(true, g.info(i)) {
			return nil
		}
		actor.EndTurn()
		g.postBlind(s)
		if g.Round.BlindsPosted() {
			return g.finishTurn(i)
		}
		g.Round.Turn = g.nextLive(i)
		return nil
	}

	if g.shouldSkip(i) {
		return g.finishTurn(i)
	}

	if !actor.TurnStarted() {
		actor.StartTurn()
	}
	info := g.info(i)
	if !actor.Done(false, info) {
		return nil
	}

	d := actor.Decision()
	g.logger.Debug("Decision", "seat", s.Name, "decision", d, "info", litter.Sdump(info))
	if err := g.apply(s, d); err != nil {
		return err
	}
	actor.EndTurn()
	return g.finishTurn(i)
}

// finishTurn moves the action to the next seat that has a decision to
// make. Seats that would be skipped are passed over; passing the dealer
// while the bets are level closes the stage.
func (g *Game) finishTurn(i int) error {
	n := len(g.Seats)
	for step := 0; step < n; step++ {
		j := (i + step) % n
		if j == g.Table.Dealer && g.balanced() {
			return g.advanceStage()
		}
		if next := (j + 1) % n; !g.shouldSkip(next) {
			g.Round.Turn = next
			return nil
		}
	}
	g.Round.Turn = g.firstToAct(i)
	return nil
}

func (g *Game) advanceStage() error {
	if g.Round.Revealed == 5 {
		return g.showdown()
	}

	if g.Round.Revealed == 0 {
		g.Round.Revealed = 3
	} else {
		g.Round.Revealed++
	}
	g.Table.reveal(g.Round.Revealed)
	g.Table.LastRaise = 0
	g.Round.Aggression = false
	g.Round.Turn = g.firstToAct(g.Table.Dealer)

	g.logger.Info("Stage", "stage", g.Round.Stage(), "board", g.Table.Community(), "pot", g.Pot())
	return nil
}

// firstToAct returns the first seat after from with a decision to make,
// or failing that the first seat still in the hand.
func (g *Game) firstToAct(from int) int {
	n := len(g.Seats)
	fallback := -1
	for step := 1; step <= n; step++ {
		i := (from + step) % n
		if !g.Seats[i].InHand() {
			continue
		}
		if !g.shouldSkip(i) {
			return i
		}
		if fallback < 0 {
			fallback = i
		}
	}
	if fallback < 0 {
		return g.nextLive(from)
	}
	return fallback
}

// info builds the snapshot handed to the actor of seat i.
func (g *Game) info(i int) Info {
	info := Info{
		Seat:       i,
		Hole:       append([]deck.Card(nil), g.Seats[i].Hole...),
		Community:  g.Table.Community(),
		LastRaise:  g.Table.LastRaise,
		CurrentBet: g.Table.CurrentBet,
		BigBlind:   g.Table.BigBlind,
	}
	for _, s := range g.Seats {
		if s.Eliminated {
			continue
		}
		info.Seats = append(info.Seats, SeatInfo{
			Index:  s.Index,
			Name:   s.Name,
			Stack:  s.Stack,
			Bet:    s.Bet,
			Folded: s.Folded,
		})
	}
	return info
}

// Actor returns the decision maker for seat i
func (g *Game) Actor(i int) Actor {
	return g.actors[i]
}

// Pot returns the chips contributed to the current hand
func (g *Game) Pot() int {
	total := 0
	for _, s := range g.Seats {
		total += s.Bet
	}
	return total
}

// Chips returns every chip at the table, in stacks or in the pot
func (g *Game) Chips() int {
	total := 0
	for _, s := range g.Seats {
		total += s.Stack + s.Bet
	}
	return total
}

// ActingSeat returns the seat to act, or -1 outside of a betting round
func (g *Game) ActingSeat() int {
	if g.Phase != Round {
		return -1
	}
	return g.Round.Turn
}
