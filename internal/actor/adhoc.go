package actor

import (
	"context"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/fourhanded/internal/equity"
	"github.com/lox/fourhanded/internal/game"
	"github.com/lox/fourhanded/internal/randutil"
	"github.com/lox/fourhanded/internal/timer"
)

// Policy thresholds.
const (
	pEpsilon           = 0.02  // equity margin over break-even before continuing
	callDefendFrac     = 0.075 // calls below this share of the stack are always made
	goodAdvantage      = 1.5
	greatAdvantage     = 2.0
	fantasticAdvantage = 3.0
)

// Estimator returns the hero's equity for a decision snapshot.
type Estimator func(ctx context.Context, info game.Info) (float64, error)

// AdHocOption configures an AdHoc actor.
type AdHocOption func(*AdHoc)

// WithThinkTime sets the minimum time spent on every turn
func WithThinkTime(d time.Duration) AdHocOption {
	return func(a *AdHoc) {
		a.timer = timer.New(a.clock, d)
	}
}

// WithEquity sets the Monte Carlo trials and workers per estimate
func WithEquity(trials, workers int) AdHocOption {
	return func(a *AdHoc) {
		a.trials = trials
		a.workers = workers
	}
}

// WithEstimator replaces the Monte Carlo estimate
func WithEstimator(e Estimator) AdHocOption {
	return func(a *AdHoc) {
		a.estimate = e
	}
}

// WithLogger sets the logger decisions are reported to
func WithLogger(logger *log.Logger) AdHocOption {
	return func(a *AdHoc) {
		a.logger = logger
	}
}

type estimate struct {
	equity float64
	err    error
}

// AdHoc estimates its equity in the background when its turn starts and
// then raises, calls or folds depending on how far that equity is above
// the price of calling.
type AdHoc struct {
	clock    quartz.Clock
	timer    *timer.Timer
	rng      *rand.Rand
	logger   *log.Logger
	trials   int
	workers  int
	estimate Estimator

	started  bool
	results  chan estimate
	cancel   context.CancelFunc
	decision *game.Decision
}

// NewAdHoc creates an AdHoc actor. rng drives both its choices and the
// seeds of its equity estimates.
func NewAdHoc(clock quartz.Clock, rng *rand.Rand, opts ...AdHocOption) *AdHoc {
	a := &AdHoc{
		clock:   clock,
		rng:     rng,
		logger:  log.New(io.Discard),
		trials:  20000,
		workers: 4,
	}
	a.timer = timer.New(clock, 500*time.Millisecond)
	for _, opt := range opts {
		opt(a)
	}
	if a.estimate == nil {
		a.estimate = a.monteCarlo
	}
	return a
}

func (a *AdHoc) monteCarlo(ctx context.Context, info game.Info) (float64, error) {
	return equity.Estimate(ctx, info.Hole, info.Community, info.Opponents()+1, a.trials,
		equity.WithWorkers(a.workers), equity.WithRNG(randutil.New(a.rng.Int64())))
}

func (a *AdHoc) StartTurn() {
	a.started = true
	a.timer.Start()
}

func (a *AdHoc) TurnStarted() bool {
	return a.started
}

// Done starts the estimate on the first call of a turn and reports true
// once a decision is ready and the think time has passed.
func (a *AdHoc) Done(forced bool, info game.Info) bool {
	if forced {
		return a.timer.Done()
	}

	if a.decision == nil {
		if a.results == nil {
			a.launch(info)
		}
		select {
		case r := <-a.results:
			a.results = nil
			eq := r.equity
			if r.err != nil {
				a.logger.Warn("Equity estimate failed", "seat", info.Seat, "error", r.err)
				eq = 1 / float64(info.Opponents()+1)
			}
			d := a.decide(info, eq)
			a.decision = &d
		default:
			return false
		}
	}
	return a.timer.Done()
}

// launch runs the estimate for info in its own goroutine.
func (a *AdHoc) launch(info game.Info) {
	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan estimate, 1)
	a.results = results
	a.cancel = cancel

	estimateFn := a.estimate
	go func() {
		eq, err := estimateFn(ctx, info)
		results <- estimate{equity: eq, err: err}
	}()
}

// decide applies the policy to an equity estimate.
func (a *AdHoc) decide(info game.Info, eq float64) game.Decision {
	self := info.Self()
	players := info.Opponents() + 1
	pot := info.Pot()
	call := info.ToCall()

	breakEven := 0.0
	if call+pot > 0 {
		breakEven = float64(call) / float64(call+pot)
	}
	callFrac := 0.0
	if self.Stack > 0 {
		callFrac = float64(call) / float64(self.Stack)
	}

	if eq > breakEven+pEpsilon && players > 1 {
		neutral := 1 / float64(players)
		advantage := (eq / (1 - eq)) / (neutral / (1 - neutral))

		maxRaise := self.Stack
		minRaise := min(info.MinRaise(), maxRaise)
		small := minRaise
		double := min(2*minRaise, maxRaise)
		triple := min(3*minRaise, maxRaise)
		potRaise := min(pot, maxRaise)
		doublePot := min(2*pot, maxRaise)

		var d game.Decision
		switch {
		case advantage > fantasticAdvantage:
			d = a.pick([]int{triple, potRaise, doublePot}, []float64{1, advantage, advantage / 2})
		case advantage > greatAdvantage:
			d = a.pick([]int{double, triple, potRaise}, []float64{1, advantage, advantage / 2})
		case advantage > goodAdvantage:
			d = a.pick([]int{small, double}, []float64{1, advantage})
		default:
			d = game.Decision{Action: game.Call}
		}
		a.logger.Debug("Decided", "seat", info.Seat, "equity", eq, "advantage", advantage, "decision", d)
		return d
	}

	if callFrac < callDefendFrac || a.rng.Float64() < meanDefence(info) {
		a.logger.Debug("Defending", "seat", info.Seat, "equity", eq, "break_even", breakEven)
		return game.Decision{Action: game.Call}
	}
	a.logger.Debug("Folding", "seat", info.Seat, "equity", eq, "break_even", breakEven)
	return game.Decision{Action: game.Fold}
}

// pick returns a raise of one of amounts, chosen in proportion to weights.
func (a *AdHoc) pick(amounts []int, weights []float64) game.Decision {
	total := 0.0
	for _, w := range weights {
		if !math.IsInf(w, 1) {
			total += w
		}
	}
	r := a.rng.Float64() * total
	for i, w := range weights {
		if math.IsInf(w, 1) {
			return game.Decision{Action: game.Raise, Amount: amounts[i]}
		}
		if r < w {
			return game.Decision{Action: game.Raise, Amount: amounts[i]}
		}
		r -= w
	}
	return game.Decision{Action: game.Raise, Amount: amounts[len(amounts)-1]}
}

// meanDefence is the average minimum defence frequency across the seats:
// one minus each seat's excess over the smallest contribution relative to
// the pot.
func meanDefence(info game.Info) float64 {
	pot := info.Pot()
	if pot == 0 || len(info.Seats) == 0 {
		return 1
	}
	minBet := info.Seats[0].Bet
	for _, s := range info.Seats[1:] {
		minBet = min(minBet, s.Bet)
	}
	sum := 0.0
	for _, s := range info.Seats {
		sum += 1 - float64(s.Bet-minBet)/float64(pot)
	}
	return sum / float64(len(info.Seats))
}

func (a *AdHoc) Decision() game.Decision {
	if a.decision == nil {
		return game.Decision{Action: game.Call}
	}
	return *a.decision
}

// EndTurn drops any estimate still running.
func (a *AdHoc) EndTurn() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.results = nil
	a.started = false
	a.decision = nil
}
