// Package equity estimates how often a hand wins with Monte Carlo trials.
package equity

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lox/fourhanded/internal/deck"
	"github.com/lox/fourhanded/internal/evaluator"
	"github.com/lox/fourhanded/internal/randutil"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidInput is returned for hands that cannot be simulated.
var ErrInvalidInput = errors.New("invalid equity input")

// cancelCheckInterval is how many trials a worker runs between checks of
// the context.
const cancelCheckInterval = 256

// Option configures an estimate.
type Option func(*options)

type options struct {
	workers int
	rng     *rand.Rand
}

// WithWorkers sets the number of goroutines sharing the trials
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithRNG sets the generator the per-worker generators are derived from
func WithRNG(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// Estimate returns the share of pots hole is expected to win against
// players-1 random opponents once the board is complete. A k-way tie that
// includes the hero counts as 1/k of a win.
func Estimate(ctx context.Context, hole, community []deck.Card, players, trials int, opts ...Option) (float64, error) {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = randutil.New(randutil.Resolve(0))
	}

	if len(hole) != 2 {
		return 0, fmt.Errorf("%d hole cards: %w", len(hole), ErrInvalidInput)
	}
	if len(community) > 5 {
		return 0, fmt.Errorf("%d community cards: %w", len(community), ErrInvalidInput)
	}
	if players < 1 || trials < 1 || o.workers < 1 {
		return 0, fmt.Errorf("players %d, trials %d, workers %d: %w", players, trials, o.workers, ErrInvalidInput)
	}

	available, err := remaining(hole, community)
	if err != nil {
		return 0, err
	}
	unknown := 5 - len(community) + 2*(players-1)
	if unknown > len(available) {
		return 0, fmt.Errorf("need %d unknown cards, %d left: %w", unknown, len(available), ErrInvalidInput)
	}

	workers := min(o.workers, trials)
	rngs := randutil.Split(o.rng, workers)
	credits := make([]float64, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := trials / workers
		if w < trials%workers {
			n++
		}
		g.Go(func() error {
			s := simulation{
				hole:      hole,
				community: community,
				available: append([]deck.Card(nil), available...),
				opponents: players - 1,
				rng:       rngs[w],
			}
			credit, err := s.run(ctx, n)
			credits[w] = credit
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0.0
	for _, c := range credits {
		total += c
	}
	return total / float64(trials), nil
}

// remaining returns every card not already known.
func remaining(hole, community []deck.Card) ([]deck.Card, error) {
	var used [deck.Size]bool
	for _, c := range append(append([]deck.Card(nil), hole...), community...) {
		if !c.Valid() || used[c.Index()] {
			return nil, fmt.Errorf("card %v: %w", c, ErrInvalidInput)
		}
		used[c.Index()] = true
	}

	cards := make([]deck.Card, 0, deck.Size)
	for _, suit := range deck.Suits {
		for rank := deck.Ace; rank <= deck.King; rank++ {
			c := deck.NewCard(suit, rank)
			if !used[c.Index()] {
				cards = append(cards, c)
			}
		}
	}
	return cards, nil
}

type simulation struct {
	hole      []deck.Card
	community []deck.Card
	available []deck.Card
	opponents int
	rng       *rand.Rand
}

// run plays n trials and returns the summed win credit.
func (s *simulation) run(ctx context.Context, n int) (float64, error) {
	need := 5 - len(s.community)
	draw := need + 2*s.opponents
	board := make([]deck.Card, 5)
	copy(board, s.community)

	credit := 0.0
	for t := 0; t < n; t++ {
		if t%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		// Partial Fisher-Yates: the first draw cards become the sample.
		for i := 0; i < draw; i++ {
			j := i + s.rng.IntN(len(s.available)-i)
			s.available[i], s.available[j] = s.available[j], s.available[i]
		}
		copy(board[len(s.community):], s.available[:need])

		best := evaluator.EvaluateHand(s.hole, board)
		heroBest, tied := true, 1
		for o := 0; o < s.opponents; o++ {
			at := need + 2*o
			p := evaluator.EvaluateHand(s.available[at:at+2], board)
			switch c := evaluator.Compare(p, best); {
			case c > 0:
				best, heroBest, tied = p, false, 1
			case c == 0:
				tied++
			}
		}
		if heroBest {
			credit += 1 / float64(tied)
		}
	}
	return credit, nil
}
