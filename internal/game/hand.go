package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lox/fourhanded/internal/evaluator"
)

// deal starts a new hand: seats without chips sit out, the deck is
// shuffled and every live seat gets two cards before the five board cards.
func (g *Game) deal() error {
	if g.Table.Dealer < 0 || g.Table.Dealer >= len(g.Seats) {
		return fmt.Errorf("dealer %d of %d seats: %w", g.Table.Dealer, len(g.Seats), ErrDealerOutOfRange)
	}

	for _, s := range g.Seats {
		s.Eliminated = s.Stack == 0
		s.Folded = false
		s.Bet = 0
	}
	if g.liveCount() < 2 {
		g.Phase = GameOver
		g.base.Info("Game over", "hands", g.HandNumber)
		return nil
	}
	if g.Seats[g.Table.Dealer].Eliminated {
		g.Table.Dealer = g.nextLive(g.Table.Dealer)
	}

	g.HandNumber++
	g.HandID = uuid.NewString()
	g.logger = g.base.With("hand", g.HandID[:8])
	g.chips = g.Chips()
	g.Showdown = nil

	g.Table.Deck.Shuffle()
	for _, s := range g.Seats {
		if s.Eliminated {
			continue
		}
		hole, err := g.Table.Deck.DealN(2)
		if err != nil {
			return fmt.Errorf("hole cards for seat %d: %w: %w", s.Index, ErrDeckExhausted, err)
		}
		s.Hole = hole
	}
	board, err := g.Table.Deck.DealN(5)
	if err != nil {
		return fmt.Errorf("board: %w: %w", ErrDeckExhausted, err)
	}
	g.Table.Board = make([]BoardCard, len(board))
	for i, c := range board {
		g.Table.Board[i] = BoardCard{Card: c}
	}

	g.Table.CurrentBet = 0
	g.Table.LastRaise = 0
	g.Round = RoundState{Turn: g.nextLive(g.Table.Dealer)}
	g.Phase = Round

	g.logger.Info("Dealt hand", "number", g.HandNumber, "dealer", g.Seats[g.Table.Dealer].Name)
	return nil
}

// showdown evaluates every hand still in, settles the pot and credits the
// winners.
func (g *Game) showdown() error {
	board := g.Table.boardCards()
	plays := make([]*evaluator.Play, len(g.Seats))
	stakes := make([]Stake, len(g.Seats))
	for i, s := range g.Seats {
		if s.InHand() {
			p := evaluator.EvaluateHand(s.Hole, board)
			plays[i] = &p
		}
		stakes[i] = Stake{
			Seat:         i,
			Contribution: s.Bet,
			Folded:       s.Folded,
			Eliminated:   s.Eliminated,
			Play:         plays[i],
		}
	}

	settlement, err := Settle(stakes)
	if err != nil {
		return fmt.Errorf("settle hand %d: %w", g.HandNumber, err)
	}
	for i, s := range g.Seats {
		s.Stack += settlement.Payouts[i]
		s.Bet = 0
	}
	if total := g.Chips(); total != g.chips {
		return fmt.Errorf("hand %d ended with %d chips, dealt with %d: %w", g.HandNumber, total, g.chips, ErrChipConservation)
	}

	g.Showdown = &Showdown{Plays: plays, Payouts: settlement.Payouts, Pots: settlement.Pots}
	g.Phase = Resolving

	for _, pot := range settlement.Pots {
		g.logger.Info("Pot", "threshold", pot.Threshold, "amount", pot.Amount, "winners", pot.Winners)
	}
	for i, p := range plays {
		if p != nil {
			g.logger.Info("Showdown", "seat", g.Seats[i].Name, "hole", g.Seats[i].Hole, "play", p, "won", settlement.Payouts[i])
		}
	}
	return nil
}

// resolve closes a finished hand once the result has been acknowledged.
func (g *Game) resolve() {
	for _, s := range g.Seats {
		s.Eliminated = s.Stack == 0
		if s.Eliminated {
			g.logger.Info("Eliminated", "seat", s.Name)
		}
	}
	g.Table.Dealer = g.nextLive(g.Table.Dealer)
	g.Table.CurrentBet = 0
	g.Table.LastRaise = 0
	g.Phase = Collecting
}

// collect returns every card to the deck and checks nothing was lost.
func (g *Game) collect() error {
	for _, s := range g.Seats {
		g.Table.Deck.Return(s.Hole...)
		s.Hole = nil
	}
	g.Table.Deck.Return(g.Table.boardCards()...)
	g.Table.Board = nil

	g.Table.Deck.Shuffle()
	if err := g.Table.Deck.Verify(); err != nil {
		return fmt.Errorf("collect hand %d: %w", g.HandNumber, err)
	}
	g.Phase = Dealing
	return nil
}
