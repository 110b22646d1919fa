package game

import "fmt"

// nextLive returns the first seat after from that was dealt in, wrapping
// around the table. It returns from when no other seat is live.
func (g *Game) nextLive(from int) int {
	n := len(g.Seats)
	for step := 1; step <= n; step++ {
		i := (from + step) % n
		if !g.Seats[i].Eliminated {
			return i
		}
	}
	return from
}

// liveCount returns the number of seats with chips to play.
func (g *Game) liveCount() int {
	n := 0
	for _, s := range g.Seats {
		if s.Stack > 0 {
			n++
		}
	}
	return n
}

// activeCount returns the number of seats still contesting the pot
func (g *Game) activeCount() int {
	n := 0
	for _, s := range g.Seats {
		if s.InHand() {
			n++
		}
	}
	return n
}

// balanced reports whether every seat that can still bet has matched the
// table bet. All-in seats are exempt.
func (g *Game) balanced() bool {
	if g.activeCount() <= 1 {
		return true
	}
	for _, s := range g.Seats {
		if s.InHand() && !s.AllIn() && s.Bet != g.Table.CurrentBet {
			return false
		}
	}
	return true
}

// shouldSkip reports whether seat i acts automatically without asking its
// actor for a decision.
func (g *Game) shouldSkip(i int) bool {
	s := g.Seats[i]
	if !s.InHand() || s.AllIn() || g.activeCount() <= 1 {
		return true
	}
	matched := s.Bet == g.Table.CurrentBet
	if matched && g.Round.Aggression {
		return true
	}
	// Nobody left who could respond to a bet: run the board out.
	return matched && g.bettorsExcept(i) == 0
}

// bettorsExcept counts in-hand seats other than i that still have chips.
func (g *Game) bettorsExcept(i int) int {
	n := 0
	for _, s := range g.Seats {
		if s.Index != i && s.InHand() && !s.AllIn() {
			n++
		}
	}
	return n
}

// raiseTo records a new table bet set by seat s.
func (g *Game) raiseTo(s *Seat) {
	if s.Bet > g.Table.CurrentBet {
		g.Table.LastRaise = s.Bet - g.Table.CurrentBet
		g.Table.CurrentBet = s.Bet
	}
}

// toCall returns the chips seat s needs to match the table bet.
func (g *Game) toCall(s *Seat) (int, error) {
	if s.Bet > g.Table.CurrentBet {
		return 0, fmt.Errorf("seat %d bet %d, table %d: %w", s.Index, s.Bet, g.Table.CurrentBet, ErrBetAboveTable)
	}
	return min(g.Table.CurrentBet-s.Bet, s.Stack), nil
}

// postBlind commits a forced bet for the seat to act. The small blind is a
// fixed amount; the big blind tops the seat up to the big blind amount.
func (g *Game) postBlind(s *Seat) {
	var chips int
	if !g.Round.SmallBlindPosted {
		chips = min(g.Table.SmallBlind, s.Stack)
		g.Round.SmallBlindPosted = true
	} else {
		chips = min(max(0, g.Table.BigBlind-s.Bet), s.Stack)
		g.Round.BigBlindPosted = true
	}
	s.commit(chips)
	if s.Bet > g.Table.CurrentBet {
		g.Table.CurrentBet = s.Bet
	}
	g.logger.Info("Posted blind", "seat", s.Name, "chips", chips)
}

// apply executes a decision for seat s.
func (g *Game) apply(s *Seat, d Decision) error {
	switch d.Action {
	case Fold:
		s.Folded = true
		g.logger.Info("Fold", "seat", s.Name)

	case Call:
		chips, err := g.toCall(s)
		if err != nil {
			return err
		}
		s.commit(chips)
		g.logger.Info("Call", "seat", s.Name, "chips", chips, "all_in", s.AllIn())

	case Raise:
		if _, err := g.toCall(s); err != nil {
			return err
		}
		increment := max(d.Amount, g.Table.BigBlind, g.Table.LastRaise)
		chips := min(g.Table.CurrentBet+increment-s.Bet, s.Stack)
		s.commit(chips)
		g.raiseTo(s)
		g.Round.Aggression = true
		g.logger.Info("Raise", "seat", s.Name, "chips", chips, "to", s.Bet, "all_in", s.AllIn())

	default:
		return fmt.Errorf("seat %d action %d: %w", s.Index, d.Action, ErrUnknownAction)
	}
	return nil
}
