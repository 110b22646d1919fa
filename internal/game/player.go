package game

import "github.com/lox/fourhanded/internal/deck"

// Seat is one of the chairs at the table. Its index never changes; the
// other fields are mutated only by the game while it handles a tick.
type Seat struct {
	Index      int
	Name       string
	Stack      int
	Bet        int // contribution to the current hand
	Folded     bool
	Eliminated bool // had no chips when the hand was dealt
	Hole       []deck.Card
}

// InHand returns true if the seat still contests the pot
func (s *Seat) InHand() bool {
	return !s.Folded && !s.Eliminated
}

// AllIn returns true if the seat is in the hand with nothing left behind
func (s *Seat) AllIn() bool {
	return !s.Eliminated && s.Stack == 0
}

// commit moves chips from the stack into the seat's contribution.
func (s *Seat) commit(chips int) {
	s.Stack -= chips
	s.Bet += chips
}
