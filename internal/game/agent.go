package game

import (
	"fmt"

	"github.com/lox/fourhanded/internal/deck"
)

// Action is what a seat chooses to do on its turn
type Action int

const (
	Fold Action = iota
	Call
	Raise
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Decision is an action plus, for raises, the increment above the table bet.
type Decision struct {
	Action Action
	Amount int
}

// SeatInfo is the public view of a seat.
type SeatInfo struct {
	Index  int
	Name   string
	Stack  int
	Bet    int
	Folded bool
}

// Info is the snapshot handed to an Actor while it decides. It is a copy;
// changing it has no effect on the game.
type Info struct {
	Seat       int
	Hole       []deck.Card
	Community  []deck.Card
	LastRaise  int
	CurrentBet int
	BigBlind   int
	Seats      []SeatInfo // every seat that was dealt in, in index order
}

// Self returns the acting seat's public info
func (i Info) Self() SeatInfo {
	for _, s := range i.Seats {
		if s.Index == i.Seat {
			return s
		}
	}
	return SeatInfo{Index: i.Seat}
}

// Pot returns the total chips contributed this hand
func (i Info) Pot() int {
	total := 0
	for _, s := range i.Seats {
		total += s.Bet
	}
	return total
}

// ToCall returns the chips needed to match the table bet, capped at the stack
func (i Info) ToCall() int {
	self := i.Self()
	return max(0, min(i.CurrentBet-self.Bet, self.Stack))
}

// MinRaise returns the smallest legal raise increment
func (i Info) MinRaise() int {
	return max(i.BigBlind, i.LastRaise)
}

// Opponents returns the number of other seats still contesting the hand
func (i Info) Opponents() int {
	n := 0
	for _, s := range i.Seats {
		if s.Index != i.Seat && !s.Folded {
			n++
		}
	}
	return n
}

// Actor makes decisions for a seat. The game polls Done once per tick until
// it returns true, then reads Decision and calls EndTurn. A forced call
// happens while posting blinds and only asks the actor to acknowledge.
type Actor interface {
	StartTurn()
	TurnStarted() bool
	Done(forced bool, info Info) bool
	Decision() Decision
	EndTurn()
}

// String returns a short description such as "raise 10"
func (d Decision) String() string {
	if d.Action == Raise {
		return fmt.Sprintf("raise %d", d.Amount)
	}
	return d.Action.String()
}
