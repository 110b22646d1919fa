package game

import "github.com/lox/fourhanded/internal/deck"

// Phase is the top level state of the game loop
type Phase int

const (
	Dealing Phase = iota
	Round
	Resolving
	Collecting
	GameOver
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case Dealing:
		return "Dealing"
	case Round:
		return "Round"
	case Resolving:
		return "Resolving"
	case Collecting:
		return "Collecting"
	case GameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// Stage represents the current betting round
type Stage int

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
)

// String returns the string representation of a betting round
func (s Stage) String() string {
	switch s {
	case PreFlop:
		return "Pre-flop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	default:
		return "Unknown"
	}
}

// RoundState is the sub-state carried while the game is in the Round phase.
type RoundState struct {
	Revealed         int // community cards face up: 0, 3, 4 or 5
	Turn             int // seat to act
	SmallBlindPosted bool
	BigBlindPosted   bool
	Aggression       bool // a raise has happened this stage
}

// Stage derives the betting round from the number of revealed cards
func (r RoundState) Stage() Stage {
	switch r.Revealed {
	case 0:
		return PreFlop
	case 3:
		return Flop
	case 4:
		return Turn
	default:
		return River
	}
}

// BlindsPosted returns true once both forced bets are in
func (r RoundState) BlindsPosted() bool {
	return r.SmallBlindPosted && r.BigBlindPosted
}

// BoardCard is a community card and whether it has been turned face up.
type BoardCard struct {
	Card     deck.Card
	Revealed bool
}

// Table holds the state shared by every seat.
type Table struct {
	Dealer     int
	CurrentBet int // highest contribution this hand
	LastRaise  int // size of the last raise increment this stage
	Board      []BoardCard
	Deck       *deck.Deck
	SmallBlind int
	BigBlind   int
}

// Community returns the face up community cards
func (t *Table) Community() []deck.Card {
	cards := make([]deck.Card, 0, len(t.Board))
	for _, bc := range t.Board {
		if bc.Revealed {
			cards = append(cards, bc.Card)
		}
	}
	return cards
}

// reveal turns the first n board cards face up.
func (t *Table) reveal(n int) {
	for i := range t.Board {
		t.Board[i].Revealed = i < n
	}
}

// boardCards returns every board card regardless of whether it is face up.
func (t *Table) boardCards() []deck.Card {
	cards := make([]deck.Card, len(t.Board))
	for i, bc := range t.Board {
		cards[i] = bc.Card
	}
	return cards
}
