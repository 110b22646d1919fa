package game

import "errors"

// Invariant violations. Any of these means the table state can no longer
// be trusted, so Update returns them and the caller should stop the game.
var (
	ErrDeckExhausted     = errors.New("deck exhausted before dealing completed")
	ErrDealerOutOfRange  = errors.New("dealer seat out of range")
	ErrBetAboveTable     = errors.New("seat contribution above table bet")
	ErrChipConservation  = errors.New("chip conservation violated")
	ErrNoEligibleWinner  = errors.New("no seat eligible to win pot")
	ErrUnknownAction     = errors.New("unknown action")
	ErrSeatConfiguration = errors.New("invalid seat configuration")
)
