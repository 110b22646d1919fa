package game

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/fourhanded/internal/deck"
)

// Option configures a Game during creation.
type Option func(*config)

// config holds all configuration for creating a game.
type config struct {
	rng         *rand.Rand
	deck        *deck.Deck // overrides rng for deck creation
	smallBlind  int
	bigBlind    int
	dealer      int
	logger      *log.Logger
	confirmLock time.Duration
}

func defaultConfig() config {
	return config{
		smallBlind:  2,
		bigBlind:    5,
		logger:      log.New(io.Discard),
		confirmLock: 500 * time.Millisecond,
	}
}

// WithRNG shuffles a standard deck with rng
func WithRNG(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithDeck uses a specific deck, typically a stacked one in tests
func WithDeck(d *deck.Deck) Option {
	return func(c *config) {
		c.deck = d
	}
}

// WithBlinds sets the small and big blind
func WithBlinds(small, big int) Option {
	return func(c *config) {
		c.smallBlind = small
		c.bigBlind = big
	}
}

// WithDealer sets the seat holding the dealer button for the first hand
func WithDealer(seat int) Option {
	return func(c *config) {
		c.dealer = seat
	}
}

// WithLogger sets the logger used for hand events
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithConfirmLock sets how long the confirm key stays locked after use
func WithConfirmLock(d time.Duration) Option {
	return func(c *config) {
		c.confirmLock = d
	}
}
