package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Size is the number of cards in a full deck.
const Size = 52

var (
	// ErrExhausted is returned when dealing from an empty deck.
	ErrExhausted = errors.New("deck exhausted")
	// ErrCorrupt is returned when the deck no longer holds 52 unique cards.
	ErrCorrupt = errors.New("deck corrupt")
)

// Deck is the single shared shoe of a table. Cards leave it through Deal
// and come back through Return; together with the dealt cards it always
// accounts for exactly 52 unique cards.
type Deck struct {
	cards   []Card
	dealt   int
	shuffle func([]Card)
}

// NewDeck creates a new standard 52-card deck shuffled with rng.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: standardCards(),
		shuffle: func(cards []Card) {
			rng.Shuffle(len(cards), func(i, j int) {
				cards[i], cards[j] = cards[j], cards[i]
			})
		},
	}
	return d
}

// NewStackedDeck returns a deck whose top cards are exactly top, in order,
// followed by the remaining cards in construction order. Shuffling a
// stacked deck is a no-op, which makes dealing fully predictable in tests.
func NewStackedDeck(top []Card) (*Deck, error) {
	seen := make(map[Card]bool, Size)
	cards := make([]Card, 0, Size)
	for _, c := range top {
		if !c.Valid() {
			return nil, fmt.Errorf("stacked card %v: %w", c, ErrCorrupt)
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate stacked card %s: %w", c, ErrCorrupt)
		}
		seen[c] = true
		cards = append(cards, c)
	}
	for _, c := range standardCards() {
		if !seen[c] {
			cards = append(cards, c)
		}
	}
	return &Deck{cards: cards, shuffle: func([]Card) {}}, nil
}

func standardCards() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle randomizes the order of the cards still in the deck
func (d *Deck) Shuffle() {
	d.shuffle(d.cards)
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrExhausted
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	d.dealt++
	return card, nil
}

// DealN deals n cards from the deck
func (d *Deck) DealN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("deal %d of %d: %w", n, len(d.cards), ErrExhausted)
	}

	cards := make([]Card, n)
	for i := range cards {
		card, err := d.Deal()
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

// Return puts dealt cards back at the bottom of the deck.
func (d *Deck) Return(cards ...Card) {
	d.cards = append(d.cards, cards...)
	d.dealt -= len(cards)
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Dealt returns the number of cards currently out of the deck.
func (d *Deck) Dealt() int {
	return d.dealt
}

// Cards returns a copy of the cards in the deck, top first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Verify checks that the deck holds all 52 unique cards and nothing is out.
func (d *Deck) Verify() error {
	if d.dealt != 0 {
		return fmt.Errorf("%d cards still dealt: %w", d.dealt, ErrCorrupt)
	}
	if len(d.cards) != Size {
		return fmt.Errorf("deck holds %d cards: %w", len(d.cards), ErrCorrupt)
	}

	var seen [Size]bool
	for _, c := range d.cards {
		if !c.Valid() {
			return fmt.Errorf("invalid card %v: %w", c, ErrCorrupt)
		}
		if seen[c.Index()] {
			return fmt.Errorf("duplicate card %s: %w", c, ErrCorrupt)
		}
		seen[c.Index()] = true
	}
	return nil
}
