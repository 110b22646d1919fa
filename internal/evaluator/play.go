package evaluator

import (
	"fmt"

	"github.com/lox/fourhanded/internal/deck"
)

// Category is the kind of a five-card poker hand, weakest first.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Play is the best hand found for a set of cards. High and Low carry the
// rank values (2..14) that define the category:
//
//	Pair, ThreeOfAKind, FourOfAKind: High is the grouped rank
//	TwoPair:                         High and Low are the two pairs
//	FullHouse:                       High is the three, Low the pair
//	Straight, StraightFlush:         High is the top card (5 for the wheel)
//
// Kickers are rank values in ascending order.
type Play struct {
	Category Category
	High     int
	Low      int
	Kickers  []int
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 for a tie.
func Compare(a, b Play) int {
	if c := cmpInt(int(a.Category), int(b.Category)); c != 0 {
		return c
	}
	if c := cmpInt(a.High, b.High); c != 0 {
		return c
	}
	if c := cmpInt(a.Low, b.Low); c != 0 {
		return c
	}

	// Kickers are stored ascending, so walk both lists from the end.
	n := max(len(a.Kickers), len(b.Kickers))
	for i := 1; i <= n; i++ {
		if c := cmpInt(kickerAt(a.Kickers, i), kickerAt(b.Kickers, i)); c != 0 {
			return c
		}
	}
	return 0
}

// Beats reports whether p is strictly stronger than other.
func (p Play) Beats(other Play) bool {
	return Compare(p, other) > 0
}

// Ties reports whether p and other split.
func (p Play) Ties(other Play) bool {
	return Compare(p, other) == 0
}

// String returns a human-readable hand description
func (p Play) String() string {
	switch p.Category {
	case RoyalFlush:
		return p.Category.String()
	case StraightFlush, Straight:
		return fmt.Sprintf("%s (%s high)", p.Category, rankName(p.High))
	case FourOfAKind, ThreeOfAKind, Pair:
		return fmt.Sprintf("%s (%s)", p.Category, rankName(p.High))
	case FullHouse:
		return fmt.Sprintf("%s (%s full of %s)", p.Category, rankName(p.High), rankName(p.Low))
	case TwoPair:
		return fmt.Sprintf("%s (%s and %s)", p.Category, rankName(p.High), rankName(p.Low))
	case Flush, HighCard:
		if len(p.Kickers) == 0 {
			return p.Category.String()
		}
		return fmt.Sprintf("%s (%s high)", p.Category, rankName(p.Kickers[len(p.Kickers)-1]))
	default:
		return p.Category.String()
	}
}

func rankName(v int) string {
	return deck.RankOfValue(v).String()
}

func kickerAt(kickers []int, fromTop int) int {
	i := len(kickers) - fromTop
	if i < 0 {
		return 0
	}
	return kickers[i]
}

func cmpInt(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
