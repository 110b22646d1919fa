// Package evaluator ranks Texas Hold'em hands. Given two to seven cards it
// finds the single best five-card category together with the ranks and
// kickers needed to order it against any other evaluation.
package evaluator

import (
	"slices"

	"github.com/lox/fourhanded/internal/deck"
)

const wheelTop = 5

// EvaluateHand evaluates hole cards together with the revealed board.
func EvaluateHand(hole, board []deck.Card) Play {
	cards := make([]deck.Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)
	return Evaluate(cards)
}

// Evaluate returns the best play reachable with cards. The result does not
// depend on the order of cards.
func Evaluate(cards []deck.Card) Play {
	var (
		counts  [15]int
		suitsAt [15]uint8
		bySuit  [4][]int
	)
	values := make([]int, 0, len(cards))
	for _, c := range cards {
		v := c.Value()
		counts[v]++
		suitsAt[v] |= 1 << uint(c.Suit)
		bySuit[c.Suit] = append(bySuit[c.Suit], v)
		values = append(values, v)
	}
	slices.SortFunc(values, descending)

	// Straight flushes first. A window whose ranks are all present but share
	// no suit is only remembered; a lower window may still be suited.
	straightTop := 0
	for top := 14; top >= wheelTop; top-- {
		suits, ok := windowSuits(top, &counts, &suitsAt)
		if !ok {
			continue
		}
		if suits != 0 {
			if top == 14 {
				return Play{Category: RoyalFlush}
			}
			return Play{Category: StraightFlush, High: top}
		}
		if straightTop == 0 {
			straightTop = top
		}
	}

	if quad := highestWithCount(&counts, 4, 0); quad > 0 {
		return Play{Category: FourOfAKind, High: quad, Kickers: kickers(values, 1, quad)}
	}

	trips := highestWithCount(&counts, 3, 0)
	if trips > 0 {
		if pair := highestWithAtLeast(&counts, 2, trips); pair > 0 {
			return Play{Category: FullHouse, High: trips, Low: pair}
		}
	}

	for _, suited := range bySuit {
		if len(suited) >= 5 {
			slices.SortFunc(suited, descending)
			return Play{Category: Flush, Kickers: ascending(suited[:5])}
		}
	}

	if trips > 0 {
		return Play{Category: ThreeOfAKind, High: trips, Kickers: kickers(values, 2, trips)}
	}

	if straightTop > 0 {
		return Play{Category: Straight, High: straightTop}
	}

	if high := highestWithCount(&counts, 2, 0); high > 0 {
		if low := highestWithCount(&counts, 2, high); low > 0 {
			return Play{Category: TwoPair, High: high, Low: low, Kickers: kickers(values, 1, high, low)}
		}
		return Play{Category: Pair, High: high, Kickers: kickers(values, 3, high)}
	}

	return Play{Category: HighCard, Kickers: kickers(values, 5)}
}

// windowSuits checks the five consecutive ranks ending at top. The rank
// below Two is the Ace, which makes top == 5 the wheel.
func windowSuits(top int, counts *[15]int, suitsAt *[15]uint8) (uint8, bool) {
	suits := uint8(0xF)
	for v := top; v > top-5; v-- {
		r := v
		if r == 1 {
			r = 14
		}
		if counts[r] == 0 {
			return 0, false
		}
		suits &= suitsAt[r]
	}
	return suits, true
}

// highestWithCount returns the highest rank value held exactly n times,
// skipping except. Zero means none.
func highestWithCount(counts *[15]int, n, except int) int {
	for v := 14; v >= 2; v-- {
		if v != except && counts[v] == n {
			return v
		}
	}
	return 0
}

func highestWithAtLeast(counts *[15]int, n, except int) int {
	for v := 14; v >= 2; v-- {
		if v != except && counts[v] >= n {
			return v
		}
	}
	return 0
}

// kickers picks the n highest values (sorted descending) that are not one
// of the used ranks and returns them ascending.
func kickers(values []int, n int, used ...int) []int {
	out := make([]int, 0, n)
	for _, v := range values {
		if len(out) == n {
			break
		}
		if slices.Contains(used, v) {
			continue
		}
		out = append(out, v)
	}
	return ascending(out)
}

func ascending(desc []int) []int {
	out := slices.Clone(desc)
	slices.Sort(out)
	return out
}

func descending(a, b int) int {
	return b - a
}
