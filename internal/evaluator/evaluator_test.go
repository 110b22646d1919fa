package evaluator

import (
	"testing"

	"github.com/lox/fourhanded/internal/deck"
	"github.com/lox/fourhanded/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eval(s string) Play {
	return Evaluate(deck.MustParseCards(s))
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected Play
	}{
		{
			name:     "royal flush",
			cards:    "As Ks Qs Js Ts 2h 3d",
			expected: Play{Category: RoyalFlush},
		},
		{
			name:     "straight flush",
			cards:    "9s 8s 7s 6s 5s 4h 3h",
			expected: Play{Category: StraightFlush, High: 9},
		},
		{
			name:     "steel wheel",
			cards:    "Ah 2h 3h 4h 5h Kc Qd",
			expected: Play{Category: StraightFlush, High: 5},
		},
		{
			name:     "four of a kind",
			cards:    "As Ah Ad Ac Ks 2h 3h",
			expected: Play{Category: FourOfAKind, High: 14, Kickers: []int{13}},
		},
		{
			name:     "full house",
			cards:    "2c 2d 2h 5s 5d 9c Kh",
			expected: Play{Category: FullHouse, High: 2, Low: 5},
		},
		{
			name:     "full house from two trips",
			cards:    "7c 7d 7h 9s 9d 9c 2h",
			expected: Play{Category: FullHouse, High: 9, Low: 7},
		},
		{
			name:     "flush",
			cards:    "As Ks Qs 8s 6s 4s 3h",
			expected: Play{Category: Flush, Kickers: []int{6, 8, 12, 13, 14}},
		},
		{
			name:     "straight",
			cards:    "As Kh Qd Jc Ts 9h 8h",
			expected: Play{Category: Straight, High: 14},
		},
		{
			name:     "three of a kind",
			cards:    "As Ah Ad Ks 9c 7h 5h",
			expected: Play{Category: ThreeOfAKind, High: 14, Kickers: []int{9, 13}},
		},
		{
			name:     "two pair",
			cards:    "As Ah Kd Ks 9c 7h 5h",
			expected: Play{Category: TwoPair, High: 14, Low: 13, Kickers: []int{9}},
		},
		{
			name:     "two pair from three pairs",
			cards:    "As Ah Kd Ks 9c 9h 5h",
			expected: Play{Category: TwoPair, High: 14, Low: 13, Kickers: []int{9}},
		},
		{
			name:     "one pair",
			cards:    "As Ah Kd Qs 9c 7h 5h",
			expected: Play{Category: Pair, High: 14, Kickers: []int{9, 12, 13}},
		},
		{
			name:     "high card",
			cards:    "As Kh Qd 9s 7c 5h 3h",
			expected: Play{Category: HighCard, Kickers: []int{7, 9, 12, 13, 14}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := eval(tc.cards)
			assert.Equal(t, tc.expected.Category, got.Category, got.String())
			assert.Equal(t, 0, Compare(tc.expected, got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestSpecExamples(t *testing.T) {
	royal := EvaluateHand(deck.MustParseCards("As Ks"), deck.MustParseCards("Qs Js 10s 2h 3d"))
	assert.Equal(t, RoyalFlush, royal.Category)

	fh := EvaluateHand(deck.MustParseCards("2c 2d"), deck.MustParseCards("2h 5s 5d 9c Kh"))
	assert.Equal(t, FullHouse, fh.Category)
	assert.Equal(t, 2, fh.High)
	assert.Equal(t, 5, fh.Low)
}

func TestWheelIsFiveHighStraight(t *testing.T) {
	wheel := eval("As 2s 3h 4d 5c 9h Jd")
	require.Equal(t, Straight, wheel.Category)
	assert.Equal(t, 5, wheel.High)

	six := eval("2s 3h 4d 5c 6h 9h Jd")
	require.Equal(t, Straight, six.Category)
	assert.Equal(t, 6, six.High)

	assert.Equal(t, -1, Compare(wheel, six))
}

func TestLowerSuitedWindowBeatsHigherPlainStraight(t *testing.T) {
	// 9-high straight exists off-suit, but 4..8 of hearts is a straight flush.
	p := eval("4h 5h 6h 7h 8h 9c Kd")
	assert.Equal(t, StraightFlush, p.Category)
	assert.Equal(t, 8, p.High)
}

func TestFlushBeatsStraightInSameCards(t *testing.T) {
	p := eval("2h 5h 9h Jh Kh Tc Qd")
	assert.Equal(t, Flush, p.Category)
}

func TestFewerThanSevenCards(t *testing.T) {
	assert.Equal(t, Pair, eval("Ah Ad").Category)
	assert.Equal(t, HighCard, eval("Ah Kd").Category)
	assert.Equal(t, Straight, eval("Ah Kd Qc Js Ts").Category)
	assert.Equal(t, ThreeOfAKind, eval("Ah Ad Ac 2s 7d 9c").Category)
}

func TestCategoryOrdering(t *testing.T) {
	ladder := []string{
		"As Kh Qd 9s 7c 5h 3h",
		"As Ah Kd Qs 9c 7h 5h",
		"As Ah Kd Ks 9c 7h 5h",
		"As Ah Ad Ks 9c 7h 5h",
		"As Kh Qd Jc Ts 9h 8h",
		"As Ks Qs 8s 6s 4h 3h",
		"As Ah Ad Kc Kh 9h 7d",
		"As Ah Ad Ac Ks 2h 3h",
		"9s 8s 7s 6s 5s 4h 3h",
		"As Ks Qs Js Ts 9h 8h",
	}

	for i, cards := range ladder {
		p := eval(cards)
		assert.Equal(t, Category(i), p.Category, cards)
		if i > 0 {
			assert.True(t, p.Beats(eval(ladder[i-1])), "%s should beat %s", cards, ladder[i-1])
		}
	}
}

func TestKickerTieBreaks(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		winner int
	}{
		{"pair kicker", "As Ah Kd 8s 6c 4h 2h", "Ac Ad Qd 8h 6d 4s 2s", 1},
		{"last kicker decides", "As Ah Kd 8s 6c 4h 2h", "Ac Ad Kc 8h 5d 4s 2s", 1},
		{"two pair low pair", "As Ah Kd Ks 9c 7h 5h", "Ac Ad Qd Qs 9h 7d 5d", 1},
		{"flush second card", "Ah Kh 9h 7h 2h 3c 4d", "As Qs Js 9s 8s 3h 4c", 1},
		{"board plays", "2c 3d Ah Kh Qs Jd 9c", "2h 3s Ad Kc Qh Js 9s", 0},
		{"quad kicker", "9s 9h 9d 9c Ks 2h 3h", "9s 9h 9d 9c Qs Jh Th", 1},
		{"full house pair", "As Ah Ad Kc Kh 2h 3d", "As Ah Ad Qc Qh Jh Td", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := eval(tc.a), eval(tc.b)
			assert.Equal(t, tc.winner, Compare(a, b), "%s vs %s", a, b)
			assert.Equal(t, -tc.winner, Compare(b, a), "%s vs %s", b, a)
		})
	}
}

func TestEvaluateIsOrderIndependent(t *testing.T) {
	rng := randutil.New(11)
	for range 500 {
		d := deck.NewDeck(rng)
		d.Shuffle()
		cards, err := d.DealN(7)
		require.NoError(t, err)

		want := Evaluate(cards)
		for range 5 {
			rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
			got := Evaluate(cards)
			require.Equal(t, want, got, "cards %v", cards)
		}
	}
}

func TestPlayString(t *testing.T) {
	assert.Equal(t, "Royal Flush", eval("As Ks Qs Js Ts 2h 3d").String())
	assert.Equal(t, "Full House (2 full of 5)", eval("2c 2d 2h 5s 5d 9c Kh").String())
	assert.Equal(t, "Straight (5 high)", eval("As 2s 3h 4d 5c 9h Jd").String())
	assert.Equal(t, "Two Pair (A and K)", eval("As Ah Kd Ks 9c 7h 5h").String())
}
