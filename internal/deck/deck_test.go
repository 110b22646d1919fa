package deck

import (
	"testing"

	"github.com/lox/fourhanded/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardValue(t *testing.T) {
	assert.Equal(t, 14, NewCard(Spades, Ace).Value())
	assert.Equal(t, 13, NewCard(Hearts, King).Value())
	assert.Equal(t, 2, NewCard(Clubs, Two).Value())
	assert.Equal(t, Ace, RankOfValue(14))
	assert.Equal(t, Five, RankOfValue(5))
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		input    string
		expected Card
	}{
		{"As", NewCard(Spades, Ace)},
		{"Td", NewCard(Diamonds, Ten)},
		{"10h", NewCard(Hearts, Ten)},
		{"2c", NewCard(Clubs, Two)},
		{"kH", NewCard(Hearts, King)},
	}

	for _, tc := range tests {
		card, err := ParseCard(tc.input)
		require.NoError(t, err, "input: %s", tc.input)
		assert.Equal(t, tc.expected, card, "input: %s", tc.input)
	}

	for _, bad := range []string{"", "A", "1s", "Ax", "Zs"} {
		_, err := ParseCard(bad)
		assert.Error(t, err, "input: %q", bad)
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", NewCard(Spades, Ace).String())
	assert.Equal(t, "10♥", NewCard(Hearts, Ten).String())
	assert.True(t, NewCard(Diamonds, Two).IsRed())
	assert.False(t, NewCard(Clubs, Two).IsRed())
}

func TestNewDeckIsComplete(t *testing.T) {
	d := NewDeck(randutil.New(1))
	require.NoError(t, d.Verify())
	assert.Equal(t, Size, d.Remaining())

	d.Shuffle()
	require.NoError(t, d.Verify())
}

func TestDealAndReturn(t *testing.T) {
	d := NewDeck(randutil.New(7))
	d.Shuffle()

	hand, err := d.DealN(7)
	require.NoError(t, err)
	assert.Len(t, hand, 7)
	assert.Equal(t, 45, d.Remaining())
	assert.Equal(t, 7, d.Dealt())
	assert.ErrorIs(t, d.Verify(), ErrCorrupt)

	d.Return(hand...)
	d.Shuffle()
	require.NoError(t, d.Verify())
}

func TestDealExhausted(t *testing.T) {
	d := NewDeck(randutil.New(3))
	_, err := d.DealN(Size)
	require.NoError(t, err)

	_, err = d.Deal()
	assert.ErrorIs(t, err, ErrExhausted)

	_, err = d.DealN(1)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	a := NewDeck(randutil.New(42))
	b := NewDeck(randutil.New(42))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestStackedDeck(t *testing.T) {
	top := MustParseCards("As Ks Qs")
	d, err := NewStackedDeck(top)
	require.NoError(t, err)
	require.NoError(t, d.Verify())

	d.Shuffle()
	for _, want := range top {
		got, err := d.Deal()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = NewStackedDeck(MustParseCards("As As"))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestVerifyDetectsDuplicates(t *testing.T) {
	d := NewDeck(randutil.New(5))
	card, err := d.Deal()
	require.NoError(t, err)

	d.Return(card, card)
	d.dealt = 0
	assert.ErrorIs(t, d.Verify(), ErrCorrupt)
}
