package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/fourhanded/internal/actor"
	"github.com/lox/fourhanded/internal/controls"
	"github.com/lox/fourhanded/internal/deck"
	"github.com/lox/fourhanded/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, *controls.Controls) {
	t.Helper()

	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	clock := quartz.NewMock(t)
	in := controls.New(clock)

	d, err := deck.NewStackedDeck(deck.MustParseCards("As Ah 2c 7d 3c 8d 4c 9d Kh Qs Jd 5s 6h"))
	require.NoError(t, err)

	seats := []game.SeatConfig{{Name: "You", Stack: 100}, {Name: "West", Stack: 100}, {Name: "North", Stack: 100}, {Name: "East", Stack: 100}}
	actors := []game.Actor{
		actor.NewHuman(in),
		actor.NewSimple(clock, 0),
		actor.NewSimple(clock, 0),
		actor.NewSimple(clock, 0),
	}
	g, err := game.New(seats, actors, game.WithDeck(d), game.WithLogger(logger))
	require.NoError(t, err)

	return New(g, in, 0, time.Millisecond, logger), in
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysPressControlsUntilTick(t *testing.T) {
	t.Parallel()

	m, in := newTestModel(t)

	m.Update(runes("c"))
	assert.True(t, in.IsPressed(controls.Call))

	m.Update(runes("P"))
	assert.True(t, in.IsPressed(controls.DoublePot))

	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.False(t, in.IsPressed(controls.Call), "ticks release every key")
	assert.False(t, in.IsPressed(controls.DoublePot))
}

func TestTicksDriveTheGame(t *testing.T) {
	t.Parallel()

	m, in := newTestModel(t)
	g := m.game

	m.Update(tickMsg(time.Now()))
	assert.Equal(t, game.Round, g.Phase)

	// Blinds, then the other seats call round to the human.
	for i := 0; i < 20 && g.ActingSeat() != 0; i++ {
		m.Update(tickMsg(time.Now()))
	}
	require.Equal(t, 0, g.ActingSeat())

	m.Update(tickMsg(time.Now()))
	assert.Equal(t, 0, g.ActingSeat(), "waits for the human")

	m.Update(runes("c"))
	m.Update(tickMsg(time.Now()))
	assert.Equal(t, 5, g.Seats[0].Bet)
	assert.False(t, in.IsPressed(controls.Call))
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestGameErrorQuits(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	g := m.game
	m.Update(tickMsg(time.Now()))

	// Lose two dealt cards so the deck cannot be restored.
	g.Seats[0].Hole = nil
	g.Phase = game.Collecting

	_, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.Err(), deck.ErrCorrupt)
}

func TestView(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(tickMsg(time.Now()))

	view := m.View()
	for _, name := range []string{"You", "West", "North", "East"} {
		assert.Contains(t, view, name)
	}
	assert.Contains(t, view, "Hand #1")
	assert.Contains(t, view, "A♠", "human hole cards are face up")
	assert.NotContains(t, view, "K♥", "board is face down pre-flop")
}
