package game

import (
	"testing"

	"github.com/lox/fourhanded/internal/controls"
	"github.com/lox/fourhanded/internal/deck"
	"github.com/stretchr/testify/require"
)

// scriptedActor plays a fixed list of decisions and calls once it runs out.
type scriptedActor struct {
	decisions []Decision
	stall     int // ticks to wait before each non-forced decision

	started bool
	starts  int
	waited  int
	forced  []bool
	infos   []Info
	decided int
}

func (a *scriptedActor) StartTurn() {
	a.started = true
	a.starts++
	a.waited = 0
}

func (a *scriptedActor) TurnStarted() bool {
	return a.started
}

func (a *scriptedActor) Done(forced bool, info Info) bool {
	if !forced && a.waited < a.stall {
		a.waited++
		return false
	}
	a.forced = append(a.forced, forced)
	a.infos = append(a.infos, info)
	return true
}

func (a *scriptedActor) Decision() Decision {
	a.decided++
	if len(a.decisions) == 0 {
		return Decision{Action: Call}
	}
	d := a.decisions[0]
	a.decisions = a.decisions[1:]
	return d
}

func (a *scriptedActor) EndTurn() {
	a.started = false
}

func newActors(n int) []*scriptedActor {
	actors := make([]*scriptedActor, n)
	for i := range actors {
		actors[i] = &scriptedActor{}
	}
	return actors
}

// newTestGame builds a game over a stacked deck with one seat per stack.
func newTestGame(t *testing.T, top string, stacks []int, actors []*scriptedActor, opts ...Option) *Game {
	t.Helper()

	d, err := deck.NewStackedDeck(deck.MustParseCards(top))
	require.NoError(t, err)

	names := []string{"North", "East", "South", "West"}
	seats := make([]SeatConfig, len(stacks))
	as := make([]Actor, len(stacks))
	for i, stack := range stacks {
		seats[i] = SeatConfig{Name: names[i%len(names)], Stack: stack}
		as[i] = actors[i]
	}

	g, err := New(seats, as, append([]Option{WithDeck(d)}, opts...)...)
	require.NoError(t, err)
	return g
}

// runUntil ticks the game until done returns true.
func runUntil(t *testing.T, g *Game, in *controls.Controls, done func() bool) {
	t.Helper()
	for tick := 0; tick < 500; tick++ {
		if done() {
			return
		}
		require.NoError(t, g.Update(in))
	}
	t.Fatalf("game did not reach expected state, phase %s", g.Phase)
}

func inPhase(g *Game, p Phase) func() bool {
	return func() bool { return g.Phase == p }
}
