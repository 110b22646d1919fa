package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fourhanded/internal/config"
)

func simpleSeats() []Seat {
	return []Seat{
		{Name: "North", Actor: config.ActorSimple},
		{Name: "East", Actor: config.ActorSimple},
		{Name: "South", Actor: config.ActorSimple},
		{Name: "West", Actor: config.ActorSimple},
	}
}

func TestNew(t *testing.T) {
	sim, err := New(Config{Hands: 100, Seats: simpleSeats(), Seed: 12345})
	require.NoError(t, err)

	assert.Equal(t, 100, sim.config.Hands)
	assert.Equal(t, 200, sim.config.StartingStack)
	assert.Equal(t, 2, sim.config.SmallBlind)
	assert.Equal(t, 5, sim.config.BigBlind)
	assert.Equal(t, 10*time.Second, sim.config.Timeout)
	assert.NotNil(t, sim.config.Logger)
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no hands", Config{Seats: simpleSeats()}},
		{"one seat", Config{Hands: 1, Seats: simpleSeats()[:1]}},
		{"human seat", Config{Hands: 1, Seats: []Seat{
			{Name: "You", Actor: config.ActorHuman},
			{Name: "West", Actor: config.ActorSimple},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestRunConservesChips(t *testing.T) {
	sim, err := New(Config{Hands: 60, Seats: simpleSeats(), Seed: 7, StartingStack: 50})
	require.NoError(t, err)

	res, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 60, res.Hands)
	assert.GreaterOrEqual(t, res.Sessions, 1)
	assert.Equal(t, []string{"North", "East", "South", "West"}, res.Names)

	total := 0.0
	for _, stats := range res.Seats {
		assert.LessOrEqual(t, stats.Hands, 60)
		total += stats.SumBB
	}
	assert.InDelta(t, 0, total, 1e-6, "chips won must equal chips lost")
}

func TestRunEveryoneCallsReachesShowdown(t *testing.T) {
	sim, err := New(Config{Hands: 5, Seats: simpleSeats(), Seed: 3, StartingStack: 1000})
	require.NoError(t, err)

	res, err := sim.Run(context.Background())
	require.NoError(t, err)

	for _, stats := range res.Seats {
		assert.Equal(t, 5, stats.Hands)
		assert.Equal(t, 5, stats.Streets["River"])
		assert.InDelta(t, 4.0, stats.MaxPotBB, 1e-9, "four callers of the big blind")
	}
}

func TestRunIsReproducible(t *testing.T) {
	run := func() []float64 {
		sim, err := New(Config{Hands: 20, Seats: simpleSeats(), Seed: 99})
		require.NoError(t, err)
		res, err := sim.Run(context.Background())
		require.NoError(t, err)
		return res.Seats[0].Values
	}
	assert.Equal(t, run(), run())
}

func TestRunWithAdHocSeats(t *testing.T) {
	seats := simpleSeats()
	seats[1].Actor = config.ActorAdHoc
	seats[3].Actor = config.ActorAdHoc

	sim, err := New(Config{Hands: 10, Seats: seats, Seed: 11, Trials: 100})
	require.NoError(t, err)

	res, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, res.Hands)
}

func TestRunHonoursCancellation(t *testing.T) {
	sim, err := New(Config{Hands: 1000, Seats: simpleSeats(), Seed: 5})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteSummary(t *testing.T) {
	sim, err := New(Config{Hands: 8, Seats: simpleSeats(), Seed: 1})
	require.NoError(t, err)
	res, err := sim.Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSummary(&buf, res)

	out := buf.String()
	assert.Contains(t, out, "Hands played: 8")
	for _, name := range res.Names {
		assert.Contains(t, out, "--- "+name+" ---")
	}
}

func TestWriteJSON(t *testing.T) {
	sim, err := New(Config{Hands: 4, Seats: simpleSeats(), Seed: 2, StartingStack: 1000})
	require.NoError(t, err)
	res, err := sim.Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))

	var report Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, int64(2), report.Seed)
	assert.Equal(t, 4, report.Hands)
	require.Len(t, report.Seats, 4)
	assert.Equal(t, "North", report.Seats[0].Name)
	assert.Len(t, report.Seats[0].PositionMeanBB, 4)
	assert.Equal(t, 4, report.Seats[0].Streets["River"])
}
