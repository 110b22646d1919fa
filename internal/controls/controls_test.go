package controls

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestPressRelease(t *testing.T) {
	c := New(quartz.NewMock(t))
	assert.False(t, c.IsPressed(Call))

	c.Press(Call)
	assert.True(t, c.IsPressed(Call))
	assert.False(t, c.IsPressed(Fold))

	c.Release(Call)
	assert.False(t, c.IsPressed(Call))
}

func TestReleaseAll(t *testing.T) {
	c := New(quartz.NewMock(t))
	c.Press(Fold)
	c.Press(Raise)
	c.ReleaseAll()
	assert.False(t, c.IsPressed(Fold))
	assert.False(t, c.IsPressed(Raise))
}

func TestTriggerLocksAgainstRepeat(t *testing.T) {
	ctx := context.Background()
	clock := quartz.NewMock(t)
	c := New(clock)

	c.Press(Confirm)
	assert.True(t, c.Trigger(Confirm, 500*time.Millisecond))
	assert.True(t, c.IsLocked(Confirm))
	assert.False(t, c.Trigger(Confirm, 500*time.Millisecond), "held key fires once")

	// Presses during the lock are ignored.
	c.ReleaseAll()
	c.Press(Confirm)
	assert.False(t, c.IsPressed(Confirm))

	clock.Advance(500 * time.Millisecond).MustWait(ctx)
	assert.False(t, c.IsLocked(Confirm))

	c.Press(Confirm)
	assert.True(t, c.Trigger(Confirm, 500*time.Millisecond))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "confirm", Confirm.String())
	assert.Equal(t, "double-pot", DoublePot.String())
}
