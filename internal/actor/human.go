package actor

import (
	"github.com/lox/fourhanded/internal/controls"
	"github.com/lox/fourhanded/internal/game"
)

// Human turns key presses into decisions. The controls are owned by the
// input loop and shared by reference.
type Human struct {
	in       *controls.Controls
	started  bool
	decision *game.Decision
}

// NewHuman creates a Human actor reading from in
func NewHuman(in *controls.Controls) *Human {
	return &Human{in: in}
}

func (h *Human) StartTurn() {
	h.started = true
}

func (h *Human) TurnStarted() bool {
	return h.started
}

// Done acknowledges forced turns at once and otherwise waits for one of
// the action keys.
func (h *Human) Done(forced bool, info game.Info) bool {
	if forced {
		return true
	}
	if h.decision == nil {
		if d, ok := h.choose(info); ok {
			h.decision = &d
		}
	}
	return h.decision != nil
}

func (h *Human) choose(info game.Info) (game.Decision, bool) {
	minRaise := info.MinRaise()
	pot := info.Pot()

	switch {
	case h.in.IsPressed(controls.Fold):
		return game.Decision{Action: game.Fold}, true
	case h.in.IsPressed(controls.Call):
		return game.Decision{Action: game.Call}, true
	case h.in.IsPressed(controls.Raise):
		return game.Decision{Action: game.Raise, Amount: minRaise}, true
	case h.in.IsPressed(controls.Double):
		return game.Decision{Action: game.Raise, Amount: 2 * minRaise}, true
	case h.in.IsPressed(controls.Triple):
		return game.Decision{Action: game.Raise, Amount: 3 * minRaise}, true
	case h.in.IsPressed(controls.Pot):
		return game.Decision{Action: game.Raise, Amount: pot}, true
	case h.in.IsPressed(controls.DoublePot):
		return game.Decision{Action: game.Raise, Amount: 2 * pot}, true
	}
	return game.Decision{}, false
}

func (h *Human) Decision() game.Decision {
	if h.decision == nil {
		return game.Decision{Action: game.Call}
	}
	return *h.decision
}

func (h *Human) EndTurn() {
	h.started = false
	h.decision = nil
}
