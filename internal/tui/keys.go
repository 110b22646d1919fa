package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/lox/fourhanded/internal/controls"
)

type keyMap struct {
	Confirm   key.Binding
	Fold      key.Binding
	Call      key.Binding
	Raise     key.Binding
	Double    key.Binding
	Triple    key.Binding
	Pot       key.Binding
	DoublePot key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Confirm:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "continue")),
		Fold:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fold")),
		Call:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "call")),
		Raise:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "raise")),
		Double:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "raise 2x")),
		Triple:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "raise 3x")),
		Pot:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pot")),
		DoublePot: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "2x pot")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc", "quit")),
	}
}

// bindings pairs every binding with the logical key it presses.
func (k keyMap) bindings() []struct {
	binding key.Binding
	key     controls.Key
} {
	return []struct {
		binding key.Binding
		key     controls.Key
	}{
		{k.Confirm, controls.Confirm},
		{k.Fold, controls.Fold},
		{k.Call, controls.Call},
		{k.Raise, controls.Raise},
		{k.Double, controls.Double},
		{k.Triple, controls.Triple},
		{k.Pot, controls.Pot},
		{k.DoublePot, controls.DoublePot},
		{k.Quit, controls.Quit},
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fold, k.Call, k.Raise, k.Double, k.Triple, k.Pot, k.DoublePot, k.Confirm, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fold, k.Call},
		{k.Raise, k.Double, k.Triple},
		{k.Pot, k.DoublePot},
		{k.Confirm, k.Quit},
	}
}
